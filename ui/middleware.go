package ui

import (
	"net/http"

	"siparis/ui/middleware"

	"github.com/gin-gonic/gin"
)

// setupMiddleware configures Gin middleware
func (s *Server) setupMiddleware() {
	s.router.Use(gin.Logger(), gin.Recovery())

	if s.options.CORSOrigin != "" {
		s.router.Use(cors(s.options.CORSOrigin))
	}

	s.router.Use(middleware.Identity())
}

// cors allows the configured browser origin, with credentials
func cors(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Set("Access-Control-Allow-Credentials", "true")
		h.Set("Access-Control-Allow-Headers", "Content-Type, "+middleware.HeaderUserID+", "+middleware.HeaderUserRole)
		h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		h.Set("Access-Control-Expose-Headers", "Content-Disposition")
		h.Add("Vary", "Origin")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// requireIdentity rejects requests without a resolved principal
func requireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := middleware.PrincipalFrom(c); !ok {
			respondError(c, errUnauthorized)
			c.Abort()
			return
		}
		c.Next()
	}
}
