package middleware

import (
	"log"
	"strings"

	"siparis/domain/core"
	"siparis/domain/order"

	"github.com/gin-gonic/gin"
)

// Headers set by the authenticating proxy in front of the service
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

const principalKey = "principal"

// Identity resolves the caller from trusted upstream headers. Requests without
// a valid user id pass through anonymously.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderUserID)
		if raw == "" {
			c.Next()
			return
		}

		userID, err := core.ParseUserID(raw)
		if err != nil {
			log.Printf("[Identity] Ignoring malformed %s header: %v", HeaderUserID, err)
			c.Next()
			return
		}

		c.Set(principalKey, order.Principal{
			UserID: userID,
			Role:   strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderUserRole))),
		})
		c.Next()
	}
}

// PrincipalFrom returns the principal resolved by Identity
func PrincipalFrom(c *gin.Context) (order.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return order.Principal{}, false
	}
	p, ok := v.(order.Principal)
	return p, ok
}
