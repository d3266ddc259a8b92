package ui

import (
	"log"
	"net/http"

	apperrors "siparis/internal/errors"

	"github.com/gin-gonic/gin"
)

var errUnauthorized = apperrors.Unauthorized("missing or invalid identity")

// respondError writes the error envelope. Technical detail only goes to the log.
func respondError(c *gin.Context, err error) {
	code := apperrors.GetCode(err)
	status := apperrors.HTTPStatus(code)

	if status >= http.StatusInternalServerError {
		log.Printf("[%s %s] %s: %v", c.Request.Method, c.FullPath(), code, err)
	} else {
		log.Printf("[%s %s] rejected (%s): %v", c.Request.Method, c.FullPath(), code, err)
	}

	c.JSON(status, gin.H{
		"error":   http.StatusText(status),
		"message": apperrors.UserMessage(code),
		"code":    code,
	})
}
