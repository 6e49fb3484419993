package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewAdminMiddleware gates moderation endpoints. Must run after the JWT
// middleware, which stores the caller's role in the context.
func NewAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		if c.GetString("userRole") != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":     "admin_only",
				"requestID": requestID,
			})
			return
		}

		c.Next()
	}
}
