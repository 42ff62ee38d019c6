// internal/interfaces/http/middleware/security.go
package middleware

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeaders adds security headers to responses
func SecurityHeaders(serverName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		// The cart fragment is inserted into the storefront page, which serves its own images.
		c.Header("Content-Security-Policy", "default-src 'self'; img-src 'self' data:")
		c.Header("Server", serverName)

		c.Next()
	}
}
