// internal/interfaces/http/middleware/session.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/farm-storefront/internal/pkg/session"
)

const sessionIDKey = "session_id"

// SessionValidator verifies page-session tokens
type SessionValidator interface {
	Validate(token string) (string, error)
}

// RequireSession rejects requests without a valid page-session token
func RequireSession(validator SessionValidator, header string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := sessionToken(c, header)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Session token required",
			})
			c.Abort()
			return
		}

		sessionID, err := validator.Validate(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired session token",
			})
			c.Abort()
			return
		}

		c.Set(sessionIDKey, sessionID)
		c.Next()
	}
}

// OptionalSession attaches the session id when a valid token is present
func OptionalSession(validator SessionValidator, header string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := sessionToken(c, header); tokenString != "" {
			if sessionID, err := validator.Validate(tokenString); err == nil {
				c.Set(sessionIDKey, sessionID)
			}
		}
		c.Next()
	}
}

// GetSessionIDFromContext extracts the page-session id from gin context
func GetSessionIDFromContext(c *gin.Context) (string, bool) {
	sessionID, exists := c.Get(sessionIDKey)
	if !exists {
		return "", false
	}
	id, ok := sessionID.(string)
	return id, ok
}

// sessionToken reads the token from the session header, then from Authorization
func sessionToken(c *gin.Context, header string) string {
	if header != "" {
		if token := c.GetHeader(header); token != "" {
			return token
		}
	}
	return session.ExtractTokenFromHeader(c.GetHeader("Authorization"))
}
