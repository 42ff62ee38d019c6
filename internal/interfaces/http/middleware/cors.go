// internal/interfaces/http/middleware/cors.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/your-org/farm-storefront/internal/config"
)

// CORS returns a middleware that handles Cross-Origin Resource Sharing
func CORS(cfg *config.Config) gin.HandlerFunc {
	methods := strings.Join(cfg.Security.CORSAllowedMethods, ", ")
	headers := strings.Join(cfg.Security.CORSAllowedHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		switch allowed := allowedOrigin(origin, cfg.Security.CORSAllowedOrigins); allowed {
		case "":
		case "*":
			// any origin, so never with credentials
			c.Header("Access-Control-Allow-Origin", "*")
		default:
			c.Header("Access-Control-Allow-Origin", allowed)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Vary", "Origin")
		}

		c.Header("Access-Control-Allow-Methods", methods)
		c.Header("Access-Control-Allow-Headers", headers)
		c.Header("Access-Control-Expose-Headers", cfg.Session.Header+", X-Request-ID")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// allowedOrigin returns the Access-Control-Allow-Origin value for origin:
// the origin itself when listed, "*" when only the catch-all matches,
// and "" when it is not allowed.
func allowedOrigin(origin string, allowedOrigins []string) string {
	if origin == "" {
		return ""
	}
	wildcard := false
	for _, allowed := range allowedOrigins {
		if allowed == "*" {
			wildcard = true
			continue
		}
		if allowed == origin {
			return origin
		}
		// Wildcard subdomains, e.g. *.yourfarmeggs.in
		if strings.HasPrefix(allowed, "*.") && strings.HasSuffix(origin, strings.TrimPrefix(allowed, "*")) {
			return origin
		}
	}
	if wildcard {
		return "*"
	}
	return ""
}
