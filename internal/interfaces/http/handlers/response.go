// internal/interfaces/http/handlers/response.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/farm-storefront/internal/domain/cart"
	"github.com/your-org/farm-storefront/internal/domain/catalog"
	"github.com/your-org/farm-storefront/internal/interfaces/http/middleware"
)

func respondOK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data":    data,
	})
}

// respondError maps domain errors to HTTP status codes
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.Is(err, cart.ErrEnquiryOnly):
		c.JSON(http.StatusConflict, gin.H{"error": "This product is available on enquiry only"})
	case errors.Is(err, cart.ErrCartEmpty):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty. Please add items before checking out."})
	case errors.Is(err, cart.ErrSessionRequired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session token required"})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

func sessionID(c *gin.Context) string {
	id, _ := middleware.GetSessionIDFromContext(c)
	return id
}
