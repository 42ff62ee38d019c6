// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/farm-storefront/internal/domain/cart"
)

// AddToCartRequest is the payload of an "Add to Cart" click
type AddToCartRequest struct {
	Product string `json:"product" binding:"required"`
}

// CartHandler handles cart endpoints
type CartHandler struct {
	cartService *cart.Service
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *cart.Service) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	respondOK(c, "Cart retrieved successfully", h.cartService.View(sessionID(c)))
}

// GetCartFragment handles GET /cart/fragment
func (h *CartHandler) GetCartFragment(c *gin.Context) {
	html, err := h.cartService.Fragment(sessionID(c))
	if err != nil {
		respondError(c, err, "Failed to render cart")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	result, err := h.cartService.Add(c.Request.Context(), sessionID(c), req.Product)
	if err != nil {
		respondError(c, err, "Failed to add item to cart")
		return
	}

	respondOK(c, result.Message, result)
}

// IncreaseItem handles POST /cart/items/:id/increase
func (h *CartHandler) IncreaseItem(c *gin.Context) {
	respondOK(c, "Cart updated", h.cartService.Increase(sessionID(c), c.Param("id")))
}

// DecreaseItem handles POST /cart/items/:id/decrease
func (h *CartHandler) DecreaseItem(c *gin.Context) {
	respondOK(c, "Cart updated", h.cartService.Decrease(sessionID(c), c.Param("id")))
}

// RemoveItem handles DELETE /cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	respondOK(c, "Item removed from cart", h.cartService.Remove(sessionID(c), c.Param("id")))
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	respondOK(c, "Cart cleared", h.cartService.Clear(sessionID(c)))
}

// Checkout handles POST /cart/checkout. Nothing is ordered; the page is
// sent to the contact form with the cart summarised into the message.
func (h *CartHandler) Checkout(c *gin.Context) {
	result, err := h.cartService.Checkout(sessionID(c))
	if err != nil {
		respondError(c, err, "Failed to check out")
		return
	}

	respondOK(c, result.Message, result)
}
