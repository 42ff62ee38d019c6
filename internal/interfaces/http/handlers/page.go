// internal/interfaces/http/handlers/page.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/farm-storefront/internal/domain/page"
)

// ScrollRequest carries the measurements of a smooth-scroll click
type ScrollRequest struct {
	ElementTop   float64 `json:"element_top"`
	PageYOffset  float64 `json:"page_y_offset"`
	HeaderHeight float64 `json:"header_height"`
}

// ChromeRequest applies one UI action to the overlay state
type ChromeRequest struct {
	State  page.Chrome `json:"state"`
	Action string      `json:"action" binding:"required"`
	Term   string      `json:"term"`
}

// PageHandler serves navigation helpers
type PageHandler struct{}

// NewPageHandler creates a new page handler
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// GetLinks handles GET /page/links
func (h *PageHandler) GetLinks(c *gin.Context) {
	respondOK(c, "Links retrieved successfully", page.Links())
}

// GetLink handles GET /page/links/:name
func (h *PageHandler) GetLink(c *gin.Context) {
	link, ok := page.FindLink(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Link not found"})
		return
	}
	respondOK(c, link.Notice, link)
}

// Scroll handles POST /page/scroll
func (h *PageHandler) Scroll(c *gin.Context) {
	var req ScrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	respondOK(c, "Scroll position computed", gin.H{
		"top":      page.ScrollOffset(req.ElementTop, req.PageYOffset, req.HeaderHeight),
		"behavior": "smooth",
	})
}

// Chrome handles POST /page/chrome
func (h *PageHandler) Chrome(c *gin.Context) {
	var req ChromeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	state := req.State
	switch req.Action {
	case "open-cart":
		state = state.OpenCart()
	case "close-cart":
		state = state.CloseCart()
	case "open-search":
		state = state.OpenSearch()
	case "close-search":
		state = state.CloseSearch()
	case "toggle-search":
		state = state.ToggleSearch()
	case "type":
		state = state.Type(req.Term)
	case "click-overlay":
		state = state.ClickOverlay()
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown action"})
		return
	}

	respondOK(c, "Page state updated", gin.H{
		"state":          state,
		"overlay_active": state.OverlayActive(),
	})
}
