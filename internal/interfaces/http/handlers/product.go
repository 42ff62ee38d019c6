// internal/interfaces/http/handlers/product.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/your-org/farm-storefront/internal/domain/catalog"
)

// ProductHandler handles catalog endpoints
type ProductHandler struct {
	catalogService *catalog.Service
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalogService *catalog.Service) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

// GetProducts handles GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	term := strings.TrimSpace(c.Query("q"))

	products, err := h.catalogService.Find(c.Request.Context(), term)
	if err != nil {
		respondError(c, err, "Failed to retrieve products")
		return
	}

	respondOK(c, "Products retrieved successfully", gin.H{
		"products": products,
		"total":    len(products),
		"query":    term,
	})
}

// GetProduct handles GET /products/:slug
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.catalogService.Get(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err, "Failed to retrieve product")
		return
	}

	respondOK(c, "Product retrieved successfully", product)
}

// SearchProducts handles GET /products/search and returns a show/hide decision per card
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	term := c.Query("q")

	cards, err := h.catalogService.Search(c.Request.Context(), term)
	if err != nil {
		respondError(c, err, "Failed to search products")
		return
	}

	visible := 0
	for _, card := range cards {
		if card.Visible {
			visible++
		}
	}

	respondOK(c, "Search completed", gin.H{
		"query":   term,
		"cards":   cards,
		"visible": visible,
	})
}
