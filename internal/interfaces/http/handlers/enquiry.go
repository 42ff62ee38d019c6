// internal/interfaces/http/handlers/enquiry.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/farm-storefront/internal/domain/enquiry"
)

// EnquiryHandler handles the contact form
type EnquiryHandler struct {
	enquiryService *enquiry.Service
}

// NewEnquiryHandler creates a new enquiry handler
func NewEnquiryHandler(enquiryService *enquiry.Service) *EnquiryHandler {
	return &EnquiryHandler{enquiryService: enquiryService}
}

// GetProductPrefill handles GET /enquiries/prefill/:slug
func (h *EnquiryHandler) GetProductPrefill(c *gin.Context) {
	prefill, err := h.enquiryService.ProductPrefill(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err, "Failed to prepare enquiry")
		return
	}

	respondOK(c, prefill.Notice, prefill)
}

// GetBulkPoultryPrefill handles GET /enquiries/prefill/bulk-poultry
func (h *EnquiryHandler) GetBulkPoultryPrefill(c *gin.Context) {
	prefill := enquiry.BulkPoultryPrefill()
	respondOK(c, "Enquiry prepared", prefill)
}

// SubmitEnquiry handles POST /enquiries
func (h *EnquiryHandler) SubmitEnquiry(c *gin.Context) {
	var req enquiry.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	result, err := h.enquiryService.Submit(c.Request.Context(), sessionID(c), &req)
	if err != nil {
		respondError(c, err, "Failed to submit enquiry")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": result.Message,
		"data":    result,
	})
}
