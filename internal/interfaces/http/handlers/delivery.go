// internal/interfaces/http/handlers/delivery.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/farm-storefront/internal/domain/delivery"
)

// DeliveryCheckRequest carries the pincode as typed
type DeliveryCheckRequest struct {
	Pincode string `json:"pincode"`
}

// DeliveryHandler handles delivery lookups
type DeliveryHandler struct {
	deliveryService *delivery.Service
}

// NewDeliveryHandler creates a new delivery handler
func NewDeliveryHandler(deliveryService *delivery.Service) *DeliveryHandler {
	return &DeliveryHandler{deliveryService: deliveryService}
}

// CheckPincode handles POST /delivery/check. A malformed pincode is a
// normal lookup result, not a request error.
func (h *DeliveryHandler) CheckPincode(c *gin.Context) {
	var req DeliveryCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	result := h.deliveryService.Check(c.Request.Context(), req.Pincode)
	respondOK(c, result.Message, result)
}
