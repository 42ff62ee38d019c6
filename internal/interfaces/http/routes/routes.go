// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/farm-storefront/internal/domain/cart"
	"github.com/your-org/farm-storefront/internal/domain/catalog"
	"github.com/your-org/farm-storefront/internal/domain/delivery"
	"github.com/your-org/farm-storefront/internal/domain/enquiry"
	"github.com/your-org/farm-storefront/internal/interfaces/http/handlers"
	"github.com/your-org/farm-storefront/internal/interfaces/http/middleware"
	"github.com/your-org/farm-storefront/internal/pkg/session"
)

// Dependencies are the services the API routes call into
type Dependencies struct {
	Sessions      *session.Manager
	SessionHeader string
	Catalog       *catalog.Service
	Cart          *cart.Service
	Delivery      *delivery.Service
	Enquiry       *enquiry.Service
}

// SetupSessionRoutes sets up page-session routes
func SetupSessionRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	sessionHandler := handlers.NewSessionHandler(deps.Sessions, deps.SessionHeader)

	rg.POST("/session", sessionHandler.CreateSession)
}

// SetupProductRoutes sets up catalog routes
func SetupProductRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	productHandler := handlers.NewProductHandler(deps.Catalog)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/search", productHandler.SearchProducts)
		products.GET("/:slug", productHandler.GetProduct)
	}
}

// SetupCartRoutes sets up cart routes; every cart belongs to a page session
func SetupCartRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	cartHandler := handlers.NewCartHandler(deps.Cart)

	cartGroup := rg.Group("/cart")
	cartGroup.Use(middleware.RequireSession(deps.Sessions, deps.SessionHeader))
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.GET("/fragment", cartHandler.GetCartFragment)
		cartGroup.POST("/items", cartHandler.AddToCart)
		cartGroup.POST("/items/:id/increase", cartHandler.IncreaseItem)
		cartGroup.POST("/items/:id/decrease", cartHandler.DecreaseItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveItem)
		cartGroup.DELETE("", cartHandler.ClearCart)
		cartGroup.POST("/checkout", cartHandler.Checkout)
	}
}

// SetupDeliveryRoutes sets up delivery lookup routes
func SetupDeliveryRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	deliveryHandler := handlers.NewDeliveryHandler(deps.Delivery)

	rg.POST("/delivery/check", deliveryHandler.CheckPincode)
}

// SetupEnquiryRoutes sets up contact form routes
func SetupEnquiryRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	enquiryHandler := handlers.NewEnquiryHandler(deps.Enquiry)

	enquiries := rg.Group("/enquiries")
	enquiries.Use(middleware.OptionalSession(deps.Sessions, deps.SessionHeader))
	{
		enquiries.GET("/prefill/bulk-poultry", enquiryHandler.GetBulkPoultryPrefill)
		enquiries.GET("/prefill/:slug", enquiryHandler.GetProductPrefill)
		enquiries.POST("", enquiryHandler.SubmitEnquiry)
	}
}

// SetupPageRoutes sets up navigation helper routes
func SetupPageRoutes(rg *gin.RouterGroup) {
	pageHandler := handlers.NewPageHandler()

	pageGroup := rg.Group("/page")
	{
		pageGroup.GET("/links", pageHandler.GetLinks)
		pageGroup.GET("/links/:name", pageHandler.GetLink)
		pageGroup.POST("/scroll", pageHandler.Scroll)
		pageGroup.POST("/chrome", pageHandler.Chrome)
	}
}

// SetupRoutes sets up all API routes
func SetupRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	SetupSessionRoutes(rg, deps)
	SetupProductRoutes(rg, deps)
	SetupCartRoutes(rg, deps)
	SetupDeliveryRoutes(rg, deps)
	SetupEnquiryRoutes(rg, deps)
	SetupPageRoutes(rg)
}
