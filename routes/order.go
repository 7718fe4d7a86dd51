package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/ai-software-engineering-group/tech-store-website/controllers/order"
	"github.com/ai-software-engineering-group/tech-store-website/middleware"
)

// SetupOrderRoutes registers checkout and order tracking.
func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB) {
	orderGroup := api.Group("/order")
	{
		// Tracking is public: order id + recipient phone stand in for auth.
		orderGroup.GET("/:orderId", orderControllers.GetOrderHandler(db))

		orderGroup.GET("/check", middleware.ValidateToken, orderControllers.CheckQuantity(db))
		orderGroup.POST("", middleware.ValidateToken, orderControllers.PlaceOrderHandler(db))
	}
}
