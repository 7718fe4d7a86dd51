package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/ai-software-engineering-group/tech-store-website/controllers/cart"
	"github.com/ai-software-engineering-group/tech-store-website/middleware"
)

// SetupCartRoutes registers /api/cart/*. The token is optional here: an
// authenticated request works against the persisted cart, an anonymous one
// against the guest cookie cart.
func SetupCartRoutes(api *gin.RouterGroup, db *gorm.DB) {
	cartGroup := api.Group("/cart")
	cartGroup.Use(middleware.OptionalToken)
	{
		cartGroup.GET("/count", cartControllers.CountCartItems(db))
		cartGroup.GET("/all", cartControllers.GetCart(db))
		cartGroup.POST("", cartControllers.AddToCart(db))
		cartGroup.PUT("", cartControllers.UpdateQuantity(db))
		cartGroup.DELETE("", cartControllers.RemoveFromCart(db))
	}
}
