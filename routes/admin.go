package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminController "github.com/ai-software-engineering-group/tech-store-website/controllers/admin"
	cartControllers "github.com/ai-software-engineering-group/tech-store-website/controllers/cart"
	orderControllers "github.com/ai-software-engineering-group/tech-store-website/controllers/order"
	productcontroller "github.com/ai-software-engineering-group/tech-store-website/controllers/product"
	reviewControllers "github.com/ai-software-engineering-group/tech-store-website/controllers/review"
	userControllers "github.com/ai-software-engineering-group/tech-store-website/controllers/user"
	"github.com/ai-software-engineering-group/tech-store-website/middleware"
)

// SetupAdminRoutes registers the /api/admin/* back-office, behind the API key.
func SetupAdminRoutes(api *gin.RouterGroup, db *gorm.DB) {
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		adminGroup.GET("/users", userControllers.GetAllUsers(db))
		adminGroup.GET("/user-cart/:user_id", cartControllers.GetUserCartForAdmin(db))

		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.GET("", productcontroller.GetCategoriesForAdmin(db))
			categoryAdmin.GET("/:id", productcontroller.GetCategory(db))
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
		}

		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.GET("/ws", orderControllers.OrderWebSocketHandler)
			orderAdmin.PUT("/:orderId/status", orderControllers.UpdateOrderStatusHandler(db))
		}

		reviewAdmin := adminGroup.Group("/reviews")
		{
			reviewAdmin.POST("/:id/reply", reviewControllers.ReplyToReview(db))
			reviewAdmin.DELETE("/:id", reviewControllers.DeleteReview(db))
		}

		bannerAdmin := adminGroup.Group("/banners")
		{
			bannerAdmin.POST("", adminController.UploadBanner(db))
			bannerAdmin.GET("", adminController.GetBanners(db))
			bannerAdmin.DELETE("/:id", adminController.DeleteBanner(db))
		}
	}
}
