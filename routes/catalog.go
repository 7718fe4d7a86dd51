package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	chatbotControllers "github.com/ai-software-engineering-group/tech-store-website/controllers/chatbot"
	productcontroller "github.com/ai-software-engineering-group/tech-store-website/controllers/product"
	reviewControllers "github.com/ai-software-engineering-group/tech-store-website/controllers/review"
	"github.com/ai-software-engineering-group/tech-store-website/middleware"
)

// SetupCatalogRoutes registers the public browsing endpoints: products,
// categories, reviews and the chatbot intent contract.
func SetupCatalogRoutes(api *gin.RouterGroup, db *gorm.DB) {
	productGroup := api.Group("/products")
	{
		productGroup.GET("", productcontroller.GetProducts(db))
		productGroup.GET("/search", productcontroller.SearchProducts(db))
		productGroup.GET("/category/:categoryId", productcontroller.GetProductsByCategory(db))
		productGroup.GET("/:id", productcontroller.GetProductByID(db))
		productGroup.GET("/:id/similar", productcontroller.GetSimilarProducts(db))
	}

	api.GET("/categories", productcontroller.GetAllCategories(db))

	reviewGroup := api.Group("/reviews")
	{
		reviewGroup.GET("/:productId", reviewControllers.GetReviews(db))
		reviewGroup.POST("", middleware.OptionalToken, reviewControllers.CreateReview(db))
		reviewGroup.POST("/:id/reaction", reviewControllers.ReactToReview(db))
	}

	api.GET("/chatbot/intents", chatbotControllers.GetIntents())
}
