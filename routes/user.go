package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	userControllers "github.com/ai-software-engineering-group/tech-store-website/controllers/user"
	"github.com/ai-software-engineering-group/tech-store-website/middleware"
)

// SetupUserRoutes registers the JWT-protected /api/user endpoints.
func SetupUserRoutes(api *gin.RouterGroup, db *gorm.DB) {
	userGroup := api.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		userGroup.GET("", userControllers.GetUser(db))
		userGroup.PUT("", userControllers.UpdateUser(db))
	}
}
