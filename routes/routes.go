package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")

	// Public auth routes (no middleware)
	SetupAuthRoutes(api, db)

	// Cart routes (identity optional: persisted cart vs guest cookie)
	SetupCartRoutes(api, db)

	// Catalog, reviews and chatbot (public)
	SetupCatalogRoutes(api, db)

	// User profile and checkout (JWT-protected)
	SetupUserRoutes(api, db)
	SetupOrderRoutes(api, db)

	// Admin back-office (API-key-protected)
	SetupAdminRoutes(api, db)
}
