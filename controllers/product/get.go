package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ai-software-engineering-group/tech-store-website/models"
	"github.com/ai-software-engineering-group/tech-store-website/services"
)

// GET /api/products/:id
// Full product detail: category, brand, per-warehouse stock.
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, models.ApiResponse{Status: false, StatusCode: 400, Message: "Product id is required"})
			return
		}

		product, err := services.GetProduct(db, id)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.ApiResponse{Status: false, StatusCode: 404, Message: "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to retrieve product"})
			return
		}

		totalQty, err := services.GetTotalQuantity(db, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to retrieve product"})
			return
		}

		c.JSON(http.StatusOK, models.ApiResponse{Status: true, Data: gin.H{
			"product":  product,
			"totalQty": totalQty,
		}})
	}
}

// GET /api/products/:id/similar
func GetSimilarProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		product, err := services.GetProductBasic(db, id)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.ApiResponse{Status: false, StatusCode: 404, Message: "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to retrieve products"})
			return
		}

		similar, err := services.GetSimilarProducts(db, product.CategoryID, product.ID, 8)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to retrieve products"})
			return
		}

		c.JSON(http.StatusOK, models.ApiResponse{Status: true, Data: similar})
	}
}
