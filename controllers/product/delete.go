package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ai-software-engineering-group/tech-store-website/models"
)

// DELETE /api/admin/products/:id
// Soft-deletes by default; ?permanent=true removes the row and its
// warehouse stock entries for good.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, models.ApiResponse{Status: false, StatusCode: 400, Message: "Product id is required"})
			return
		}

		if c.Query("permanent") == "true" {
			err := db.Transaction(func(tx *gorm.DB) error {
				if err := tx.Where("product_id = ?", id).Delete(&models.WarehouseProduct{}).Error; err != nil {
					return err
				}
				return tx.Unscoped().Delete(&models.Product{}, "id = ?", id).Error
			})
			if err != nil {
				c.JSON(http.StatusOK, models.ApiResponse{Status: false, Message: "Failed to delete product"})
				return
			}
			c.JSON(http.StatusOK, models.ApiResponse{Status: true, Message: "Product permanently deleted"})
			return
		}

		result := db.Delete(&models.Product{}, "id = ?", id)
		if result.Error != nil {
			c.JSON(http.StatusOK, models.ApiResponse{Status: false, Message: "Failed to delete product"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusOK, models.ApiResponse{Status: false, StatusCode: 404, Message: "Product not found"})
			return
		}

		c.JSON(http.StatusOK, models.ApiResponse{Status: true, Message: "Product deleted"})
	}
}
