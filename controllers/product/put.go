package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ai-software-engineering-group/tech-store-website/models"
)

// PUT /api/admin/products/:id
// Partial update from a multipart form; only the submitted fields change.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, models.ApiResponse{Status: false, StatusCode: 404, Message: "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to fetch product"})
			return
		}

		updates := map[string]any{}
		if name := c.PostForm("name"); name != "" {
			updates["name"] = name
		}
		if description := c.PostForm("description"); description != "" {
			updates["description"] = description
		}
		if categoryID := c.PostForm("category_id"); categoryID != "" {
			updates["category_id"] = categoryID
		}
		if brandID := c.PostForm("brand_id"); brandID != "" {
			updates["brand_id"] = brandID
		}
		if priceStr := c.PostForm("price"); priceStr != "" {
			price, err := strconv.ParseFloat(priceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, models.ApiResponse{Status: false, StatusCode: 400, Message: "Invalid price"})
				return
			}
			updates["price"] = price
		}
		if salePriceStr := c.PostForm("sale_price"); salePriceStr != "" {
			salePrice, err := strconv.ParseFloat(salePriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, models.ApiResponse{Status: false, StatusCode: 400, Message: "Invalid sale_price"})
				return
			}
			updates["sale_price"] = salePrice
		}

		if file, err := c.FormFile("image"); err == nil {
			imageURL, err := saveUploadedImage(c, file, "products")
			if err != nil {
				c.JSON(http.StatusOK, models.ApiResponse{Status: false, Message: "Invalid product image"})
				return
			}
			updates["image"] = imageURL
		}

		if len(updates) == 0 {
			c.JSON(http.StatusOK, models.ApiResponse{Status: true, Data: product})
			return
		}

		if err := db.Model(&product).Updates(updates).Error; err != nil {
			c.JSON(http.StatusOK, models.ApiResponse{Status: false, Message: "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, models.ApiResponse{Status: true, Message: "Product updated", Data: product})
	}
}
