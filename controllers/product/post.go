package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ai-software-engineering-group/tech-store-website/models"
)

// POST /api/admin/products
// Creates a product from a multipart form with an optional image upload.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.PostForm("id")
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		if id == "" || name == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, models.ApiResponse{Status: false, StatusCode: 400, Message: "id, name and price are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ApiResponse{Status: false, StatusCode: 400, Message: "Invalid price"})
			return
		}

		product := models.Product{
			ID:          id,
			Name:        name,
			Description: c.PostForm("description"),
			Price:       price,
			CategoryID:  c.PostForm("category_id"),
			BrandID:     c.PostForm("brand_id"),
		}

		if salePriceStr := c.PostForm("sale_price"); salePriceStr != "" {
			salePrice, err := strconv.ParseFloat(salePriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, models.ApiResponse{Status: false, StatusCode: 400, Message: "Invalid sale_price"})
				return
			}
			product.SalePrice = &salePrice
		}

		if file, err := c.FormFile("image"); err == nil {
			imageURL, err := saveUploadedImage(c, file, "products")
			if err != nil {
				c.JSON(http.StatusOK, models.ApiResponse{Status: false, Message: "Invalid product image"})
				return
			}
			product.Image = imageURL
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusOK, models.ApiResponse{Status: false, Message: "Failed to create product"})
			return
		}

		c.JSON(http.StatusOK, models.ApiResponse{Status: true, Message: "Product created", Data: product})
	}
}
