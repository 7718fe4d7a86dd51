package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ai-software-engineering-group/tech-store-website/models"
	"github.com/ai-software-engineering-group/tech-store-website/services"
)

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page <= 0 {
		return 1
	}
	return page
}

// GET /api/products?page=&sort=&filter_type=&filter_value=
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, totalPages, err := services.ListProducts(
			db, pageParam(c), c.Query("sort"), c.Query("filter_type"), c.Query("filter_value"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, models.ApiResponse{Status: true, Data: gin.H{
			"products":    products,
			"currentPage": pageParam(c),
			"totalPages":  totalPages,
		}})
	}
}

// GET /api/products/search?q=&page=&sort=
func SearchProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := c.Query("q")
		if q == "" {
			c.JSON(http.StatusBadRequest, models.ApiResponse{Status: false, StatusCode: 400, Message: "Search query is required"})
			return
		}

		products, totalPages, err := services.SearchProducts(db, q, pageParam(c), c.Query("sort"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to search products"})
			return
		}

		c.JSON(http.StatusOK, models.ApiResponse{Status: true, Data: gin.H{
			"products":    products,
			"currentPage": pageParam(c),
			"totalPages":  totalPages,
		}})
	}
}

// GET /api/products/category/:categoryId?page=&sort=
func GetProductsByCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID := c.Param("categoryId")

		products, totalPages, err := services.GetProductsByCategory(db, categoryID, pageParam(c), c.Query("sort"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, models.ApiResponse{Status: true, Data: gin.H{
			"products":    products,
			"currentPage": pageParam(c),
			"totalPages":  totalPages,
		}})
	}
}
