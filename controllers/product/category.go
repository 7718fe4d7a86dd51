package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ai-software-engineering-group/tech-store-website/models"
	"github.com/ai-software-engineering-group/tech-store-website/services"
)

// GET /api/categories
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := services.ListCategories(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, models.ApiResponse{Status: true, Data: categories})
	}
}

// GET /api/admin/categories?sort_by=&page=
func GetCategoriesForAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := pageParam(c)
		categories, totalPages, err := services.ListCategoriesPaged(db, c.Query("sort_by"), page)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to fetch categories"})
			return
		}

		c.JSON(http.StatusOK, models.ApiResponse{Status: true, Data: gin.H{
			"categories":  categories,
			"currentPage": page,
			"totalPages":  totalPages,
		}})
	}
}

// GET /api/admin/categories/:id
func GetCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, err := services.GetCategory(db, c.Param("id"))
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				c.JSON(http.StatusOK, models.ApiResponse{Status: false, StatusCode: 404, Message: "Category not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to fetch category"})
			return
		}

		c.JSON(http.StatusOK, models.ApiResponse{Status: true, StatusCode: 200, Data: category})
	}
}

// POST /api/admin/categories
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.PostForm("id")
		name := c.PostForm("name")
		if id == "" || name == "" {
			c.JSON(http.StatusBadRequest, models.ApiResponse{Status: false, StatusCode: 400, Message: "id and name are required"})
			return
		}

		category := models.Category{ID: id, Name: name}

		if file, err := c.FormFile("image"); err == nil {
			imageURL, err := saveUploadedImage(c, file, "categories")
			if err != nil {
				c.JSON(http.StatusOK, models.ApiResponse{Status: false, Message: "Invalid category image"})
				return
			}
			category.Image = imageURL
		}

		created, err := services.CreateCategory(db, &category)
		if err != nil || !created {
			c.JSON(http.StatusOK, models.ApiResponse{Status: false, Message: "Failed to create category"})
			return
		}

		c.JSON(http.StatusOK, models.ApiResponse{Status: true, Message: "Category created", Data: category})
	}
}

// PUT /api/admin/categories/:id
func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		if name == "" {
			c.JSON(http.StatusBadRequest, models.ApiResponse{Status: false, StatusCode: 400, Message: "name is required"})
			return
		}

		category := models.Category{ID: c.Param("id"), Name: name}

		if file, err := c.FormFile("image"); err == nil {
			imageURL, err := saveUploadedImage(c, file, "categories")
			if err != nil {
				c.JSON(http.StatusOK, models.ApiResponse{Status: false, Message: "Invalid category image"})
				return
			}
			category.Image = imageURL
		}

		updated, err := services.UpdateCategory(db, &category)
		if err != nil {
			c.JSON(http.StatusOK, models.ApiResponse{Status: false, Message: "Failed to update category"})
			return
		}
		if !updated {
			c.JSON(http.StatusOK, models.ApiResponse{Status: false, StatusCode: 404, Message: "Category not found"})
			return
		}

		c.JSON(http.StatusOK, models.ApiResponse{Status: true, Message: "Category updated"})
	}
}

// DELETE /api/admin/categories/:id
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		if _, err := services.GetCategory(db, id); err != nil {
			if errors.Is(err, services.ErrNotFound) {
				c.JSON(http.StatusOK, models.ApiResponse{Status: false, StatusCode: 404, Message: "Category not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to delete category"})
			return
		}

		deleted, err := services.DeleteCategory(db, id)
		if err != nil || !deleted {
			c.JSON(http.StatusOK, models.ApiResponse{Status: false, Message: "Failed to delete category"})
			return
		}

		c.JSON(http.StatusOK, models.ApiResponse{Status: true, Message: "Category deleted"})
	}
}
