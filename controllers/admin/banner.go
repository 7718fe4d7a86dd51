package adminController

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ai-software-engineering-group/tech-store-website/models"
)

func bannerUploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return filepath.Join(dir, "banners")
	}
	return "./uploads/banners"
}

// POST /api/admin/banners
// Saves the image locally and records its public URL.
func UploadBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ApiResponse{Status: false, StatusCode: 400, Message: "No image uploaded"})
			return
		}

		if err := os.MkdirAll(bannerUploadDir(), os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to create upload folder"})
			return
		}

		ext := filepath.Ext(file.Filename)
		base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
		base = strings.ReplaceAll(base, " ", "_")
		filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)

		if err := c.SaveUploadedFile(file, filepath.Join(bannerUploadDir(), filename)); err != nil {
			c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to save image"})
			return
		}

		banner := models.Banner{
			Title:    c.PostForm("title"),
			ImageURL: fmt.Sprintf("/uploads/banners/%s", filename),
		}
		if err := db.Create(&banner).Error; err != nil {
			c.JSON(http.StatusOK, models.ApiResponse{Status: false, Message: "Failed to save banner"})
			return
		}

		c.JSON(http.StatusOK, models.ApiResponse{Status: true, Data: banner})
	}
}

// GET /api/admin/banners
func GetBanners(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banners []models.Banner
		if err := db.Order("created_at DESC").Find(&banners).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to fetch banners"})
			return
		}
		c.JSON(http.StatusOK, models.ApiResponse{Status: true, Data: banners})
	}
}

// DELETE /api/admin/banners/:id
func DeleteBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ApiResponse{Status: false, StatusCode: 400, Message: "Invalid banner id"})
			return
		}

		result := db.Delete(&models.Banner{}, uint(id))
		if result.Error != nil {
			c.JSON(http.StatusOK, models.ApiResponse{Status: false, Message: "Failed to delete banner"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, models.ApiResponse{Status: false, StatusCode: 404, Message: "Banner not found"})
			return
		}

		c.JSON(http.StatusOK, models.ApiResponse{Status: true, Message: "Banner deleted"})
	}
}
