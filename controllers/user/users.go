package userControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ai-software-engineering-group/tech-store-website/models"
	"github.com/ai-software-engineering-group/tech-store-website/services"
)

type UpdateUserInput struct {
	FullName *string         `json:"full_name"`
	Phone    *string         `json:"phone"`
	Avatar   *string         `json:"avatar"`
	Address  *models.Address `json:"address"`
}

// GET /api/user
func GetUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := services.GetUserByID(db, c.GetString("user_id"))
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.ApiResponse{Status: false, StatusCode: 404, Message: "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to fetch user"})
			return
		}

		c.JSON(http.StatusOK, models.ApiResponse{Status: true, Data: user})
	}
}

// PUT /api/user
// Partial update: only the submitted fields change.
func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := services.GetUserByID(db, c.GetString("user_id"))
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.ApiResponse{Status: false, StatusCode: 404, Message: "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to fetch user"})
			return
		}

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ApiResponse{Status: false, StatusCode: 400, Errors: []string{err.Error()}})
			return
		}

		if input.FullName != nil {
			user.FullName = *input.FullName
		}
		if input.Phone != nil {
			user.Phone = *input.Phone
		}
		if input.Avatar != nil {
			user.Avatar = *input.Avatar
		}
		if input.Address != nil {
			user.Address = *input.Address
		}

		if err := db.Save(user).Error; err != nil {
			c.JSON(http.StatusOK, models.ApiResponse{Status: false, Message: "Failed to update user"})
			return
		}

		c.JSON(http.StatusOK, models.ApiResponse{Status: true, Data: user})
	}
}

// GET /api/admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.
			Select("id", "username", "email", "full_name", "phone", "avatar", "role_id", "is_active", "created_at").
			Order("created_at desc").
			Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to fetch users"})
			return
		}

		c.JSON(http.StatusOK, models.ApiResponse{Status: true, Data: users})
	}
}
