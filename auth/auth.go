package auth

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/ai-software-engineering-group/tech-store-website/models"
	"github.com/ai-software-engineering-group/tech-store-website/services"
)

type RegisterInput struct {
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ApiResponse{
				Status: false, StatusCode: 400, Errors: []string{err.Error()},
			})
			return
		}

		if input.Password != input.ConfirmPassword {
			c.JSON(http.StatusOK, models.ApiResponse{Status: false, Message: "Passwords do not match"})
			return
		}

		if taken, err := services.IsUsernameTaken(db, input.Username); err != nil {
			c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to create account"})
			return
		} else if taken {
			c.JSON(http.StatusOK, models.ApiResponse{Status: false, Message: "This username is already taken"})
			return
		}

		if taken, err := services.IsEmailTaken(db, input.Email); err != nil {
			c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to create account"})
			return
		} else if taken {
			c.JSON(http.StatusOK, models.ApiResponse{Status: false, Message: "This email is already registered"})
			return
		}

		user, err := services.CreateUser(db, input.Username, input.Email, input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to create account"})
			return
		}

		c.JSON(http.StatusOK, models.ApiResponse{Status: true, Data: gin.H{"user_id": user.ID}})
	}
}

// POST /api/auth/login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ApiResponse{
				Status: false, StatusCode: 400, Errors: []string{err.Error()},
			})
			return
		}

		user, err := services.AuthenticateUser(db, input.Username, input.Password)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				c.JSON(http.StatusOK, models.ApiResponse{Status: false, Message: "Incorrect username or password"})
				return
			}
			c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to log in"})
			return
		}

		token, err := IssueToken(user.ID, user.RoleID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, models.ApiResponse{Status: true, Data: gin.H{
			"token":   token,
			"user_id": user.ID,
			"name":    user.FullName,
		}})
	}
}

// IssueToken signs a 24h HS256 token carrying the user id and role.
func IssueToken(userID, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
