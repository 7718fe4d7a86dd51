package services

import (
	"crypto/md5"
	"crypto/rand"
	"encoding/hex"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ai-software-engineering-group/tech-store-website/models"
)

// HashPassword mixes the per-user random key into the password before
// hashing, so equal passwords hash differently across users.
func HashPassword(password, randomKey string) string {
	sum := md5.Sum([]byte(password + randomKey))
	return hex.EncodeToString(sum[:])
}

// GenerateRandomKey returns a hex string of n random bytes.
func GenerateRandomKey(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return uuid.NewString()
	}
	return hex.EncodeToString(bytes)
}

// AuthenticateUser verifies a username/password pair and returns the user, or
// ErrNotFound when the pair does not match an active account.
func AuthenticateUser(db *gorm.DB, username, password string) (*models.User, error) {
	var user models.User
	err := db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !user.IsActive || user.PasswordHash != HashPassword(password, user.RandomKey) {
		return nil, ErrNotFound
	}
	return &user, nil
}

func GetUserByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func IsUsernameTaken(db *gorm.DB, username string) (bool, error) {
	var count int64
	err := db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func IsEmailTaken(db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// CreateUser registers a new customer account with the "user" role.
func CreateUser(db *gorm.DB, username, email, password string) (*models.User, error) {
	randomKey := GenerateRandomKey(10)
	user := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: HashPassword(password, randomKey),
		RandomKey:    randomKey,
		RoleID:       "user",
		IsActive:     true,
	}

	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
