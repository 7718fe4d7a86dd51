package services

import (
	"errors"
	"math"

	"gorm.io/gorm"

	"github.com/ai-software-engineering-group/tech-store-website/models"
)

const adminCategoriesPageSize = 30

// ListCategories returns every category, for the storefront navigation.
func ListCategories(db *gorm.DB) ([]models.Category, error) {
	var categories []models.Category
	err := db.Order("name ASC").Find(&categories).Error
	return categories, err
}

// ListCategoriesPaged returns one admin page of categories with their
// products preloaded.
func ListCategoriesPaged(db *gorm.DB, sortBy string, page int) ([]models.Category, int, error) {
	if page <= 0 {
		page = 1
	}

	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	totalPages := int(math.Ceil(float64(count) / float64(adminCategoriesPageSize)))

	order := "id ASC"
	if sortBy == "name" {
		order = "name ASC"
	}

	var categories []models.Category
	err := db.Preload("Products").
		Order(order).
		Offset((page - 1) * adminCategoriesPageSize).
		Limit(adminCategoriesPageSize).
		Find(&categories).Error
	if err != nil {
		return nil, 0, err
	}
	return categories, totalPages, nil
}

func GetCategory(db *gorm.DB, id string) (*models.Category, error) {
	var category models.Category
	err := db.First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

func CreateCategory(db *gorm.DB, category *models.Category) (bool, error) {
	if err := db.Create(category).Error; err != nil {
		return false, err
	}
	return true, nil
}

func UpdateCategory(db *gorm.DB, category *models.Category) (bool, error) {
	updates := map[string]any{"name": category.Name}
	if category.Image != "" {
		updates["image"] = category.Image
	}
	result := db.Model(&models.Category{}).Where("id = ?", category.ID).Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func DeleteCategory(db *gorm.DB, id string) (bool, error) {
	result := db.Delete(&models.Category{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
