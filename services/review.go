package services

import (
	"errors"
	"math"

	"gorm.io/gorm"

	"github.com/ai-software-engineering-group/tech-store-website/models"
)

const reviewsPerPage = 5

// GetReviews returns one page of a product's reviews plus the total page and
// review counts. sortBy: "oldest", "rating-high", "rating-low", default newest.
func GetReviews(db *gorm.DB, productID, sortBy string, page int) ([]models.Review, int, int, error) {
	if page <= 0 {
		page = 1
	}

	var count int64
	if err := db.Model(&models.Review{}).Where("product_id = ?", productID).Count(&count).Error; err != nil {
		return nil, 0, 0, err
	}
	totalPages := int(math.Ceil(float64(count) / float64(reviewsPerPage)))

	var reviews []models.Review
	err := db.Where("product_id = ?", productID).
		Preload("User").
		Preload("Images").
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Replies.User").
		Order(reviewOrder(sortBy)).
		Offset((page - 1) * reviewsPerPage).
		Limit(reviewsPerPage).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, 0, err
	}
	return reviews, totalPages, int(count), nil
}

// GetReview fetches one review with its reviewer and replies.
func GetReview(db *gorm.DB, reviewID uint) (*models.Review, error) {
	var review models.Review
	err := db.Preload("User").Preload("Images").Preload("Replies.User").
		First(&review, reviewID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

func CreateReview(db *gorm.DB, review *models.Review) (bool, error) {
	if err := db.Create(review).Error; err != nil {
		return false, err
	}
	return true, nil
}

// ReactToReview bumps the like or dislike counter on a review.
func ReactToReview(db *gorm.DB, reviewID uint, like bool) (bool, error) {
	column := "total_dislike"
	if like {
		column = "total_like"
	}
	result := db.Model(&models.Review{}).
		Where("id = ?", reviewID).
		Update(column, gorm.Expr(column+" + 1"))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func CreateReviewReply(db *gorm.DB, reply *models.ReviewReply) (bool, error) {
	if err := db.Create(reply).Error; err != nil {
		return false, err
	}
	return true, nil
}

func DeleteReview(db *gorm.DB, reviewID uint) (bool, error) {
	result := db.Delete(&models.Review{}, reviewID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func reviewOrder(sortBy string) string {
	switch sortBy {
	case "oldest":
		return "created_at ASC"
	case "rating-high":
		return "rating DESC"
	case "rating-low":
		return "rating ASC"
	default:
		return "created_at DESC"
	}
}
