package reviewControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ai-software-engineering-group/tech-store-website/models"
	"github.com/ai-software-engineering-group/tech-store-website/services"
)

type CreateReviewInput struct {
	ProductID    string   `json:"product_id" binding:"required"`
	Rating       int      `json:"rating" binding:"required,min=1,max=5"`
	Content      string   `json:"content"`
	ReviewerName string   `json:"reviewer_name"`
	Images       []string `json:"images"`
}

type ReactionInput struct {
	// "like" or "dislike"
	Reaction string `json:"reaction" binding:"required,oneof=like dislike"`
}

type ReplyInput struct {
	Content string `json:"content" binding:"required"`
}

// GET /api/reviews/:productId?page=&sort_by=
func GetReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("productId")

		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page <= 0 {
			page = 1
		}

		reviews, totalPages, totalReviews, err := services.GetReviews(db, productID, c.Query("sort_by"), page)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to fetch reviews"})
			return
		}

		c.JSON(http.StatusOK, models.ApiResponse{Status: true, Data: gin.H{
			"reviews":      reviews,
			"currentPage":  page,
			"totalPages":   totalPages,
			"totalReviews": totalReviews,
		}})
	}
}

// POST /api/reviews
//
// Authenticated reviewers are linked to their account; guests review under
// the name they submit.
func CreateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ApiResponse{Status: false, StatusCode: 400, Errors: []string{err.Error()}})
			return
		}

		if _, err := services.GetProductBasic(db, input.ProductID); err != nil {
			if errors.Is(err, services.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.ApiResponse{Status: false, StatusCode: 404, Message: "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to create review"})
			return
		}

		review := models.Review{
			ProductID:    input.ProductID,
			Rating:       input.Rating,
			Content:      input.Content,
			ReviewerName: input.ReviewerName,
		}
		for _, url := range input.Images {
			review.Images = append(review.Images, models.ReviewImage{URL: url})
		}

		if userID := c.GetString("user_id"); userID != "" {
			review.UserID = &userID
		} else if input.ReviewerName == "" {
			c.JSON(http.StatusBadRequest, models.ApiResponse{Status: false, StatusCode: 400, Message: "reviewer_name is required for guest reviews"})
			return
		}

		created, err := services.CreateReview(db, &review)
		if err != nil || !created {
			c.JSON(http.StatusOK, models.ApiResponse{Status: false, Message: "Failed to create review"})
			return
		}

		c.JSON(http.StatusOK, models.ApiResponse{Status: true, Message: "Review created", Data: review})
	}
}

// POST /api/reviews/:id/reaction
func ReactToReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviewID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ApiResponse{Status: false, StatusCode: 400, Message: "Invalid review id"})
			return
		}

		var input ReactionInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ApiResponse{Status: false, StatusCode: 400, Errors: []string{err.Error()}})
			return
		}

		updated, err := services.ReactToReview(db, uint(reviewID), input.Reaction == "like")
		if err != nil {
			c.JSON(http.StatusOK, models.ApiResponse{Status: false, Message: "Failed to update review"})
			return
		}
		if !updated {
			c.JSON(http.StatusNotFound, models.ApiResponse{Status: false, StatusCode: 404, Message: "Review not found"})
			return
		}

		c.JSON(http.StatusOK, models.ApiResponse{Status: true})
	}
}

// POST /api/admin/reviews/:id/reply
func ReplyToReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviewID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ApiResponse{Status: false, StatusCode: 400, Message: "Invalid review id"})
			return
		}

		var input ReplyInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ApiResponse{Status: false, StatusCode: 400, Errors: []string{err.Error()}})
			return
		}

		if _, err := services.GetReview(db, uint(reviewID)); err != nil {
			if errors.Is(err, services.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.ApiResponse{Status: false, StatusCode: 404, Message: "Review not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, models.ApiResponse{Status: false, Message: "Failed to reply"})
			return
		}

		replier := c.GetString("user_id")
		if replier == "" {
			replier = "admin"
		}
		reply := models.ReviewReply{
			ReviewID: uint(reviewID),
			UserID:   replier,
			Content:  input.Content,
		}

		created, err := services.CreateReviewReply(db, &reply)
		if err != nil || !created {
			c.JSON(http.StatusOK, models.ApiResponse{Status: false, Message: "Failed to reply"})
			return
		}

		c.JSON(http.StatusOK, models.ApiResponse{Status: true, Data: reply})
	}
}

// DELETE /api/admin/reviews/:id
func DeleteReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviewID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ApiResponse{Status: false, StatusCode: 400, Message: "Invalid review id"})
			return
		}

		deleted, err := services.DeleteReview(db, uint(reviewID))
		if err != nil {
			c.JSON(http.StatusOK, models.ApiResponse{Status: false, Message: "Failed to delete review"})
			return
		}
		if !deleted {
			c.JSON(http.StatusNotFound, models.ApiResponse{Status: false, StatusCode: 404, Message: "Review not found"})
			return
		}

		c.JSON(http.StatusOK, models.ApiResponse{Status: true, Message: "Review deleted"})
	}
}
