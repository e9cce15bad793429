package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/monsieursam/hacka-builder-sub001/config"
	"github.com/monsieursam/hacka-builder-sub001/services"
	"github.com/monsieursam/hacka-builder-sub001/utils"
)

type reviewRequest struct {
	// UserID is a convenience field; it must match the authenticated
	// identity, which is the only identity trusted for the mutation.
	UserID  string   `json:"user_id"`
	Content string   `json:"content" binding:"required"`
	Rating  *float64 `json:"rating" binding:"required"`
}

// actingUser resolves the authenticated user and rejects requests whose
// user_id convenience field names someone else. Runs before any store call.
func actingUser(c *gin.Context, requestedUserID string) (string, bool) {
	userIDValue, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return "", false
	}
	userID, ok := userIDValue.(string)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user context"})
		return "", false
	}
	if requestedUserID != "" && requestedUserID != userID {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Cannot act on behalf of another user"})
		return "", false
	}
	return userID, true
}

// CreateReview records a judge's evaluation of a submission.
func CreateReview(c *gin.Context) {
	submissionID := c.Param("id")

	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content and rating are required"})
		return
	}

	userID, ok := actingUser(c, req.UserID)
	if !ok {
		return
	}

	content := utils.SanitizeInput(req.Content)
	if content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content is required"})
		return
	}

	svc := services.NewReviewService(config.DB)
	review, views, err := svc.Create(submissionID, userID, content, *req.Rating)
	if err != nil {
		if errors.Is(err, services.ErrSubmissionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}

	services.NotifyViewsChanged(views)
	go services.NewNotificationService(config.DB).NotifyReviewPosted(review)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"review":  review,
	})
}

// UpdateReview rewrites the caller's own review.
func UpdateReview(c *gin.Context) {
	reviewID := c.Param("id")

	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content and rating are required"})
		return
	}

	userID, ok := actingUser(c, req.UserID)
	if !ok {
		return
	}

	content := utils.SanitizeInput(req.Content)
	if content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content is required"})
		return
	}

	svc := services.NewReviewService(config.DB)
	views, err := svc.Update(reviewID, userID, content, *req.Rating)
	if err != nil {
		if errors.Is(err, services.ErrReviewNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review"})
		return
	}

	services.NotifyViewsChanged(views)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Review updated",
	})
}

// DeleteReview removes the caller's own review.
func DeleteReview(c *gin.Context) {
	reviewID := c.Param("id")

	userID, ok := actingUser(c, c.Query("user_id"))
	if !ok {
		return
	}

	svc := services.NewReviewService(config.DB)
	views, err := svc.Delete(reviewID, userID)
	if err != nil {
		if errors.Is(err, services.ErrReviewNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
		return
	}

	services.NotifyViewsChanged(views)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Review deleted",
	})
}

// GetMyReview returns the caller's review of the submission, if any. The
// judging UI uses the answer to choose between create and edit.
func GetMyReview(c *gin.Context) {
	submissionID := c.Param("id")

	userID, ok := actingUser(c, "")
	if !ok {
		return
	}

	review, err := services.NewReviewService(config.DB).GetByUserAndSubmission(userID, submissionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch review"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"review":  review,
	})
}

// GetSubmissionReviews lists a submission's reviews, newest first.
func GetSubmissionReviews(c *gin.Context) {
	submissionID := c.Param("id")

	reviews, err := services.NewReviewService(config.DB).ListBySubmission(submissionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"reviews": reviews,
		"total":   len(reviews),
	})
}
