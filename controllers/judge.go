package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/monsieursam/hacka-builder-sub001/config"
	"github.com/monsieursam/hacka-builder-sub001/models"
	"github.com/monsieursam/hacka-builder-sub001/services"
)

// AddJudge registers a user as a judge for the hackathon. Idempotent on
// the (user, hackathon) pair. The hackathon's creator may always add
// judges, which bootstraps an empty registry; after that, existing judges
// may add more.
func AddJudge(c *gin.Context) {
	hackathonID := c.Param("id")

	var req struct {
		UserID string `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	userID, ok := actingUser(c, "")
	if !ok {
		return
	}

	var hackathon models.Hackathon
	if err := config.DB.Where("hackathon_id = ?", hackathonID).First(&hackathon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hackathon not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch hackathon"})
		return
	}

	svc := services.NewJudgeService(config.DB)
	if hackathon.CreatedBy != userID {
		isJudge, err := svc.IsJudge(userID, hackathonID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check judge permissions"})
			return
		}
		if !isJudge {
			c.JSON(http.StatusForbidden, gin.H{"error": "Only the hackathon creator or its judges can add judges"})
			return
		}
	}

	judge, err := svc.Add(req.UserID, hackathonID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add judge"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"judge":   judge,
	})
}

// GetJudges lists the hackathon's judges.
func GetJudges(c *gin.Context) {
	judges, err := services.NewJudgeService(config.DB).ListByHackathon(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch judges"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"judges":  judges,
		"total":   len(judges),
	})
}

// AnalyzeSubmission assembles the review digest the external analysis
// collaborator works from. Judge-gated via middleware.RequireJudge.
func AnalyzeSubmission(c *gin.Context) {
	submissionID := c.Param("submission_id")

	reviews, err := services.NewReviewService(config.DB).ListBySubmission(submissionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	var total, min, max float64
	comments := make([]string, 0, len(reviews))
	for i, review := range reviews {
		total += review.Rating
		if i == 0 || review.Rating < min {
			min = review.Rating
		}
		if i == 0 || review.Rating > max {
			max = review.Rating
		}
		comments = append(comments, review.Content)
	}

	average := 0.0
	if len(reviews) > 0 {
		average = total / float64(len(reviews))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"digest": gin.H{
			"submission_id":  submissionID,
			"review_count":   len(reviews),
			"average_rating": average,
			"min_rating":     min,
			"max_rating":     max,
			"comments":       comments,
		},
	})
}
