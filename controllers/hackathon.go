package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/monsieursam/hacka-builder-sub001/config"
	"github.com/monsieursam/hacka-builder-sub001/models"
)

// GetHackathons lists all hackathons, newest first.
func GetHackathons(c *gin.Context) {
	var hackathons []models.Hackathon
	if err := config.DB.Order("create_at DESC").Find(&hackathons).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch hackathons"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"hackathons": hackathons,
		"total":      len(hackathons),
	})
}

// GetHackathon returns one hackathon with its creator.
func GetHackathon(c *gin.Context) {
	var hackathon models.Hackathon
	err := config.DB.Preload("Creator").
		Where("hackathon_id = ?", c.Param("id")).
		First(&hackathon).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hackathon not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch hackathon"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"hackathon": hackathon,
	})
}

// GetHackathonTeams lists the hackathon's teams with members and profiles.
func GetHackathonTeams(c *gin.Context) {
	var teams []models.Team
	err := config.DB.Preload("Members.User").
		Where("hackathon_id = ?", c.Param("id")).
		Order("create_at ASC").
		Find(&teams).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch teams"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"teams":   teams,
		"total":   len(teams),
	})
}

// GetHackathonSubmissions lists the hackathon's submissions with their
// teams and reviews.
func GetHackathonSubmissions(c *gin.Context) {
	var submissions []models.Submission
	err := config.DB.
		Joins("JOIN teams ON teams.team_id = submissions.team_id").
		Where("teams.hackathon_id = ?", c.Param("id")).
		Preload("Team.Members.User").
		Preload("Reviews").
		Order("submissions.create_at ASC").
		Find(&submissions).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"submissions": submissions,
		"total":       len(submissions),
	})
}

// GetSubmission returns one submission with its team and reviews, reviews
// newest first.
func GetSubmission(c *gin.Context) {
	var submission models.Submission
	err := config.DB.Preload("Team.Members.User").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("reviews.created_at DESC").Preload("User")
		}).
		Where("submission_id = ?", c.Param("id")).
		First(&submission).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submission"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"submission": submission,
	})
}
