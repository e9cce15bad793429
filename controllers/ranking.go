package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/monsieursam/hacka-builder-sub001/config"
	"github.com/monsieursam/hacka-builder-sub001/services"
)

// GetLeaderboard computes the hackathon's live ranking. No caching: the
// result always reflects the review state at the time of the call.
func GetLeaderboard(c *gin.Context) {
	hackathonID := c.Param("id")

	leaderboard, err := services.NewRankingService(config.DB).Leaderboard(hackathonID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute leaderboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"leaderboard": leaderboard,
		"total":       len(leaderboard),
	})
}
