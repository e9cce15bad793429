package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/monsieursam/hacka-builder-sub001/controllers"
	"github.com/monsieursam/hacka-builder-sub001/middleware"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/login", controllers.Login)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Hacka Builder API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)

			// Hackathons
			hackathons := protected.Group("/hackathons")
			{
				hackathons.GET("", controllers.GetHackathons)
				hackathons.GET("/:id", controllers.GetHackathon)
				hackathons.GET("/:id/teams", controllers.GetHackathonTeams)
				hackathons.GET("/:id/submissions", controllers.GetHackathonSubmissions)
				hackathons.GET("/:id/leaderboard", controllers.GetLeaderboard)

				// Judge-gated pathways
				hackathons.GET("/:id/judges", controllers.GetJudges)
				hackathons.POST("/:id/judges", controllers.AddJudge)
				hackathons.GET("/:id/submissions/:submission_id/analysis",
					middleware.RequireJudge(), controllers.AnalyzeSubmission)
			}

			// Submissions & reviews
			submissions := protected.Group("/submissions")
			{
				submissions.GET("/:id", controllers.GetSubmission)
				submissions.GET("/:id/reviews", controllers.GetSubmissionReviews)
				submissions.GET("/:id/reviews/mine", controllers.GetMyReview)
				submissions.POST("/:id/reviews", controllers.CreateReview)
			}

			reviews := protected.Group("/reviews")
			{
				reviews.PUT("/:id", controllers.UpdateReview)
				reviews.DELETE("/:id", controllers.DeleteReview)
			}
		}
	}
}
