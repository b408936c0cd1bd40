package app

import (
	"github.com/ankitjawla/snake-scholars-quest-sub000/docs"
	"github.com/ankitjawla/snake-scholars-quest-sub000/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		// Progress record
		progress := api.Group("/progress")
		{
			progress.GET("", c.progress.GetProgress)
			progress.POST("/lessons/:topicId/complete", c.progress.MarkLessonComplete)
			progress.POST("/quizzes", c.progress.RecordQuiz)
			progress.PUT("/mastery/:topicId", c.progress.UpdateMastery)
			progress.POST("/challenges", c.progress.RecordChallenge)
			progress.POST("/session/touch", c.progress.TouchSession)
			progress.POST("/minutes", c.progress.AddMinutes)
			progress.PUT("/chapters/:chapterId/topics/:topicId", c.progress.CompleteChapterTopic)
			progress.POST("/reset", c.progress.Reset)
		}

		// Rewards and cosmetics
		rewards := api.Group("/rewards")
		{
			rewards.POST("/stars", c.rewards.AwardStars)
			rewards.POST("/badges", c.rewards.RecordBadge)
			rewards.POST("/stickers", c.rewards.UpdateSticker)
			rewards.POST("/powerups", c.rewards.AwardPowerUp)
			rewards.POST("/powerups/:name/consume", c.rewards.ConsumePowerUp)
			rewards.POST("/skins/:id/unlock", c.rewards.UnlockSkin)
			rewards.PUT("/skins/active", c.rewards.SetActiveSkin)
		}
		api.PUT("/leaderboard/profile", c.rewards.SaveLeaderboardProfile)

		// Derived insights
		insights := api.Group("/insights")
		{
			insights.GET("/recommendations", c.insights.Recommendations)
			insights.GET("/streak", c.insights.Streak)
			insights.GET("/mistakes/:topicId", c.insights.Mistakes)
			insights.GET("/encouragement", c.insights.Encouragement)
			insights.GET("/weak-topics", c.insights.WeakTopics)
			insights.GET("/strong-topics", c.insights.StrongTopics)
			insights.GET("/reviews/due", c.insights.DueReviews)
			insights.POST("/reviews/:topicId", c.insights.ScheduleReview)
		}

		// Session log
		sessions := api.Group("/sessions")
		{
			sessions.GET("/stats", c.session.Stats)
			sessions.POST("/activities", c.session.LogActivity)
		}

		// Backups and reports
		export := api.Group("/export")
		{
			export.GET("/json", c.export.ExportJSON)
			export.GET("/csv", c.export.ExportCSV)
			export.GET("/xlsx", c.export.ExportXLSX)
		}
		api.POST("/import", c.export.Import)

		// Mini-game bests
		highscores := api.Group("/highscores")
		{
			highscores.GET("", c.highscore.GetAll)
			highscores.GET("/:game", c.highscore.Get)
			highscores.PUT("/:game", c.highscore.Submit)
		}
	}
}
