package routes

import (
	"github.com/gin-gonic/gin"

	"vitaltrack/internal/controllers"
)

func RegisterAchievementRoutes(router *gin.Engine, achievementController *controllers.AchievementController) {
	router.GET("/badge", achievementController.ListBadges)

	achievementRoutes := router.Group("/achievement")
	{
		achievementRoutes.GET("/user/:user_id", achievementController.ListAchievements)
		achievementRoutes.POST("/user/:user_id/evaluate", achievementController.EvaluateBadges)
	}
}
