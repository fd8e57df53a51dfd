package routes

import (
	"github.com/gin-gonic/gin"

	"vitaltrack/internal/controllers"
)

func RegisterLeaderboardRoutes(router *gin.Engine, leaderboardController *controllers.LeaderboardController) {
	leaderboardRoutes := router.Group("/leaderboard")
	{
		leaderboardRoutes.GET("", leaderboardController.GetStandings)
		leaderboardRoutes.GET("/stream", leaderboardController.StreamStandings)
	}
}
