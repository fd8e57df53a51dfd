package routes

import (
	"github.com/gin-gonic/gin"

	"vitaltrack/internal/controllers"
)

func RegisterDashboardRoutes(router *gin.Engine, dashboardController *controllers.DashboardController) {
	dashboardRoutes := router.Group("/dashboard")
	{
		dashboardRoutes.GET("/user/:user_id", dashboardController.GetSummary)
		dashboardRoutes.GET("/user/:user_id/stats", dashboardController.GetStats)
		dashboardRoutes.GET("/user/:user_id/stream", dashboardController.StreamSummary)
	}
}
