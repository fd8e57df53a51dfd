package routes

import (
	"github.com/gin-gonic/gin"

	"vitaltrack/internal/controllers"
)

func RegisterActivityRoutes(router *gin.Engine, activityController *controllers.ActivityController) {
	activityRoutes := router.Group("/activity")
	{
		activityRoutes.POST("/user/:user_id", activityController.CreateActivity)
		activityRoutes.GET("/user/:user_id", activityController.ListActivities)
		activityRoutes.GET("/:id", activityController.GetActivityByID)
		activityRoutes.PUT("/:id", activityController.UpdateActivity)
		activityRoutes.DELETE("/:id", activityController.DeleteActivity)
	}
}
