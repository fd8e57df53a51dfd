package routes

import (
	"github.com/gin-gonic/gin"

	"vitaltrack/internal/controllers"
)

func RegisterUserRoutes(router *gin.Engine, userController *controllers.UserController) {
	userRoutes := router.Group("/user")
	{
		userRoutes.GET("/me", userController.GetCurrentUser)
		userRoutes.GET("/:id", userController.GetUserByID)
		userRoutes.PATCH("/:id", userController.PatchUser)
	}
}
