package handlers

import (
	"SiriaExpress/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterAuthRoutes(router *gin.RouterGroup, authController *controllers.AuthController) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", authController.RegisterUser)
		authGroup.POST("/guest", authController.CreateGuestSession)
	}
}
