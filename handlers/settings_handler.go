package handlers

import (
	"SiriaExpress/controllers"
	"SiriaExpress/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterSettingsRoutes(router *gin.RouterGroup, settingsController *controllers.SettingsController) {
	settingsGroup := router.Group("/settings")
	{
		settingsGroup.GET("", settingsController.GetSettings)
	}

	adminGroup := router.Group("/admin/settings")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		adminGroup.PUT("", settingsController.UpdateSettings)
	}
}
