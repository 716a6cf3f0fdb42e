package handlers

import (
	"SiriaExpress/controllers"
	"SiriaExpress/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterUploadRoutes(router *gin.RouterGroup, uploadController *controllers.UploadController) {
	adminGroup := router.Group("/admin/images")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		adminGroup.POST("", uploadController.UploadImage)
	}
}
