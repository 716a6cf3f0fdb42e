package handlers

import (
	"SiriaExpress/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRealtimeRoutes(router *gin.RouterGroup, realtimeController *controllers.RealtimeController) {
	realtimeGroup := router.Group("/realtime")
	{
		realtimeGroup.GET("/menu", realtimeController.MenuFeed)
	}
}
