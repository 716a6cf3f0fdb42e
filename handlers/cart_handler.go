package handlers

import (
	"SiriaExpress/controllers"
	"SiriaExpress/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterCartRoutes(router *gin.RouterGroup, cartController *controllers.CartController) {
	cartGroup := router.Group("/cart")
	cartGroup.Use(middleware.AuthMiddleware())
	{
		cartGroup.GET("", cartController.GetCart)
		cartGroup.POST("", cartController.AddItem)
		cartGroup.PUT("/:id/quantity", cartController.UpdateQuantity)
		cartGroup.DELETE("/:id", cartController.RemoveItem)
		cartGroup.DELETE("", cartController.ClearCart)
	}
}
