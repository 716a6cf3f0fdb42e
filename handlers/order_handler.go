package handlers

import (
	"SiriaExpress/controllers"
	"SiriaExpress/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterOrderRoutes(router *gin.RouterGroup, orderController *controllers.OrderController) {
	orderGroup := router.Group("/orders")
	orderGroup.Use(middleware.AuthMiddleware())
	{
		orderGroup.POST("/checkout", orderController.Checkout)
		orderGroup.GET("", orderController.GetOrders)
		orderGroup.GET("/:id", orderController.GetOrderByID)
		orderGroup.GET("/:id/status", orderController.GetOrderStatus)
	}

	adminGroup := router.Group("/admin/orders")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		adminGroup.GET("", orderController.GetAllOrders)
		adminGroup.PUT("/:id/status", orderController.AdvanceOrderStatus)
	}
}
