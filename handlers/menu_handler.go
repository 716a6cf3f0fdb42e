package handlers

import (
	"SiriaExpress/controllers"
	"SiriaExpress/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterMenuRoutes(router *gin.RouterGroup, menuController *controllers.MenuController) {
	menuGroup := router.Group("/menu")
	{
		menuGroup.GET("/categories", menuController.GetCategories)
		menuGroup.GET("/items", menuController.GetMenuItems)
		menuGroup.GET("/items/:id", menuController.GetMenuItemByID)
	}

	adminGroup := router.Group("/admin/menu")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		adminGroup.POST("/items", menuController.CreateMenuItem)
		adminGroup.PUT("/items/:id", menuController.UpdateMenuItem)
		adminGroup.DELETE("/items/:id", menuController.DeleteMenuItem)

		adminGroup.POST("/categories", menuController.CreateCategory)
		adminGroup.PUT("/categories/:id", menuController.UpdateCategory)
		adminGroup.DELETE("/categories/:id", menuController.DeleteCategory)
	}
}
