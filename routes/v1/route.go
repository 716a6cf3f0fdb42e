package route

import (
	"SiriaExpress/controllers"
	"SiriaExpress/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes initializes all routes
func RegisterRoutes(router *gin.Engine) {
	authController := controllers.NewAuthController()
	menuController := controllers.NewMenuController()
	cartController := controllers.NewCartController()
	orderController := controllers.NewOrderController()
	settingsController := controllers.NewSettingsController()
	userController := controllers.NewUserController()
	uploadController := controllers.NewUploadController()
	realtimeController := controllers.NewRealtimeController()

	// Register the routes
	v1Routes := router.Group("/v1")
	{
		handlers.RegisterAuthRoutes(v1Routes, authController)
		handlers.RegisterMenuRoutes(v1Routes, menuController)
		handlers.RegisterCartRoutes(v1Routes, cartController)
		handlers.RegisterOrderRoutes(v1Routes, orderController)
		handlers.RegisterSettingsRoutes(v1Routes, settingsController)
		handlers.RegisterUserRoutes(v1Routes, userController)
		handlers.RegisterUploadRoutes(v1Routes, uploadController)
		handlers.RegisterRealtimeRoutes(v1Routes, realtimeController)
	}
}
