package main

import (
	"SiriaExpress/config/database"
	"SiriaExpress/config/environment"
	"SiriaExpress/middleware"
	v1 "SiriaExpress/routes/v1"
	"SiriaExpress/services"
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// Load environment variables
	if environment.GetAppEnv() != "production" {
		_ = godotenv.Load()
	}

	//firebase init
	database.InitFirebase()

	// Seed the default catalog on an empty database
	menuService := services.NewMenuService()
	if err := menuService.SeedMenu(context.Background()); err != nil {
		log.Println("⚠️  Failed to seed menu:", err)
	}

	// Start the catalog change feed
	go services.NewRealtimeService().WatchMenu(context.Background())

	// Setup Gin router
	r := gin.Default()

	r.Use(middleware.ErrorHandlerMiddleware())

	// CORS Middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Allow all origins
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Register all routes
	v1.RegisterRoutes(r)

	// Start server
	port := environment.GetPort()
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Server running on port", port)
	r.Run(":" + port)
}
