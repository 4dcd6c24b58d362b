package main

import (
	"log"

	"github.com/Q-Tify/inno-trackify/internal/config"
	"github.com/Q-Tify/inno-trackify/internal/database"
	"github.com/Q-Tify/inno-trackify/internal/handlers"
	"github.com/Q-Tify/inno-trackify/internal/middleware"
	"github.com/Q-Tify/inno-trackify/internal/repository"
	"github.com/Q-Tify/inno-trackify/internal/services"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations and seed the activity type catalog
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.Seed(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.GetDB())
	typeRepo := repository.NewActivityTypeRepository(database.GetDB())
	activityRepo := repository.NewActivityRepository(database.GetDB())

	// Initialize services
	tokenService := services.NewTokenService(cfg)
	authService := services.NewAuthService(userRepo)
	activityService := services.NewActivityService(activityRepo, userRepo, typeRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, tokenService)
	userHandler := handlers.NewUserHandler(authService)
	activityHandler := handlers.NewActivityHandler(activityService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint (public)
	r.GET("/healthz", handlers.HealthCheck)

	// Public auth routes
	r.POST("/users/", authHandler.Register)
	r.POST("/login", authHandler.Login)

	requireAuth := middleware.RequireAuth(tokenService, userRepo)

	// User routes (protected; registration above stays public)
	users := r.Group("/users", requireAuth)
	{
		users.GET("/", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
	}

	// Activity routes (protected)
	activities := r.Group("/activities", requireAuth)
	{
		activities.POST("/", activityHandler.CreateActivity)
		activities.GET("/", activityHandler.ListActivities)
		activities.GET("/:id", activityHandler.GetActivity)
		activities.PUT("/:id", activityHandler.UpdateActivity)
		activities.DELETE("/:id", activityHandler.DeleteActivity)
	}

	// Activity type catalog (protected, read-only)
	r.GET("/activity-types/", requireAuth, activityHandler.ListActivityTypes)

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
