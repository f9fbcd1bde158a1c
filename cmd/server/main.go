package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/taskmgmt/task-management-api/internal/config"
	"github.com/taskmgmt/task-management-api/internal/database"
	"github.com/taskmgmt/task-management-api/internal/handlers"
	"github.com/taskmgmt/task-management-api/internal/middleware"
	"github.com/taskmgmt/task-management-api/internal/repository"
	"github.com/taskmgmt/task-management-api/internal/services"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// Load configuration
	cfg, err := config.Load(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database and run migrations
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg.JWT)
	userService := services.NewUserService(userRepo)
	projectService := services.NewProjectService(projectRepo, userRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo, userRepo)
	commentService := services.NewCommentService(commentRepo, taskRepo, userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)
	commentHandler := handlers.NewCommentHandler(commentService)

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.Recovery(log))

	requireAuth := middleware.RequireAuth(cfg.JWT)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Task Management API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		api.POST("/auth/login", authHandler.Login)

		// User routes (public: the registration surface)
		users := api.Group("/users")
		{
			users.GET("", userHandler.List)
			users.POST("", userHandler.Create)
			users.GET("/:id", userHandler.Get)
			users.PUT("/:id", userHandler.Update)
			users.DELETE("/:id", userHandler.Delete)
		}

		// Project routes (protected)
		projects := api.Group("/projects")
		projects.Use(requireAuth)
		{
			projects.GET("", projectHandler.List)
			projects.POST("", projectHandler.Create)
			projects.GET("/:projectId", projectHandler.Get)
			projects.PUT("/:projectId", projectHandler.Update)
			projects.DELETE("/:projectId", projectHandler.Delete)
			projects.GET("/:projectId/tasks", taskHandler.ListByProject)
			projects.POST("/:projectId/tasks", taskHandler.CreateInProject)
		}

		// Task routes (bearer required for mutations)
		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.List)
			tasks.GET("/:taskId", taskHandler.Get)
			tasks.POST("", requireAuth, taskHandler.Create)
			tasks.PUT("/:taskId", requireAuth, taskHandler.Update)
			tasks.DELETE("/:taskId", requireAuth, taskHandler.Delete)

			// Comment routes, scoped beneath their task
			tasks.GET("/:taskId/comments", commentHandler.ListByTask)
			tasks.GET("/:taskId/comments/:id", commentHandler.Get)
			tasks.POST("/:taskId/comments", requireAuth, commentHandler.Create)
			tasks.PUT("/:taskId/comments/:id", requireAuth, commentHandler.Update)
			tasks.DELETE("/:taskId/comments/:id", requireAuth, commentHandler.Delete)
		}
	}

	// Start server
	log.Info().Str("port", cfg.Port).Msg("Server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
