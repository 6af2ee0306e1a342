package main

import (
	"log"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"

	"github.com/clauselens/contract-review-api/internal/config"
	"github.com/clauselens/contract-review-api/internal/database"
	"github.com/clauselens/contract-review-api/internal/handlers"
	"github.com/clauselens/contract-review-api/internal/middleware"
	"github.com/clauselens/contract-review-api/internal/repository"
	"github.com/clauselens/contract-review-api/internal/services"
	"github.com/clauselens/contract-review-api/internal/storage"
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

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize object storage (optional; uploads fail without it)
	var fileStore storage.Storage
	if cfg.MinIO.Endpoint != "" {
		var err error
		fileStore, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			log.Fatalf("Failed to initialize object storage: %v", err)
		}
	}

	// Initialize AI service (optional; summaries fail without it)
	var summarizer services.ClauseSummarizer
	if cfg.OpenAIAPIKey != "" {
		summarizer = services.NewAIService(cfg.OpenAIAPIKey)
	}

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	contractRepo := repository.NewContractRepository(db)
	annotationRepo := repository.NewAnnotationRepository(db)
	summaryRepo := repository.NewSummaryRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, []byte(cfg.JWTSecret))
	contractService := services.NewContractService(contractRepo, contractRepo, fileStore)
	annotationService := services.NewAnnotationService(annotationRepo, contractRepo)
	summaryService := services.NewSummaryService(summaryRepo, contractRepo, summarizer)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	contractHandler := handlers.NewContractHandler(contractService)
	annotationHandler := handlers.NewAnnotationHandler(annotationService)
	summaryHandler := handlers.NewSummaryHandler(summaryService)

	// Initialize Gin router
	r := gin.Default()
	r.Use(middleware.RequestID())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Contract Review API is running",
		})
	})

	// Auth routes (public)
	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)
	r.GET("/me", middleware.RequireAuth(authService), authHandler.GetCurrentUser)

	// Contract routes (protected)
	contracts := r.Group("/contracts")
	contracts.Use(middleware.RequireAuth(authService))
	{
		contracts.POST("", contractHandler.CreateContract)
		contracts.GET("", contractHandler.ListContracts)
		contracts.GET("/:id", middleware.RequireContractAccess(), contractHandler.GetContract)
		contracts.PUT("/:id", middleware.RequireContractAccess(), contractHandler.UpdateContract)
		contracts.DELETE("/:id", middleware.RequireContractAccess(), contractHandler.DeleteContract)

		contracts.POST("/:id/upload", middleware.RequireContractAccess(), contractHandler.UploadContractFile)

		contracts.GET("/:id/annotations", middleware.RequireContractAccess(), annotationHandler.ListAnnotations)
		contracts.POST("/:id/annotations", middleware.RequireContractAccess(), annotationHandler.CreateAnnotation)
		contracts.PUT("/:id/annotations/:aid", middleware.RequireContractAccess(), annotationHandler.UpdateAnnotation)
		contracts.DELETE("/:id/annotations/:aid", middleware.RequireContractAccess(), annotationHandler.DeleteAnnotation)

		contracts.GET("/:id/summaries", middleware.RequireContractAccess(), summaryHandler.ListSummaries)
		contracts.POST("/:id/summaries", middleware.RequireContractAccess(), summaryHandler.CreateSummary)
		contracts.DELETE("/:id/summaries/:sid", middleware.RequireContractAccess(), summaryHandler.DeleteSummary)
	}

	// Search route (protected)
	r.GET("/search", middleware.RequireAuth(authService), contractHandler.SearchContracts)

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
