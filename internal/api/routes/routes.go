package routes

import (
	"train-component-manager/internal/api/handlers"
	"train-component-manager/internal/api/middleware"
	"train-component-manager/internal/config"
	"train-component-manager/internal/repository"
	"train-component-manager/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	componentRepo := repository.NewTrainComponentRepository(db)

	// Initialize services
	componentService := service.NewTrainComponentService(componentRepo, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	componentHandler := handlers.NewTrainComponentHandler(componentService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		trainComponents := v1.Group("/train-components")
		{
			trainComponents.GET("", componentHandler.ListTrainComponents)
			trainComponents.POST("", componentHandler.CreateTrainComponent)
			trainComponents.GET("/:id", componentHandler.GetTrainComponent)
			trainComponents.PUT("/:id/quantity", componentHandler.UpdateTrainComponentQuantity)
			trainComponents.DELETE("/:id", componentHandler.DeleteTrainComponent)
		}
	}

	return router
}
