package routes

import (
	"fmt"

	"template-service-backend/internal/api/handlers"
	"template-service-backend/internal/api/middleware"
	"template-service-backend/internal/auth"
	"template-service-backend/internal/config"
	"template-service-backend/internal/metrics"
	"template-service-backend/internal/repository"
	"template-service-backend/internal/service"
	"template-service-backend/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, m *metrics.Metrics) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics(m))

	// Initialize validator
	templateValidator, err := validation.New(validator.New())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize validator: %w", err)
	}

	// Initialize repositories
	templateRepo := repository.NewTemplateRepository(db)
	directLinkRepo := repository.NewDirectLinkRepository(db)
	documentRepo := repository.NewDocumentRepository(db)

	// Initialize services
	templateService := service.NewTemplateService(templateRepo, directLinkRepo, documentRepo)

	authService, err := auth.NewAuthService(cfg.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	templateHandler := handlers.NewTemplateHandler(templateService, templateValidator, m, cfg.DirectLinkBaseURL)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Metrics and swagger documentation routes
	router.GET("/metrics", gin.WrapH(m.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	// Public routes
	{
		// Recipients opening a direct link are not signed in
		v1.POST("/direct-templates/documents", templateHandler.CreateDocumentFromDirectLink)

		validate := v1.Group("/validate")
		{
			validate.GET("", templateHandler.ListOperations)
			validate.POST("/:operation", templateHandler.ValidateOperation)
		}
	}

	// Template routes require authentication
	templates := v1.Group("/templates", authMiddleware.RequireAuth())
	{
		templates.GET("", templateHandler.FindTemplates)
		templates.POST("", templateHandler.CreateTemplate)
		templates.GET("/:templateId", templateHandler.GetTemplate)
		templates.DELETE("/:templateId", templateHandler.DeleteTemplate)
		templates.POST("/:templateId/duplicate", templateHandler.DuplicateTemplate)
		templates.PATCH("/:templateId/settings", templateHandler.UpdateTemplateSettings)
		templates.PUT("/:templateId/signing-order", templateHandler.SetSigningOrder)
		templates.PUT("/:templateId/typed-signature", templateHandler.UpdateTypedSignatureSettings)
		templates.POST("/:templateId/move", templateHandler.MoveTemplateToTeam)
		templates.POST("/:templateId/documents", templateHandler.CreateDocument)

		directLink := templates.Group("/:templateId/direct-link")
		{
			directLink.POST("", templateHandler.CreateDirectLink)
			directLink.PATCH("", templateHandler.ToggleDirectLink)
			directLink.DELETE("", templateHandler.DeleteDirectLink)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": middleware.GetRequestID(c),
		})
	})

	return router, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
