package v1

import (
	"net/http"

	"grow-therapy-backend/config"
	"grow-therapy-backend/internal/delivery/http/middleware"
	"grow-therapy-backend/internal/domain"
	"grow-therapy-backend/pkg/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC       domain.ContactUsecase
	Limiter         ratelimit.Limiter
	FallbackLimiter ratelimit.Limiter // used when Limiter errors; may be nil
	Validate        *validator.Validate
	Config          *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORS(deps.Config.FrontendURL, deps.Config.IsProduction())) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.ErrorHandler(deps.Config.IsProduction()))

	// Service banner
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Grow Your Therapy API",
			"version": "1.0.0",
			"endpoints": gin.H{
				"contact": "/api/contact",
				"health":  "/api/health",
				"test":    "/api/test-email (dev only)",
			},
		})
	})

	api := r.Group("/api")

	NewContactHandler(api, middleware.RateLimit(deps.Limiter, deps.FallbackLimiter), deps.ContactUC, deps.Validate, deps.Config)

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Route not found",
			"path":    c.Request.URL.Path,
		})
	})

	return r
}
