package http

import (
	"github.com/gin-gonic/gin"
	"github.com/hairdiag/backend/config"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, limiter RateLimiter, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.SetHTMLTemplate(loadTemplates())

	// Global middleware
	router.Use(RequestIDMiddleware())
	router.Use(RecoveryMiddleware(logger))
	router.Use(LoggerMiddleware(logger))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	if cfg.Metrics.Enabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// Questionnaire page
	router.GET("/", handler.ShowQuestionnaire)
	router.POST("/", RateLimitMiddleware(limiter), handler.SubmitQuestionnaire)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/recommendations", RateLimitMiddleware(limiter), handler.Recommend)
	}

	return router
}
