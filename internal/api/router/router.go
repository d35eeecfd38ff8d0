// Package router wires the HTTP surface together.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/JoshFink/commish/internal/api/handlers"
	"github.com/JoshFink/commish/internal/api/middleware"
	"github.com/JoshFink/commish/internal/auth"
	"github.com/JoshFink/commish/internal/observability"
)

// Config holds router configuration
type Config struct {
	Sessions     *auth.Manager
	Metrics      *observability.Metrics
	AccessLogger *zerolog.Logger

	HealthHandler   *handlers.HealthHandler
	AuthHandler     *handlers.AuthHandler
	ModelsHandler   *handlers.ModelsHandler
	RankingsHandler *handlers.RankingsHandler
	RecapHandler    *handlers.RecapHandler
	PDFHandler      *handlers.PDFHandler
}

// New creates the HTTP router
func New(cfg *Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery())
	r.Use(middleware.Logging(middleware.LoggingConfig{
		AccessLogger: cfg.AccessLogger,
		SkipPaths:    []string{"/health", "/metrics"},
	}))
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware())
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	r.GET("/health", cfg.HealthHandler.Health)

	api := r.Group("/api")
	{
		api.POST("/auth/login", cfg.AuthHandler.Login)

		authorized := api.Group("")
		authorized.Use(middleware.Auth(cfg.Sessions))
		{
			authorized.POST("/auth/logout", cfg.AuthHandler.Logout)
			authorized.GET("/health/detailed", cfg.HealthHandler.Detailed)

			authorized.GET("/models", cfg.ModelsHandler.List)
			authorized.GET("/models/:model/estimate", cfg.ModelsHandler.Estimate)

			authorized.POST("/rankings", cfg.RankingsHandler.Generate)
			authorized.GET("/rankings/latest", cfg.RankingsHandler.Latest)
			authorized.GET("/rankings/table", cfg.RankingsHandler.Table)

			authorized.GET("/recap/window", cfg.RecapHandler.Window)
			authorized.POST("/recap/stream", cfg.RecapHandler.Stream)
			authorized.POST("/recap/pdf", cfg.PDFHandler.Export)
		}
	}

	return r
}
