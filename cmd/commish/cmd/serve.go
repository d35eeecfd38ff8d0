package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/JoshFink/commish/internal/api/handlers"
	"github.com/JoshFink/commish/internal/api/router"
	"github.com/JoshFink/commish/internal/auth"
	"github.com/JoshFink/commish/internal/domain/ranking"
	"github.com/JoshFink/commish/internal/infra/espn"
	"github.com/JoshFink/commish/internal/infra/sleeper"
	"github.com/JoshFink/commish/internal/infra/yahoo"
	"github.com/JoshFink/commish/internal/llm"
	"github.com/JoshFink/commish/internal/observability"
	"github.com/JoshFink/commish/internal/pkg/logger"
	rankingengine "github.com/JoshFink/commish/internal/ranking"
	"github.com/JoshFink/commish/internal/service/leagues"
	"github.com/JoshFink/commish/internal/service/rankings"
	"github.com/JoshFink/commish/internal/service/recap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	// League weeks roll over on Eastern time.
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return fmt.Errorf("load timezone: %w", err)
	}
	time.Local = loc

	if cfg.Auth.Password == "" {
		return errors.New("APP_PASSWORD is required")
	}

	gin.SetMode(cfg.Server.Mode)

	log.Info().Str("version", serviceVersion).Msg("starting commish API server")

	metrics := observability.NewMetrics()
	sessions := auth.NewManager(cfg.Auth.Password, cfg.Auth.SessionTTL)

	source := leagues.NewSource(
		sleeper.NewClient(cfg.Sleeper.BaseURL),
		espn.NewClient(cfg.ESPN.BaseURL),
		espn.Credentials{SWID: cfg.ESPN.SWID, EspnS2: cfg.ESPN.EspnS2},
		yahoo.NewClient(cfg.Yahoo.BaseURL, cfg.Yahoo.ClientID, cfg.Yahoo.ClientSecret, cfg.Yahoo.RedirectURL),
		cfg.ESPN.Year,
	).WithMetrics(metrics)

	engine, err := rankingengine.New(ranking.DefaultCriteria())
	if err != nil {
		return fmt.Errorf("build ranking engine: %w", err)
	}

	rankingsSvc := rankings.NewService(source, engine)
	completer := llm.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.OrgID, cfg.OpenAI.MaxTokens)
	recapSvc := recap.NewService(source, completer)

	accessLogger := logger.NewAccessLogger(cfg.Logging.FilePath, cfg.Logging.RotationSize, cfg.Logging.RetentionDays)

	r := router.New(&router.Config{
		Sessions:        sessions,
		Metrics:         metrics,
		AccessLogger:    &accessLogger,
		HealthHandler:   handlers.NewHealthHandler(serviceVersion),
		AuthHandler:     handlers.NewAuthHandler(sessions),
		ModelsHandler:   handlers.NewModelsHandler(),
		RankingsHandler: handlers.NewRankingsHandler(rankingsSvc, metrics),
		RecapHandler:    handlers.NewRecapHandler(recapSvc, metrics),
		PDFHandler:      handlers.NewPDFHandler(),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	log.Info().Msg("server stopped")
	return nil
}
