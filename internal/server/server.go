// Package server defines the core Server struct that composes the app's
// main dependencies.
//
// It owns the lifecycle of:
//   - configuration
//   - logger + optional New Relic service wrapper
//   - database pool
//
// It provides the constructor and shutdown logic to run the application
// cleanly.
package server

import (
	"context"
	"fmt"
	"time"

	"github.com/nss-day-cohort-41/tabloidmvc-the-gefilte-fish/internal/config"
	"github.com/nss-day-cohort-41/tabloidmvc-the-gefilte-fish/internal/database"
	loggerPkg "github.com/nss-day-cohort-41/tabloidmvc-the-gefilte-fish/internal/logger"
	"github.com/rs/zerolog"
)

// Server is the application container that holds shared resources.
//
// It is not a network server. It holds the config, the logger(s) and the
// database pool the repositories draw connections from.
type Server struct {
	Config *config.Config

	Logger *zerolog.Logger

	// LoggerService optionally holds the New Relic application instance.
	LoggerService *loggerPkg.LoggerService

	DB *database.Database
}

// New constructs a Server and opens the database pool.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	db, err := database.New(cfg, logger, loggerService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		DB:            db,
	}, nil
}

// HealthTimeout is how long a store ping may take.
func (s *Server) HealthTimeout() time.Duration {
	if s.Config.Observability == nil {
		return config.DefaultObservabilityConfig().HealthChecks.Timeout
	}
	return s.Config.Observability.HealthChecks.Timeout
}

// Shutdown closes the database pool and flushes the APM agent.
//
// ctx bounds the agent flush; the pool closes immediately.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database connection: %w", err)
		}
	}

	done := make(chan struct{})
	go func() {
		s.LoggerService.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.Logger.Warn().Msg("new relic shutdown did not finish in time")
	}

	return nil
}
