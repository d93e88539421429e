package main

import (
	"context"
	"fmt"
	"time"

	"github.com/nss-day-cohort-41/tabloidmvc-the-gefilte-fish/internal/config"
	"github.com/nss-day-cohort-41/tabloidmvc-the-gefilte-fish/internal/logger"
	"github.com/nss-day-cohort-41/tabloidmvc-the-gefilte-fish/internal/repository"
	"github.com/nss-day-cohort-41/tabloidmvc-the-gefilte-fish/internal/server"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

// application holds what the subcommands share. The pool is opened only
// by commands that need it.
type application struct {
	cfg           *config.Config
	log           zerolog.Logger
	loggerService *logger.LoggerService
	srv           *server.Server
	repos         *repository.Repositories
}

var app = &application{}

var rootCmd = &cobra.Command{
	Use:          "tabloid",
	Short:        "Manage the Tabloid blog database",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return app.init()
	},
}

func (a *application) init() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	loggerService, err := logger.NewLoggerService(cfg.Observability)
	if err != nil {
		return fmt.Errorf("failed to start new relic: %w", err)
	}

	a.cfg = cfg
	a.loggerService = loggerService
	a.log = logger.NewLoggerWithService(cfg.Observability, loggerService)
	return nil
}

// connect opens the pool and builds the repositories on it.
func (a *application) connect() error {
	srv, err := server.New(a.cfg, &a.log, a.loggerService)
	if err != nil {
		return err
	}

	a.srv = srv
	a.repos = repository.NewRepositories(srv)
	return nil
}

func (a *application) close() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if a.srv == nil {
		a.loggerService.Shutdown()
		return
	}

	if err := a.srv.Shutdown(ctx); err != nil {
		a.log.Error().Err(err).Msg("shutdown failed")
	}
}

// withRepositories adapts a command body that needs the store.
func withRepositories(run func(cmd *cobra.Command, args []string, repos *repository.Repositories) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := app.connect(); err != nil {
			return err
		}
		return run(cmd, args, app.repos)
	}
}
