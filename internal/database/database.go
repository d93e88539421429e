// Package database contains the logic for establishing
// connections to the PostgreSQL database.
//
// It handles:
//   - building a pgxpool config from the DSN and pool settings
//   - wiring query tracing/logging (pgx tracelog, slow queries)
//   - optional New Relic instrumentation (nrpgx5)
//   - running the embedded schema migrations (tern)
package database

import (
	"context"
	"fmt"
	"time"

	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/newrelic/go-agent/v3/integrations/nrpgx5"
	"github.com/nss-day-cohort-41/tabloidmvc-the-gefilte-fish/internal/config"
	loggerConfig "github.com/nss-day-cohort-41/tabloidmvc-the-gefilte-fish/internal/logger"
	"github.com/rs/zerolog"
)

// DatabasePingTimeout is the number of seconds to wait for the startup
// ping before considering the database unreachable.
const DatabasePingTimeout = 10

// Database wraps the pgx connection pool and a logger.
//
// Pool is the connection provider handed to the repositories; every
// repository call acquires one connection from it and releases it.
type Database struct {
	Pool *pgxpool.Pool
	log  *zerolog.Logger
}

// New creates a PostgreSQL connection pool with instrumentation.
//
// Behavior:
//   - Parse the DSN into a pgxpool config and apply pool tuning
//   - Attach the New Relic tracer if the agent is running
//   - Attach the slow query tracer when a threshold is configured
//   - In local env attach the SQL tracelogger as well
//   - Create the pool, ping it and return Database
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*Database, error) {
	pgxPoolConfig, err := pgxpool.ParseConfig(cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgx pool config: %w", err)
	}

	applyPoolSettings(pgxPoolConfig, cfg.Database)

	if tracer := buildTracer(cfg, logger, loggerService); tracer != nil {
		pgxPoolConfig.ConnConfig.Tracer = tracer
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), pgxPoolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout*time.Second)
	defer cancel()
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().
		Str("host", cfg.Database.Host).
		Str("database", cfg.Database.Name).
		Msg("connected to the database")

	return &Database{
		Pool: pool,
		log:  logger,
	}, nil
}

// applyPoolSettings maps the config's pool tuning onto pgxpool.
//
// pgxpool has no idle-connection cap, so MaxIdleConns becomes the pool's
// warm minimum, bounded by the max size.
func applyPoolSettings(poolConfig *pgxpool.Config, db config.DatabaseConfig) {
	if db.MaxOpenConns > 0 {
		poolConfig.MaxConns = int32(db.MaxOpenConns)
	}
	if db.MaxIdleConns > 0 {
		minConns := int32(db.MaxIdleConns)
		if minConns > poolConfig.MaxConns {
			minConns = poolConfig.MaxConns
		}
		poolConfig.MinConns = minConns
	}
	if db.ConnMaxLifetime > 0 {
		poolConfig.MaxConnLifetime = time.Duration(db.ConnMaxLifetime) * time.Second
	}
	if db.ConnMaxIdleTime > 0 {
		poolConfig.MaxConnIdleTime = time.Duration(db.ConnMaxIdleTime) * time.Second
	}
}

// buildTracer assembles the tracers that apply to this environment.
// It returns nil when none apply.
func buildTracer(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) pgx.QueryTracer {
	var tracers []any

	if loggerService.GetApplication() != nil {
		tracers = append(tracers, nrpgx5.NewTracer())
	}

	if obs := cfg.Observability; obs != nil && obs.Logging.SlowQueryThreshold > 0 {
		tracers = append(tracers, newSlowQueryTracer(logger, obs.Logging.SlowQueryThreshold))
	}

	// Very noisy, which is why it only runs in local.
	if cfg.Primary.Env == "local" {
		globalLevel := logger.GetLevel()
		pgxLogger := loggerConfig.NewPgxLogger(globalLevel)

		tracers = append(tracers, &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(pgxLogger),
			LogLevel: tracelog.LogLevel(loggerConfig.GetPgxTraceLogLevel(globalLevel)),
		})
	}

	switch len(tracers) {
	case 0:
		return nil
	case 1:
		if t, ok := tracers[0].(pgx.QueryTracer); ok {
			return t
		}
	}

	return &multiTracer{tracers: tracers}
}

// Ping verifies the store is reachable within timeout.
func (db *Database) Ping(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return db.Pool.Ping(ctx)
}

// Close closes the database connection pool.
//
// pgxpool.Pool.Close doesn't return an error; the signature matches the
// other closers in the server container.
func (db *Database) Close() error {
	db.log.Info().Msg("closing database connection pool")
	db.Pool.Close()
	return nil
}
