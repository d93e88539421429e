package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setDatabaseEnv(t *testing.T) {
	t.Helper()

	t.Setenv("TABLOID_PRIMARY__ENV", "local")
	t.Setenv("TABLOID_DATABASE__HOST", "localhost")
	t.Setenv("TABLOID_DATABASE__PORT", "5432")
	t.Setenv("TABLOID_DATABASE__USER", "tabloid")
	t.Setenv("TABLOID_DATABASE__PASSWORD", "p@ss:word")
	t.Setenv("TABLOID_DATABASE__NAME", "tabloid")
	t.Setenv("TABLOID_DATABASE__SSL_MODE", "disable")
	t.Setenv("TABLOID_DATABASE__MAX_OPEN_CONNS", "10")
	t.Setenv("TABLOID_DATABASE__MAX_IDLE_CONNS", "5")
	t.Setenv("TABLOID_DATABASE__CONN_MAX_LIFETIME", "300")
	t.Setenv("TABLOID_DATABASE__CONN_MAX_IDLE_TIME", "60")
}

func TestLoadConfig(t *testing.T) {
	t.Run("maps nested env keys", func(t *testing.T) {
		setDatabaseEnv(t)

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "local", cfg.Primary.Env)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)
		assert.Equal(t, 300, cfg.Database.ConnMaxLifetime)
	})

	t.Run("injects observability defaults", func(t *testing.T) {
		setDatabaseEnv(t)

		cfg, err := LoadConfig()
		require.NoError(t, err)
		require.NotNil(t, cfg.Observability)

		assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
		assert.Equal(t, "local", cfg.Observability.Environment)
		assert.Equal(t, "info", cfg.Observability.Logging.Level)
		assert.Equal(t, "json", cfg.Observability.Logging.Format)
		assert.Equal(t, 100*time.Millisecond, cfg.Observability.Logging.SlowQueryThreshold)
		assert.Equal(t, 5*time.Second, cfg.Observability.HealthChecks.Timeout)
		assert.Empty(t, cfg.Observability.NewRelic.LicenseKey)
	})

	t.Run("partial observability block", func(t *testing.T) {
		setDatabaseEnv(t)
		t.Setenv("TABLOID_OBSERVABILITY__LOGGING__LEVEL", "warn")
		t.Setenv("TABLOID_OBSERVABILITY__LOGGING__SLOW_QUERY_THRESHOLD", "250ms")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "warn", cfg.Observability.Logging.Level)
		assert.Equal(t, "json", cfg.Observability.Logging.Format)
		assert.Equal(t, 250*time.Millisecond, cfg.Observability.Logging.SlowQueryThreshold)
		assert.Equal(t, 5*time.Second, cfg.Observability.HealthChecks.Timeout)
	})

	t.Run("missing required database field", func(t *testing.T) {
		setDatabaseEnv(t)
		t.Setenv("TABLOID_DATABASE__HOST", "")

		_, err := LoadConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "config validation failed")
	})

	t.Run("invalid log level", func(t *testing.T) {
		setDatabaseEnv(t)
		t.Setenv("TABLOID_OBSERVABILITY__LOGGING__LEVEL", "loud")

		_, err := LoadConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid logging level")
	})
}

func TestDatabaseConfigDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "::1",
		Port:     5433,
		User:     "tabloid",
		Password: "p@ss:word",
		Name:     "blog",
		SSLMode:  "require",
	}

	assert.Equal(t, "postgres://tabloid:p%40ss%3Aword@[::1]:5433/blog?sslmode=require", d.DSN())
}

func TestObservabilityGetLogLevel(t *testing.T) {
	tests := []struct {
		env   string
		level string
		want  string
	}{
		{env: "production", level: "", want: "info"},
		{env: "development", level: "", want: "debug"},
		{env: "local", level: "", want: "debug"},
		{env: "staging", level: "", want: "info"},
		{env: "production", level: "error", want: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.env+"/"+tt.want, func(t *testing.T) {
			c := &ObservabilityConfig{Environment: tt.env, Logging: LoggingConfig{Level: tt.level}}
			assert.Equal(t, tt.want, c.GetLogLevel())
		})
	}
}
