package server

import (
	"context"
	"testing"
	"time"

	"github.com/nss-day-cohort-41/tabloidmvc-the-gefilte-fish/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestHealthTimeout(t *testing.T) {
	s := &Server{Config: &config.Config{}}
	assert.Equal(t, 5*time.Second, s.HealthTimeout())

	obs := config.DefaultObservabilityConfig()
	obs.HealthChecks.Timeout = 2 * time.Second
	s.Config.Observability = obs
	assert.Equal(t, 2*time.Second, s.HealthTimeout())
}

func TestShutdownWithoutResources(t *testing.T) {
	log := zerolog.Nop()
	s := &Server{Config: &config.Config{}, Logger: &log}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.NoError(t, s.Shutdown(ctx))
}
