package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/trip-cost-service/config"
)

func TestInitializeRouter(t *testing.T) {
	cfg := testConfig()
	cfg.Server.RateLimit = 42
	cfg.Server.RateWindow = 30 * time.Second
	cfg.Server.RequestTimeout = 5 * time.Second
	cfg.Server.EnableIdempotency = true
	cfg.Server.CORSOrigins = []string{"https://trips.example.com"}
	cfg.Server.SwaggerUser = "admin"
	cfg.Server.SwaggerPass = "secret"

	services := InitializeServices(cfg)
	components := InitializeRouter(services, cfg)

	require.NotNil(t, components)
	assert.NotNil(t, components.Routes)
	assert.NotNil(t, components.HealthHandler)

	assert.Equal(t, 42, components.Config.RateLimit)
	assert.Equal(t, 30*time.Second, components.Config.RateWindow)
	assert.Equal(t, 5*time.Second, components.Config.RequestTimeout)
	assert.True(t, components.Config.EnableIdempotency)
	assert.Equal(t, []string{"https://trips.example.com"}, components.Config.CORSOrigins)
	assert.Equal(t, "admin", components.Config.SwaggerUser)
	assert.Equal(t, "secret", components.Config.SwaggerPass)
}

func TestInitializeRouter_EmptyConfig(t *testing.T) {
	services := InitializeServices(config.Config{})
	components := InitializeRouter(services, config.Config{})

	require.NotNil(t, components)
	assert.NotNil(t, components.Routes)
	assert.Zero(t, components.Config.RateLimit)
}
