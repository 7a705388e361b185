package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/trip-cost-service/internal/forecast"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.True(t, cfg.Server.EnableIdempotency)
	assert.Empty(t, cfg.Server.CORSOrigins)

	assert.InDelta(t, 360.0, cfg.Trip.BaseMilesFerry, 1e-9)
	assert.InDelta(t, 420.0, cfg.Trip.BaseMilesNoFerry, 1e-9)

	assert.Equal(t, forecast.DefaultBaseURL, cfg.Forecast.BaseURL)
	assert.InDelta(t, 48.1181, cfg.Forecast.Latitude, 1e-9)
	assert.InDelta(t, -123.4307, cfg.Forecast.Longitude, 1e-9)
	assert.Equal(t, forecast.DefaultTimeout, cfg.Forecast.Timeout)

	assert.Equal(t, "Port Angeles", cfg.Links.DefaultCity)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RATE_LIMIT", "5")
	t.Setenv("RATE_WINDOW", "30s")
	t.Setenv("IDEMPOTENCY_ENABLED", "false")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("BASE_MILES_FERRY", "380.5")
	t.Setenv("FORECAST_BASE_URL", "http://localhost:9000/v1/forecast")
	t.Setenv("LINKS_DEFAULT_CITY", "Sequim")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.RateLimit)
	assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
	assert.False(t, cfg.Server.EnableIdempotency)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.CORSOrigins)
	assert.InDelta(t, 380.5, cfg.Trip.BaseMilesFerry, 1e-9)
	assert.Equal(t, "http://localhost:9000/v1/forecast", cfg.Forecast.BaseURL)
	assert.Equal(t, "Sequim", cfg.Links.DefaultCity)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT", "lots")
	t.Setenv("RATE_WINDOW", "soon")
	t.Setenv("BASE_MILES_FERRY", "far")
	t.Setenv("IDEMPOTENCY_ENABLED", "maybe")

	cfg := Load()

	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	assert.InDelta(t, 360.0, cfg.Trip.BaseMilesFerry, 1e-9)
	assert.True(t, cfg.Server.EnableIdempotency)
}
