// Package config provides configuration management for the trip cost service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/trip-cost-service/internal/forecast"
	"github.com/guttosm/trip-cost-service/internal/service"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Trip     TripConfig
	Forecast ForecastConfig
	Links    LinksConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port              string
	RateLimit         int
	RateWindow        time.Duration
	RequestTimeout    time.Duration
	EnableIdempotency bool
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
}

// TripConfig holds cost model configuration.
type TripConfig struct {
	BaseMilesFerry   float64
	BaseMilesNoFerry float64
}

// ForecastConfig holds Open-Meteo client configuration.
type ForecastConfig struct {
	BaseURL   string
	Latitude  float64
	Longitude float64
	Timeout   time.Duration
}

// LinksConfig holds deep-link builder configuration.
type LinksConfig struct {
	DefaultCity string
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:              getEnv("PORT", "8080"),
			RateLimit:         getEnvInt("RATE_LIMIT", 100),
			RateWindow:        getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout:    getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			EnableIdempotency: getEnvBool("IDEMPOTENCY_ENABLED", true),
			CORSOrigins:       parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:       getEnv("SWAGGER_USER", ""),
			SwaggerPass:       getEnv("SWAGGER_PASS", ""),
		},
		Trip: TripConfig{
			BaseMilesFerry:   getEnvFloat("BASE_MILES_FERRY", service.DefaultBaseMilesFerry),
			BaseMilesNoFerry: getEnvFloat("BASE_MILES_NO_FERRY", service.DefaultBaseMilesNoFerry),
		},
		Forecast: ForecastConfig{
			BaseURL:   getEnv("FORECAST_BASE_URL", forecast.DefaultBaseURL),
			Latitude:  getEnvFloat("FORECAST_LATITUDE", forecast.DefaultLatitude),
			Longitude: getEnvFloat("FORECAST_LONGITUDE", forecast.DefaultLongitude),
			Timeout:   getEnvDuration("FORECAST_TIMEOUT", forecast.DefaultTimeout),
		},
		Links: LinksConfig{
			DefaultCity: getEnv("LINKS_DEFAULT_CITY", "Port Angeles"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseCORSOrigins(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}
