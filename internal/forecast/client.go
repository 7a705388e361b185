// Package forecast fetches the short-range daily forecast from Open-Meteo.
//
// The client is deliberately forgiving: trips get planned with or without a
// forecast, so every failure mode (transport error, bad status, malformed
// body, missing fields) collapses to an empty result at this boundary and is
// only logged, never returned. A circuit breaker stops the client from
// hammering Open-Meteo during an outage; while the circuit is open, calls
// return empty immediately.
package forecast

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/guttosm/trip-cost-service/internal/circuitbreaker"
	"github.com/guttosm/trip-cost-service/internal/domain/model"
	"github.com/guttosm/trip-cost-service/internal/logger"
)

// Port Angeles, the gateway town for the park loop. The point is a domain
// assumption carried over from the route definition; override via Config
// only for testing or a different base town.
const (
	DefaultLatitude  = 48.1181
	DefaultLongitude = -123.4307
)

// DefaultBaseURL is the Open-Meteo forecast endpoint.
const DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// DefaultTimeout bounds the single blocking fetch.
const DefaultTimeout = 10 * time.Second

// ErrUnavailable is reported by Check while the circuit is open.
var ErrUnavailable = errors.New("forecast source unavailable")

// Config holds forecast client configuration.
type Config struct {
	BaseURL   string
	Latitude  float64
	Longitude float64
	Timeout   time.Duration
	Breaker   circuitbreaker.Config
}

// DefaultConfig returns the fixed-location defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		Latitude:  DefaultLatitude,
		Longitude: DefaultLongitude,
		Timeout:   DefaultTimeout,
		Breaker:   defaultBreakerConfig(),
	}
}

func defaultBreakerConfig() circuitbreaker.Config {
	cfg := circuitbreaker.DefaultConfig()
	cfg.Name = "open-meteo"
	return cfg
}

// Client fetches daily forecasts for a fixed geographic point.
type Client struct {
	baseURL    string
	latitude   float64
	longitude  float64
	httpClient *http.Client
	breaker    *circuitbreaker.CircuitBreaker
}

// NewClient creates a new Client. Zero-value config fields fall back to the
// defaults.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Latitude == 0 && cfg.Longitude == 0 {
		cfg.Latitude = DefaultLatitude
		cfg.Longitude = DefaultLongitude
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Breaker.FailureThreshold <= 0 {
		cfg.Breaker = defaultBreakerConfig()
	}

	return &Client{
		baseURL:   cfg.BaseURL,
		latitude:  cfg.Latitude,
		longitude: cfg.Longitude,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		breaker: circuitbreaker.New(cfg.Breaker),
	}
}

// openMeteoDaily mirrors the `daily` object of the Open-Meteo response.
// Arrays are parallel and indexed by day.
type openMeteoDaily struct {
	Time               []string  `json:"time"`
	TemperatureMax     []float64 `json:"temperature_2m_max"`
	TemperatureMin     []float64 `json:"temperature_2m_min"`
	PrecipProbabilityM []float64 `json:"precipitation_probability_max"`
}

type openMeteoResponse struct {
	Daily openMeteoDaily `json:"daily"`
}

// DailyForecast returns one record per day from start through the checkout
// day (start + nights + 1). Any failure yields an empty slice.
func (c *Client) DailyForecast(ctx context.Context, start time.Time, nights int) []model.DailyForecast {
	end := start.AddDate(0, 0, nights+1)

	var days []model.DailyForecast
	err := c.breaker.Execute(ctx, func() error {
		var fetchErr error
		days, fetchErr = c.fetch(ctx, start, end)
		return fetchErr
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		l := logger.Logger()
		l.Warn().Msg("Forecast skipped while circuit is open")
		return []model.DailyForecast{}
	}
	if err != nil {
		l := logger.Logger()
		l.Warn().Err(err).Msg("Forecast fetch failed")
		return []model.DailyForecast{}
	}

	return days
}

// fetch performs the single Open-Meteo request for the date range.
func (c *Client) fetch(ctx context.Context, start, end time.Time) ([]model.DailyForecast, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(start, end), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch forecast: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("forecast fetch returned status %d", resp.StatusCode)
	}

	var body openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode forecast response: %w", err)
	}

	return flattenDaily(body.Daily), nil
}

// Check reports the circuit state for the readiness probe. A degraded
// forecast never blocks trips, but operators still want to see the outage.
func (c *Client) Check() error {
	if c.breaker.IsOpen() {
		return ErrUnavailable
	}
	return nil
}

// requestURL builds the fixed-shape Open-Meteo daily query.
func (c *Client) requestURL(start, end time.Time) string {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", c.latitude))
	q.Set("longitude", fmt.Sprintf("%.4f", c.longitude))
	q.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_probability_max")
	q.Set("timezone", "auto")
	q.Set("start_date", start.Format("2006-01-02"))
	q.Set("end_date", end.Format("2006-01-02"))

	return c.baseURL + "?" + q.Encode()
}

// flattenDaily zips the parallel arrays into records, clamped to the
// shortest array so a ragged response degrades instead of panicking.
func flattenDaily(d openMeteoDaily) []model.DailyForecast {
	n := len(d.Time)
	if len(d.TemperatureMin) < n {
		n = len(d.TemperatureMin)
	}
	if len(d.TemperatureMax) < n {
		n = len(d.TemperatureMax)
	}
	if len(d.PrecipProbabilityM) < n {
		n = len(d.PrecipProbabilityM)
	}

	days := make([]model.DailyForecast, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, model.DailyForecast{
			Date:                        d.Time[i],
			MinTemperatureC:             d.TemperatureMin[i],
			MaxTemperatureC:             d.TemperatureMax[i],
			PrecipitationProbabilityPct: d.PrecipProbabilityM[i],
		})
	}

	return days
}
