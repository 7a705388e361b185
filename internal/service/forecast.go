package service

import (
	"context"
	"time"

	"github.com/guttosm/trip-cost-service/internal/domain/model"
	"github.com/guttosm/trip-cost-service/internal/metrics"
)

// ForecastProvider abstracts the weather data source. Implementations must
// not raise past their boundary: any failure surfaces as an empty slice.
type ForecastProvider interface {
	// DailyForecast returns one record per day from start through checkout
	// (start + nights + 1 days), or an empty slice when data is unavailable.
	DailyForecast(ctx context.Context, start time.Time, nights int) []model.DailyForecast
}

// ForecastService wraps a ForecastProvider with operation metrics. It adds
// no caching; every request hits the provider.
type ForecastService struct {
	provider ForecastProvider
}

// NewForecastService creates a new ForecastService.
func NewForecastService(provider ForecastProvider) *ForecastService {
	return &ForecastService{provider: provider}
}

// DailyForecast fetches the forecast and records the outcome.
func (s *ForecastService) DailyForecast(ctx context.Context, start time.Time, nights int) []model.DailyForecast {
	began := time.Now()
	days := s.provider.DailyForecast(ctx, start, nights)

	result := "ok"
	if len(days) == 0 {
		result = "empty"
	}
	metrics.RecordForecastFetch(time.Since(began), result)

	return days
}
