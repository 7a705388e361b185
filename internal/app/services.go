// Package app provides service initialization.
package app

import (
	"github.com/guttosm/trip-cost-service/config"
	"github.com/guttosm/trip-cost-service/internal/forecast"
	"github.com/guttosm/trip-cost-service/internal/repository"
	"github.com/guttosm/trip-cost-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Estimator    service.TripEstimator
	Comparator   service.ScenarioComparator
	Forecast     service.ForecastProvider
	LinkBuilder  service.DeepLinkBuilder
	Itinerary    service.ItineraryProvider
	Quotes       service.QuoteExtractor
	ScenarioRepo repository.ScenarioRepository

	// ForecastClient is the raw Open-Meteo client, exposed for the
	// readiness probe's circuit state check.
	ForecastClient *forecast.Client
}

// InitializeServices initializes business logic services.
func InitializeServices(cfg config.Config) *ServiceComponents {
	var opts []service.EstimatorOption
	if cfg.Trip.BaseMilesFerry > 0 || cfg.Trip.BaseMilesNoFerry > 0 {
		opts = append(opts, service.WithBaseMiles(cfg.Trip.BaseMilesFerry, cfg.Trip.BaseMilesNoFerry))
	}

	estimator := service.NewTripEstimatorService(opts...)
	comparator := service.NewScenarioComparatorService(estimator)

	client := forecast.NewClient(forecast.Config{
		BaseURL:   cfg.Forecast.BaseURL,
		Latitude:  cfg.Forecast.Latitude,
		Longitude: cfg.Forecast.Longitude,
		Timeout:   cfg.Forecast.Timeout,
	})

	return &ServiceComponents{
		Estimator:      estimator,
		Comparator:     comparator,
		Forecast:       service.NewForecastService(client),
		LinkBuilder:    service.NewDeepLinkBuilderService(),
		Itinerary:      service.NewItineraryService(),
		Quotes:         service.NewQuoteExtractorService(),
		ScenarioRepo:   repository.NewMemoryScenarioRepository(),
		ForecastClient: client,
	}
}
