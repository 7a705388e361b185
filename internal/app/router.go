// Package app provides router configuration.
package app

import (
	"github.com/guttosm/trip-cost-service/config"
	"github.com/guttosm/trip-cost-service/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Routes        *http.TripRoutes
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(services *ServiceComponents, cfg config.Config) *RouterComponents {
	handler := http.NewHandler(services.Estimator, services.Comparator)
	scenarioHandler := http.NewScenarioHandler(services.ScenarioRepo, services.Comparator)
	planningHandler := http.NewPlanningHandler(
		services.Forecast,
		services.LinkBuilder,
		services.Itinerary,
		services.Quotes,
		cfg.Links.DefaultCity,
	)

	routes := http.NewTripRoutes(handler, scenarioHandler, planningHandler)

	healthHandler := http.NewHealthHandler()
	if services.ForecastClient != nil {
		healthHandler.RegisterChecker("forecast", services.ForecastClient)
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RequestTimeout:    cfg.Server.RequestTimeout,
		EnableIdempotency: cfg.Server.EnableIdempotency,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
	}

	return &RouterComponents{
		Routes:        routes,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
