package http

import (
	"github.com/gin-gonic/gin"
)

// TripRoutes handles trip-related route registration.
type TripRoutes struct {
	handler         *Handler
	scenarioHandler *ScenarioHandler
	planningHandler *PlanningHandler
}

// NewTripRoutes creates a new TripRoutes instance.
func NewTripRoutes(handler *Handler, scenarioHandler *ScenarioHandler, planningHandler *PlanningHandler) *TripRoutes {
	return &TripRoutes{
		handler:         handler,
		scenarioHandler: scenarioHandler,
		planningHandler: planningHandler,
	}
}

// RegisterPublicRoutes registers the trip routes on the API group.
func (r *TripRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/estimate", r.handler.Estimate)
	rg.POST("/compare", r.handler.Compare)

	if r.scenarioHandler != nil {
		rg.POST("/scenarios", r.scenarioHandler.CreateScenario)
		rg.GET("/scenarios", r.scenarioHandler.ListScenarios)
		rg.GET("/scenarios/comparison", r.scenarioHandler.Comparison)
		rg.GET("/scenarios/:id", r.scenarioHandler.GetScenario)
		rg.PUT("/scenarios/:id", r.scenarioHandler.UpdateScenario)
		rg.DELETE("/scenarios/:id", r.scenarioHandler.DeleteScenario)
	}

	if r.planningHandler != nil {
		rg.GET("/forecast", r.planningHandler.Forecast)
		rg.GET("/links", r.planningHandler.Links)
		rg.GET("/itinerary", r.planningHandler.Itinerary)
		rg.POST("/quotes/extract", r.planningHandler.ExtractQuotes)
	}
}

// GetHandler returns the underlying trip handler.
func (r *TripRoutes) GetHandler() *Handler {
	return r.handler
}
