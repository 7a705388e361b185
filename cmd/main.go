// Package main is the entry point for the trip-cost-service application.
//
// @title           Trip Cost Service API
// @version         1.0.0
// @description     API for estimating Olympic Peninsula trip costs and comparing trip scenarios.
//
//	The service computes deterministic cost breakdowns, fetches a short-range
//	weather forecast for the trip window, builds booking deep links, and serves
//	a suggested itinerary.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/trip-cost-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Trips
// @tag.description Cost estimation and scenario comparison operations
//
// @tag.name        Scenarios
// @tag.description Stored scenario collection
//
// @tag.name        Planning
// @tag.description Forecast, deep links, itinerary and quote helpers
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/trip-cost-service/docs" // swagger docs

	"github.com/guttosm/trip-cost-service/config"
	"github.com/guttosm/trip-cost-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
