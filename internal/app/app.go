// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/trip-cost-service/config"
	"github.com/guttosm/trip-cost-service/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *gin.Engine {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	serviceComponents := InitializeServices(cfg)

	routerComponents := InitializeRouter(serviceComponents, cfg)

	return http.NewRouter(routerComponents.Routes, routerComponents.HealthHandler, routerComponents.Config)
}
