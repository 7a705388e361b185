package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/trip-cost-service/internal/metrics"
	"github.com/guttosm/trip-cost-service/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit         int
	RateWindow        time.Duration
	RequestTimeout    time.Duration
	EnableIdempotency bool
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:  100,
		RateWindow: time.Minute,
	}
}

// NewRouter creates and configures the Gin router for the trip cost service.
func NewRouter(routes *TripRoutes, healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)

	// Infrastructure routes (health, metrics, swagger)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api")
	configureAPIMiddleware(api, &cfg)

	if routes != nil {
		routes.RegisterPublicRoutes(api)
	}

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	router.Use(middleware.CORS(cfg.CORSOrigins))

	// Core middleware stack
	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(),
		middleware.ErrorHandler(),
	)

	if cfg.RequestTimeout > 0 {
		router.Use(middleware.TimeoutWithDuration(cfg.RequestTimeout))
	}

	// Global rate limiting
	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(limiter.RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	healthHandler.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger with optional basic auth
	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up middleware for the API group.
func configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	if cfg.EnableIdempotency {
		idempotencyCfg := middleware.DefaultIdempotencyConfig()
		api.Use(middleware.Idempotency(idempotencyCfg))
	}
}
