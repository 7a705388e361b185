package app

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/guttosm/trip-cost-service/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{
			Port:       "8080",
			RateLimit:  100,
			RateWindow: time.Minute,
		},
		Links: config.LinksConfig{DefaultCity: "Port Angeles"},
	}
}

func TestInitializeApp(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{
			name: "creates router with default config",
			cfg:  testConfig(),
		},
		{
			name: "creates router with custom base miles",
			cfg: func() config.Config {
				cfg := testConfig()
				cfg.Trip.BaseMilesFerry = 380
				cfg.Trip.BaseMilesNoFerry = 440
				return cfg
			}(),
		},
		{
			name: "creates router with idempotency enabled",
			cfg: func() config.Config {
				cfg := testConfig()
				cfg.Server.EnableIdempotency = true
				return cfg
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := InitializeApp(tt.cfg)
			assert.NotNil(t, router)
		})
	}
}

func TestInitializeApp_ServesRoutes(t *testing.T) {
	router := InitializeApp(testConfig())

	t.Run("healthz", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("estimate", func(t *testing.T) {
		body := `{"nights": 2, "travelers": 2, "use_ferry": true, "extra_miles": 40,
			"rental_daily_rate": 55, "rental_fees_percent": 22, "lodging_nightly_rate": 150,
			"lodging_one_time_fees": 60, "gas_price_per_gallon": 4.5, "vehicle_mpg": 30,
			"park_entrance_fee": 30, "ferry_round_trip_cost": 50}`
		req := httptest.NewRequest(http.MethodPost, "/api/estimate", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total":701.3`)
	})

	t.Run("itinerary", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/itinerary", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
