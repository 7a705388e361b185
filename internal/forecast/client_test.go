package forecast

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/trip-cost-service/internal/circuitbreaker"
)

func testStart() time.Time {
	return time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)
}

func newTestClient(serverURL string) *Client {
	cfg := DefaultConfig()
	cfg.BaseURL = serverURL
	cfg.Timeout = 2 * time.Second
	return NewClient(cfg)
}

func TestDailyForecast(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "48.1181", q.Get("latitude"))
		assert.Equal(t, "-123.4307", q.Get("longitude"))
		assert.Equal(t, "temperature_2m_max,temperature_2m_min,precipitation_probability_max", q.Get("daily"))
		assert.Equal(t, "auto", q.Get("timezone"))
		assert.Equal(t, "2025-06-13", q.Get("start_date"))
		// Two nights: end date is start + 3 days.
		assert.Equal(t, "2025-06-16", q.Get("end_date"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"daily": {
				"time": ["2025-06-13", "2025-06-14", "2025-06-15", "2025-06-16"],
				"temperature_2m_max": [17.4, 18.0, 16.2, 15.9],
				"temperature_2m_min": [9.1, 9.8, 8.5, 8.2],
				"precipitation_probability_max": [35, 10, 60, 80]
			}
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	days := client.DailyForecast(context.Background(), testStart(), 2)

	require.Len(t, days, 4)
	assert.Equal(t, "2025-06-13", days[0].Date)
	assert.InDelta(t, 9.1, days[0].MinTemperatureC, 1e-9)
	assert.InDelta(t, 17.4, days[0].MaxTemperatureC, 1e-9)
	assert.InDelta(t, 35, days[0].PrecipitationProbabilityPct, 1e-9)
	assert.Equal(t, "2025-06-16", days[3].Date)
}

func TestDailyForecast_EmptyOnFailure(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "rate limited",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`not json`))
			},
		},
		{
			name: "missing daily object",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"reason": "no data for those dates"}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := newTestClient(server.URL)
			days := client.DailyForecast(context.Background(), testStart(), 2)

			assert.NotNil(t, days)
			assert.Empty(t, days)
		})
	}
}

func TestDailyForecast_EmptyOnUnreachableServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := newTestClient(server.URL)
	days := client.DailyForecast(context.Background(), testStart(), 2)

	assert.Empty(t, days)
}

func TestDailyForecast_RaggedArraysClamp(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"daily": {
				"time": ["2025-06-13", "2025-06-14", "2025-06-15"],
				"temperature_2m_max": [17.4, 18.0],
				"temperature_2m_min": [9.1],
				"precipitation_probability_max": [35, 10, 60]
			}
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	days := client.DailyForecast(context.Background(), testStart(), 2)

	require.Len(t, days, 1)
	assert.Equal(t, "2025-06-13", days[0].Date)
}

func TestDailyForecast_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newTestClient(server.URL)
	days := client.DailyForecast(ctx, testStart(), 2)

	assert.Empty(t, days)
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(Config{})

	assert.Equal(t, DefaultBaseURL, client.baseURL)
	assert.InDelta(t, DefaultLatitude, client.latitude, 1e-9)
	assert.InDelta(t, DefaultLongitude, client.longitude, 1e-9)
	assert.False(t, client.breaker.IsOpen())
}

func TestDailyForecast_CircuitOpensOnRepeatedFailures(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := DefaultConfig()
	cfg.BaseURL = server.URL
	cfg.Timeout = 2 * time.Second
	cfg.Breaker = circuitbreaker.Config{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
		Name:             "test",
	}
	client := NewClient(cfg)

	for i := 0; i < 2; i++ {
		days := client.DailyForecast(context.Background(), testStart(), 2)
		assert.Empty(t, days)
	}
	assert.Equal(t, 2, hits)

	// Circuit is open now: calls degrade to empty without reaching the server.
	days := client.DailyForecast(context.Background(), testStart(), 2)
	assert.NotNil(t, days)
	assert.Empty(t, days)
	assert.Equal(t, 2, hits)
}

func TestCheck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := DefaultConfig()
	cfg.BaseURL = server.URL
	cfg.Timeout = 2 * time.Second
	cfg.Breaker = circuitbreaker.Config{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
		Name:             "test",
	}
	client := NewClient(cfg)

	assert.NoError(t, client.Check())

	_ = client.DailyForecast(context.Background(), testStart(), 2)

	assert.ErrorIs(t, client.Check(), ErrUnavailable)
}
