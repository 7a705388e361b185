// Package metrics provides Prometheus metrics collection for the trip cost service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// EstimationsTotal tracks total cost estimations.
	EstimationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trip_estimations_total",
			Help: "Total number of trip cost estimations",
		},
		[]string{"status"},
	)

	// EstimationDuration tracks cost estimation duration.
	EstimationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "trip_estimation_duration_seconds",
			Help:    "Trip cost estimation duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	// ComparisonsTotal tracks total scenario comparisons.
	ComparisonsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scenario_comparisons_total",
			Help: "Total number of scenario comparisons",
		},
		[]string{"status"},
	)

	// ComparisonSize tracks how many scenarios each comparison covered.
	ComparisonSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "scenario_comparison_size",
			Help:    "Number of scenarios per comparison",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
		},
	)

	// ForecastFetchesTotal tracks forecast fetches by outcome.
	ForecastFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forecast_fetches_total",
			Help: "Total number of forecast fetches",
		},
		[]string{"result"},
	)

	// ForecastFetchDuration tracks forecast fetch duration.
	ForecastFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "forecast_fetch_duration_seconds",
			Help:    "Forecast fetch duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		},
	)

	// QuoteExtractionsTotal tracks quote text extractions by outcome.
	QuoteExtractionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quote_extractions_total",
			Help: "Total number of quote amount extractions",
		},
		[]string{"result"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordEstimation records metrics for a single cost estimation.
func RecordEstimation(duration time.Duration, status string) {
	EstimationDuration.Observe(duration.Seconds())
	EstimationsTotal.WithLabelValues(status).Inc()
}

// RecordComparison records metrics for a scenario comparison.
func RecordComparison(size int, status string) {
	ComparisonSize.Observe(float64(size))
	ComparisonsTotal.WithLabelValues(status).Inc()
}

// RecordForecastFetch records metrics for a forecast fetch.
func RecordForecastFetch(duration time.Duration, result string) {
	ForecastFetchDuration.Observe(duration.Seconds())
	ForecastFetchesTotal.WithLabelValues(result).Inc()
}

// RecordQuoteExtraction records metrics for a quote extraction.
func RecordQuoteExtraction(result string) {
	QuoteExtractionsTotal.WithLabelValues(result).Inc()
}
