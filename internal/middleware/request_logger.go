package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/trip-cost-service/internal/logger"
)

// RequestLogger returns a middleware that logs HTTP request details in JSON format.
// It logs: request ID, method, path, status code, latency, IP, and user agent.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := GetRequestID(c)

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()

		log := logger.Logger().With().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status_code", statusCode).
			Int64("duration_ms", latency.Milliseconds()).
			Str("ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Logger()

		// Log level based on status code
		switch {
		case statusCode >= 500:
			log.Error().Msg("HTTP request")
		case statusCode >= 400:
			log.Warn().Msg("HTTP request")
		default:
			log.Info().Msg("HTTP request")
		}
	}
}
