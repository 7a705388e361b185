package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/trip-cost-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data (CostBreakdown, comparison rows, etc.)
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-06-13T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"nights: must be at least 2"`
	// Details contains additional error details (optional)
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-06-13T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}

// ComparisonRowResponse is one formatted row of the comparison table.
// @Description One comparison row with display-ready dates
type ComparisonRowResponse struct {
	Label         string  `json:"label" example:"ferry weekend"`
	StartDate     string  `json:"start_date" example:"2025-06-13"`
	EndDate       string  `json:"end_date" example:"2025-06-16"`
	DistanceMiles float64 `json:"distance_miles" example:"400"`
	Total         float64 `json:"total" example:"701.3"`
	PerPerson     float64 `json:"per_person" example:"350.65"`
} // @name ComparisonRowResponse

// NewComparisonRows formats domain comparison rows for the wire,
// preserving their order.
func NewComparisonRows(rows []model.ComparisonRow) []ComparisonRowResponse {
	out := make([]ComparisonRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, ComparisonRowResponse{
			Label:         row.Label,
			StartDate:     row.StartDate.Format(DateLayout),
			EndDate:       row.EndDate.Format(DateLayout),
			DistanceMiles: row.DistanceMiles,
			Total:         row.Total,
			PerPerson:     row.PerPerson,
		})
	}
	return out
}

// QuoteAmountsResponse carries the extracted dollar amounts, largest first.
// @Description Dollar amounts extracted from pasted text, largest first
type QuoteAmountsResponse struct {
	Amounts []float64 `json:"amounts" example:"201.3,55,36.3"`
} // @name QuoteAmountsResponse
