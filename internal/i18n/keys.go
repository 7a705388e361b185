// Package i18n provides internationalization support for the trip cost service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyValidationTripParameters indicates invalid trip parameters.
	ErrKeyValidationTripParameters = "error.validation.trip_parameters"
	// ErrKeyValidationScenario indicates an invalid scenario payload.
	ErrKeyValidationScenario = "error.validation.scenario"
	// ErrKeyValidationDateRange indicates an invalid or unparsable date range.
	ErrKeyValidationDateRange = "error.validation.date_range"
	// ErrKeyScenarioNotFound indicates an unknown scenario id.
	ErrKeyScenarioNotFound = "error.scenario_not_found"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// Success message translation keys.
const (
	// SuccessKeyEstimateComputed indicates a successful cost estimate.
	SuccessKeyEstimateComputed = "success.estimate_computed"
)
