// Package circuitbreaker guards calls to an external dependency and stops
// issuing them after repeated failures.
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/guttosm/trip-cost-service/internal/logger"
)

// ErrCircuitOpen is returned when the circuit is open and the call was not made.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// State is the current mode of the breaker.
type State int

const (
	// StateClosed passes calls through normally.
	StateClosed State = iota
	// StateOpen rejects calls without making them.
	StateOpen
	// StateHalfOpen lets probe calls through to test recovery.
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// Config holds circuit breaker tuning.
type Config struct {
	// FailureThreshold is the number of consecutive failures that opens the circuit.
	FailureThreshold int
	// SuccessThreshold is the number of consecutive probe successes that closes it again.
	SuccessThreshold int
	// Timeout is how long the circuit stays open before allowing a probe.
	Timeout time.Duration
	// Name identifies the breaker in log output.
	Name string
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Timeout:          30 * time.Second,
		Name:             "circuit-breaker",
	}
}

// CircuitBreaker tracks consecutive failures of a guarded call and short
// circuits once the failure threshold is reached.
type CircuitBreaker struct {
	config          Config
	state           State
	failureCount    int
	successCount    int
	lastFailureTime time.Time
	mu              sync.RWMutex
}

// New creates a breaker in the closed state.
func New(config Config) *CircuitBreaker {
	return &CircuitBreaker{
		config: config,
		state:  StateClosed,
	}
}

// Execute runs fn under the breaker. When the circuit is open the call is
// skipped and ErrCircuitOpen is returned; otherwise fn's error is returned
// and counted.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func() error) error {
	cb.mu.Lock()
	if cb.state == StateOpen {
		if time.Since(cb.lastFailureTime) < cb.config.Timeout {
			cb.mu.Unlock()
			return ErrCircuitOpen
		}
		cb.state = StateHalfOpen
		cb.successCount = 0
		l := logger.Logger()
		l.Info().
			Str("circuit_breaker", cb.config.Name).
			Msg("Circuit breaker transitioning to half-open")
	}
	cb.mu.Unlock()

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	if err != nil {
		cb.onFailure()
		return err
	}

	cb.onSuccess()
	return nil
}

// onFailure counts a failure and opens the circuit when warranted.
// Caller must hold mu.
func (cb *CircuitBreaker) onFailure() {
	cb.failureCount++
	cb.lastFailureTime = time.Now()

	switch cb.state {
	case StateClosed:
		if cb.failureCount >= cb.config.FailureThreshold {
			cb.state = StateOpen
			l := logger.Logger()
			l.Warn().
				Str("circuit_breaker", cb.config.Name).
				Int("failure_count", cb.failureCount).
				Msg("Circuit breaker opened")
		}
	case StateHalfOpen:
		// A failed probe reopens immediately.
		cb.state = StateOpen
		cb.failureCount = cb.config.FailureThreshold
		l := logger.Logger()
		l.Warn().
			Str("circuit_breaker", cb.config.Name).
			Msg("Circuit breaker reopened after failed probe")
	}
}

// onSuccess counts a success and closes the circuit once enough probes pass.
// Caller must hold mu.
func (cb *CircuitBreaker) onSuccess() {
	cb.failureCount = 0

	switch cb.state {
	case StateHalfOpen:
		cb.successCount++
		if cb.successCount >= cb.config.SuccessThreshold {
			cb.state = StateClosed
			cb.successCount = 0
			l := logger.Logger()
			l.Info().
				Str("circuit_breaker", cb.config.Name).
				Msg("Circuit breaker closed after recovery")
		}
	case StateClosed:
		cb.successCount = 0
	}
}

// State returns the current state.
func (cb *CircuitBreaker) State() State {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

// IsOpen reports whether calls are currently being rejected.
func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state == StateOpen
}

// Stats is a point-in-time snapshot for monitoring.
type Stats struct {
	State        string
	FailureCount int
	SuccessCount int
	LastFailure  time.Time
	IsHealthy    bool
}

// GetStats returns the current snapshot.
func (cb *CircuitBreaker) GetStats() Stats {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	return Stats{
		State:        cb.state.String(),
		FailureCount: cb.failureCount,
		SuccessCount: cb.successCount,
		LastFailure:  cb.lastFailureTime,
		IsHealthy:    cb.state == StateClosed,
	}
}
