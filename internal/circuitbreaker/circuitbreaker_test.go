package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCircuitBreaker_Execute_Success(t *testing.T) {
	cb := New(DefaultConfig())

	err := cb.Execute(context.Background(), func() error {
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cb := New(Config{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          100 * time.Millisecond,
		Name:             "test",
	})

	callErr := errors.New("upstream down")

	err := cb.Execute(context.Background(), func() error {
		return callErr
	})
	assert.Equal(t, callErr, err)
	assert.Equal(t, StateClosed, cb.State())

	err = cb.Execute(context.Background(), func() error {
		return callErr
	})
	assert.Equal(t, callErr, err)
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err = cb.Execute(context.Background(), func() error {
		called = true
		return nil
	})
	assert.Equal(t, ErrCircuitOpen, err)
	assert.False(t, called, "guarded call must be skipped while open")
}

func TestCircuitBreaker_Recovery(t *testing.T) {
	cb := New(Config{
		FailureThreshold: 2,
		SuccessThreshold: 2,
		Timeout:          50 * time.Millisecond,
		Name:             "test",
	})

	for i := 0; i < 2; i++ {
		_ = cb.Execute(context.Background(), func() error {
			return errors.New("upstream down")
		})
	}
	assert.Equal(t, StateOpen, cb.State())

	time.Sleep(60 * time.Millisecond)

	err := cb.Execute(context.Background(), func() error {
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, StateHalfOpen, cb.State())

	err = cb.Execute(context.Background(), func() error {
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_FailedProbeReopens(t *testing.T) {
	cb := New(Config{
		FailureThreshold: 2,
		SuccessThreshold: 2,
		Timeout:          50 * time.Millisecond,
		Name:             "test",
	})

	for i := 0; i < 2; i++ {
		_ = cb.Execute(context.Background(), func() error {
			return errors.New("upstream down")
		})
	}
	assert.Equal(t, StateOpen, cb.State())

	time.Sleep(60 * time.Millisecond)

	err := cb.Execute(context.Background(), func() error {
		return errors.New("still down")
	})
	assert.Error(t, err)
	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_GetStats(t *testing.T) {
	cb := New(DefaultConfig())

	stats := cb.GetStats()
	assert.Equal(t, "closed", stats.State)
	assert.True(t, stats.IsHealthy)
	assert.Equal(t, 0, stats.FailureCount)

	_ = cb.Execute(context.Background(), func() error {
		return errors.New("upstream down")
	})

	stats = cb.GetStats()
	assert.Equal(t, 1, stats.FailureCount)
	assert.False(t, stats.LastFailure.IsZero())
}

func TestCircuitBreaker_IsOpen(t *testing.T) {
	cb := New(Config{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          100 * time.Millisecond,
		Name:             "test",
	})

	assert.False(t, cb.IsOpen())

	_ = cb.Execute(context.Background(), func() error {
		return errors.New("upstream down")
	})

	assert.True(t, cb.IsOpen())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "half-open", StateHalfOpen.String())
	assert.Equal(t, "unknown", State(42).String())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 5, cfg.FailureThreshold)
	assert.Equal(t, 2, cfg.SuccessThreshold)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "circuit-breaker", cfg.Name)
}
