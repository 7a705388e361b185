package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected zerolog.Level
	}{
		{name: "debug", level: "debug", expected: zerolog.DebugLevel},
		{name: "info", level: "info", expected: zerolog.InfoLevel},
		{name: "warn", level: "warn", expected: zerolog.WarnLevel},
		{name: "error", level: "error", expected: zerolog.ErrorLevel},
		{name: "unknown falls back to info", level: "loud", expected: zerolog.InfoLevel},
		{name: "empty falls back to info", level: "", expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.level, false)
			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
}

func TestInit_Pretty(t *testing.T) {
	// Must not panic; console writer output is not asserted.
	Init("info", true)
	l := Logger()
	l.Info().Msg("pretty logger initialized")
}

func TestWith(t *testing.T) {
	Init("info", false)
	l := With("forecast")
	l.Info().Msg("component logger works")
}
