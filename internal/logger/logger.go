// Package logger provides structured JSON logging using zerolog.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init initializes the global logger. Unknown levels fall back to info.
func Init(level string, pretty bool) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || logLevel == zerolog.NoLevel {
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
}

// Logger returns the global logger instance.
func Logger() zerolog.Logger {
	return log.Logger
}

// With returns the global logger extended with the given component field.
func With(component string) zerolog.Logger {
	return log.Logger.With().Str("component", component).Logger()
}
