// Package logging wraps github.com/rs/zerolog the way
// resoltico-y/internal/logger wraps it: a small adapter exposing
// Info/Warn/Error/Debug with a component tag and a freeform field map,
// rather than handing zerolog's own chained API to every caller.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is the component-tagged logging surface parabolic and
// morphcli call into.
type Logger struct {
	logger zerolog.Logger
}

// New builds a Logger writing to writer at the given level.
func New(writer io.Writer, level zerolog.Level) *Logger {
	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()
	return &Logger{logger: logger}
}

// NewConsole builds a Logger writing human-readable output to stdout,
// the default for morphcli's interactive mode.
func NewConsole(level zerolog.Level) *Logger {
	return New(zerolog.ConsoleWriter{Out: os.Stdout}, level)
}

// Nop returns a Logger that discards everything, for callers (tests,
// library use of parabolic without a CLI) that never configured one.
func Nop() *Logger {
	return New(io.Discard, zerolog.Disabled)
}

func (l *Logger) Info(component, message string, fields map[string]interface{}) {
	event := l.logger.Info().Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

func (l *Logger) Warn(component, message string, fields map[string]interface{}) {
	event := l.logger.Warn().Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

func (l *Logger) Error(component string, err error, fields map[string]interface{}) {
	event := l.logger.Error().Str("component", component).Err(err)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg("operation failed")
}

// Debug is the channel the error-handling policy in spec.md section 7
// names for arithmetic underflow (a clamp happened, logged but not
// fatal): enabled only when the logger's level is Debug or below.
func (l *Logger) Debug(component, message string, fields map[string]interface{}) {
	event := l.logger.Debug().Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}
