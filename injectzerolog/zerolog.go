// Package injectzerolog sends inject diagnostics to a zerolog logger.
package injectzerolog

import (
	"github.com/rs/zerolog"

	"github.com/junioryono/inject"
)

var _ inject.Logger = (*Logger)(nil)

// Logger adapts a zerolog.Logger to inject.Logger.
type Logger struct {
	logger zerolog.Logger
}

// New wraps l.
func New(l zerolog.Logger) *Logger {
	return &Logger{logger: l}
}

// Warn logs msg at warn level with args as alternating keys and values.
func (l *Logger) Warn(msg string, args ...any) {
	event := l.logger.Warn()
	if len(args) > 0 {
		event = event.Fields(args)
	}
	event.Msg(msg)
}
