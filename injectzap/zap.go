// Package injectzap sends inject diagnostics to a zap logger.
package injectzap

import (
	"go.uber.org/zap"

	"github.com/junioryono/inject"
)

var _ inject.Logger = (*Logger)(nil)

// Logger adapts a *zap.Logger to inject.Logger.
type Logger struct {
	sugar *zap.SugaredLogger
}

// New wraps l. A nil l yields a no-op logger.
func New(l *zap.Logger) *Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return &Logger{sugar: l.Sugar()}
}

// Warn logs msg at warn level with args as alternating keys and values.
func (l *Logger) Warn(msg string, args ...any) {
	l.sugar.Warnw(msg, args...)
}
