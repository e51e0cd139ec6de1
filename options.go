package inject

import "log/slog"

// Logger receives advisory diagnostics from a Registry.
// It never affects control flow. *slog.Logger satisfies it; see the injectzap and
// injectzerolog packages for adapters.
type Logger interface {
	Warn(msg string, args ...any)
}

// Option configures a Registry.
type Option interface {
	apply(*options)
}

// options holds registry configuration.
type options struct {
	logger Logger
}

// optionFunc adapts a function to Option.
type optionFunc func(*options)

func (f optionFunc) apply(opts *options) {
	f(opts)
}

// WithLogger sets the sink that receives re-registration warnings.
// Passing nil discards them.
func WithLogger(logger Logger) Option {
	return optionFunc(func(opts *options) {
		if logger == nil {
			logger = discardLogger()
		}
		opts.logger = logger
	})
}

// defaultOptions leaves logger unset so warnings follow slog.Default at the time they are emitted.
func defaultOptions() *options {
	return &options{}
}

func discardLogger() Logger {
	return slog.New(slog.DiscardHandler)
}
