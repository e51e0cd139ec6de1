package inject

var (
	// defaultRegistry holds the process-wide Registry.
	defaultRegistry = New()
)

// SetDefault sets the Registry returned by Default.
// This is similar to slog.SetDefault. Passing nil installs a new empty Registry.
func SetDefault(r *Registry) {
	if r == nil {
		r = New()
	}
	defaultRegistry = r
}

// Default returns the process-wide Registry used by declarations made at init time.
func Default() *Registry {
	return defaultRegistry
}
