// Package inject provides a minimal dependency-injection registry.
//
// # Overview
//
// Types are declared with a lifetime and resolved on demand:
//   - Shared: one instance per Registry, created on first resolution and reused
//   - Fresh: a new instance on every resolution
//
// There is no auto-wiring of constructor parameters. A constructor that needs a
// dependency resolves it while it runs, and the Registry rejects any resolution
// that re-enters a token whose construction is still in progress.
//
// # Basic Usage
//
//	r := inject.New()
//
//	_ = inject.MarkShared[*Config](r)
//	_ = inject.MarkSharedFunc(r, func() (*Database, error) {
//	    cfg, err := inject.Resolve[*Config](r)
//	    if err != nil {
//	        return nil, err
//	    }
//	    return OpenDatabase(cfg.DSN)
//	})
//
//	db, err := inject.Resolve[*Database](r)
//
// # Testing
//
// Replace swaps a token's factory without touching its declaration, and Reset
// restores every declaration and drops all cached instances:
//
//	func TestHandler(t *testing.T) {
//	    r := inject.Default()
//	    t.Cleanup(r.Reset)
//
//	    err := inject.Replace[*Database](r, inject.UseValue(fakeDB))
//	    ...
//	}
//
// The injecttest package wraps this pattern.
//
// # Errors
//
// Every failure is returned immediately and wraps one of the sentinel errors
// (ErrRegistrationMissing, ErrCircularDependency, ErrInstanceCreation,
// ErrInvalidReplaceOptions, ErrUsage, ErrTypeMismatch), so errors.Is works on
// any error returned by this package. Registering a token twice is not an error:
// the new declaration wins and a warning is sent to the Registry's Logger.
//
// # Concurrency
//
// A Registry is not safe for concurrent use. Declare and resolve from a single
// goroutine, typically at startup.
package inject
