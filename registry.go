package inject

import (
	"fmt"
	"log/slog"
	"reflect"
	"runtime/debug"
	"sort"
)

// classShape describes the tokens that can be constructed without an explicit factory.
const classShape = "struct or pointer to struct"

// Factory builds an instance for a token. It takes no arguments; a factory that needs
// dependencies resolves them from the Registry while it runs.
type Factory func() (any, error)

// registration is the per-token record kept by a Registry.
type registration struct {
	lifetime Lifetime

	// originalFactory is the factory the token was declared with. Reset restores it.
	originalFactory Factory

	// currentFactory is the factory Resolve invokes. Replace overwrites it.
	currentFactory Factory
	replaced       bool

	// instance is only meaningful for Shared tokens when hasInstance is set.
	instance    any
	hasInstance bool

	// generation changes on Replace and Reset so a construction that straddles
	// either one does not cache its result.
	generation uint64
}

func (reg *registration) clearInstance() {
	reg.instance = nil
	reg.hasInstance = false
}

// Registry maps tokens to registrations and resolves instances from them.
//
// A Registry tracks the tokens whose factories are currently running and rejects
// re-entrant resolution of any of them as a circular dependency.
//
// Registry is NOT thread-safe. Registration and resolution are expected to be
// driven by a single goroutine, at startup and in tests.
type Registry struct {
	registrations map[reflect.Type]*registration

	// resolving holds the tokens under construction in the order they were entered.
	resolving []reflect.Type
	inFlight  map[reflect.Type]struct{}

	logger Logger
}

// New creates an empty Registry.
//
// Example:
//
//	r := inject.New(inject.WithLogger(slog.Default()))
//	_ = inject.MarkShared[*Config](r)
//	cfg, err := inject.Resolve[*Config](r)
func New(opts ...Option) *Registry {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt.apply(o)
		}
	}

	return &Registry{
		registrations: make(map[reflect.Type]*registration),
		inFlight:      make(map[reflect.Type]struct{}),
		logger:        o.logger,
	}
}

// Register declares token with the given lifetime and a default factory that
// constructs the token with no arguments: a pointer token gets a new zeroed struct,
// a struct token gets its zero value. Other kinds fail with a UsageError.
//
// Registering a token again overwrites the previous registration and logs a warning.
func (r *Registry) Register(token reflect.Type, lifetime Lifetime) error {
	factory, err := defaultFactory("Register", token)
	if err != nil {
		return err
	}

	return r.register(token, lifetime, factory)
}

// RegisterFunc declares token with the given lifetime and factory.
func (r *Registry) RegisterFunc(token reflect.Type, lifetime Lifetime, factory Factory) error {
	if token == nil {
		return UsageError{Annotation: "RegisterFunc", Expected: "non-nil token"}
	}
	if factory == nil {
		return UsageError{Annotation: "RegisterFunc", Expected: "non-nil factory", Got: token}
	}

	return r.register(token, lifetime, factory)
}

func (r *Registry) register(token reflect.Type, lifetime Lifetime, factory Factory) error {
	if !lifetime.IsValid() {
		return LifetimeError{Value: int(lifetime)}
	}

	if previous, ok := r.registrations[token]; ok {
		r.warn(
			fmt.Sprintf("inject: re-registering %s (lifetime %s -> %s); previous factory, overrides and cached instance discarded",
				FormatToken(token), previous.lifetime, lifetime),
			"token", FormatToken(token),
			"previous", previous.lifetime,
			"lifetime", lifetime,
		)
	}

	r.registrations[token] = &registration{
		lifetime:        lifetime,
		originalFactory: factory,
		currentFactory:  factory,
	}

	return nil
}

// Resolve returns an instance for token.
//
// Shared tokens are constructed on first resolution and the instance is reused
// afterwards. Fresh tokens are constructed on every call. A failed resolution
// leaves the registry as it was before the call.
func (r *Registry) Resolve(token reflect.Type) (any, error) {
	reg, ok := r.registrations[token]
	if !ok {
		return nil, RegistrationMissingError{Token: token, Operation: "resolve"}
	}

	if _, busy := r.inFlight[token]; busy {
		chain := make([]reflect.Type, 0, len(r.resolving)+1)
		chain = append(chain, r.resolving...)
		chain = append(chain, token)
		return nil, CircularDependencyError{Chain: chain}
	}

	if reg.lifetime == Shared && reg.hasInstance {
		return reg.instance, nil
	}

	generation := reg.generation
	instance, err := r.construct(token, reg.currentFactory)
	if err != nil {
		return nil, err
	}

	if reg.lifetime == Shared && reg.generation == generation && r.registrations[token] == reg {
		reg.instance = instance
		reg.hasInstance = true
	}

	return instance, nil
}

// construct runs factory with token on the resolution stack.
func (r *Registry) construct(token reflect.Type, factory Factory) (instance any, err error) {
	r.push(token)
	defer r.pop(token)

	defer func() {
		if p := recover(); p != nil {
			instance = nil
			err = InstanceCreationError{
				Token: token,
				Cause: FactoryPanicError{Token: token, Panic: p, Stack: debug.Stack()},
			}
		}
	}()

	instance, err = factory()
	if err != nil {
		return nil, InstanceCreationError{Token: token, Cause: err}
	}

	return instance, nil
}

func (r *Registry) push(token reflect.Type) {
	r.resolving = append(r.resolving, token)
	r.inFlight[token] = struct{}{}
}

// pop removes token from the resolution stack. Reset may already have emptied it.
func (r *Registry) pop(token reflect.Type) {
	delete(r.inFlight, token)
	for i := len(r.resolving) - 1; i >= 0; i-- {
		if r.resolving[i] == token {
			r.resolving = append(r.resolving[:i], r.resolving[i+1:]...)
			return
		}
	}
}

// Replace overrides the factory used for token until the next Reset.
// Exactly one of UseClass, UseValue or UseFactory must be given. The cached
// instance for token is dropped; the original factory is kept.
func (r *Registry) Replace(token reflect.Type, opts ...ReplaceOption) error {
	reg, ok := r.registrations[token]
	if !ok {
		return RegistrationMissingError{Token: token, Operation: "replace"}
	}

	factory, err := r.replacementFactory(token, opts)
	if err != nil {
		return err
	}

	reg.currentFactory = factory
	reg.replaced = true
	reg.generation++
	reg.clearInstance()

	return nil
}

// Reset restores every token to its original factory, drops all cached
// instances and empties the resolution stack. Registrations are kept.
func (r *Registry) Reset() {
	for _, reg := range r.registrations {
		reg.currentFactory = reg.originalFactory
		reg.replaced = false
		reg.generation++
		reg.clearInstance()
	}

	r.resolving = r.resolving[:0]
	clear(r.inFlight)
}

// IsRegistered checks if token has been registered.
func (r *Registry) IsRegistered(token reflect.Type) bool {
	_, ok := r.registrations[token]
	return ok
}

// LifetimeOf returns the lifetime token was registered with.
func (r *Registry) LifetimeOf(token reflect.Type) (Lifetime, bool) {
	reg, ok := r.registrations[token]
	if !ok {
		return 0, false
	}
	return reg.lifetime, true
}

// IsReplaced reports whether token currently resolves through a Replace override.
func (r *Registry) IsReplaced(token reflect.Type) bool {
	reg, ok := r.registrations[token]
	return ok && reg.replaced
}

// Tokens returns the registered tokens sorted by display name.
func (r *Registry) Tokens() []reflect.Type {
	tokens := make([]reflect.Type, 0, len(r.registrations))
	for token := range r.registrations {
		tokens = append(tokens, token)
	}

	sort.Slice(tokens, func(i, j int) bool {
		a, b := FormatToken(tokens[i]), FormatToken(tokens[j])
		if a != b {
			return a < b
		}
		return tokens[i].String() < tokens[j].String()
	})

	return tokens
}

// Count returns the number of registered tokens.
func (r *Registry) Count() int {
	return len(r.registrations)
}

func (r *Registry) warn(msg string, args ...any) {
	if r.logger == nil {
		slog.Default().Warn(msg, args...)
		return
	}
	r.logger.Warn(msg, args...)
}

// defaultFactory returns the no-argument constructor for a class-shaped token.
func defaultFactory(annotation string, token reflect.Type) (Factory, error) {
	if token == nil {
		return nil, UsageError{Annotation: annotation, Expected: classShape}
	}

	switch {
	case token.Kind() == reflect.Pointer && token.Elem().Kind() == reflect.Struct:
		elem := token.Elem()
		return func() (any, error) {
			return reflect.New(elem).Interface(), nil
		}, nil
	case token.Kind() == reflect.Struct:
		return func() (any, error) {
			return reflect.Zero(token).Interface(), nil
		}, nil
	default:
		return nil, UsageError{Annotation: annotation, Expected: classShape, Got: token}
	}
}
