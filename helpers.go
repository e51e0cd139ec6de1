package inject

import "reflect"

// TokenOf returns the token for type T.
func TokenOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// MarkShared declares T as Shared with its default no-argument construction.
// T must be a struct or a pointer to a struct.
//
// Call it right after the type declaration, typically from init:
//
//	type Clock struct{ now func() time.Time }
//
//	func init() { inject.MustMarkShared[*Clock](inject.Default()) }
func MarkShared[T any](r *Registry) error {
	return mark[T](r, "MarkShared", Shared)
}

// MarkFresh declares T as Fresh with its default no-argument construction.
// T must be a struct or a pointer to a struct.
func MarkFresh[T any](r *Registry) error {
	return mark[T](r, "MarkFresh", Fresh)
}

// MustMarkShared is like MarkShared but panics on error.
func MustMarkShared[T any](r *Registry) {
	if err := MarkShared[T](r); err != nil {
		panic(err)
	}
}

// MustMarkFresh is like MarkFresh but panics on error.
func MustMarkFresh[T any](r *Registry) {
	if err := MarkFresh[T](r); err != nil {
		panic(err)
	}
}

// MarkSharedFunc declares T as Shared, constructed by ctor.
// T may be any type, including an interface.
func MarkSharedFunc[T any](r *Registry, ctor func() (T, error)) error {
	return markFunc(r, "MarkSharedFunc", Shared, ctor)
}

// MarkFreshFunc declares T as Fresh, constructed by ctor.
func MarkFreshFunc[T any](r *Registry, ctor func() (T, error)) error {
	return markFunc(r, "MarkFreshFunc", Fresh, ctor)
}

func mark[T any](r *Registry, annotation string, lifetime Lifetime) error {
	token := TokenOf[T]()
	factory, err := defaultFactory(annotation, token)
	if err != nil {
		return err
	}

	return r.register(token, lifetime, factory)
}

func markFunc[T any](r *Registry, annotation string, lifetime Lifetime, ctor func() (T, error)) error {
	token := TokenOf[T]()
	if ctor == nil {
		return UsageError{Annotation: annotation, Expected: "non-nil constructor", Got: token}
	}

	return r.register(token, lifetime, func() (any, error) {
		return ctor()
	})
}

// Resolve resolves the token of T from r and returns it as T.
func Resolve[T any](r *Registry) (T, error) {
	var zero T

	instance, err := r.Resolve(TokenOf[T]())
	if err != nil {
		return zero, err
	}
	if instance == nil {
		return zero, nil
	}

	typed, ok := instance.(T)
	if !ok {
		return zero, TypeMismatchError{Expected: TokenOf[T](), Actual: reflect.TypeOf(instance)}
	}

	return typed, nil
}

// MustResolve resolves a token and panics on error.
func MustResolve[T any](r *Registry) T {
	instance, err := Resolve[T](r)
	if err != nil {
		panic(err)
	}
	return instance
}

// Replace overrides the factory for the token of T. See Registry.Replace.
func Replace[T any](r *Registry, opts ...ReplaceOption) error {
	return r.Replace(TokenOf[T](), opts...)
}
