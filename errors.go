package inject

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ========================================
// Core Error Values (Sentinel Errors)
// ========================================
// The typed errors below match these through their Is methods, so callers can
// use errors.Is without knowing the concrete type.

var (
	ErrRegistrationMissing   = errors.New("inject: token not registered")
	ErrCircularDependency    = errors.New("inject: circular dependency detected")
	ErrInstanceCreation      = errors.New("inject: instance creation failed")
	ErrInvalidReplaceOptions = errors.New("inject: invalid replace options")
	ErrUsage                 = errors.New("inject: invalid usage")
	ErrTypeMismatch          = errors.New("inject: type mismatch")
)

var (
	_ error = LifetimeError{}
	_ error = RegistrationMissingError{}
	_ error = CircularDependencyError{}
	_ error = InstanceCreationError{}
	_ error = FactoryPanicError{}
	_ error = InvalidReplaceOptionsError{}
	_ error = UsageError{}
	_ error = TypeMismatchError{}
)

// LifetimeError indicates an invalid lifetime value.
type LifetimeError struct {
	Value any
}

func (e LifetimeError) Error() string {
	return fmt.Sprintf("inject: invalid lifetime: %v", e.Value)
}

func (e LifetimeError) Is(target error) bool {
	return target == ErrUsage
}

// RegistrationMissingError indicates a resolve or replace on a token that was never registered.
type RegistrationMissingError struct {
	Token     reflect.Type
	Operation string // "resolve", "replace"
}

func (e RegistrationMissingError) Error() string {
	return fmt.Sprintf("inject: cannot %s %s: not registered (declare it with MarkShared or MarkFresh first)",
		e.Operation, FormatToken(e.Token))
}

func (e RegistrationMissingError) Is(target error) bool {
	return target == ErrRegistrationMissing
}

// CircularDependencyError indicates a token was resolved again while its own factory was running.
// Chain holds the tokens in the order they were entered, followed by the repeated token.
type CircularDependencyError struct {
	Chain []reflect.Type
}

func (e CircularDependencyError) Error() string {
	names := make([]string, len(e.Chain))
	for i, t := range e.Chain {
		names[i] = FormatToken(t)
	}
	return "inject: circular dependency detected: " + strings.Join(names, " -> ")
}

func (e CircularDependencyError) Is(target error) bool {
	return target == ErrCircularDependency
}

// InstanceCreationError wraps a failure returned (or panicked) by the active factory.
type InstanceCreationError struct {
	Token reflect.Type
	Cause error
}

func (e InstanceCreationError) Error() string {
	return fmt.Sprintf("inject: failed to create instance of %s: %v", FormatToken(e.Token), e.Cause)
}

func (e InstanceCreationError) Unwrap() error {
	return e.Cause
}

func (e InstanceCreationError) Is(target error) bool {
	return target == ErrInstanceCreation
}

// FactoryPanicError captures a panic raised by a factory, with the stack at the point of recovery.
// When the panic value is an error, such as one raised by MustResolve, it is the unwrapped cause.
type FactoryPanicError struct {
	Token reflect.Type
	Panic any
	Stack []byte
}

func (e FactoryPanicError) Error() string {
	return fmt.Sprintf("factory for %s panicked: %v", FormatToken(e.Token), e.Panic)
}

func (e FactoryPanicError) Unwrap() error {
	if err, ok := e.Panic.(error); ok {
		return err
	}
	return nil
}

// InvalidReplaceOptionsError indicates Replace was called without exactly one well-formed override.
type InvalidReplaceOptionsError struct {
	Token  reflect.Type
	Reason string
}

func (e InvalidReplaceOptionsError) Error() string {
	return fmt.Sprintf("inject: invalid replace options for %s: %s (use exactly one of UseClass, UseValue or UseFactory)",
		FormatToken(e.Token), e.Reason)
}

func (e InvalidReplaceOptionsError) Is(target error) bool {
	return target == ErrInvalidReplaceOptions
}

// UsageError indicates a declaration helper was applied to a target it cannot handle.
type UsageError struct {
	Annotation string // "MarkShared", "Register", ...
	Expected   string
	Got        reflect.Type
}

func (e UsageError) Error() string {
	return fmt.Sprintf("inject: %s must be applied to a %s, got %s", e.Annotation, e.Expected, FormatToken(e.Got))
}

func (e UsageError) Is(target error) bool {
	return target == ErrUsage
}

// TypeMismatchError indicates a resolved instance cannot be asserted to the requested type.
type TypeMismatchError struct {
	Expected reflect.Type
	Actual   reflect.Type
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("inject: resolved %s: instance has type %s",
		FormatToken(e.Expected), FormatToken(e.Actual))
}

func (e TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// FormatToken returns the display name of a token used in messages.
func FormatToken(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind() {
	case reflect.Pointer:
		elem := t.Elem()
		if elem.PkgPath() != "" && elem.Name() != "" {
			return "*" + elem.Name()
		}
		return t.String()
	case reflect.Slice:
		elem := t.Elem()
		if elem.PkgPath() != "" && elem.Name() != "" {
			return "[]" + elem.Name()
		}
		return t.String()
	case reflect.Func:
		return t.String()
	default:
		if t.Name() != "" {
			return t.Name()
		}
		return t.String()
	}
}
