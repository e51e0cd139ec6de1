// Package injecttest provides helpers for tests that override inject registrations.
package injecttest

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junioryono/inject"
)

// Replace overrides token in r and resets r when the test ends.
func Replace(t testing.TB, r *inject.Registry, token reflect.Type, opts ...inject.ReplaceOption) {
	t.Helper()
	require.NoError(t, r.Replace(token, opts...), "failed to replace %s", inject.FormatToken(token))
	t.Cleanup(r.Reset)
}

// ReplaceValue makes the token of T resolve to value until the test ends.
func ReplaceValue[T any](t testing.TB, r *inject.Registry, value T) {
	t.Helper()
	Replace(t, r, inject.TokenOf[T](), inject.UseValue(value))
}

// ReplaceFunc makes the token of T resolve through ctor until the test ends.
func ReplaceFunc[T any](t testing.TB, r *inject.Registry, ctor func() (T, error)) {
	t.Helper()
	Replace(t, r, inject.TokenOf[T](), inject.UseFactoryOf(ctor))
}

// AssertResolvable checks that T resolves without error and returns the instance.
func AssertResolvable[T any](t testing.TB, r *inject.Registry) T {
	t.Helper()
	instance, err := inject.Resolve[T](r)
	require.NoError(t, err, "failed to resolve %s", inject.FormatToken(inject.TokenOf[T]()))
	return instance
}

// AssertSameInstance resolves T twice and checks both results are the same pointer.
// T must be a pointer type.
func AssertSameInstance[T any](t testing.TB, r *inject.Registry) T {
	t.Helper()
	first := AssertResolvable[T](t, r)
	second := AssertResolvable[T](t, r)
	assert.Same(t, first, second, "expected %s to resolve to a single instance", inject.FormatToken(inject.TokenOf[T]()))
	return first
}

// AssertDistinctInstances resolves T twice and checks the results are different pointers.
// T must be a pointer type.
func AssertDistinctInstances[T any](t testing.TB, r *inject.Registry) {
	t.Helper()
	first := AssertResolvable[T](t, r)
	second := AssertResolvable[T](t, r)
	assert.NotSame(t, first, second, "expected %s to resolve to a new instance each time", inject.FormatToken(inject.TokenOf[T]()))
}

// AssertCircular checks that err reports a circular dependency through the given token names.
func AssertCircular(t testing.TB, err error, chain ...string) {
	t.Helper()
	require.ErrorIs(t, err, inject.ErrCircularDependency)
	assert.Contains(t, err.Error(), strings.Join(chain, " -> "))
}
