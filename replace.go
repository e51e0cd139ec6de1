package inject

import "reflect"

type replaceMode int

const (
	replaceNone replaceMode = iota
	replaceClass
	replaceValue
	replaceFactory
)

// ReplaceOption selects how Replace overrides a token's factory.
// The zero value selects nothing and is rejected by Replace.
type ReplaceOption struct {
	mode    replaceMode
	class   reflect.Type
	value   any
	factory Factory
}

// UseClass delegates construction to another registered token. The replacement goes
// through Resolve, so its own lifetime, cache and cycle detection apply.
func UseClass(token reflect.Type) ReplaceOption {
	return ReplaceOption{mode: replaceClass, class: token}
}

// UseClassOf is UseClass for the token of T.
func UseClassOf[T any]() ReplaceOption {
	return UseClass(TokenOf[T]())
}

// UseValue makes the token resolve to value exactly, with no wrapping. A nil value is allowed.
func UseValue(value any) ReplaceOption {
	return ReplaceOption{mode: replaceValue, value: value}
}

// UseFactory adopts factory as the token's current factory.
func UseFactory(factory Factory) ReplaceOption {
	return ReplaceOption{mode: replaceFactory, factory: factory}
}

// UseFactoryOf is UseFactory for a typed constructor.
func UseFactoryOf[T any](ctor func() (T, error)) ReplaceOption {
	if ctor == nil {
		return UseFactory(nil)
	}
	return UseFactory(func() (any, error) {
		return ctor()
	})
}

func (r *Registry) replacementFactory(token reflect.Type, opts []ReplaceOption) (Factory, error) {
	switch len(opts) {
	case 0:
		return nil, InvalidReplaceOptionsError{Token: token, Reason: "no override given"}
	case 1:
	default:
		return nil, InvalidReplaceOptionsError{Token: token, Reason: "more than one override given"}
	}

	opt := opts[0]
	switch opt.mode {
	case replaceClass:
		if opt.class == nil {
			return nil, InvalidReplaceOptionsError{Token: token, Reason: "UseClass needs a non-nil token"}
		}
		class := opt.class
		return func() (any, error) {
			return r.Resolve(class)
		}, nil
	case replaceValue:
		value := opt.value
		return func() (any, error) {
			return value, nil
		}, nil
	case replaceFactory:
		if opt.factory == nil {
			return nil, InvalidReplaceOptionsError{Token: token, Reason: "UseFactory needs a non-nil factory"}
		}
		return opt.factory, nil
	default:
		return nil, InvalidReplaceOptionsError{Token: token, Reason: "no override given"}
	}
}
