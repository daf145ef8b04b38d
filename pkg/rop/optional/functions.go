package optional

import (
	"fmt"
)

// Shape is the structural contract every Option satisfies regardless of T.
type Shape interface {
	IsOptionalInstance() bool
	ValuePresent() bool
	ValueAbsent() bool
	Payload() any
}

// Map applies f to the value of Some. Alias: Transform.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.present {
		return Some(f(o.value))
	}
	return None[U]()
}

// NullableMap is Map with the result passed through FromNullable.
func NullableMap[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.present {
		return FromNullable(f(o.value))
	}
	return None[U]()
}

// FlatMap returns f's Option on Some.
func FlatMap[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if o.present {
		return f(o.value)
	}
	return None[U]()
}

// Clauses are the branches of Match. A nil Some is the identity; a nil None fails.
type Clauses[T, U any] struct {
	Some func(T) U
	None func() U
}

// Match dispatches to the clause for o's variant.
func Match[T, U any](o Option[T], c Clauses[T, U]) (U, error) {
	var zero U

	if o.present {
		if c.Some != nil {
			return c.Some(o.value), nil
		}
		u, ok := any(o.value).(U)
		if !ok {
			return zero, fmt.Errorf("optional: identity match from %T", o.value)
		}
		return u, nil
	}

	if c.None != nil {
		return c.None(), nil
	}
	return zero, &UnwrapError{Message: "no None clause"}
}

// All returns Some of every value in order, or None if any option is None.
func All[T any](opts ...Option[T]) Option[[]T] {
	values := make([]T, 0, len(opts))
	for _, o := range opts {
		if !o.present {
			return None[[]T]()
		}
		values = append(values, o.value)
	}
	return Some(values)
}

// First returns the first Some, or None.
func First[T any](opts ...Option[T]) Option[T] {
	for _, o := range opts {
		if o.present {
			return o
		}
	}
	return None[T]()
}

// Values drops every None and keeps the order of the rest.
func Values[T any](opts ...Option[T]) []T {
	values := make([]T, 0, len(opts))
	for _, o := range opts {
		if o.present {
			values = append(values, o.value)
		}
	}
	return values
}

// IsOptional reports whether v carries the optional marker, either as a Shape
// or as a parsed plain object.
func IsOptional(v any) bool {
	switch s := v.(type) {
	case Shape:
		return s.IsOptionalInstance()
	case map[string]any:
		marker, ok := s[markerKey].(bool)
		return ok && marker
	}
	return false
}

func IsSome(v any) bool {
	if !IsOptional(v) {
		return false
	}
	if s, ok := v.(Shape); ok {
		return s.ValuePresent()
	}
	present, _ := v.(map[string]any)[presentKey].(bool)
	return present
}

func IsNone(v any) bool {
	return IsOptional(v) && !IsSome(v)
}
