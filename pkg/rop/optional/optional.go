package optional

import (
	"fmt"
	"strings"

	"github.com/ib-77/outcome/internal/reflectx"
)

// Option holds either a value of type T (Some) or nothing (None).
// The zero value is None.
type Option[T any] struct {
	value   T
	present bool
}

// Some wraps v. Some(nil) is a present value; use FromNullable to treat nil as absent.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromNullable returns None for nil interfaces and typed nils, Some otherwise.
func FromNullable[T any](v T) Option[T] {
	if reflectx.IsNil(v) {
		return None[T]()
	}
	return Some(v)
}

// FromPtr returns None for a nil pointer and Some of the pointee otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// When returns Some(v) if cond holds.
func When[T any](cond bool, v T) Option[T] {
	if cond {
		return Some(v)
	}
	return None[T]()
}

func (o Option[T]) IsSome() bool {
	return o.present
}

func (o Option[T]) IsNone() bool {
	return !o.present
}

// ValuePresent and ValueAbsent are the presence flags of the serialized shape.
func (o Option[T]) ValuePresent() bool {
	return o.present
}

func (o Option[T]) ValueAbsent() bool {
	return !o.present
}

// IsOptionalInstance is the capability marker checked by IsOptional.
func (o Option[T]) IsOptionalInstance() bool {
	return true
}

// Payload returns the contained value as any, or nil for None.
func (o Option[T]) Payload() any {
	if !o.present {
		return nil
	}
	return o.value
}

// Transform applies f on Some. It is the same-type form of Map.
func (o Option[T]) Transform(f func(T) T) Option[T] {
	return Map(o, f)
}

func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.present && predicate(o.value) {
		return o
	}
	return None[T]()
}

func (o Option[T]) Reject(predicate func(T) bool) Option[T] {
	if o.present && !predicate(o.value) {
		return o
	}
	return None[T]()
}

// Tap runs f on the value of Some and returns o unchanged.
func (o Option[T]) Tap(f func(T)) Option[T] {
	if o.present {
		f(o.value)
	}
	return o
}

func (o Option[T]) Satisfies(predicate func(T) bool) bool {
	return o.present && predicate(o.value)
}

// ValueEquals compares the contained value with v by identity: == for
// comparable values, the referenced address for maps, slices, funcs and chans.
func (o Option[T]) ValueEquals(v T) bool {
	return o.present && reflectx.StrictEqual(any(o.value), any(v))
}

// Property reads name off an object-like value and wraps the result in Some.
// A missing property yields Some(nil); a non-object value yields None.
func (o Option[T]) Property(name string) Option[any] {
	if !o.present || !reflectx.IsObject(o.value) {
		return None[any]()
	}
	v, _ := reflectx.Property(o.value, name)
	return Some(v)
}

// OptionalProperty reads name off an object-like value and returns it raw,
// or nil when absent.
func (o Option[T]) OptionalProperty(name string) any {
	if !o.present {
		return nil
	}
	v, _ := reflectx.Property(o.value, name)
	return v
}

// NullableProperty is Property with a nil result mapped to None.
func (o Option[T]) NullableProperty(name string) Option[any] {
	if !o.present {
		return None[any]()
	}
	v, _ := reflectx.Property(o.value, name)
	return FromNullable(v)
}

func (o Option[T]) GetOrElse(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// Get returns the value, or an *UnwrapError carrying message on None.
func (o Option[T]) Get(message ...string) (T, error) {
	if o.present {
		return o.value, nil
	}
	var zero T
	return zero, &UnwrapError{Message: strings.Join(message, " ")}
}

// MustGet is Get that panics with the *UnwrapError.
func (o Option[T]) MustGet(message ...string) T {
	v, err := o.Get(message...)
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns o when present and replacement otherwise.
func (o Option[T]) Or(replacement Option[T]) Option[T] {
	if o.present {
		return o
	}
	return replacement
}

// OrElse is Or with a lazily evaluated replacement.
func (o Option[T]) OrElse(replacement func() Option[T]) Option[T] {
	if o.present {
		return o
	}
	return replacement()
}

// Replace discards the current state and returns Some(v).
func (o Option[T]) Replace(v T) Option[T] {
	return Some(v)
}

// ToPtr returns a pointer to a copy of the value, or nil for None.
func (o Option[T]) ToPtr() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}

func (o Option[T]) String() string {
	if o.present {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
