package promise

import (
	"fmt"
	"reflect"

	"github.com/ib-77/outcome/internal/logging"
)

// Map derives a promise fulfilled with f applied to p's value.
// A rejection passes through; a panic in f rejects the derived promise.
func Map[T, U any](p *Promise[T], f func(T) U) *Promise[U] {
	out, resolve, reject := WithResolvers[U]()

	p.OnSettled(func(v T) {
		defer func() {
			if r := recover(); r != nil {
				reject(Recovered(r))
			}
		}()
		resolve(f(v))
	}, reject)

	return out
}

// Catch derives a promise that replaces a rejection with f's value.
func Catch[T any](p *Promise[T], f func(error) T) *Promise[T] {
	out, resolve, reject := WithResolvers[T]()

	p.OnSettled(resolve, func(err error) {
		defer func() {
			if r := recover(); r != nil {
				reject(Recovered(r))
			}
		}()
		resolve(f(err))
	})

	return out
}

// From adapts an arbitrary thenable to a typed promise. A fulfilment value
// that is not a T rejects with an error matching ErrTypeMismatch.
func From[T any](t Thenable) *Promise[T] {
	if p, ok := t.(*Promise[T]); ok {
		return p
	}

	out, resolve, reject := WithResolvers[T]()
	if t == nil {
		reject(fmt.Errorf("%w: nil thenable", ErrTypeMismatch))
		return out
	}

	t.Then(func(v any) {
		typed, ok := v.(T)
		if !ok && v != nil {
			reject(mismatch(reflect.TypeFor[T]().String(), v))
			return
		}
		resolve(typed)
	}, reject)

	return out
}

// Discard takes ownership of a thenable whose outcome will never be read and
// swallows its rejection.
func Discard(t Thenable) {
	if t == nil {
		return
	}

	t.Then(nil, func(err error) {
		log := logging.Component("promise")
		log.Debug().Err(err).Msg("discarded promise rejected")
	})
}
