package rop

import (
	"errors"

	"github.com/ib-77/outcome/pkg/rop/optional"
	"github.com/ib-77/outcome/pkg/rop/promise"
)

// DoTry runs fn under the guarded transform. A panic or a returned error is
// Aborted; the value is classified with Expect.
func DoTry[T any](fn func() (T, error)) Result[T] {
	return capture(func() Result[T] {
		v, err := fn()
		if err != nil {
			return Aborted[T](err)
		}
		return Expect[T](v)
	})
}

// TryAsync is DoTry whose outcome is always Pending.
func TryAsync[T any](fn func() (T, error)) Result[T] {
	return DoTry(fn).Asynchronous()
}

// FromPromise wraps an external operation: fulfilment is Ok and rejection is
// Error, not Aborted. A fulfilment that is not a T is Aborted.
func FromPromise[T any](t promise.Thenable) Result[T] {
	if IsNil(t) {
		return Aborted[T](ErrNilPromise)
	}

	p, resolve, _ := promise.WithResolvers[Result[T]]()
	promise.From[T](t).OnSettled(func(v T) {
		resolve(Ok(v))
	}, func(err error) {
		if errors.Is(err, ErrTypeMismatch) {
			resolve(Aborted[T](err))
			return
		}
		resolve(Error[T](err))
	})
	return pendingOf(p)
}

// When returns Ok(v) if cond holds and Error(err) otherwise.
func When[T any](cond bool, v T, err error) Result[T] {
	if cond {
		return Ok(v)
	}
	return Error[T](err)
}

// FromOptional maps Some to Ok and None to Error without payload.
func FromOptional[T any](o optional.Option[T]) Result[T] {
	v, err := o.Get()
	if err != nil {
		return Error[T](nil)
	}
	return Ok(v)
}
