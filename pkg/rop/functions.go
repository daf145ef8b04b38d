package rop

import (
	"github.com/ib-77/outcome/pkg/rop/promise"
)

// Map turns Ok(v) into Ok(f(v)). Error and Aborted pass through.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	switch r.variant {
	case variantPending:
		return deferred(r, func(s Result[T]) Result[U] { return Map(s, f) })
	case variantOk:
		return guard(func() step { return now(f(r.value)) }, okOf[U])
	}
	return failFrom[T, U](r)
}

// Transform is an alias of Map.
func Transform[T, U any](r Result[T], f func(T) U) Result[U] {
	return Map(r, f)
}

// MapAsync turns Ok(v) into a Pending of f(v)'s eventual value.
func MapAsync[T, U any](r Result[T], f func(T) *promise.Promise[U]) Result[U] {
	switch r.variant {
	case variantPending:
		return deferred(r, func(s Result[T]) Result[U] { return MapAsync(s, f) })
	case variantOk:
		return guard(func() step { return later(f(r.value)) }, okOf[U])
	}
	return failFrom[T, U](r)
}

// Chain classifies f(v) with Expect: a Result[U] passes through, an
// Option[U] maps Some to Ok and None to Error, a thenable suspends, nil is
// an Error and a plain U is Ok.
func Chain[T, U any](r Result[T], f func(T) any) Result[U] {
	switch r.variant {
	case variantPending:
		return deferred(r, func(s Result[T]) Result[U] { return Chain[T, U](s, f) })
	case variantOk:
		return guard(func() step { return now(f(r.value)) }, Expect[U])
	}
	return failFrom[T, U](r)
}

// FlatMap is an alias of Chain.
func FlatMap[T, U any](r Result[T], f func(T) any) Result[U] {
	return Chain[T, U](r, f)
}

// Try turns Ok(v) into Ok(out) or, when f reports an error, Error(err).
func Try[T, U any](r Result[T], f func(T) (U, error)) Result[U] {
	switch r.variant {
	case variantPending:
		return deferred(r, func(s Result[T]) Result[U] { return Try(s, f) })
	case variantOk:
		return capture(func() Result[U] {
			out, err := f(r.value)
			if err != nil {
				return Error[U](err)
			}
			return Ok(out)
		})
	}
	return failFrom[T, U](r)
}

// Clauses are the branches of Match. A nil Ok clause is the identity; a nil
// Error or Aborted clause returns the failure payload as the error.
type Clauses[T, U any] struct {
	Ok      func(T) U
	Error   func(error) U
	Aborted func(error) U
}

// Match waits for r to settle and dispatches to the clause for its variant.
func Match[T, U any](r Result[T], c Clauses[T, U]) (U, error) {
	return match(r.settled(), c)
}

// MatchAsync is Match as a promise. A missing failure clause or a panicking
// clause rejects it.
func MatchAsync[T, U any](r Result[T], c Clauses[T, U]) *promise.Promise[U] {
	p, resolve, reject := promise.WithResolvers[U]()

	r.Settled().OnSettled(func(s Result[T]) {
		defer func() {
			if rec := recover(); rec != nil {
				reject(promise.Recovered(rec))
			}
		}()

		u, err := match(s, c)
		if err != nil {
			reject(err)
			return
		}
		resolve(u)
	}, reject)

	return p
}

func match[T, U any](s Result[T], c Clauses[T, U]) (U, error) {
	var zero U

	switch s.variant {
	case variantOk:
		if c.Ok != nil {
			return c.Ok(s.value), nil
		}
		u, ok := cast[U](any(s.value))
		if !ok {
			return zero, mismatch[U](s.value)
		}
		return u, nil
	case variantError:
		if c.Error != nil {
			return c.Error(s.err), nil
		}
	case variantAborted:
		if c.Aborted != nil {
			return c.Aborted(s.err), nil
		}
	}
	return zero, payload(s.err)
}

func (r Result[T]) erase() Result[any] {
	switch r.variant {
	case variantPending:
		return deferred(r, func(s Result[T]) Result[any] { return s.erase() })
	case variantOk:
		out := failFrom[T, any](r)
		out.value = r.value
		return out
	}
	return failFrom[T, any](r)
}
