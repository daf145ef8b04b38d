package rop

import (
	"github.com/ib-77/outcome/internal/reflectx"
	"github.com/ib-77/outcome/pkg/rop/optional"
	"github.com/ib-77/outcome/pkg/rop/promise"
)

// Tap runs f on the value of an Ok and returns r unchanged.
func (r Result[T]) Tap(f func(T)) Result[T] {
	switch r.variant {
	case variantPending:
		return deferred(r, func(s Result[T]) Result[T] { return s.Tap(f) })
	case variantOk:
		return guard(func() step {
			f(r.value)
			return now(nil)
		}, r.keep)
	}
	return r
}

// TapAsync is Tap with a side effect that completes asynchronously; the
// result waits for it.
func (r Result[T]) TapAsync(f func(T) promise.Thenable) Result[T] {
	switch r.variant {
	case variantPending:
		return deferred(r, func(s Result[T]) Result[T] { return s.TapAsync(f) })
	case variantOk:
		return guard(func() step { return later(f(r.value)) }, r.keep)
	}
	return r
}

func (r Result[T]) keep(any) Result[T] {
	return r
}

func (r Result[T]) admit(v any) Result[T] {
	keep, ok := v.(bool)
	if !ok {
		return Aborted[T](mismatch[bool](v))
	}
	if keep {
		return r
	}
	return Error[T](nil)
}

func (r Result[T]) refuse(v any) Result[T] {
	drop, ok := v.(bool)
	if !ok {
		return Aborted[T](mismatch[bool](v))
	}
	if drop {
		return Error[T](nil)
	}
	return r
}

// Filter keeps an Ok whose value satisfies predicate and turns any other Ok
// into an Error without payload.
func (r Result[T]) Filter(predicate func(T) bool) Result[T] {
	switch r.variant {
	case variantPending:
		return deferred(r, func(s Result[T]) Result[T] { return s.Filter(predicate) })
	case variantOk:
		return guard(func() step { return now(predicate(r.value)) }, r.admit)
	}
	return r
}

func (r Result[T]) FilterAsync(predicate func(T) *promise.Promise[bool]) Result[T] {
	switch r.variant {
	case variantPending:
		return deferred(r, func(s Result[T]) Result[T] { return s.FilterAsync(predicate) })
	case variantOk:
		return guard(func() step { return later(predicate(r.value)) }, r.admit)
	}
	return r
}

// Reject is Filter with the predicate inverted.
func (r Result[T]) Reject(predicate func(T) bool) Result[T] {
	switch r.variant {
	case variantPending:
		return deferred(r, func(s Result[T]) Result[T] { return s.Reject(predicate) })
	case variantOk:
		return guard(func() step { return now(predicate(r.value)) }, r.refuse)
	}
	return r
}

func (r Result[T]) RejectAsync(predicate func(T) *promise.Promise[bool]) Result[T] {
	switch r.variant {
	case variantPending:
		return deferred(r, func(s Result[T]) Result[T] { return s.RejectAsync(predicate) })
	case variantOk:
		return guard(func() step { return later(predicate(r.value)) }, r.refuse)
	}
	return r
}

// Replace swaps the value of an Ok for v.
func (r Result[T]) Replace(v T) Result[T] {
	switch r.variant {
	case variantPending:
		return deferred(r, func(s Result[T]) Result[T] { return s.Replace(v) })
	case variantOk:
		return Ok(v)
	}
	return r
}

// ReplaceAsync swaps the value of an Ok for the eventual value of p. On any
// other variant p is discarded and its rejection swallowed.
func (r Result[T]) ReplaceAsync(p *promise.Promise[T]) Result[T] {
	switch r.variant {
	case variantPending:
		return deferred(r, func(s Result[T]) Result[T] { return s.ReplaceAsync(p) })
	case variantOk:
		return guard(func() step { return later(p) }, okOf[T])
	}

	if p != nil {
		promise.Discard(p)
	}
	return r
}

// Recover turns an Error into Ok(f(err)).
func (r Result[T]) Recover(f func(error) T) Result[T] {
	switch r.variant {
	case variantPending:
		return deferred(r, func(s Result[T]) Result[T] { return s.Recover(f) })
	case variantError:
		return guard(func() step { return now(f(r.err)) }, okOf[T])
	}
	return r
}

func (r Result[T]) RecoverAsync(f func(error) *promise.Promise[T]) Result[T] {
	switch r.variant {
	case variantPending:
		return deferred(r, func(s Result[T]) Result[T] { return s.RecoverAsync(f) })
	case variantError:
		return guard(func() step { return later(f(r.err)) }, okOf[T])
	}
	return r
}

// RecoverWhen recovers only errors accepted by predicate. It is
// Ok(err).Filter(predicate) mapped through f; a rejected error leaves r as it was.
func (r Result[T]) RecoverWhen(predicate func(error) bool, f func(error) T) Result[T] {
	switch r.variant {
	case variantPending:
		return deferred(r, func(s Result[T]) Result[T] { return s.RecoverWhen(predicate, f) })
	case variantError:
		matched := Ok(r.err).Filter(predicate)
		switch matched.variant {
		case variantError:
			return r
		case variantAborted:
			return failFrom[error, T](matched)
		}
		return Map(matched, f)
	}
	return r
}

func (r Result[T]) failureOf(v any) Result[T] {
	err, ok := cast[error](v)
	if !ok {
		return Aborted[T](mismatch[error](v))
	}
	return Error[T](err)
}

func (r Result[T]) abortOf(v any) Result[T] {
	err, ok := cast[error](v)
	if !ok {
		return Aborted[T](mismatch[error](v))
	}
	return Aborted[T](err)
}

// MapError transforms the payload of an Error.
func (r Result[T]) MapError(f func(error) error) Result[T] {
	switch r.variant {
	case variantPending:
		return deferred(r, func(s Result[T]) Result[T] { return s.MapError(f) })
	case variantError:
		return guard(func() step { return now(f(r.err)) }, r.failureOf)
	}
	return r
}

func (r Result[T]) MapErrorAsync(f func(error) *promise.Promise[error]) Result[T] {
	switch r.variant {
	case variantPending:
		return deferred(r, func(s Result[T]) Result[T] { return s.MapErrorAsync(f) })
	case variantError:
		return guard(func() step { return later(f(r.err)) }, r.failureOf)
	}
	return r
}

// TapError observes the payload of an Error or an Aborted without changing it.
func (r Result[T]) TapError(f func(error)) Result[T] {
	switch r.variant {
	case variantPending:
		return deferred(r, func(s Result[T]) Result[T] { return s.TapError(f) })
	case variantError:
		return guard(func() step {
			f(r.err)
			return now(nil)
		}, r.keep)
	case variantAborted:
		return r.absorb(guard(func() step {
			f(r.err)
			return now(nil)
		}, r.keep))
	}
	return r
}

func (r Result[T]) TapErrorAsync(f func(error) promise.Thenable) Result[T] {
	switch r.variant {
	case variantPending:
		return deferred(r, func(s Result[T]) Result[T] { return s.TapErrorAsync(f) })
	case variantError:
		return guard(func() step { return later(f(r.err)) }, r.keep)
	case variantAborted:
		return r.absorb(guard(func() step { return later(f(r.err)) }, r.keep))
	}
	return r
}

// absorb returns the original abort whatever its error observer produced.
// A failed observer is only logged.
func (r Result[T]) absorb(observed Result[T]) Result[T] {
	if observed.variant == variantPending {
		return deferred(observed, func(s Result[T]) Result[T] { return r.absorb(s) })
	}

	if observed.id != r.id {
		log := logger()
		log.Debug().
			Err(observed.err).
			AnErr("aborted_with", r.err).
			Msg("error observer failed, original abort kept")
	}
	return r
}

// AbortOnError promotes an Error to Aborted with the same payload.
func (r Result[T]) AbortOnError() Result[T] {
	switch r.variant {
	case variantPending:
		return deferred(r, func(s Result[T]) Result[T] { return s.AbortOnError() })
	case variantError:
		return Aborted[T](r.err)
	}
	return r
}

// AbortOnErrorWith promotes an Error to Aborted carrying f(err).
func (r Result[T]) AbortOnErrorWith(f func(error) error) Result[T] {
	switch r.variant {
	case variantPending:
		return deferred(r, func(s Result[T]) Result[T] { return s.AbortOnErrorWith(f) })
	case variantError:
		return guard(func() step { return now(f(r.err)) }, r.abortOf)
	}
	return r
}

// AbortOnErrorWithValue promotes an Error to Aborted carrying err.
func (r Result[T]) AbortOnErrorWithValue(err error) Result[T] {
	switch r.variant {
	case variantPending:
		return deferred(r, func(s Result[T]) Result[T] { return s.AbortOnErrorWithValue(err) })
	case variantError:
		return Aborted[T](err)
	}
	return r
}

func (r Result[T]) AbortOnErrorWithAsync(f func(error) *promise.Promise[error]) Result[T] {
	switch r.variant {
	case variantPending:
		return deferred(r, func(s Result[T]) Result[T] { return s.AbortOnErrorWithAsync(f) })
	case variantError:
		return guard(func() step { return later(f(r.err)) }, r.abortOf)
	}
	return r
}

// Asynchronous returns r as a Pending.
func (r Result[T]) Asynchronous() Result[T] {
	if r.variant == variantPending {
		return r
	}
	return pendingOf(promise.Resolve(r))
}

// Get returns the value of an Ok or the failure payload. It waits for a Pending.
func (r Result[T]) Get() (T, error) {
	return r.settled().get()
}

func (r Result[T]) get() (T, error) {
	if r.variant == variantOk {
		return r.value, nil
	}
	var zero T
	return zero, payload(r.err)
}

// MustGet is Get that panics with the failure payload.
func (r Result[T]) MustGet() T {
	v, err := r.Get()
	if err != nil {
		panic(err)
	}
	return v
}

func (r Result[T]) GetOrElse(fallback T) T {
	return r.settled().valueOr(fallback)
}

// GetOrElseAsync is GetOrElse as a promise.
func (r Result[T]) GetOrElseAsync(fallback T) *promise.Promise[T] {
	return promise.Map(r.Settled(), func(s Result[T]) T { return s.valueOr(fallback) })
}

func (r Result[T]) valueOr(fallback T) T {
	if r.variant == variantOk {
		return r.value
	}
	return fallback
}

// Merge returns the value of an Ok or the error of a failure.
func (r Result[T]) Merge() any {
	return r.settled().merged()
}

// MergeAsync is Merge as a promise.
func (r Result[T]) MergeAsync() *promise.Promise[any] {
	return promise.Map(r.Settled(), Result[T].merged)
}

func (r Result[T]) merged() any {
	if r.variant == variantOk {
		return r.value
	}
	return r.err
}

// Satisfies reports predicate(value) for an Ok and false otherwise. A
// panicking predicate counts as false.
func (r Result[T]) Satisfies(predicate func(T) bool) bool {
	return r.settled().satisfies(predicate)
}

// SatisfiesAsync is Satisfies as a promise.
func (r Result[T]) SatisfiesAsync(predicate func(T) bool) *promise.Promise[bool] {
	checked := promise.Map(r.Settled(), func(s Result[T]) bool {
		return s.variant == variantOk && predicate(s.value)
	})
	return promise.Catch(checked, func(error) bool { return false })
}

func (r Result[T]) satisfies(predicate func(T) bool) bool {
	if r.variant != variantOk {
		return false
	}

	checked := guard(func() step { return now(predicate(r.value)) }, r.admit)
	return checked.variant == variantOk
}

// ValueEquals compares the value of an Ok with v by identity.
func (r Result[T]) ValueEquals(v T) bool {
	return r.settled().equals(v)
}

// ValueEqualsAsync is ValueEquals as a promise.
func (r Result[T]) ValueEqualsAsync(v T) *promise.Promise[bool] {
	return promise.Map(r.Settled(), func(s Result[T]) bool { return s.equals(v) })
}

func (r Result[T]) equals(v T) bool {
	return r.variant == variantOk && reflectx.StrictEqual(any(r.value), any(v))
}

func (r Result[T]) ToOptional() optional.Option[T] {
	return r.settled().asOptional()
}

// ToOptionalAsync is ToOptional as a promise.
func (r Result[T]) ToOptionalAsync() *promise.Promise[optional.Option[T]] {
	return promise.Map(r.Settled(), Result[T].asOptional)
}

func (r Result[T]) asOptional() optional.Option[T] {
	if r.variant == variantOk {
		return optional.Some(r.value)
	}
	return optional.None[T]()
}

// ToPromise fulfils with the value of an Ok and rejects with the failure payload.
func (r Result[T]) ToPromise() *promise.Promise[T] {
	switch r.variant {
	case variantOk:
		return promise.Resolve(r.value)
	case variantError, variantAborted:
		return promise.Reject[T](payload(r.err))
	}

	p, resolve, reject := promise.WithResolvers[T]()
	r.pending.OnSettled(func(s Result[T]) {
		if s.variant == variantOk {
			resolve(s.value)
			return
		}
		reject(payload(s.err))
	}, reject)
	return p
}
