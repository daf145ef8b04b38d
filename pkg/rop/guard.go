package rop

import (
	"github.com/ib-77/outcome/internal/reflectx"
	"github.com/ib-77/outcome/pkg/rop/promise"
)

// step is what a guarded callback produced: a plain value, or a thenable to
// wait for when async is set.
type step struct {
	value    any
	thenable promise.Thenable
	async    bool
}

func now(v any) step {
	return step{value: v}
}

func later(t promise.Thenable) step {
	if reflectx.IsNil(t) {
		return step{async: true}
	}
	return step{thenable: t, async: true}
}

// guard is the guarded transform shared by every callback-taking combinator:
// a panic in call aborts, a thenable suspends into Pending whose fulfilment
// goes through post and whose rejection aborts, and a plain value goes
// straight through post.
func guard[U any](call func() step, post func(any) Result[U]) Result[U] {
	return capture(func() Result[U] {
		s := call()
		if !s.async {
			return post(s.value)
		}
		if s.thenable == nil {
			return Aborted[U](ErrNilPromise)
		}
		return suspend(s.thenable, post)
	})
}

func suspend[U any](t promise.Thenable, post func(any) Result[U]) Result[U] {
	p, resolve, _ := promise.WithResolvers[Result[U]]()
	t.Then(func(v any) {
		settleInto(capture(func() Result[U] { return post(v) }), resolve)
	}, func(err error) {
		resolve(Aborted[U](err))
	})
	return pendingOf(p)
}

// capture runs fn and turns a panic into Aborted.
func capture[U any](fn func() Result[U]) (out Result[U]) {
	defer func() {
		if rec := recover(); rec != nil {
			err := promise.Recovered(rec)
			log := logger()
			log.Debug().Err(err).Msg("callback panicked, result aborted")
			out = Aborted[U](err)
		}
	}()
	return fn()
}

// settleInto resolves with the innermost settled form of r.
func settleInto[T any](r Result[T], resolve func(Result[T])) {
	if r.variant != variantPending {
		resolve(r)
		return
	}
	r.pending.OnSettled(func(s Result[T]) {
		settleInto(s, resolve)
	}, func(err error) {
		resolve(Aborted[T](err))
	})
}

// deferred schedules next on r's settlement and returns the Pending of its result.
func deferred[T, U any](r Result[T], next func(Result[T]) Result[U]) Result[U] {
	p, resolve, _ := promise.WithResolvers[Result[U]]()
	r.pending.OnSettled(func(s Result[T]) {
		settleInto(capture(func() Result[U] { return next(s) }), resolve)
	}, func(err error) {
		settleInto(capture(func() Result[U] { return next(Aborted[T](err)) }), resolve)
	})
	return pendingOf(p)
}

// cast asserts a settled callback value to U. nil becomes U's zero value.
func cast[U any](v any) (U, bool) {
	if v == nil {
		var zero U
		return zero, true
	}
	u, ok := v.(U)
	return u, ok
}

func okOf[U any](v any) Result[U] {
	u, ok := cast[U](v)
	if !ok {
		return Aborted[U](mismatch[U](v))
	}
	return Ok(u)
}
