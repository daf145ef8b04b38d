package rop

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/outcome/pkg/rop/promise"
)

type variant uint8

const (
	variantError variant = iota
	variantOk
	variantAborted
	variantPending
)

func (v variant) String() string {
	switch v {
	case variantOk:
		return "Ok"
	case variantAborted:
		return "Aborted"
	case variantPending:
		return "Pending"
	default:
		return "Error"
	}
}

// Result is one of Ok, Error, Aborted or Pending. The zero value is an Error
// without payload.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	variant   variant
	value     T
	err       error
	// pending always fulfils with a settled Result and never rejects
	pending *promise.Promise[Result[T]]
}

func newResult[T any](v variant) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		variant:   v,
	}
}

func Ok[T any](v T) Result[T] {
	r := newResult[T](variantOk)
	r.value = v
	return r
}

// Error builds a recoverable failure. err may be nil.
func Error[T any](err error) Result[T] {
	r := newResult[T](variantError)
	r.err = err
	return r
}

// Aborted builds an unrecoverable failure.
func Aborted[T any](err error) Result[T] {
	r := newResult[T](variantAborted)
	r.err = err
	return r
}

// Pending wraps a thenable. Its fulfilment value is classified like Expect
// (so it may be a T, a Result[T], an Option[T] or another thenable) and its
// rejection becomes Aborted. Nested pending settlements collapse.
func Pending[T any](t promise.Thenable) Result[T] {
	if IsNil(t) {
		return Aborted[T](ErrNilPromise)
	}

	p, resolve, _ := promise.WithResolvers[Result[T]]()
	t.Then(func(v any) {
		settleInto(Expect[T](v), resolve)
	}, func(err error) {
		resolve(Aborted[T](err))
	})
	return pendingOf(p)
}

func pendingOf[T any](p *promise.Promise[Result[T]]) Result[T] {
	r := newResult[T](variantPending)
	r.pending = p
	return r
}

// failFrom carries a non-Ok settled result over to another value type,
// keeping its identity.
func failFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		id:        from.id,
		createdAt: from.createdAt,
		variant:   from.variant,
		err:       from.err,
	}
}

func (r Result[T]) mustBeSettled(op string) {
	if r.variant == variantPending {
		panic(fmt.Errorf("%w: %s", ErrNotSettled, op))
	}
}

func (r Result[T]) IsOk() bool {
	r.mustBeSettled("IsOk")
	return r.variant == variantOk
}

func (r Result[T]) IsError() bool {
	r.mustBeSettled("IsError")
	return r.variant == variantError
}

func (r Result[T]) IsAborted() bool {
	r.mustBeSettled("IsAborted")
	return r.variant == variantAborted
}

// IsFailure reports Error or Aborted.
func (r Result[T]) IsFailure() bool {
	r.mustBeSettled("IsFailure")
	return r.variant == variantError || r.variant == variantAborted
}

func (r Result[T]) IsAsynchronous() bool {
	return r.variant == variantPending
}

// IsResultInstance is the capability marker checked by IsResult.
func (r Result[T]) IsResultInstance() bool {
	return true
}

// Err returns the failure payload; nil for Ok.
func (r Result[T]) Err() error {
	r.mustBeSettled("Err")
	return r.err
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// CreatedAt time creation (UTC)
func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// Settled returns a promise of the settled form of r. It never rejects.
func (r Result[T]) Settled() *promise.Promise[Result[T]] {
	if r.variant == variantPending {
		return r.pending
	}
	return promise.Resolve(r)
}

// Await blocks until r settles or ctx is done.
func (r Result[T]) Await(ctx context.Context) (Result[T], error) {
	if r.variant != variantPending {
		return r, nil
	}
	return r.pending.Await(ctx)
}

func (r Result[T]) settled() Result[T] {
	s, err := r.Await(context.Background())
	if err != nil {
		return Aborted[T](err)
	}
	return s
}

func (r Result[T]) String() string {
	switch r.variant {
	case variantOk:
		return fmt.Sprintf("Ok(%v)", r.value)
	case variantPending:
		return "Pending"
	default:
		return fmt.Sprintf("%s(%v)", r.variant, r.err)
	}
}
