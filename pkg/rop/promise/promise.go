package promise

import (
	"context"
	"fmt"
	"sync"

	"github.com/eapache/queue"
	"github.com/google/uuid"

	"github.com/ib-77/outcome/internal/logging"
)

// Thenable is anything that can report its eventual settlement.
type Thenable interface {
	Then(onFulfilled func(any), onRejected func(error))
}

type state uint8

const (
	statePending state = iota
	stateFulfilled
	stateRejected
)

type continuation[T any] struct {
	onFulfilled func(T)
	onRejected  func(error)
}

// Promise is a value of type T that becomes available at most once.
type Promise[T any] struct {
	id      uuid.UUID
	mu      sync.Mutex
	state   state
	value   T
	err     error
	done    chan struct{}
	waiters *queue.Queue
}

func newPromise[T any]() *Promise[T] {
	return &Promise[T]{
		id:      uuid.New(),
		done:    make(chan struct{}),
		waiters: queue.New(),
	}
}

// WithResolvers returns a pending promise together with the functions that
// settle it. Only the first call to either function has an effect.
func WithResolvers[T any]() (*Promise[T], func(T), func(error)) {
	p := newPromise[T]()
	resolve := func(v T) {
		p.settle(stateFulfilled, v, nil)
	}
	reject := func(err error) {
		var zero T
		p.settle(stateRejected, zero, err)
	}
	return p, resolve, reject
}

// New runs executor synchronously. A panic inside executor rejects the promise.
func New[T any](executor func(resolve func(T), reject func(error))) *Promise[T] {
	p, resolve, reject := WithResolvers[T]()

	func() {
		defer func() {
			if r := recover(); r != nil {
				reject(Recovered(r))
			}
		}()
		executor(resolve, reject)
	}()

	return p
}

// Resolve returns a promise already fulfilled with v.
func Resolve[T any](v T) *Promise[T] {
	p, resolve, _ := WithResolvers[T]()
	resolve(v)
	return p
}

// Reject returns a promise already rejected with err.
func Reject[T any](err error) *Promise[T] {
	p, _, reject := WithResolvers[T]()
	reject(err)
	return p
}

// Go runs fn on a new goroutine and settles the returned promise with its outcome.
func Go[T any](fn func() (T, error)) *Promise[T] {
	p, resolve, reject := WithResolvers[T]()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				reject(Recovered(r))
			}
		}()

		v, err := fn()
		if err != nil {
			reject(err)
			return
		}
		resolve(v)
	}()

	return p
}

func (p *Promise[T]) settle(st state, v T, err error) {
	p.mu.Lock()
	if p.state != statePending {
		p.mu.Unlock()
		return
	}

	p.state = st
	p.value = v
	p.err = err
	waiters := p.waiters
	p.waiters = nil
	close(p.done)
	p.mu.Unlock()

	for waiters.Length() > 0 {
		p.dispatch(waiters.Remove().(continuation[T]))
	}
}

func (p *Promise[T]) dispatch(c continuation[T]) {
	defer func() {
		if r := recover(); r != nil {
			log := logging.Component("promise")
			log.Error().
				Str("promise_id", p.id.String()).
				Err(Recovered(r)).
				Msg("continuation panicked")
		}
	}()

	if p.state == stateFulfilled {
		if c.onFulfilled != nil {
			c.onFulfilled(p.value)
		}
		return
	}

	if c.onRejected != nil {
		c.onRejected(p.err)
	}
}

// OnSettled registers typed continuations. Either may be nil.
func (p *Promise[T]) OnSettled(onFulfilled func(T), onRejected func(error)) {
	c := continuation[T]{onFulfilled: onFulfilled, onRejected: onRejected}

	p.mu.Lock()
	if p.state == statePending {
		p.waiters.Add(c)
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()

	p.dispatch(c)
}

// Then implements Thenable.
func (p *Promise[T]) Then(onFulfilled func(any), onRejected func(error)) {
	var typed func(T)
	if onFulfilled != nil {
		typed = func(v T) { onFulfilled(v) }
	}
	p.OnSettled(typed, onRejected)
}

// Await blocks until the promise settles or ctx is done.
func (p *Promise[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		p.mu.Lock()
		defer p.mu.Unlock()
		return p.value, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done is closed once the promise settles.
func (p *Promise[T]) Done() <-chan struct{} {
	return p.done
}

// IsSettled reports whether the promise has been fulfilled or rejected.
func (p *Promise[T]) IsSettled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state != statePending
}

func (p *Promise[T]) Id() uuid.UUID {
	return p.id
}

func (p *Promise[T]) String() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.state {
	case stateFulfilled:
		return fmt.Sprintf("Promise(fulfilled: %v)", p.value)
	case stateRejected:
		return fmt.Sprintf("Promise(rejected: %v)", p.err)
	default:
		return "Promise(pending)"
	}
}
