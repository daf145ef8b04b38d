package tiny

import (
	"context"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/solo"
)

type Chain[T any] struct {
	ctx context.Context
	res rop.Result[T]
}

func Start[T any](ctx context.Context, r rop.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, solo.Succeed(v))
}

func (c Chain[T]) Result() rop.Result[T] {
	return c.res
}

// settled waits for a Pending result. An interrupted wait is Aborted.
func (c Chain[T]) settled() Chain[T] {
	r, err := c.res.Await(c.ctx)
	if err != nil {
		return Chain[T]{ctx: c.ctx, res: rop.Aborted[T](err)}
	}
	return Chain[T]{ctx: c.ctx, res: r}
}

// value of a settled Ok
func (c Chain[T]) value() T {
	v, _ := c.res.Get()
	return v
}

// Then composes functions that already return rop.Result[T]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) rop.Result[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Switch(c.ctx, c.res, onSuccess)}
}

// RepeatUntil applies onSuccess at least once and again while until holds.
func (c Chain[T]) RepeatUntil(onSuccess func(ctx context.Context, t T) rop.Result[T],
	until func(ctx context.Context, t T) bool) Chain[T] {

	for {
		c = c.Then(onSuccess).settled()

		if !c.res.IsOk() || !until(c.ctx, c.value()) {
			return c
		}
	}
}

func (c Chain[T]) RepeatChainUntil(inC func(ctx context.Context, t T) Chain[T],
	until func(ctx context.Context, t T) bool) Chain[T] {

	c = c.settled()
	for c.res.IsOk() {
		c = inC(c.ctx, c.value()).settled()

		if !c.res.IsOk() || !until(c.ctx, c.value()) {
			return c
		}
	}
	return c
}

func (c Chain[T]) While(onSuccess func(ctx context.Context, t T) rop.Result[T],
	while func(ctx context.Context, t T) bool) Chain[T] {

	c = c.settled()
	for c.res.IsOk() && while(c.ctx, c.value()) {
		c = c.Then(onSuccess).settled()
	}
	return c
}

func (c Chain[T]) WhileChain(inC func(ctx context.Context, t T) Chain[T], while func(ctx context.Context, t T) bool) Chain[T] {

	c = c.settled()
	for c.res.IsOk() && while(c.ctx, c.value()) {
		c = inC(c.ctx, c.value()).settled()
	}
	return c
}

// Or returns the first successful chain. Without one, an Aborted chain wins
// over an Error.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	return c.or(alternative)
}

func (c Chain[T]) or(chains ...Chain[T]) Chain[T] {
	candidates := make([]Chain[T], 0, len(chains)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, chains...)

	var aborted, failed *Chain[T]
	for _, ch := range candidates {
		ch = ch.settled()

		switch {
		case ch.res.IsOk():
			return ch
		case ch.res.IsAborted():
			if aborted == nil {
				aborted = &ch
			}
		default:
			if failed == nil {
				failed = &ch
			}
		}
	}

	if aborted != nil {
		return *aborted
	}
	return *failed
}

// And returns the first failed chain, or the last one when all succeed.
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	return c.and(required)
}

func (c Chain[T]) and(chains ...Chain[T]) Chain[T] {
	last := c.settled()
	if last.res.IsFailure() {
		return last
	}

	for _, ch := range chains {
		last = ch.settled()

		if last.res.IsFailure() {
			return last
		}
	}
	return last
}

// ThenTry composes functions that return (T, error), like repo calls. A
// cancelled or timed out call is Aborted.
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	return c.Then(func(ctx context.Context, t T) rop.Result[T] {
		u, err := try(ctx, t)
		if err == nil {
			return rop.Ok(u)
		}
		if rop.IsCancellationError(err) {
			return rop.Aborted[T](err)
		}
		return rop.Error[T](err)
	})
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Map(c.ctx, c.res, onSuccess)}
}

// Ensure triggers side effects per variant without changing the result. Any
// handler may be nil.
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onError func(context.Context, error),
	onAbort func(context.Context, error)) Chain[T] {

	return Chain[T]{ctx: c.ctx, res: solo.DoubleTee(c.ctx, c.res,
		func(ctx context.Context, t T) {
			if onSuccess != nil {
				onSuccess(ctx, t)
			}
		},
		func(ctx context.Context, err error) {
			if onError != nil {
				onError(ctx, err)
			}
		},
		func(ctx context.Context, err error) {
			if onAbort != nil {
				onAbort(ctx, err)
			}
		})}
}

// Finally collapses the chain to a final value, delegating to solo.Finally
func (c Chain[T]) Finally(
	onSuccess func(context.Context, T) T,
	onError func(context.Context, error) T,
	onAbort func(context.Context, error) T,
) T {
	return solo.Finally(c.ctx, c.res, onSuccess, onError, onAbort)
}
