package chain

import (
	"context"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result rop.Result[T]
}

// Start creates a new chain from a rop.Result
func Start[T any](ctx context.Context, result rop.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, solo.Succeed(value))
}

// Result returns the underlying rop.Result
func (c *Chain[T]) Result() rop.Result[T] {
	return c.result
}

func (c *Chain[T]) next(result rop.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: result,
	}
}

// Then chains a function that returns rop.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) rop.Result[U]) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Switch(c.ctx, c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Try(c.ctx, c.result, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Map(c.ctx, c.result, onSuccess),
	}
}

// Validate turns an Ok into an Error carrying errMsg when validate rejects it.
func (c *Chain[T]) Validate(validate func(context.Context, T) (bool, string)) *Chain[T] {
	return c.next(solo.AndValidate(c.ctx, c.result, validate))
}

// ValidateStruct checks the value with the validator carried by the chain's context.
func (c *Chain[T]) ValidateStruct() *Chain[T] {
	return c.next(solo.ValidateStruct(c.ctx, c.result))
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return c.next(solo.Tee(c.ctx, c.result, onSuccess))
}

// EnsureIf is Ensure guarded by condition.
func (c *Chain[T]) EnsureIf(condition func(context.Context, T) bool, onSuccess func(context.Context, T)) *Chain[T] {
	return c.next(solo.TeeIf(c.ctx, c.result, condition, onSuccess))
}

// Recover replaces an Error with the value produced by onError. Aborted stays.
func (c *Chain[T]) Recover(onError func(context.Context, error) T) *Chain[T] {
	return c.next(c.result.Recover(func(err error) T {
		return onError(c.ctx, err)
	}))
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U,
	onError func(context.Context, error) U, onAbort func(context.Context, error) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onError, onAbort)
}
