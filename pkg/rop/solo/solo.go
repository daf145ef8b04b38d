package solo

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/ib-77/outcome/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Ok(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Error[T](err)
}

func Abort[T any](err error) rop.Result[T] {
	return rop.Aborted[T](err)
}

// settle waits for a Pending input. An interrupted wait is Aborted with ctx's error.
func settle[T any](ctx context.Context, input rop.Result[T]) rop.Result[T] {
	s, err := input.Await(ctx)
	if err != nil {
		return rop.Aborted[T](err)
	}
	return s
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {

	return rop.Chain[T, T](input, func(in T) any {
		if isValid, errMsg := validate(ctx, in); !isValid {
			return rop.Error[T](errors.New(errMsg))
		}
		return rop.Ok(in)
	})
}

// ValidateStruct checks the value of an Ok with the validator from ctx.
// Failed constraints are an Error carrying validator.ValidationErrors; a
// value the validator cannot inspect at all is Aborted.
func ValidateStruct[T any](ctx context.Context, input rop.Result[T]) rop.Result[T] {
	v := GetValidator(ctx)

	return rop.Chain[T, T](input, func(in T) any {
		err := v.StructCtx(ctx, in)
		if err == nil {
			return rop.Ok(in)
		}

		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return rop.Aborted[T](err)
		}
		return rop.Error[T](err)
	})
}

func ValidateAll[T any](
	ctx context.Context,
	input rop.Result[T],
	breakOnError bool, // exit on first error
	inputsF ...func(ctx context.Context, in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	input = settle(ctx, input)
	if !input.IsOk() {
		return input
	}

	// every check sees the original input so a failure is reported once
	checks := make([]func(ctx context.Context, in rop.Result[T]) rop.Result[T], len(inputsF))
	for i, f := range inputsF {
		checks[i] = func(ctx context.Context, _ rop.Result[T]) rop.Result[T] {
			return f(ctx, input)
		}
	}

	var err error
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current rop.Result[T]) rop.Result[T] {

			if current.IsAborted() {
				return current
			}

			if current.IsError() {
				e := rop.GetErrors(err)
				e = append(e, current.Err())
				err = errors.Join(e...)
			}

			if rop.IsNil(err) {
				return current
			}

			return rop.Error[T](err)
		},
		checks...,
	)
}

func Switch[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	return rop.Chain[In, Out](input, func(in In) any {
		return onSuccess(ctx, in)
	})
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	return rop.Map(input, func(in In) Out {
		return onSuccess(ctx, in)
	})
}

func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r T)) rop.Result[T] {

	return input.Tap(func(in T) {
		onSuccess(ctx, in)
	})
}

func TeeIf[T any](ctx context.Context,
	input rop.Result[T],
	condition func(ctx context.Context, r T) bool,
	onSuccessAndCondition func(ctx context.Context, r T)) rop.Result[T] {

	return input.Tap(func(in T) {
		if condition(ctx, in) {
			onSuccessAndCondition(ctx, in)
		}
	})
}

func DoubleTee[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error),
	onAbort func(ctx context.Context, err error)) rop.Result[T] {

	input = settle(ctx, input)

	switch {
	case input.IsOk():
		return Tee(ctx, input, onSuccess)
	case input.IsAborted():
		return input.TapError(func(err error) { onAbort(ctx, err) })
	default:
		return input.TapError(func(err error) { onError(ctx, err) })
	}
}

func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	return rop.Try(input, func(in In) (Out, error) {
		return onTryExecute(ctx, in)
	})
}

func FailOnError[T any](ctx context.Context, input rop.Result[T],
	maybeErr func(ctx context.Context, in T) error) rop.Result[T] {

	return rop.Chain[T, T](input, func(in T) any {
		if err := maybeErr(ctx, in); err != nil {
			return rop.Error[T](err)
		}
		return rop.Ok(in)
	})
}

func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onAbort func(ctx context.Context, err error) Out) Out {

	input = settle(ctx, input)

	if input.IsOk() {
		return onSuccess(ctx, input.GetOrElse(*new(In)))
	} else if input.IsAborted() {
		return onAbort(ctx, input.Err())
	} else {
		return onError(ctx, input.Err())
	}
}

func Join[T any](ctx context.Context,
	input rop.Result[T],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current rop.Result[T]) rop.Result[T],
	inputsF ...func(ctx context.Context, in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	if len(inputsF) == 0 || concat == nil || !rop.IsNil(ctx.Err()) {
		return input
	}

	finalResult := concat(ctx, settle(ctx, inputsF[0](ctx, input)))

	if !rop.IsNil(ctx.Err()) {
		return finalResult
	}

	if finalResult.IsOk() || !breakOnError {
		for _, in := range inputsF[1:] {
			if !rop.IsNil(ctx.Err()) {
				return finalResult
			}

			nextRes := concat(ctx, settle(ctx, in(ctx, finalResult)))
			if nextRes.IsFailure() && breakOnError {
				return nextRes
			} else {
				finalResult = nextRes
			}
		}
	}
	return finalResult
}
