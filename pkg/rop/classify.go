package rop

import (
	"github.com/ib-77/outcome/pkg/rop/optional"
	"github.com/ib-77/outcome/pkg/rop/promise"
)

// Expect classifies an arbitrary value as a Result[T]:
//
// - nil and typed nils become Error without payload
// - a Result[T] passes through unchanged (a Result of another type is
//   accepted only when T is any)
// - an Option, including a parsed optional shape, becomes Ok for Some and
//   Error for None
// - a thenable becomes a Pending of the classified fulfilment; a rejection
//   becomes Aborted
// - a T becomes Ok
//
// Anything else is Aborted with a *TypeMismatchError.
func Expect[T any](v any) Result[T] {
	switch x := v.(type) {
	case nil:
		return Error[T](nil)
	case Result[T]:
		return x
	case Outcome:
		if out, ok := any(x.erase()).(Result[T]); ok {
			return out
		}
		return Aborted[T](mismatch[T](v))
	case optional.Option[T]:
		return FromOptional(x)
	case promise.Thenable:
		if IsNil(x) {
			return Error[T](nil)
		}
		return suspend(x, Expect[T])
	}

	if IsNil(v) {
		return Error[T](nil)
	}

	if optional.IsOptional(v) {
		o, err := optional.FromParsedJSON[T](v)
		if err != nil {
			return Aborted[T](err)
		}
		return FromOptional(o)
	}

	if t, ok := v.(T); ok {
		return Ok(t)
	}

	err := mismatch[T](v)
	log := logger()
	log.Debug().Err(err).Msg("value not classifiable")
	return Aborted[T](err)
}
