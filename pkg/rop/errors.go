package rop

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/ib-77/outcome/pkg/rop/promise"
)

var (
	// ErrNotSettled is the panic value when a settlement flag is read on a Pending.
	ErrNotSettled = errors.New("rop: outcome is not settled yet")
	// ErrNoPayload is returned by Get and ToPromise for a failure without an error.
	ErrNoPayload = errors.New("rop: failure without payload")
	// ErrNilPromise aborts an Async combinator whose callback returned no promise.
	ErrNilPromise = errors.New("rop: callback returned a nil promise")
	// ErrTypeMismatch is matched by *TypeMismatchError.
	ErrTypeMismatch = promise.ErrTypeMismatch
)

// PanicError carries a recovered panic value that was not an error.
type PanicError = promise.PanicError

// TypeMismatchError reports a value that could not be classified as the
// Result's value type.
type TypeMismatchError struct {
	Want string
	Got  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("rop: unexpected value type: want %s, got %s", e.Want, e.Got)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

func mismatch[T any](got any) error {
	return &TypeMismatchError{
		Want: reflect.TypeFor[T]().String(),
		Got:  fmt.Sprintf("%T", got),
	}
}

func payload(err error) error {
	if err == nil {
		return ErrNoPayload
	}
	return err
}
