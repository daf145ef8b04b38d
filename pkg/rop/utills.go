package rop

import (
	"context"
	"errors"

	"github.com/ib-77/outcome/internal/reflectx"
)

// IsNil reports whether i is nil or a typed nil pointer, map, slice, func or chan.
func IsNil(i any) bool {
	return reflectx.IsNil(i)
}

// GetErrors flattens an errors.Join tree one level.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
