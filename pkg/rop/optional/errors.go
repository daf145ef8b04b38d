package optional

import "errors"

var (
	// ErrUnwrap is matched by every UnwrapError.
	ErrUnwrap = errors.New("optional: unwrap on None")
	// ErrNotOptional reports input that lacks the optional marker.
	ErrNotOptional = errors.New("optional: input is not an optional")
)

// UnwrapError is returned when a value is requested from None.
type UnwrapError struct {
	Message string
}

func (e *UnwrapError) Error() string {
	if e.Message == "" {
		return ErrUnwrap.Error()
	}
	return ErrUnwrap.Error() + ": " + e.Message
}

func (e *UnwrapError) Is(target error) bool {
	return target == ErrUnwrap
}
