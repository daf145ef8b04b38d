package promise

import (
	"errors"
	"fmt"
	"runtime/debug"
	"sync/atomic"
)

// ErrTypeMismatch is matched by errors produced when a thenable settles with a
// value of an unexpected type.
var ErrTypeMismatch = errors.New("promise: unexpected settlement type")

var panicStacks atomic.Bool

// CapturePanicStacks toggles recording of the goroutine stack in PanicError.
func CapturePanicStacks(enabled bool) {
	panicStacks.Store(enabled)
}

// PanicError carries a recovered panic value that was not itself an error.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Recovered turns a value returned by recover() into an error. Errors are
// returned unchanged; anything else is wrapped in a PanicError.
func Recovered(r any) error {
	if err, ok := r.(error); ok {
		return err
	}

	pe := &PanicError{Value: r}
	if panicStacks.Load() {
		pe.Stack = debug.Stack()
	}
	return pe
}

func mismatch(want string, got any) error {
	return fmt.Errorf("%w: want %s, got %T", ErrTypeMismatch, want, got)
}
