// Package logging keeps the process-wide zerolog logger used by the rop and
// promise packages. The default logger discards everything.
package logging

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var current atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	current.Store(&nop)
}

// Set replaces the base logger.
func Set(l zerolog.Logger) {
	current.Store(&l)
}

// Logger returns the base logger.
func Logger() *zerolog.Logger {
	return current.Load()
}

// Component returns a child of the base logger tagged with component.
func Component(component string) zerolog.Logger {
	return current.Load().With().Str("component", component).Logger()
}
