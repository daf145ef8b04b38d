package rop

import (
	"github.com/rs/zerolog"

	"github.com/ib-77/outcome/internal/logging"
	"github.com/ib-77/outcome/pkg/rop/promise"
)

type config struct {
	logger      *zerolog.Logger
	panicStacks *bool
}

// ConfigOption adjusts package-wide behavior. See Configure.
type ConfigOption func(*config)

// WithLogger installs the logger used by rop and promise. Events are emitted
// at debug level with a component field.
func WithLogger(l zerolog.Logger) ConfigOption {
	return func(c *config) {
		c.logger = &l
	}
}

// WithPanicStacks records the goroutine stack in every PanicError.
func WithPanicStacks(enabled bool) ConfigOption {
	return func(c *config) {
		c.panicStacks = &enabled
	}
}

// Configure applies opts. Settings not named keep their current value.
func Configure(opts ...ConfigOption) {
	c := config{}
	for _, opt := range opts {
		opt(&c)
	}

	if c.logger != nil {
		logging.Set(*c.logger)
	}
	if c.panicStacks != nil {
		promise.CapturePanicStacks(*c.panicStacks)
	}
}

func logger() zerolog.Logger {
	return logging.Component("rop")
}
