package rop

import (
	"time"

	"github.com/google/uuid"
)

type ResultProvider interface {
	// Id unique identifier of the outcome
	Id() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// Outcome is satisfied by every Result regardless of its value type.
type Outcome interface {
	ResultProvider
	// IsResultInstance capability marker
	IsResultInstance() bool
	// IsAsynchronous returns true while the outcome is Pending
	IsAsynchronous() bool

	erase() Result[any]
}

// IsResult reports whether v is a Result of any value type.
func IsResult(v any) bool {
	o, ok := v.(Outcome)
	return ok && o.IsResultInstance()
}

// IsSyncResult reports whether v is a settled Result.
func IsSyncResult(v any) bool {
	return IsResult(v) && !v.(Outcome).IsAsynchronous()
}

// IsAsyncResult reports whether v is a Pending Result.
func IsAsyncResult(v any) bool {
	return IsResult(v) && v.(Outcome).IsAsynchronous()
}
