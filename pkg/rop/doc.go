// Package rop implements Result[T], a four-variant outcome type for
// railway-oriented pipelines:
//
// - Ok: success carrying a value
// - Error: anticipated, recoverable failure carrying an error (possibly nil)
// - Aborted: unrecoverable failure, usually a recovered panic or a rejected
//   promise; absorbing for every combinator except TapError
// - Pending: an outcome still in flight, backed by a promise that settles to
//   one of the three variants above
//
// Every combinator that runs a callback does so under a guarded transform: a
// panic becomes Aborted, a returned promise (the Async variants, Chain and
// Expect) suspends into Pending, and anything else is post-processed
// synchronously. Combinators called on a Pending are deferred until it
// settles, and nested Pending values collapse into one.
//
// Reading IsOk, IsError, IsAborted, IsFailure or Err on a Pending panics with
// ErrNotSettled. Observers such as Get, GetOrElse, Merge, Satisfies,
// ValueEquals, ToOptional and Match wait for settlement. Each has a
// promise-returning form (ToPromise, GetOrElseAsync, MergeAsync,
// SatisfiesAsync, ValueEqualsAsync, ToOptionalAsync, MatchAsync) that never
// blocks.
//
// Continuations of a promise run one after another on the goroutine that
// settles it. A blocking observer called from inside a callback of a Pending
// (Tap, Map, Filter and so on) can wait on a continuation queued behind the
// running one and never return. Use the promise-returning forms there.
//
// Type-changing combinators (Map, Transform, Chain, FlatMap, Try, Match) are
// free functions because Go methods cannot introduce type parameters.
package rop
