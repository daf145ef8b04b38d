// Package chain provides a fluent, context-carrying builder around Result[T]
// that delegates every step to the solo helpers.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then: switch to a new Result[U] via a function
// - ThenTry: call a function (U, error) and convert the error to an Error
// - Map: transform the successful value (T -> U)
// - Validate: keep an Ok only when a check passes
// - Ensure: run side effects on success without changing the result
// - Recover: turn an Error back into an Ok
// - Finally: collapse the chain into a final value via handlers
//
// Steps on a Pending result are deferred, so a chain can be built before its
// input settles. Only Finally waits, bounded by the chain's context.
package chain
