// Package promise provides the settle-once asynchronous value that rop uses
// to represent in-flight outcomes.
//
// A Promise[T] is fulfilled with a T or rejected with an error exactly once.
// Continuations registered before settlement run in registration order on the
// goroutine that settles the promise; continuations registered afterwards run
// immediately on the caller's goroutine.
//
// Key constructs:
// - Thenable: the untyped then(onFulfilled, onRejected) contract
// - New/WithResolvers/Resolve/Reject/Go: create promises
// - OnSettled/Then/Await: observe a promise
// - Map/Catch/From: derive promises
// - Discard: consume a promise whose outcome nobody will read
package promise
