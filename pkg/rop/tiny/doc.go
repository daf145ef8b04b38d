// Package tiny provides a minimal fluent Chain[T] for composition of
// Result[T] values of one type.
//
// It parallels the chain package but adds control flow:
// - Start/FromValue: create a Chain
// - Then/ThenTry/Map: compose result-returning, error-returning or plain functions
// - RepeatUntil/While and their Chain forms: loop a step over the value
// - Or/And: pick the first success or require every chain to succeed
// - Ensure: trigger side effects per variant without changing the result
// - Finally: reduce to a concrete value via handlers
//
// Loops and Or/And need settled values, so they wait for a Pending chain,
// bounded by the chain's context.
package tiny
