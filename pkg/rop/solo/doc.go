// Package solo contains context-aware, single-value ROP helpers built on
// rop.Result[T]. They are explicitly authored free functions over the
// combinators of package rop.
//
// Highlights:
// - Succeed/Fail/Abort: construct Result[T]
// - Validate/AndValidate/ValidateStruct: turn invalid input into an Error
// - ValidateAll/Join: run several checks, optionally stopping at the first failure
// - Switch/Map/Try: move from Result[In] to Result[Out]
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - FailOnError: turn a returned error into an Error
// - Finally: reduce to a concrete value via ok/error/abort handlers
//
// Helpers that branch on all three settled variants (DoubleTee, Finally,
// Join, ValidateAll) wait for a Pending input, bounded by ctx.
package solo
