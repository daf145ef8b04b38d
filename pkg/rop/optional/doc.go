// Package optional implements Option[T], a synchronous two-variant container
// expressing presence (Some) or absence (None) of a value.
//
// Options are immutable values; every combinator returns a new Option and None
// never invokes a supplied callback. Type-changing combinators (Map,
// NullableMap, FlatMap, Match) are free functions because Go methods cannot
// introduce type parameters.
//
// Options serialize to a plain shape
//
//	{"isOptionalInstance": true, "valuePresent": true, "valueAbsent": false, "value": ...}
//
// which IsOptional, IsSome, IsNone and FromParsedJSON recognize structurally,
// so Options produced by other copies of this package interoperate.
package optional
