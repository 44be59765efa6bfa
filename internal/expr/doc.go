// Package expr provides the typed expression and statement trees used as member
// bodies, initializers and serialization-boundary conversions.
//
// Expressions never carry target-language text. Framework operations whose exact
// behavior matters to generated semantics (case-insensitive comparison, hashing,
// invariant formatting) are modeled as Intrinsic nodes so every consumer of the
// tree sees the same policy.
package expr
