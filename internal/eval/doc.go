// Package eval interprets member models.
//
// A Machine runs the bodies synthesized by a type provider (constructors,
// operators, conversions, serialization accessors) over Go values, so the
// behavior a printer would emit can be checked without generating code.
//
// Runtime values are:
//   - nil for an absent value
//   - string, int64, float64 and bool for scalars
//   - *Instance for open value wrappers
//   - EnumValue for closed enumeration cases
//
// Failures raised by the model itself (construction validation, mapping)
// are returned as *RuntimeError.
package eval
