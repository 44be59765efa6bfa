package provider

import (
	"errors"
	"fmt"

	"member-generator/internal/expr"
)

var (
	ErrDuplicateValue       = errors.New("duplicate enumeration value")
	ErrUnsupportedValueKind = errors.New("unsupported enumeration value kind")
	ErrInvalidLiteral       = expr.ErrInvalidLiteral
)

// Schema error codes, as reported in diagnostics.
const (
	CodeDuplicateValue       = "duplicate_value"
	CodeReservedName         = "reserved_name"
	CodeUnsupportedValueKind = "unsupported_value_kind"
	CodeInvalidLiteral       = "invalid_literal"
)

// SchemaError is a problem of one enumeration schema that prevents its
// member model from being built. Value is the offending input value.
type SchemaError struct {
	TypeName string
	Code     string
	Value    string
	Err      error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: %s %q: %v", e.TypeName, e.Code, e.Value, e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// SchemaErrors flattens err, possibly joined, into the schema errors it carries.
func SchemaErrors(err error) []*SchemaError {
	switch e := err.(type) {
	case nil:
		return nil
	case *SchemaError:
		return []*SchemaError{e}
	case interface{ Unwrap() []error }:
		var out []*SchemaError
		for _, inner := range e.Unwrap() {
			out = append(out, SchemaErrors(inner)...)
		}

		return out
	}

	var se *SchemaError
	if errors.As(err, &se) {
		return []*SchemaError{se}
	}

	return nil
}
