package provider

import (
	"errors"
	"fmt"

	"member-generator/internal/expr"
	"member-generator/internal/ident"
	"member-generator/internal/schema"
	"member-generator/primitive"
)

// resolvedValue is an allowed value with its identifier and typed literal.
type resolvedValue struct {
	name    string
	value   schema.AllowedValue
	literal expr.Literal
}

// description falls back to the raw literal.
func (v resolvedValue) description() string {
	if v.value.Description != "" {
		return v.value.Description
	}

	return fmt.Sprint(v.value.Value)
}

// resolveValues sanitizes and types every allowed value of s in declaration
// order. Names already in reserved are rejected; every problem is reported,
// none is dropped.
func resolveValues(s *schema.EnumSchema, reserved ident.Namespace) ([]resolvedValue, error) {
	if s.ValueKind() == primitive.ValueKindOther {
		return nil, &SchemaError{
			TypeName: s.Name,
			Code:     CodeUnsupportedValueKind,
			Value:    kindName(s),
			Err:      fmt.Errorf("%w: values must be text, integer or floating-point", ErrUnsupportedValueKind),
		}
	}

	var errs []error

	seen := make(map[string]string, len(s.Values))
	out := make([]resolvedValue, 0, len(s.Values))

	for _, v := range s.Values {
		name := ident.Sanitize(v.Name)

		if first, ok := seen[name]; ok {
			errs = append(errs, &SchemaError{
				TypeName: s.Name,
				Code:     CodeDuplicateValue,
				Value:    v.Name,
				Err:      fmt.Errorf("%w: %q and %q both become %s", ErrDuplicateValue, first, v.Name, name),
			})

			continue
		}

		seen[name] = v.Name

		if reserved.Has(name) {
			errs = append(errs, &SchemaError{
				TypeName: s.Name,
				Code:     CodeReservedName,
				Value:    v.Name,
				Err:      fmt.Errorf("%w: %s collides with a synthesized member", ErrDuplicateValue, name),
			})

			continue
		}

		lit, err := expr.LiteralOf(s.ValueType, v.Value)
		if err != nil {
			errs = append(errs, &SchemaError{
				TypeName: s.Name,
				Code:     CodeInvalidLiteral,
				Value:    fmt.Sprint(v.Value),
				Err:      err,
			})

			continue
		}

		out = append(out, resolvedValue{name: name, value: v, literal: lit})
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return out, nil
}

func kindName(s *schema.EnumSchema) string {
	if !s.ValueType.IsValid() {
		return "unset"
	}

	return s.ValueType.Keyword()
}
