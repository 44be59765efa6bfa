package property

import (
	"errors"
	"fmt"

	"member-generator/internal/expr"
	"member-generator/internal/ident"
	"member-generator/internal/members"
	"member-generator/internal/schema"
)

// ErrDuplicateProperty is returned when two fields of a record map to the same property name.
var ErrDuplicateProperty = errors.New("duplicate property")

// Synthesize returns the property descriptor of one record field.
// It fails only when a required literal field carries a value its type cannot hold.
func Synthesize(field *schema.RecordField) (*members.Property, error) {
	init, err := Initializer(field)
	if err != nil {
		return nil, fmt.Errorf("field %s: %w", field.Name, err)
	}

	name := ident.Sanitize(field.Name)
	mut := Mutability(field)

	return &members.Property{
		Name:          name,
		Description:   Description(name, field.Description, mut),
		Accessibility: members.AccessPublic,
		Type:          field.Type.Ref(),
		Mutability:    mut,
		Initializer:   init,
	}, nil
}

// SynthesizeAll synthesizes every field of r in declaration order.
func SynthesizeAll(r *schema.RecordSchema) ([]*members.Property, error) {
	var errs []error

	seen := make(map[string]string, len(r.Fields))
	props := make([]*members.Property, 0, len(r.Fields))

	for i := range r.Fields {
		field := &r.Fields[i]

		prop, err := Synthesize(field)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if first, ok := seen[prop.Name]; ok {
			errs = append(errs, fmt.Errorf("%w: %q and %q both become %s", ErrDuplicateProperty, first, field.Name, prop.Name))
			continue
		}

		seen[prop.Name] = field.Name
		props = append(props, prop)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("record %s: %w", r.Name, errors.Join(errs...))
	}

	return props, nil
}

// Mutability decides the setter policy; the first matching rule wins.
func Mutability(field *schema.RecordField) members.Mutability {
	t := field.Type

	switch {
	case field.Discriminator:
		return members.MutabilityPublicSetter
	case field.ReadOnly:
		return members.MutabilityNone
	case t.IsLiteral && field.Required:
		return members.MutabilityNone
	case t.Collection && !t.ReadOnlyView:
		if t.Nullable {
			return members.MutabilityPublicSetter
		}

		return members.MutabilityNone
	case t.Collection:
		return members.MutabilityNone
	default:
		return members.MutabilityPublicSetter
	}
}

// Initializer returns the compiled-in value of a required field, or nil.
// Literal fields start with their literal, or with the empty value of the
// type when nullable; other required fields are supplied by the caller.
func Initializer(field *schema.RecordField) (expr.Expr, error) {
	if !field.Required || !field.Type.IsLiteral {
		return nil, nil
	}

	if field.Type.Nullable {
		return expr.Default{Of: field.Type.Ref()}, nil
	}

	lit, err := field.Type.LiteralExpr()
	if err != nil {
		return nil, err
	}

	return lit, nil
}

// Description returns the schema description, or a getter/setter summary.
func Description(name, description string, mut members.Mutability) string {
	if description != "" {
		return description
	}

	if mut == members.MutabilityNone {
		return "Gets the " + name + "."
	}

	return "Gets or sets the " + name + "."
}
