package schema

import (
	"fmt"
	"strings"

	"member-generator/internal/expr"
	"member-generator/internal/members"
	"member-generator/primitive"
)

// File is the root of a schema document.
type File struct {
	// Version of the schema format (currently "1").
	Version string `yaml:"version" json:"version"`
	// Enums lists enumeration schemas in declaration order.
	Enums []EnumSchema `yaml:"enums,omitempty" json:"enums,omitempty"`
	// Records lists record schemas whose fields become properties.
	Records []RecordSchema `yaml:"records,omitempty" json:"records,omitempty"`
}

// EnumSchema describes one enumeration.
type EnumSchema struct {
	Name          string                `yaml:"name" json:"name"`
	Description   string                `yaml:"description,omitempty" json:"description,omitempty"`
	Accessibility members.Accessibility `yaml:"accessibility,omitempty" json:"accessibility,omitempty"`
	Deprecated    bool                  `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	// IsExtensible selects the open value wrapper over the closed enumeration.
	IsExtensible bool `yaml:"extensible" json:"extensible"`
	// ValueType is the raw representation of every allowed value.
	ValueType primitive.KindEnum `yaml:"valueType" json:"valueType"`
	Values    []AllowedValue     `yaml:"values" json:"values"`
}

// ValueKind classifies the representation of the enumeration.
func (e *EnumSchema) ValueKind() primitive.ValueKind {
	return primitive.Classify(e.ValueType)
}

// AllowedValue is a declared member of an enumeration.
type AllowedValue struct {
	Name string `yaml:"name" json:"name"`
	// Value is the raw literal as decoded: string, an integer or float64.
	Value       any    `yaml:"value" json:"value"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// RecordSchema groups the fields of one record type.
type RecordSchema struct {
	Name        string        `yaml:"name" json:"name"`
	Description string        `yaml:"description,omitempty" json:"description,omitempty"`
	Fields      []RecordField `yaml:"fields" json:"fields"`
}

// RecordField is the input of the property synthesizer.
type RecordField struct {
	Name          string         `yaml:"name" json:"name"`
	Description   string         `yaml:"description,omitempty" json:"description,omitempty"`
	Type          TypeDescriptor `yaml:"type" json:"type"`
	Required      bool           `yaml:"required,omitempty" json:"required,omitempty"`
	ReadOnly      bool           `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
	Discriminator bool           `yaml:"discriminator,omitempty" json:"discriminator,omitempty"`
}

// TypeDescriptor is a resolved field type with its traits.
// In YAML and JSON it may also be written as a shorthand string:
// "string", "int32?" (nullable), "string[]" (collection), "string[]?".
type TypeDescriptor struct {
	// Name is a scalar keyword or the name of another declared type.
	Name         string `yaml:"name" json:"name"`
	Nullable     bool   `yaml:"nullable,omitempty" json:"nullable,omitempty"`
	Collection   bool   `yaml:"collection,omitempty" json:"collection,omitempty"`
	ReadOnlyView bool   `yaml:"readOnlyView,omitempty" json:"readOnlyView,omitempty"`
	// IsLiteral marks a type fixed to a single value, e.g. a discriminator constant.
	IsLiteral    bool `yaml:"literal,omitempty" json:"literal,omitempty"`
	LiteralValue any  `yaml:"literalValue,omitempty" json:"literalValue,omitempty"`
}

// Scalar returns the scalar representation of the element type, if it is one.
func (t TypeDescriptor) Scalar() (primitive.KindEnum, bool) {
	return primitive.ParseKind(t.Name)
}

// Ref resolves the descriptor to a type reference. Collections are
// List<T> or ReadOnlyList<T>; nullability applies to the outermost type.
func (t TypeDescriptor) Ref() expr.TypeRef {
	elem := expr.Named(t.Name)
	if k, ok := t.Scalar(); ok {
		elem = expr.Scalar(k)
	}

	if !t.Collection {
		return elem.WithNullable(t.Nullable)
	}

	name := "List"
	if t.ReadOnlyView {
		name = "ReadOnlyList"
	}

	return expr.Named(name, elem).WithNullable(t.Nullable)
}

// LiteralExpr returns the fixed literal of a literal type.
func (t TypeDescriptor) LiteralExpr() (expr.Literal, error) {
	if !t.IsLiteral {
		return expr.Literal{}, fmt.Errorf("type %s is not a literal type", t.Name)
	}

	k, ok := t.Scalar()
	if !ok {
		return expr.Literal{}, fmt.Errorf("%w: literal type %q is not a scalar", expr.ErrInvalidLiteral, t.Name)
	}

	lit, err := expr.LiteralOf(k, t.LiteralValue)
	if err != nil {
		return expr.Literal{}, err
	}

	lit.Of = t.Ref()

	return lit, nil
}

// String returns the shorthand spelling of the descriptor.
func (t TypeDescriptor) String() string {
	s := t.Name
	if t.Collection {
		s += "[]"
	}

	if t.Nullable {
		s += "?"
	}

	return s
}

// parseShorthand reads "name", "name?", "name[]" and "name[]?".
func parseShorthand(s string) TypeDescriptor {
	var t TypeDescriptor

	s = strings.TrimSpace(s)
	if rest, ok := strings.CutSuffix(s, "?"); ok {
		t.Nullable = true
		s = rest
	}

	if rest, ok := strings.CutSuffix(s, "[]"); ok {
		t.Collection = true
		s = rest
	}

	t.Name = strings.TrimSpace(s)

	return t
}
