package members

import (
	"fmt"
	"strings"
)

// Accessibility is the declared visibility of a type or member.
type Accessibility int

const (
	AccessPublic Accessibility = iota
	AccessInternal
	AccessProtected
	AccessPrivate
)

// String returns the schema spelling of the accessibility.
func (a Accessibility) String() string {
	switch a {
	case AccessPublic:
		return "public"
	case AccessInternal:
		return "internal"
	case AccessProtected:
		return "protected"
	case AccessPrivate:
		return "private"
	default:
		return "unknown"
	}
}

// ParseAccessibility parses the schema spelling. The empty string is public.
func ParseAccessibility(s string) (Accessibility, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "public":
		return AccessPublic, true
	case "internal":
		return AccessInternal, true
	case "protected":
		return AccessProtected, true
	case "private":
		return AccessPrivate, true
	default:
		return AccessPublic, false
	}
}

// MarshalText encodes the schema spelling.
func (a Accessibility) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText decodes the schema spelling.
func (a *Accessibility) UnmarshalText(text []byte) error {
	parsed, ok := ParseAccessibility(string(text))
	if !ok {
		return fmt.Errorf("unknown accessibility %q", string(text))
	}

	*a = parsed

	return nil
}

// Modifiers are member modifiers other than accessibility.
type Modifiers uint

const (
	ModStatic Modifiers = 1 << iota
	ModReadOnly
	ModConst
	ModOverride
	ModExtension // static method whose first parameter is the extended type

	ModNone Modifiers = 0
)

// Has reports whether all modifiers in m2 are set.
func (m Modifiers) Has(m2 Modifiers) bool {
	return m&m2 == m2
}

// String returns the set modifiers separated by spaces.
func (m Modifiers) String() string {
	var parts []string

	names := []struct {
		mod  Modifiers
		name string
	}{
		{ModStatic, "static"},
		{ModReadOnly, "readonly"},
		{ModConst, "const"},
		{ModOverride, "override"},
		{ModExtension, "extension"},
	}
	for _, n := range names {
		if m.Has(n.mod) {
			parts = append(parts, n.name)
		}
	}

	return strings.Join(parts, " ")
}

// StructuralKind is the kind of declaration a type provider produces.
type StructuralKind int

const (
	KindStruct StructuralKind = iota
	KindReadOnlyStruct
	KindEnum
	KindClass
)

// String returns a human-readable kind name.
func (k StructuralKind) String() string {
	switch k {
	case KindStruct:
		return "struct"
	case KindReadOnlyStruct:
		return "readonly struct"
	case KindEnum:
		return "enum"
	case KindClass:
		return "class"
	default:
		return "unknown"
	}
}

// Mutability is the setter policy of a property.
type Mutability int

const (
	// MutabilityNone exposes a getter only.
	MutabilityNone Mutability = iota
	// MutabilityPublicSetter exposes a public setter.
	MutabilityPublicSetter
)

// String returns a human-readable mutability name.
func (m Mutability) String() string {
	switch m {
	case MutabilityNone:
		return "none"
	case MutabilityPublicSetter:
		return "public-setter"
	default:
		return "unknown"
	}
}

// MethodKind distinguishes ordinary methods from operators and conversions.
type MethodKind int

const (
	MethodRegular MethodKind = iota
	MethodOperator
	MethodImplicitConversion
)

// String returns a human-readable method kind name.
func (k MethodKind) String() string {
	switch k {
	case MethodRegular:
		return "method"
	case MethodOperator:
		return "operator"
	case MethodImplicitConversion:
		return "implicit"
	default:
		return "unknown"
	}
}
