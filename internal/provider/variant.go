package provider

import "member-generator/internal/schema"

// VariantEnum selects the builder of an enumeration schema.
type VariantEnum int

const (
	VariantFixed VariantEnum = iota
	VariantExtensible
)

func (v VariantEnum) String() string {
	switch v {
	case VariantFixed:
		return "fixed"
	case VariantExtensible:
		return "extensible"
	default:
		return "unknown"
	}
}

// Dispatch selects the variant of s.
func Dispatch(s *schema.EnumSchema) VariantEnum {
	if s.IsExtensible {
		return VariantExtensible
	}

	return VariantFixed
}
