package primitive

//go:generate go tool stringer -type=ValueKind -trimprefix=ValueKind -output=value_kind_string.go

// ValueKind is the coarse category of a scalar representation. Equality, hashing and
// formatting policy of generated wrappers branch on it.
type ValueKind int

const (
	ValueKindOther ValueKind = iota
	ValueKindString
	ValueKindInteger
	ValueKindFloating
)

// IsNumeric reports whether the kind is integer-like or floating-like.
func (v ValueKind) IsNumeric() bool {
	return v == ValueKindInteger || v == ValueKindFloating
}

// Classify maps a representation to its value kind.
func Classify(k KindEnum) ValueKind {
	switch {
	case k == KindString:
		return ValueKindString
	case k.IsInteger():
		return ValueKindInteger
	case k.IsFloat():
		return ValueKindFloating
	default:
		return ValueKindOther
	}
}
