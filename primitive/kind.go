package primitive

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"member-generator/internal/match"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum is the concrete scalar representation a schema type resolves to.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindBool
	KindString
	KindTime
	KindDuration

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64,
		KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

// IsReference reports whether values of the kind may be absent without a nullable wrapper.
func (k KindEnum) IsReference() bool {
	return k == KindString
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only numeric kinds has meaningful bits amount, but requested for: " + k.String())
	case KindInt, KindUint:
		power := 0
		for n := uint(math.MaxUint); n > 0; n >>= 1 {
			power++
		}
		return power
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32:
		return 32
	case KindInt64, KindUint64:
		return 64
	case KindFloat32:
		return 32
	case KindFloat64:
		return 64
	}
}

// RepresentationName returns the name used for accessors specific to the representation,
// e.g. ToSerialInt32 or ToSerialFloat64.
func (k KindEnum) RepresentationName() string {
	return strings.TrimPrefix(k.String(), "Kind")
}

// Keyword returns the schema spelling of the kind, as accepted by ParseKind.
func (k KindEnum) Keyword() string {
	return strings.ToLower(k.RepresentationName())
}

var keywords = map[string]KindEnum{}

func init() {
	for k := KindEnum(1); int(k) < KindTotal; k++ {
		keywords[k.Keyword()] = k
	}

	// common spellings used by API descriptions
	keywords["integer"] = KindInt32
	keywords["long"] = KindInt64
	keywords["float"] = KindFloat32
	keywords["double"] = KindFloat64
	keywords["number"] = KindFloat64
	keywords["boolean"] = KindBool
	keywords["datetime"] = KindTime
}

// ParseKind resolves a schema type keyword. Unknown keywords return the zero KindEnum.
func ParseKind(name string) (KindEnum, bool) {
	k, ok := keywords[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// Keywords returns every keyword accepted by ParseKind, aliases included, sorted.
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for kw := range keywords {
		out = append(out, kw)
	}

	sort.Strings(out)

	return out
}

// MarshalText encodes the kind as its schema keyword.
func (k KindEnum) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("invalid kind: %d", int(k))
	}

	return []byte(k.Keyword()), nil
}

// UnmarshalText decodes a schema keyword, including the common aliases.
func (k *KindEnum) UnmarshalText(text []byte) error {
	parsed, ok := ParseKind(string(text))
	if !ok {
		return fmt.Errorf("unknown value type %q%s", string(text), match.Hint(string(text), Keywords()))
	}

	*k = parsed

	return nil
}
