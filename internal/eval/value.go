package eval

import (
	"errors"
	"fmt"
	"math"

	"member-generator/internal/expr"
	"member-generator/primitive"
)

var (
	ErrUnknownMember    = errors.New("unknown member")
	ErrTypeMismatch     = errors.New("type mismatch")
	ErrNotConstructible = errors.New("type has no constructor")
)

// RuntimeError is a failure raised by a throw statement of the model.
type RuntimeError struct {
	Kind    expr.ErrorKind
	Type    string
	Param   string
	Message string
	Value   any
}

func (e *RuntimeError) Error() string {
	msg := fmt.Sprintf("%s: %s error on %s", e.Type, e.Kind, e.Param)
	if e.Message != "" {
		msg += ": " + e.Message
	}

	if e.Kind == expr.ErrorMapping {
		msg += fmt.Sprintf(" (%v)", e.Value)
	}

	return msg
}

// Instance is a value of an open wrapper type.
type Instance struct {
	Type   string
	fields map[string]any
}

// Field returns the value stored in a field.
func (i *Instance) Field(name string) any {
	return i.fields[name]
}

func (i *Instance) String() string {
	return fmt.Sprintf("%s%v", i.Type, i.fields)
}

// EnumValue is a value of a closed enumeration: its underlying constant,
// an int64, or a uint64 for unsigned representations.
type EnumValue struct {
	Type  string
	Value any
}

// normalize maps Go scalars onto the runtime representation.
func normalize(v any) (any, error) {
	switch x := v.(type) {
	case nil, string, bool, int64, uint64, float64, *Instance, EnumValue:
		return v, nil
	case int:
		return int64(x), nil
	case int8:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case uint:
		return uint64(x), nil
	case uint8:
		return int64(x), nil
	case uint16:
		return int64(x), nil
	case uint32:
		return int64(x), nil
	case float32:
		return float64(x), nil
	default:
		return nil, fmt.Errorf("%w: unsupported Go value %T", ErrTypeMismatch, v)
	}
}

// integerOf converts an int64 or uint64 to the form held by values of kind k:
// uint64 for unsigned kinds, int64 otherwise.
func integerOf(k primitive.KindEnum, v any) (any, bool) {
	switch x := v.(type) {
	case int64:
		if !k.IsUnsigned() {
			return x, true
		}

		if x < 0 {
			return nil, false
		}

		return uint64(x), true
	case uint64:
		if k.IsUnsigned() {
			return x, true
		}

		if x > math.MaxInt64 {
			return nil, false
		}

		return int64(x), true
	default:
		return nil, false
	}
}

// sameValue is exact equality of runtime values.
func sameValue(a, b any) bool {
	switch x := a.(type) {
	case *Instance:
		y, ok := b.(*Instance)
		if !ok || x.Type != y.Type || len(x.fields) != len(y.fields) {
			return false
		}

		for k, v := range x.fields {
			if !sameValue(v, y.fields[k]) {
				return false
			}
		}

		return true
	default:
		return a == b
	}
}
