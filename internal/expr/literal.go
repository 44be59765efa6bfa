package expr

import (
	"errors"
	"fmt"
	"math"

	"member-generator/primitive"
)

// ErrInvalidLiteral is returned when a raw value cannot be represented by a kind.
var ErrInvalidLiteral = errors.New("invalid literal")

// LiteralOf builds the literal of kind k from a decoded YAML or JSON value.
// Integers are range-checked against the representation; integral floats are
// accepted for integer kinds since JSON decoding yields float64. Signed kinds
// hold int64 values, unsigned kinds uint64.
func LiteralOf(k primitive.KindEnum, raw any) (Literal, error) {
	t := Scalar(k)

	switch primitive.Classify(k) {
	case primitive.ValueKindString:
		s, ok := raw.(string)
		if !ok {
			return Literal{}, fmt.Errorf("%w: %v (%T) is not a %s", ErrInvalidLiteral, raw, raw, k.Keyword())
		}

		return Literal{Of: t, Value: s}, nil

	case primitive.ValueKindInteger:
		if k.IsUnsigned() {
			u, err := toUint64(raw)
			if err != nil {
				return Literal{}, fmt.Errorf("%w: %v is not a %s: %w", ErrInvalidLiteral, raw, k.Keyword(), err)
			}

			if !fitsUnsigned(k, u) {
				return Literal{}, fmt.Errorf("%w: %d overflows %s", ErrInvalidLiteral, u, k.Keyword())
			}

			return Literal{Of: t, Value: u}, nil
		}

		v, err := toInt64(raw)
		if err != nil {
			return Literal{}, fmt.Errorf("%w: %v is not a %s: %w", ErrInvalidLiteral, raw, k.Keyword(), err)
		}

		if !fitsInteger(k, v) {
			return Literal{}, fmt.Errorf("%w: %d overflows %s", ErrInvalidLiteral, v, k.Keyword())
		}

		return Literal{Of: t, Value: v}, nil

	case primitive.ValueKindFloating:
		v, err := toFloat64(raw)
		if err != nil {
			return Literal{}, fmt.Errorf("%w: %v is not a %s: %w", ErrInvalidLiteral, raw, k.Keyword(), err)
		}

		if k == primitive.KindFloat32 {
			v = float64(float32(v))
		}

		return Literal{Of: t, Value: v}, nil
	}

	if k == primitive.KindBool {
		b, ok := raw.(bool)
		if !ok {
			return Literal{}, fmt.Errorf("%w: %v (%T) is not a bool", ErrInvalidLiteral, raw, raw)
		}

		return Literal{Of: t, Value: b}, nil
	}

	return Literal{}, fmt.Errorf("%w: kind %s has no literal form", ErrInvalidLiteral, k)
}

var errNotNumber = errors.New("not a number")

func toInt64(raw any) (int64, error) {
	switch v := raw.(type) {
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint:
		return uintToInt64(uint64(v))
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		return uintToInt64(v)
	case float32:
		return floatToInt64(float64(v))
	case float64:
		return floatToInt64(v)
	default:
		return 0, errNotNumber
	}
}

var (
	errOutOfRange  = errors.New("out of range")
	errNegative    = errors.New("negative")
	errNotIntegral = errors.New("not integral")
)

func uintToInt64(v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, errOutOfRange
	}

	return int64(v), nil
}

func toUint64(raw any) (uint64, error) {
	switch v := raw.(type) {
	case uint:
		return uint64(v), nil
	case uint8:
		return uint64(v), nil
	case uint16:
		return uint64(v), nil
	case uint32:
		return uint64(v), nil
	case uint64:
		return v, nil
	case float32:
		return floatToUint64(float64(v))
	case float64:
		return floatToUint64(v)
	default:
		i, err := toInt64(raw)
		if err != nil {
			return 0, err
		}

		if i < 0 {
			return 0, errNegative
		}

		return uint64(i), nil
	}
}

func floatToUint64(v float64) (uint64, error) {
	switch {
	case v != math.Trunc(v):
		return 0, errNotIntegral
	case v < 0:
		return 0, errNegative
	case v >= math.MaxUint64:
		return 0, errOutOfRange
	}

	return uint64(v), nil
}

func floatToInt64(v float64) (int64, error) {
	if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
		return 0, errNotIntegral
	}

	return int64(v), nil
}

func toFloat64(raw any) (float64, error) {
	switch v := raw.(type) {
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	case uint:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	default:
		i, err := toInt64(raw)
		return float64(i), err
	}
}

func fitsInteger(k primitive.KindEnum, v int64) bool {
	bits := k.Bits()
	if bits >= 64 {
		return true
	}

	limit := int64(1) << (bits - 1)

	return v >= -limit && v < limit
}

func fitsUnsigned(k primitive.KindEnum, v uint64) bool {
	bits := k.Bits()
	if bits >= 64 {
		return true
	}

	return v < uint64(1)<<bits
}
