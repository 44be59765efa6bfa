package eval

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"

	"github.com/spaolacci/murmur3"
	"golang.org/x/text/cases"

	"member-generator/internal/expr"
	"member-generator/primitive"
)

// fold case-folds text independently of any locale.
func fold(s string) string {
	return cases.Fold().String(s)
}

// hashScalar is the natural hash of a scalar: murmur3 over its canonical bytes.
func hashScalar(v any) (int64, error) {
	var buf [8]byte

	switch x := v.(type) {
	case nil:
		return 0, nil
	case string:
		return int64(int32(murmur3.Sum32([]byte(x)))), nil
	case int64:
		binary.LittleEndian.PutUint64(buf[:], uint64(x))
	case uint64:
		binary.LittleEndian.PutUint64(buf[:], x)
	case float64:
		if x == 0 {
			x = 0 // -0 and +0 are equal
		}

		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(x))
	case bool:
		if x {
			buf[0] = 1
		}
	default:
		return 0, fmt.Errorf("%w: cannot hash %T", ErrTypeMismatch, v)
	}

	return int64(int32(murmur3.Sum32(buf[:]))), nil
}

func formatScalar(v any, k primitive.KindEnum) (string, error) {
	switch x := v.(type) {
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float64:
		bits := 64
		if k == primitive.KindFloat32 {
			bits = 32
		}

		return strconv.FormatFloat(x, 'g', -1, bits), nil
	default:
		return "", fmt.Errorf("%w: cannot format %T", ErrTypeMismatch, v)
	}
}

func (m *Machine) intrinsic(in expr.Intrinsic, f *frame) (any, error) {
	args := make([]any, len(in.Args))
	for i, a := range in.Args {
		v, err := m.eval(a, f)
		if err != nil {
			return nil, err
		}

		args[i] = v
	}

	switch in.Op {
	case expr.IntrinsicEqual:
		return sameValue(args[0], args[1]), nil

	case expr.IntrinsicEqualFold:
		if args[0] == nil || args[1] == nil {
			return args[0] == nil && args[1] == nil, nil
		}

		a, okA := args[0].(string)
		b, okB := args[1].(string)
		if !okA || !okB {
			return nil, fmt.Errorf("%w: equalFold over %T and %T", ErrTypeMismatch, args[0], args[1])
		}

		return fold(a) == fold(b), nil

	case expr.IntrinsicHash:
		return hashScalar(args[0])

	case expr.IntrinsicHashFold:
		if args[0] == nil {
			return int64(0), nil
		}

		s, ok := args[0].(string)
		if !ok {
			return nil, fmt.Errorf("%w: hashFold over %T", ErrTypeMismatch, args[0])
		}

		return hashScalar(fold(s))

	case expr.IntrinsicFormat:
		return formatScalar(args[0], in.Args[0].Type().Scalar)

	case expr.IntrinsicIsNull:
		return args[0] == nil, nil

	default:
		return nil, fmt.Errorf("%w: intrinsic %s", ErrUnknownMember, in.Op)
	}
}
