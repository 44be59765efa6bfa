package primitive_test

import (
	"fmt"
	"testing"

	"member-generator/primitive"

	"github.com/stretchr/testify/assert"
)

func Example() {
	for _, name := range []string{"string", "int32", "long", "double", "boolean", "uuid"} {
		kind, ok := primitive.ParseKind(name)
		fmt.Println(name, kind, primitive.Classify(kind), ok)
	}
	// Output:
	// string KindString String true
	// int32 KindInt32 Integer true
	// long KindInt64 Integer true
	// double KindFloat64 Floating true
	// boolean KindBool Other true
	// uuid KindEnum(0) Other false
}

func TestClassify(t *testing.T) {
	t.Parallel()

	for k := primitive.KindEnum(1); int(k) < primitive.KindTotal; k++ {
		vk := primitive.Classify(k)

		switch {
		case k == primitive.KindString:
			assert.Equal(t, primitive.ValueKindString, vk, k.String())
		case k.IsInteger():
			assert.Equal(t, primitive.ValueKindInteger, vk, k.String())
			assert.True(t, vk.IsNumeric())
		case k.IsFloat():
			assert.Equal(t, primitive.ValueKindFloating, vk, k.String())
			assert.True(t, vk.IsNumeric())
		default:
			assert.Equal(t, primitive.ValueKindOther, vk, k.String())
			assert.False(t, vk.IsNumeric())
		}
	}
}

func TestRepresentationName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Int32", primitive.KindInt32.RepresentationName())
	assert.Equal(t, "Float64", primitive.KindFloat64.RepresentationName())
	assert.Equal(t, "uint16", primitive.KindUint16.Keyword())
	assert.True(t, primitive.KindString.IsReference())
	assert.False(t, primitive.KindInt64.IsReference())
	assert.Equal(t, 32, primitive.KindFloat32.Bits())
	assert.Panics(t, func() { primitive.KindString.Bits() })
}

func TestParseKindRoundTrip(t *testing.T) {
	t.Parallel()

	for k := primitive.KindEnum(1); int(k) < primitive.KindTotal; k++ {
		parsed, ok := primitive.ParseKind(k.Keyword())
		assert.True(t, ok, k.String())
		assert.Equal(t, k, parsed)
	}

	parsed, ok := primitive.ParseKind("  Int64 ")
	assert.True(t, ok)
	assert.Equal(t, primitive.KindInt64, parsed)
}

func TestKindText(t *testing.T) {
	t.Parallel()

	var k primitive.KindEnum

	assert.NoError(t, k.UnmarshalText([]byte("double")))
	assert.Equal(t, primitive.KindFloat64, k)

	text, err := k.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "float64", string(text))

	err = k.UnmarshalText([]byte("strng"))
	assert.EqualError(t, err, `unknown value type "strng" (did you mean "string"?)`)

	err = k.UnmarshalText([]byte("uuid"))
	assert.EqualError(t, err, `unknown value type "uuid"`)

	_, err = primitive.KindEnum(0).MarshalText()
	assert.Error(t, err)
	assert.Contains(t, primitive.Keywords(), "boolean")
}
