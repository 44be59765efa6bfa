package eval

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"member-generator/internal/expr"
	"member-generator/internal/provider"
	"member-generator/internal/schema"
	"member-generator/primitive"
)

func newMachine(t *testing.T, s *schema.EnumSchema) *Machine {
	t.Helper()

	m, err := NewMachine(provider.Create(s))
	require.NoError(t, err)

	return m
}

func direction() *schema.EnumSchema {
	return &schema.EnumSchema{
		Name:         "Direction",
		IsExtensible: true,
		ValueType:    primitive.KindString,
		Values: []schema.AllowedValue{
			{Name: "North", Value: "north"},
			{Name: "South", Value: "south"},
		},
	}
}

func level(extensible bool) *schema.EnumSchema {
	return &schema.EnumSchema{
		Name:         "Level",
		IsExtensible: extensible,
		ValueType:    primitive.KindInt32,
		Values: []schema.AllowedValue{
			{Name: "Low", Value: 1},
			{Name: "High", Value: 10},
		},
	}
}

func color() *schema.EnumSchema {
	return &schema.EnumSchema{
		Name:      "Color",
		ValueType: primitive.KindString,
		Values: []schema.AllowedValue{
			{Name: "Red", Value: "red"},
			{Name: "Green", Value: "green"},
		},
	}
}

func TestExtensibleRoundTrip(t *testing.T) {
	m := newMachine(t, direction())

	for _, raw := range []string{"north", "south", "west", "North-West", ""} {
		v, err := m.ToEnum(raw)
		require.NoError(t, err, raw)

		serial, err := m.ToSerial(v)
		require.NoError(t, err, raw)
		assert.Equal(t, raw, serial, "out-of-set values round-trip too")
	}

	north, err := m.StaticProperty("North")
	require.NoError(t, err)

	parsed, err := m.ToEnum("north")
	require.NoError(t, err)

	eq, err := m.Equal(north, parsed)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestExtensibleIgnoresCase(t *testing.T) {
	m := newMachine(t, direction())

	north, err := m.StaticProperty("North")
	require.NoError(t, err)

	upper, err := m.Construct("NORTH")
	require.NoError(t, err)

	eq, err := m.Equal(north, upper)
	require.NoError(t, err)
	assert.True(t, eq)

	h1, err := m.Hash(north)
	require.NoError(t, err)
	h2, err := m.Hash(upper)
	require.NoError(t, err)
	assert.Equal(t, h1, h2, "equal values hash equally")

	text, err := m.String(upper)
	require.NoError(t, err)
	assert.Equal(t, "NORTH", text, "the raw value is kept verbatim")

	neq, err := m.Invoke(nil, "op_Inequality", north, "South")
	require.NoError(t, err)
	assert.Equal(t, true, neq)

	viaRaw, err := m.Invoke(north, "Equals", "nOrTh")
	require.NoError(t, err)
	assert.Equal(t, true, viaRaw, "raw text converts implicitly")

	other, err := m.Invoke(north, "Equals", 5)
	require.NoError(t, err)
	assert.Equal(t, false, other, "values of other types are never equal")
}

func TestExtensibleConstructionValidation(t *testing.T) {
	m := newMachine(t, direction())

	_, err := m.ToEnum(nil)
	require.Error(t, err)

	var rerr *RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, expr.ErrorArgumentNull, rerr.Kind)
	assert.Equal(t, "value", rerr.Param)
	assert.Equal(t, "Direction", rerr.Type)

	empty := m.zero(m.self)

	h, err := m.Hash(empty)
	require.NoError(t, err)
	assert.Equal(t, int32(0), h, "absent text hashes to zero")
}

func TestExtensibleNumeric(t *testing.T) {
	m := newMachine(t, level(true))

	one, err := m.ToEnum(1)
	require.NoError(t, err)

	n, err := strconv.Atoi("01")
	require.NoError(t, err)

	parsed, err := m.ToEnum(n)
	require.NoError(t, err)

	eq, err := m.Equal(one, parsed)
	require.NoError(t, err)
	assert.True(t, eq)

	h1, _ := m.Hash(one)
	h2, _ := m.Hash(parsed)
	assert.Equal(t, h1, h2)

	two, err := m.ToEnum(2)
	require.NoError(t, err)

	eq, err = m.Equal(one, two)
	require.NoError(t, err)
	assert.False(t, eq)

	seven, err := m.ToEnum(int8(7))
	require.NoError(t, err)

	serial, err := m.ToSerial(seven)
	require.NoError(t, err)
	assert.Equal(t, int64(7), serial)

	text, err := m.String(seven)
	require.NoError(t, err)
	assert.Equal(t, "7", text)

	zero, err := m.ToEnum(nil)
	require.NoError(t, err, "absent numbers take the zero value")

	serial, err = m.ToSerial(zero)
	require.NoError(t, err)
	assert.Equal(t, int64(0), serial)

	high, err := m.StaticProperty("High")
	require.NoError(t, err)

	raw, err := m.Invoke(high, "ToSerialInt32")
	require.NoError(t, err)
	assert.Equal(t, int64(10), raw)
}

func TestExtensibleFloating(t *testing.T) {
	m := newMachine(t, &schema.EnumSchema{
		Name:         "Ratio",
		IsExtensible: true,
		ValueType:    primitive.KindFloat64,
		Values:       []schema.AllowedValue{{Name: "Half", Value: 0.5}},
	})

	half, err := m.StaticProperty("Half")
	require.NoError(t, err)

	text, err := m.String(half)
	require.NoError(t, err)
	assert.Equal(t, "0.5", text)

	one, err := m.ToEnum(1)
	require.NoError(t, err)

	serial, err := m.ToSerial(one)
	require.NoError(t, err)
	assert.Equal(t, 1.0, serial)
}

func TestFixedPartiality(t *testing.T) {
	m := newMachine(t, color())

	for _, raw := range []string{"red", "green"} {
		v, err := m.ToEnum(raw)
		require.NoError(t, err, raw)

		serial, err := m.ToSerial(v)
		require.NoError(t, err)
		assert.Equal(t, raw, serial)
	}

	red, err := m.ToEnum("RED")
	require.NoError(t, err, "text cases parse ignoring case")
	assert.Equal(t, EnumValue{Type: "Color", Value: int64(0)}, red)

	name, err := m.String(red)
	require.NoError(t, err)
	assert.Equal(t, "Red", name)

	_, err = m.ToEnum("purple")
	require.Error(t, err)

	var rerr *RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, expr.ErrorMapping, rerr.Kind)
	assert.Equal(t, "purple", rerr.Value)
	assert.Contains(t, rerr.Error(), "Unknown Color value.")

	_, err = m.ToSerial(EnumValue{Type: "Color", Value: int64(9)})
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, expr.ErrorMapping, rerr.Kind)

	_, err = m.ToEnum(nil)
	require.ErrorAs(t, err, &rerr)

	_, err = m.Construct("red")
	assert.ErrorIs(t, err, ErrNotConstructible)
}

func TestFixedInteger(t *testing.T) {
	m := newMachine(t, level(false))

	high, err := m.ToEnum(10)
	require.NoError(t, err)
	assert.Equal(t, EnumValue{Type: "Level", Value: int64(10)}, high)

	declared, err := m.StaticProperty("High")
	require.NoError(t, err)

	eq, err := m.Equal(high, declared)
	require.NoError(t, err)
	assert.True(t, eq)

	serial, err := m.ToSerial(high)
	require.NoError(t, err)
	assert.Equal(t, int64(10), serial)

	_, err = m.ToEnum(3)
	var rerr *RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, int64(3), rerr.Value)

	text, err := m.String(EnumValue{Type: "Level", Value: int64(3)})
	require.NoError(t, err)
	assert.Equal(t, "3", text)

	h1, _ := m.Hash(high)
	h2, _ := m.Hash(declared)
	assert.Equal(t, h1, h2)
}

func TestFixedFloating(t *testing.T) {
	m := newMachine(t, &schema.EnumSchema{
		Name:      "Ratio",
		ValueType: primitive.KindFloat64,
		Values:    []schema.AllowedValue{{Name: "Half", Value: 0.5}, {Name: "Whole", Value: 1}},
	})

	whole, err := m.ToEnum(1)
	require.NoError(t, err)
	assert.Equal(t, EnumValue{Type: "Ratio", Value: int64(1)}, whole)

	serial, err := m.ToSerial(whole)
	require.NoError(t, err)
	assert.Equal(t, 1.0, serial)
}

func TestUnsignedRoundTrip(t *testing.T) {
	const maxValue = uint64(math.MaxUint64)

	values := []schema.AllowedValue{{Name: "Zero", Value: 0}, {Name: "Max", Value: maxValue}}

	t.Run("extensible", func(t *testing.T) {
		m := newMachine(t, &schema.EnumSchema{Name: "Big", IsExtensible: true, ValueType: primitive.KindUint64, Values: values})

		declared, err := m.StaticProperty("Max")
		require.NoError(t, err)

		v, err := m.ToEnum(maxValue)
		require.NoError(t, err)

		eq, err := m.Equal(v, declared)
		require.NoError(t, err)
		assert.True(t, eq)

		serial, err := m.ToSerial(v)
		require.NoError(t, err)
		assert.Equal(t, maxValue, serial)

		text, err := m.String(v)
		require.NoError(t, err)
		assert.Equal(t, "18446744073709551615", text)

		h1, _ := m.Hash(v)
		h2, _ := m.Hash(declared)
		assert.Equal(t, h1, h2)

		small, err := m.ToEnum(7)
		require.NoError(t, err)

		serial, err = m.ToSerial(small)
		require.NoError(t, err)
		assert.Equal(t, uint64(7), serial)

		_, err = m.Construct(-1)
		assert.ErrorIs(t, err, ErrTypeMismatch)
	})

	t.Run("fixed", func(t *testing.T) {
		m := newMachine(t, &schema.EnumSchema{Name: "Flags", ValueType: primitive.KindUint64, Values: values})

		v, err := m.ToEnum(maxValue)
		require.NoError(t, err)
		assert.Equal(t, EnumValue{Type: "Flags", Value: maxValue}, v)

		serial, err := m.ToSerial(v)
		require.NoError(t, err)
		assert.Equal(t, maxValue, serial)

		name, err := m.String(v)
		require.NoError(t, err)
		assert.Equal(t, "Max", name)

		zero, err := m.ToEnum(0)
		require.NoError(t, err)
		assert.Equal(t, EnumValue{Type: "Flags", Value: uint64(0)}, zero)
	})
}

func TestFixedTextCaseVariants(t *testing.T) {
	m := newMachine(t, &schema.EnumSchema{
		Name:      "Grade",
		ValueType: primitive.KindString,
		Values:    []schema.AllowedValue{{Name: "Lower", Value: "a"}, {Name: "Upper", Value: "A"}},
	})

	for _, raw := range []string{"a", "A"} {
		v, err := m.ToEnum(raw)
		require.NoError(t, err, raw)

		serial, err := m.ToSerial(v)
		require.NoError(t, err)
		assert.Equal(t, raw, serial, "each literal parses to its own case")
	}
}

func TestNewMachineSchemaError(t *testing.T) {
	s := direction()
	s.Values = append(s.Values, schema.AllowedValue{Name: "NORTH", Value: "N"})

	_, err := NewMachine(provider.Create(s))
	assert.ErrorIs(t, err, provider.ErrDuplicateValue)
}

func TestInvokeUnknown(t *testing.T) {
	m := newMachine(t, direction())

	north, err := m.StaticProperty("North")
	require.NoError(t, err)

	_, err = m.Invoke(north, "Missing")
	assert.ErrorIs(t, err, ErrUnknownMember)

	_, err = m.StaticProperty("West")
	assert.ErrorIs(t, err, ErrUnknownMember)

	_, err = m.Invoke("north", "ToString")
	assert.ErrorIs(t, err, ErrTypeMismatch)
}
