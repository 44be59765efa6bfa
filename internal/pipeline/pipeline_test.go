package pipeline

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"member-generator/internal/config"
	"member-generator/internal/schema"
	"member-generator/primitive"
)

const document = `
enums:
  - name: Direction
    extensible: true
    valueType: string
    values:
      - {name: North, value: north}
      - {name: South, value: south}
  - name: Broken
    valueType: string
    values:
      - {name: north, value: a}
      - {name: NORTH, value: b}
  - name: Toggle
    valueType: bool
    values:
      - {name: On, value: true}
  - name: Level
    valueType: int32
    values:
      - {name: Low, value: 1}
records:
  - name: Route
    fields:
      - name: Kind
        type: {name: string, literal: true, literalValue: route}
        required: true
      - name: Stops
        type: string[]
`

func TestRun(t *testing.T) {
	f, err := schema.Parse([]byte(document))
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Workers = 2

	res, err := Run(context.Background(), f, cfg)
	require.NoError(t, err)

	require.Len(t, res.Enums, 4)
	assert.Equal(t, "Direction", res.Enums[0].Provider.Name())
	assert.Equal(t, "Level", res.Enums[3].Provider.Name())

	assert.NoError(t, res.Enums[0].Err)
	assert.Len(t, res.Enums[0].Model.StaticProperties(), 2)
	assert.Len(t, res.Enums[0].EnumMembers, 2)

	assert.Error(t, res.Enums[1].Err)
	assert.Nil(t, res.Enums[1].Model)
	assert.Nil(t, res.Enums[1].EnumMembers)

	assert.Error(t, res.Enums[2].Err)
	assert.NoError(t, res.Enums[3].Err, "errors in one type never affect another")

	require.Len(t, res.Records, 1)
	require.NoError(t, res.Records[0].Err)
	assert.Len(t, res.Records[0].Properties, 2)

	assert.True(t, res.Failed())
	require.Len(t, res.Diagnostics.Errors, 2)

	broken := res.Diagnostics.Errors[0]
	assert.Equal(t, "duplicate_value", broken.Code)
	assert.Equal(t, "Broken", broken.TypeName)
	assert.Equal(t, "NORTH", broken.Subject)

	toggle := res.Diagnostics.Errors[1]
	assert.Equal(t, "unsupported_value_kind", toggle.Code)
	assert.Equal(t, "Toggle", toggle.TypeName)
	assert.Equal(t, "bool", toggle.Subject)
}

func TestRunManyTypes(t *testing.T) {
	f := &schema.File{Version: "1"}
	for i := range 50 {
		f.Enums = append(f.Enums, schema.EnumSchema{
			Name:         fmt.Sprintf("Enum%d", i),
			IsExtensible: i%2 == 0,
			ValueType:    primitive.KindInt64,
			Values:       []schema.AllowedValue{{Name: "One", Value: 1}, {Name: "Two", Value: 2}},
		})
	}

	for _, workers := range []int{1, 4, 64} {
		cfg := config.Default()
		cfg.Workers = workers

		res, err := Run(context.Background(), f, cfg)
		require.NoError(t, err)
		assert.False(t, res.Failed())

		for i, e := range res.Enums {
			assert.Equal(t, fmt.Sprintf("Enum%d", i), e.Provider.Name(), "results keep input order")
			assert.Equal(t, i%2 == 0, e.Provider.IsExtensible())
		}
	}
}

func TestRunInvalidSchema(t *testing.T) {
	f := &schema.File{
		Version: "1",
		Enums:   []schema.EnumSchema{{Name: "", ValueType: primitive.KindString}},
	}

	res, err := Run(context.Background(), f, config.Default())
	require.ErrorIs(t, err, ErrInvalidSchema)
	require.NotNil(t, res)
	assert.Equal(t, "missing_name", res.Diagnostics.Errors[0].Code)
}

func TestRunCancelled(t *testing.T) {
	f, err := schema.Parse([]byte(document))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = Run(ctx, f, config.Default())
	require.ErrorIs(t, err, context.Canceled)
}
