package output

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"member-generator/internal/config"
	"member-generator/internal/pipeline"
	"member-generator/internal/schema"
)

const document = `
enums:
  - name: Direction
    extensible: true
    valueType: string
    values:
      - {name: North, value: north}
  - name: HTTPStatus
    valueType: int32
    values:
      - {name: OK, value: 200}
records:
  - name: Route
    fields:
      - name: Kind
        type: {name: string, literal: true, literalValue: route}
        required: true
`

func run(t *testing.T) *pipeline.Result {
	t.Helper()

	f, err := schema.Parse([]byte(document))
	require.NoError(t, err)

	res, err := pipeline.Run(context.Background(), f, config.Default())
	require.NoError(t, err)
	require.False(t, res.Failed())

	return res
}

func TestNewTypeView(t *testing.T) {
	res := run(t)

	v := NewTypeView(res.Enums[0].Provider, res.Enums[0].Model)

	want := TypeView{
		Name:    "Direction",
		Variant: "extensible",
		Declaration: DeclarationView{
			Accessibility: "public",
			Kind:          "readonly struct",
			Underlying:    "string",
			Implements:    []string{"Equatable<Direction>"},
		},
		Fields: []FieldView{
			{Name: "_value", Access: "private", Modifiers: "readonly", Type: "string", Description: "The raw value."},
			{Name: "NorthValue", Access: "private", Modifiers: "const", Type: "string", Initializer: `"north"`},
		},
		Properties: []PropertyView{
			{
				Name: "North", Access: "public", Modifiers: "static", Type: "Direction", Mutability: "none",
				Initializer: "new Direction(Direction.NorthValue)", Description: "north",
			},
		},
		Constructors: []ConstructorView{
			{
				Access:      "public",
				Parameters:  []string{"string value"},
				Body:        []string{"if (isNull(value)) { throw argument_null(value); }", "this._value = value;"},
				Description: "Initializes a new Direction from a raw value.",
			},
		},
		Serialization: SerializationView{ToSerial: "value.ToString()", ToEnum: "new Direction(value)"},
	}

	// methods are covered by the provider tests
	v.Methods = nil

	if diff := cmp.Diff(want, v); diff != "" {
		t.Errorf("NewTypeView() mismatch (-want +got):\n%s", diff)
	}
}

func TestEncode(t *testing.T) {
	res := run(t)
	v := NewTypeView(res.Enums[1].Provider, res.Enums[1].Model)

	data, err := Encode(v, config.FormatYAML)
	require.NoError(t, err)

	var fromYAML TypeView
	require.NoError(t, yaml.Unmarshal(data, &fromYAML))
	assert.Empty(t, cmp.Diff(v, fromYAML))

	data, err = Encode(v, config.FormatJSON)
	require.NoError(t, err)

	var fromJSON TypeView
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	assert.Equal(t, "(int32)value", fromJSON.Serialization.ToSerial)
	assert.Equal(t, "HTTPStatus.ToHTTPStatus(value)", fromJSON.Serialization.ToEnum)

	data, err = Encode(v, config.FormatDump)
	require.NoError(t, err)
	assert.Contains(t, string(data), `Name: (string) (len=10) "HTTPStatus"`)

	_, err = Encode(v, "xml")
	require.Error(t, err)
}

func TestFilesAndWrite(t *testing.T) {
	res := run(t)

	files, err := Files(res, config.FormatJSON)
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, "direction.json", files[0].Filename)
	assert.Equal(t, "http_status.json", files[1].Filename)
	assert.Equal(t, "route.json", files[2].Filename)

	var route RecordView
	require.NoError(t, json.Unmarshal(files[2].Content, &route))
	require.Len(t, route.Properties, 1)
	assert.Equal(t, `"route"`, route.Properties[0].Initializer)
	assert.Equal(t, "Gets the Kind.", route.Properties[0].Description)

	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, WriteFiles(files, dir))

	written, err := os.ReadFile(filepath.Join(dir, "direction.json"))
	require.NoError(t, err)
	assert.Equal(t, files[0].Content, written)

	var buf bytes.Buffer
	require.NoError(t, WriteStream(&buf, files[:1]))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("# direction.json\n{")))
}

func TestFilesNameCollision(t *testing.T) {
	f, err := schema.Parse([]byte(`
enums:
  - name: HTTPStatus
    valueType: int32
    values:
      - {name: OK, value: 200}
records:
  - name: HttpStatus
    fields:
      - {name: code, type: int32}
`))
	require.NoError(t, err)

	res, err := pipeline.Run(context.Background(), f, config.Default())
	require.NoError(t, err)
	require.False(t, res.Failed())

	files, err := Files(res, config.FormatYAML)
	require.ErrorIs(t, err, ErrFileNameCollision)
	assert.Contains(t, err.Error(), "HTTPStatus and HttpStatus both map to http_status.yaml")
	assert.Nil(t, files)
}
