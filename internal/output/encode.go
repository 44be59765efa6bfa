package output

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"member-generator/internal/config"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Encode serializes v in one of the configured formats.
func Encode(v any, format string) ([]byte, error) {
	switch format {
	case config.FormatYAML:
		return yaml.Marshal(v)
	case config.FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}

		return append(data, '\n'), nil
	case config.FormatDump:
		return []byte(dumper.Sdump(v)), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// Extension returns the file extension of a format.
func Extension(format string) string {
	switch format {
	case config.FormatJSON:
		return ".json"
	case config.FormatDump:
		return ".txt"
	default:
		return ".yaml"
	}
}
