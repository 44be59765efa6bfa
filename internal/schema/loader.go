package schema

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// LoadFile loads a schema document, choosing the decoder by file extension:
// .json is JSON, everything else is YAML.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	var f *File
	if strings.EqualFold(filepath.Ext(path), ".json") {
		f, err = ParseJSON(data)
	} else {
		f, err = Parse(data)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// ParseJSON parses JSON data into a File. Allowed values keep integer
// precision: they decode to int64, to uint64 above the int64 range, and to
// float64 otherwise.
func ParseJSON(data []byte) (*File, error) {
	var f File

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	err := dec.Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	for i := range f.Enums {
		for j := range f.Enums[i].Values {
			v := &f.Enums[i].Values[j]
			if n, ok := v.Value.(json.Number); ok {
				v.Value = numberValue(n)
			}
		}
	}

	applyDefaults(&f)

	return &f, nil
}

func numberValue(n json.Number) any {
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		return i
	}

	if u, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
		return u
	}

	if f, err := strconv.ParseFloat(n.String(), 64); err == nil {
		return f
	}

	return n.String()
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	for i := range f.Enums {
		for j := range f.Enums[i].Values {
			v := &f.Enums[i].Values[j]
			if v.Name == "" && v.Value != nil {
				v.Name = fmt.Sprint(v.Value)
			}
		}
	}
}
