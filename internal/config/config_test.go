package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
logLevel: debug
logFormat: json
workers: 3
format: json
naming:
  backingField: raw
`))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, "raw", cfg.Naming.BackingField)
	// untouched naming keeps defaults
	assert.Equal(t, "Value", cfg.Naming.ConstantSuffix)
	assert.Equal(t, "ToSerial", cfg.Naming.SerialPrefix)
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`workers: 0`))
	require.NoError(t, err)

	assert.Equal(t, Default().Workers, cfg.Workers)
	assert.Equal(t, DefaultNaming(), cfg.Naming)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte(`format: xml`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")

	_, err = Parse([]byte(`logLevel: loud`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")

	_, err = Parse([]byte(`logFormat: [`))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: dump\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatDump, cfg.Format)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	cfg := Default()
	cfg.LogLevel = "warn"
	logger := cfg.NewLogger(&buf)

	logger.Info("hidden")
	logger.Warn("shown", slog.String("type", "Direction"))

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "type=Direction")
}
