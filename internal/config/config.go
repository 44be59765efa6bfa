package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatDump = "dump"
)

// Naming holds the naming conventions of synthesized members.
type Naming struct {
	// BackingField is the name of the raw value field of extensible wrappers.
	BackingField string `yaml:"backingField"`
	// ConstantSuffix is appended to a value name to name its private constant.
	ConstantSuffix string `yaml:"constantSuffix"`
	// SerialPrefix prefixes representation-specific serialization accessors (ToSerialInt32).
	SerialPrefix string `yaml:"serialPrefix"`
	// ParsePrefix prefixes the raw-value parser of closed enumerations (ToDirection).
	ParsePrefix string `yaml:"parsePrefix"`
}

// Config is the generator configuration.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"logLevel"`
	// LogFormat is text or json.
	LogFormat string `yaml:"logFormat"`
	// Workers bounds the number of types generated concurrently.
	Workers int `yaml:"workers"`
	// Format is the output format of member models: yaml, json or dump.
	Format string `yaml:"format"`
	// OutputDir receives one file per type; empty writes to stdout.
	OutputDir string `yaml:"outputDir"`
	// Naming holds member naming conventions.
	Naming Naming `yaml:"naming"`
}

// DefaultNaming returns the default naming conventions.
func DefaultNaming() Naming {
	return Naming{
		BackingField:   "_value",
		ConstantSuffix: "Value",
		SerialPrefix:   "ToSerial",
		ParsePrefix:    "To",
	}
}

// Default returns the default generator configuration.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
		Workers:   runtime.GOMAXPROCS(0),
		Format:    FormatYAML,
		Naming:    DefaultNaming(),
	}
}

// Load reads a YAML configuration file layered over Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data layered over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// applyDefaults restores defaults for values explicitly emptied in the file.
func (c *Config) applyDefaults() {
	def := Default()

	if c.Workers <= 0 {
		c.Workers = def.Workers
	}

	if c.Naming.BackingField == "" {
		c.Naming.BackingField = def.Naming.BackingField
	}

	if c.Naming.ConstantSuffix == "" {
		c.Naming.ConstantSuffix = def.Naming.ConstantSuffix
	}

	if c.Naming.SerialPrefix == "" {
		c.Naming.SerialPrefix = def.Naming.SerialPrefix
	}

	if c.Naming.ParsePrefix == "" {
		c.Naming.ParsePrefix = def.Naming.ParsePrefix
	}
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	var errs []error

	switch c.Format {
	case FormatYAML, FormatJSON, FormatDump:
	default:
		errs = append(errs, fmt.Errorf("unknown format %q (want yaml, json or dump)", c.Format))
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q (want text or json)", c.LogFormat))
	}

	if c.Naming.ConstantSuffix == "" && c.Naming.BackingField == "" {
		errs = append(errs, errors.New("naming: backing field and constant suffix cannot both be empty"))
	}

	return errors.Join(errs...)
}
