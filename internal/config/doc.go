// Package config holds the generator configuration: logging, concurrency,
// output format and the naming conventions applied to synthesized members.
//
// Configuration is read from an optional YAML file layered over Default;
// command-line flags override file values.
package config
