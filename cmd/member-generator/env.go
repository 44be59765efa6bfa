package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/pflag"

	"member-generator/internal/config"
	"member-generator/internal/diagnostic"
	"member-generator/internal/output"
	"member-generator/internal/pipeline"
	"member-generator/internal/schema"
)

// environment holds the global flags and the process streams.
type environment struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	logLevel   string
	format     string
	outDir     string
	workers    int

	cfg    config.Config
	logger *slog.Logger
}

func (env *environment) flags(flags *pflag.FlagSet) {
	flags.StringVarP(&env.configPath, "config", "c", "", "generator configuration file (YAML)")
	flags.StringVar(&env.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVarP(&env.format, "format", "f", "", "output format: yaml, json or dump")
	flags.StringVarP(&env.outDir, "out", "o", "", "write one file per type into this directory instead of stdout")
	flags.IntVarP(&env.workers, "workers", "j", 0, "number of types generated concurrently")
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (env *environment) setup() error {
	cfg := config.Default()

	if env.configPath != "" {
		loaded, err := config.Load(env.configPath)
		if err != nil {
			return err
		}

		cfg = loaded
	}

	if env.logLevel != "" {
		cfg.LogLevel = env.logLevel
	}

	if env.format != "" {
		cfg.Format = env.format
	}

	if env.outDir != "" {
		cfg.OutputDir = env.outDir
	}

	if env.workers > 0 {
		cfg.Workers = env.workers
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	env.cfg = cfg
	env.logger = cfg.NewLogger(env.stderr)

	return nil
}

// generate loads every schema file, merges them and runs the pipeline.
func (env *environment) generate(ctx context.Context, paths []string) (*pipeline.Result, error) {
	merged := &schema.File{Version: "1"}

	for _, path := range paths {
		f, err := schema.LoadFile(path)
		if err != nil {
			return nil, err
		}

		env.logger.Debug("schema loaded",
			slog.String("path", path),
			slog.Int("enums", len(f.Enums)),
			slog.Int("records", len(f.Records)))

		merged.Enums = append(merged.Enums, f.Enums...)
		merged.Records = append(merged.Records, f.Records...)
	}

	res, err := pipeline.Run(ctx, merged, env.cfg, pipeline.WithLogger(env.logger))
	if res != nil {
		env.report(&res.Diagnostics)
	}

	return res, err
}

// report logs every diagnostic at its severity.
func (env *environment) report(d *diagnostic.Diagnostics) {
	for _, diag := range d.All() {
		attrs := []any{
			slog.String("code", diag.Code),
			slog.String("type", diag.TypeName),
			slog.String("subject", diag.Subject),
		}

		switch diag.Severity {
		case diagnostic.DiagnosticError:
			env.logger.Error(diag.Message, attrs...)
		case diagnostic.DiagnosticWarning:
			env.logger.Warn(diag.Message, attrs...)
		default:
			env.logger.Info(diag.Message, attrs...)
		}
	}
}

// emit writes files to the output directory, or to stdout when none is set.
func (env *environment) emit(files []output.GeneratedFile) error {
	if env.cfg.OutputDir != "" {
		if err := output.WriteFiles(files, env.cfg.OutputDir); err != nil {
			return err
		}

		env.logger.Info("files written",
			slog.String("dir", env.cfg.OutputDir),
			slog.Int("files", len(files)))

		return nil
	}

	return output.WriteStream(env.stdout, files)
}

func (env *environment) fail(err error) int {
	fmt.Fprintln(env.stderr, err)
	return 1
}
