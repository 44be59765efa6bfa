package main

import (
	"context"

	"github.com/spf13/pflag"

	"member-generator/internal/output"
	"member-generator/internal/pipeline"
)

type cmdProperties struct{}

func (*cmdProperties) help() *commandHelp {
	return &commandHelp{
		usage:   "properties SCHEMA...",
		summary: "Render the synthesized properties of records",
	}
}

func (*cmdProperties) flags(*pflag.FlagSet) {}

func (*cmdProperties) run(ctx context.Context, env *environment, argv []string) int {
	if err := env.setup(); err != nil {
		return env.fail(err)
	}

	res, err := env.generate(ctx, argv)
	if err != nil {
		return env.fail(err)
	}

	files, err := output.Files(&pipeline.Result{Records: res.Records}, env.cfg.Format)
	if err != nil {
		return env.fail(err)
	}

	if err := env.emit(files); err != nil {
		return env.fail(err)
	}

	if res.Failed() {
		return 1
	}

	return 0
}
