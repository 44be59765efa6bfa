package main

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"
)

type cmdCheck struct {
	strict bool
}

func (*cmdCheck) help() *commandHelp {
	return &commandHelp{
		usage:   "check SCHEMA...",
		summary: "Validate schemas and report every schema error",
	}
}

func (cmd *cmdCheck) flags(flags *pflag.FlagSet) {
	flags.BoolVar(&cmd.strict, "strict", false, "treat warnings as errors")
}

func (cmd *cmdCheck) run(ctx context.Context, env *environment, argv []string) int {
	if err := env.setup(); err != nil {
		return env.fail(err)
	}

	res, err := env.generate(ctx, argv)
	if res != nil {
		for _, d := range res.Diagnostics.All() {
			fmt.Fprintf(env.stdout, "%s: %s\n", d.Severity, d)
		}
	}

	if err != nil {
		return env.fail(err)
	}

	built := 0
	for _, e := range res.Enums {
		if e.Err == nil {
			built++
		}
	}

	for _, r := range res.Records {
		if r.Err == nil {
			built++
		}
	}

	fmt.Fprintf(env.stdout, "%d of %d types ok, %d errors, %d warnings\n",
		built, len(res.Enums)+len(res.Records), len(res.Diagnostics.Errors), len(res.Diagnostics.Warnings))

	if res.Failed() || (cmd.strict && len(res.Diagnostics.Warnings) > 0) {
		return 1
	}

	return 0
}
