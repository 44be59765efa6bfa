package main

import (
	"context"
	"log/slog"
	"slices"

	"github.com/spf13/pflag"

	"member-generator/internal/match"
	"member-generator/internal/output"
	"member-generator/internal/pipeline"
)

type cmdMembers struct {
	types []string
}

func (*cmdMembers) help() *commandHelp {
	return &commandHelp{
		usage:   "members SCHEMA...",
		summary: "Render the member models of enumerations",
	}
}

func (cmd *cmdMembers) flags(flags *pflag.FlagSet) {
	flags.StringSliceVarP(&cmd.types, "type", "t", nil, "render only the named enumerations")
}

func (cmd *cmdMembers) run(ctx context.Context, env *environment, argv []string) int {
	if err := env.setup(); err != nil {
		return env.fail(err)
	}

	res, err := env.generate(ctx, argv)
	if err != nil {
		return env.fail(err)
	}

	selected := &pipeline.Result{}
	known := make([]string, 0, len(res.Enums))

	for _, e := range res.Enums {
		known = append(known, e.Provider.Name())

		if len(cmd.types) == 0 || slices.Contains(cmd.types, e.Provider.Name()) {
			selected.Enums = append(selected.Enums, e)
		}
	}

	for _, name := range cmd.types {
		if !slices.Contains(known, name) {
			env.logger.Warn("no enumeration named "+name+match.Hint(name, known), slog.String("type", name))
		}
	}

	files, err := output.Files(selected, env.cfg.Format)
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
