// Package main provides the CLI entrypoint for member-generator.
//
// member-generator reads enumeration and record schemas and synthesizes
// their member models:
//   - members renders enumeration models (open wrappers and closed enums)
//   - properties renders record field properties
//   - check validates schemas and reports every schema error
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type command interface {
	help() *commandHelp
	flags(flags *pflag.FlagSet)
	run(ctx context.Context, env *environment, argv []string) int
}

type commandHelp struct {
	usage   string
	summary string
}

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the CLI with args and returns the process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	env := &environment{stdout: stdout, stderr: stderr}
	exitCode := 0

	rootCmd := &cobra.Command{
		Use:           "member-generator [options] COMMAND",
		Short:         "Synthesize member models from enumeration and record schemas",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		fmt.Fprint(stderr, cmd.UsageString())
		exitCode = 1

		return nil
	}

	env.flags(rootCmd.PersistentFlags())

	commands := []command{
		&cmdMembers{},
		&cmdProperties{},
		&cmdCheck{},
	}
	for _, cmd := range commands {
		help := cmd.help()
		cobraCmd := &cobra.Command{
			Use:   help.usage,
			Short: help.summary,
			Args:  cobra.MinimumNArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				exitCode = cmd.run(ctx, env, args)
				return nil
			},
		}
		cmd.flags(cobraCmd.Flags())
		rootCmd.AddCommand(cobraCmd)
	}

	rootCmd.SetArgs(args)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	return exitCode
}
