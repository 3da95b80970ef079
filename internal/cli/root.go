// Package cli wires the exercise packages into the typebasics command.
package cli

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/marcodamonte/typing-basics/internal/config"
	"github.com/marcodamonte/typing-basics/internal/log"
)

const (
	appName = "typebasics"
	Version = "0.1.0"
)

// app holds what the subcommands share after flag parsing.
type app struct {
	flags      *config.Options
	configFile string

	opts   *config.Options
	logger log.Logger
}

// NewRootCommand returns the typebasics command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(nil)
}

// newRootCommand uses logger when it is not nil instead of building one from
// the resolved configuration.
func newRootCommand(logger log.Logger) *cobra.Command {
	a := &app{flags: config.NewOptions(), logger: logger}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Closed value sets: a tagged union and two enumeration styles",
		Long: `typebasics exercises three small closed value sets:

- vehicles, a tagged union of car and truck
- statuses, an enumeration with fixed codes and its string-literal twin
- directions, a plain iota enumeration

Each subcommand maps its input to a sentence. Values outside a set never
fail: statuses fall back to pending and directions to unknown.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	fs := cmd.PersistentFlags()
	fs.StringVarP(&a.configFile, "config", "c", "", "Config file path (YAML).")
	a.flags.AddFlags(fs)

	cmd.AddCommand(
		a.newDescribeCommand(),
		a.newStatusCommand(),
		a.newMoveCommand(),
		a.newListCommand(),
		newVersionCommand(),
	)
	return cmd
}

// setup resolves the configuration and puts the logger in the command
// context so subcommands can pull it with logr.FromContextOrDiscard.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	opts, err := config.Load(cmd.Root().PersistentFlags(), a.configFile)
	if err != nil {
		return err
	}
	a.opts = opts

	if a.logger == nil {
		l, err := log.New(opts.Log)
		if err != nil {
			return err
		}
		a.logger = l
	}
	log.SetStd(a.logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logr.NewContext(ctx, a.logger.Logr().WithName(cmd.Name())))

	log.Std().Debug("configuration resolved", "command", cmd.Name(), "output", opts.Output, "config", a.configFile)
	return nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	}
}
