package cli

import (
	"github.com/spf13/cobra"

	"github.com/marcodamonte/typing-basics/direction"
)

func (a *app) newMoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "move DIRECTION...",
		Short:   "Print the movement message for one or more directions",
		Example: `  typebasics move up left`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := a.logger.WithName("move")

			results := make([]result, 0, len(args))
			for _, arg := range args {
				d, err := direction.Parse(arg)
				if err != nil {
					logger.Warn("unrecognized direction", "input", arg, err)
				}
				results = append(results, result{Input: arg, Message: direction.Move(d)})
			}
			return writeResults(cmd.OutOrStdout(), a.opts.Output, results)
		},
	}
}
