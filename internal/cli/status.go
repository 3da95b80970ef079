package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcodamonte/typing-basics/status"
)

const (
	formEnum    = "enum"
	formLiteral = "literal"
)

func (a *app) newStatusCommand() *cobra.Command {
	var form string

	cmd := &cobra.Command{
		Use:   "status VALUE...",
		Short: "Print the outcome message for one or more statuses",
		Long: `Print the outcome message for each VALUE.

With --form enum (the default) a VALUE is a status name, in any case, or its
code: Success=1, Failure=-1, Pending=0.
With --form literal a VALUE is matched exactly against Success, Failure and
Pending.

Anything else is reported as pending.`,
		Example: `  typebasics status -- Success -1
  typebasics status --form literal Pending Cancelled`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(*cobra.Command, []string) error {
			if form != formEnum && form != formLiteral {
				return fmt.Errorf("--form %q: must be %s or %s", form, formEnum, formLiteral)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := a.logger.WithName("status").WithValues("form", form)

			results := make([]result, 0, len(args))
			for _, arg := range args {
				var msg string
				switch form {
				case formLiteral:
					l := status.Literal(arg)
					if !l.Valid() {
						logger.Warn("unrecognized status literal, treating as pending", "input", arg)
					}
					msg = status.MessageLiteral(l)
				default:
					s, err := status.Parse(arg)
					if err != nil {
						logger.Warn("unrecognized status, treating as pending", "input", arg, err)
					}
					msg = status.Message(s)
				}
				results = append(results, result{Input: arg, Message: msg})
			}
			return writeResults(cmd.OutOrStdout(), a.opts.Output, results)
		},
	}

	cmd.Flags().StringVar(&form, "form", formEnum, "Status representation (enum or literal).")
	return cmd
}
