package cli

import (
	"fmt"
	"io"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/marcodamonte/typing-basics/direction"
	"github.com/marcodamonte/typing-basics/internal/config"
	"github.com/marcodamonte/typing-basics/status"
)

type statusRow struct {
	Name    string `yaml:"name"`
	Code    int    `yaml:"code"`
	Message string `yaml:"message"`
}

type directionRow struct {
	Name    string `yaml:"name"`
	Value   int    `yaml:"value"`
	Message string `yaml:"message"`
}

type listing struct {
	Statuses   []statusRow    `yaml:"statuses"`
	Directions []directionRow `yaml:"directions"`
}

func (a *app) newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every status and direction with its message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l := buildListing()
			if a.opts.Output == config.OutputYAML {
				return writeYAML(cmd.OutOrStdout(), l)
			}
			return writeTables(cmd.OutOrStdout(), l)
		},
	}
}

func buildListing() listing {
	var l listing
	for _, lit := range status.Literals() {
		code := lit.Code()
		l.Statuses = append(l.Statuses, statusRow{Name: string(lit), Code: int(code), Message: status.Message(code)})
	}
	for _, d := range direction.All() {
		l.Directions = append(l.Directions, directionRow{Name: d.String(), Value: int(d), Message: direction.Move(d)})
	}
	return l
}

func writeTables(w io.Writer, l listing) error {
	st := uitable.New()
	st.MaxColWidth = 40
	st.AddRow("STATUS", "CODE", "MESSAGE")
	for _, r := range l.Statuses {
		st.AddRow(r.Name, r.Code, r.Message)
	}

	dt := uitable.New()
	dt.MaxColWidth = 40
	dt.AddRow("DIRECTION", "VALUE", "MESSAGE")
	for _, r := range l.Directions {
		dt.AddRow(r.Name, r.Value, r.Message)
	}

	_, err := fmt.Fprintf(w, "%s\n\n%s\n", st, dt)
	return err
}
