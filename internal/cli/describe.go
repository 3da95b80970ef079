package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/marcodamonte/typing-basics/vehicle"
)

type describeOptions struct {
	kind    string
	doors   int
	payload float64
	file    string
}

func (a *app) newDescribeCommand() *cobra.Command {
	o := &describeOptions{}

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Describe a car or a truck",
		Example: `  typebasics describe --kind car --doors 4
  typebasics describe --kind truck --payload 2000
  typebasics describe --file fleet.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fleet, err := o.vehicles(cmd)
			if err != nil {
				return err
			}

			logger := logr.FromContextOrDiscard(cmd.Context())
			results := make([]result, 0, len(fleet))
			for _, v := range fleet {
				logger.V(1).Info("describing vehicle", "kind", string(v.Kind()))
				results = append(results, result{Input: vehicle.Encode(v), Message: vehicle.Describe(v)})
			}
			return writeResults(cmd.OutOrStdout(), a.opts.Output, results)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&o.kind, "kind", "", "Vehicle kind (car or truck).")
	fs.IntVar(&o.doors, "doors", 0, "Number of doors (car only).")
	fs.Float64Var(&o.payload, "payload", 0, "Payload capacity (truck only).")
	fs.StringVarP(&o.file, "file", "f", "", "YAML or JSON file with a vehicles list.")
	cmd.MarkFlagsMutuallyExclusive("file", "kind")
	cmd.MarkFlagsMutuallyExclusive("file", "doors")
	cmd.MarkFlagsMutuallyExclusive("file", "payload")

	return cmd
}

// vehicles builds the input either from --file or from the single-vehicle
// flags. Only flags the user set are forwarded, so Decode can reject a field
// that does not belong to the kind.
func (o *describeOptions) vehicles(cmd *cobra.Command) ([]vehicle.Vehicle, error) {
	if o.file != "" {
		f, err := os.Open(o.file)
		if err != nil {
			return nil, fmt.Errorf("open fleet: %w", err)
		}
		defer f.Close()
		return vehicle.LoadFleet(f)
	}

	if o.kind == "" {
		return nil, errors.New("either --kind or --file is required")
	}

	rec := vehicle.Record{Kind: vehicle.Kind(o.kind)}
	if cmd.Flags().Changed("doors") {
		rec.NumberOfDoors = &o.doors
	}
	if cmd.Flags().Changed("payload") {
		rec.PayloadCapacity = &o.payload
	}

	v, err := vehicle.Decode(rec)
	if err != nil {
		return nil, err
	}
	return []vehicle.Vehicle{v}, nil
}
