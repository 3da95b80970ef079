package cli

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/marcodamonte/typing-basics/internal/config"
)

// result pairs one input with the sentence it mapped to.
type result struct {
	Input   any    `yaml:"input"`
	Message string `yaml:"message"`
}

// writeResults prints results as text (one message per line) or as a YAML
// list.
func writeResults(w io.Writer, format string, results []result) error {
	if format == config.OutputYAML {
		return writeYAML(w, results)
	}
	for _, r := range results {
		if _, err := fmt.Fprintln(w, r.Message); err != nil {
			return err
		}
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
