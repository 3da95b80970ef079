package log

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Options configures the logger. The mapstructure tags are the viper keys
// under the "log" section.
type Options struct {
	// Level is the minimum level: debug, info, warn or error.
	Level string `json:"level,omitempty" mapstructure:"level"`

	// Format is "console" or "json".
	Format string `json:"format,omitempty" mapstructure:"format"`

	EnableColor   bool `json:"enable-color,omitempty" mapstructure:"enable-color"`
	DisableCaller bool `json:"disable-caller,omitempty" mapstructure:"disable-caller"`

	// OutputPaths defaults to stderr so that command output on stdout stays
	// machine readable.
	OutputPaths []string `json:"output-paths,omitempty" mapstructure:"output-paths"`
}

// NewOptions returns Options with defaults filled in.
func NewOptions() *Options {
	return &Options{
		Level:         "warn",
		Format:        "console",
		EnableColor:   false,
		DisableCaller: true,
		OutputPaths:   []string{"stderr"},
	}
}

// Validate reports every invalid field.
func (o *Options) Validate() []error {
	var errs []error
	switch o.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q: must be debug, info, warn or error", o.Level))
	}
	switch o.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format %q: must be console or json", o.Format))
	}
	return errs
}

// AddFlags binds the options to fs under the "log." prefix.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Level, "log.level", o.Level, "Minimum log level (debug, info, warn, error).")
	fs.StringVar(&o.Format, "log.format", o.Format, "Log output format (console or json).")
	fs.BoolVar(&o.EnableColor, "log.enable-color", o.EnableColor, "Colorize levels in console format.")
	fs.BoolVar(&o.DisableCaller, "log.disable-caller", o.DisableCaller, "Omit the caller file and line from log entries.")
	fs.StringSliceVar(&o.OutputPaths, "log.output-paths", o.OutputPaths, "Log destinations (stdout, stderr or file paths).")
}
