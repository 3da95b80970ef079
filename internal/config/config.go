// Package config layers the CLI settings: flags over TYPEBASICS_* environment
// variables over an optional YAML config file over defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/marcodamonte/typing-basics/internal/log"
)

const envPrefix = "TYPEBASICS"

// Output formats for command results.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// Options is the fully resolved configuration.
type Options struct {
	Output string       `mapstructure:"output"`
	Log    *log.Options `mapstructure:"log"`
}

// NewOptions returns the defaults.
func NewOptions() *Options {
	return &Options{
		Output: OutputText,
		Log:    log.NewOptions(),
	}
}

// AddFlags registers every configurable key on fs.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Output, "output", "o", o.Output, "Result format (text or yaml).")
	o.Log.AddFlags(fs)
}

// Validate joins every problem into one error.
func (o *Options) Validate() error {
	var errs []error
	switch o.Output {
	case OutputText, OutputYAML:
	default:
		errs = append(errs, fmt.Errorf("output %q: must be %s or %s", o.Output, OutputText, OutputYAML))
	}
	errs = append(errs, o.Log.Validate()...)
	return errors.Join(errs...)
}

// Load resolves the configuration from fs, the environment and, if
// configFile is not empty, that file. The flags in fs must have been
// registered with AddFlags on a default Options.
func Load(fs *pflag.FlagSet, configFile string) (*Options, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	opts := NewOptions()
	if err := v.Unmarshal(opts); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}
