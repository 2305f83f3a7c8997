// Package config resolves per-invocation settings from defaults, an optional
// config file and command line flags.
package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Keys double as flag names so bound flags override file values.
const (
	KeyOutput    = "output"
	KeyOutputDir = "dir"
	KeyJobs      = "jobs"
	KeyNoColor   = "no-color"
	KeyVerbose   = "verbose"
	KeyQuiet     = "quiet"
)

// Default values
const (
	DefaultOutputFormat = "table"
	DefaultOutputDir    = "boot"
	DefaultJobs         = 1
)

// Config holds the resolved settings for one run
type Config struct {
	OutputFormat string `mapstructure:"output"`
	OutputDir    string `mapstructure:"dir"`
	Jobs         int    `mapstructure:"jobs"`
	NoColor      bool   `mapstructure:"no-color"`
	Verbose      bool   `mapstructure:"verbose"`
	Quiet        bool   `mapstructure:"quiet"`
}

// Load builds a Config. The file at configFile is read only when the path is
// non-empty; it must exist in that case. Flags that were set on the command
// line take precedence over the file. The environment is never consulted.
func Load(configFile string, flags ...*pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault(KeyOutput, DefaultOutputFormat)
	v.SetDefault(KeyOutputDir, DefaultOutputDir)
	v.SetDefault(KeyJobs, DefaultJobs)
	v.SetDefault(KeyNoColor, false)
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyQuiet, false)

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFile, err)
		}
	}

	for _, fs := range flags {
		if fs == nil {
			continue
		}
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("error binding flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the resolved values
func (c *Config) Validate() error {
	switch c.OutputFormat {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("unsupported output format %q, use table, json or yaml", c.OutputFormat)
	}

	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory cannot be empty")
	}
	return nil
}
