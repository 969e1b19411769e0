// Package config provides environment-based configuration.
package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime settings read from the environment. Field names map
// to environment variables with the SLICE_ prefix.
type Config struct {
	// LogLevel is the diagnostic verbosity on stderr.
	// Env: SLICE_LOG_LEVEL (default: warn)
	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`

	// LogFormat selects the diagnostic output format (console or json).
	// Env: SLICE_LOG_FORMAT (default: console)
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`

	// NoColor disables colored diagnostics. Set from the NO_COLOR
	// convention (https://no-color.org), not the SLICE_ prefix.
	NoColor bool `ignored:"true"`
}

// FromEnv loads the configuration from the environment.
func FromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("slice", &cfg); err != nil {
		return Config{}, err
	}
	cfg.NoColor = os.Getenv("NO_COLOR") != ""
	return cfg, nil
}
