package config

import (
	"os"
	"strconv"
)

// Default values for configuration.
const (
	DefaultVerbosity   = 1
	DefaultColumnWidth = 20
	DefaultSizeFormat  = "bytes"
)

// Environment variable names.
const (
	EnvVerbosity  = "PMEMVIEW_VERBOSITY"
	EnvPrefix     = "PMEMVIEW_PREFIX"
	EnvSizeFormat = "PMEMVIEW_SIZE_FORMAT"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Verbosity:   DefaultVerbosity,
		ColumnWidth: DefaultColumnWidth,
		SizeFormat:  DefaultSizeFormat,
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if v := os.Getenv(EnvVerbosity); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Verbosity = n
		}
	}
	if prefix := os.Getenv(EnvPrefix); prefix != "" {
		c.Prefix = prefix
	}
	if format := os.Getenv(EnvSizeFormat); format != "" {
		c.SizeFormat = format
	}
}
