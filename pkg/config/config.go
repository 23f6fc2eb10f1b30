package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pmemtools/pmemview/pkg/output"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if cfg.ColumnWidth < 0 {
		return fmt.Errorf("column_width: must not be negative (got %d)", cfg.ColumnWidth)
	}

	if strings.ContainsRune(cfg.Prefix, '\n') {
		return errors.New("prefix: must not contain newlines")
	}

	if _, err := output.ParseSizeMode(cfg.SizeFormat); err != nil {
		return fmt.Errorf("size_format: %w", err)
	}

	return nil
}
