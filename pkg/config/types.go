// Package config provides configuration loading and validation for pmemview.
package config

// Config is the root configuration structure loaded from YAML. It holds
// tool-wide output defaults applied before command-line flags.
type Config struct {
	// Verbosity is the default verbosity threshold. Every field and
	// dump carries a level; only those at or below the threshold print.
	Verbosity int `yaml:"verbosity"`

	// ColumnWidth is the field-name column width in info output.
	ColumnWidth int `yaml:"column_width"`

	// Prefix is prepended (as "<prefix>: ") to every output line.
	// It must not contain newlines.
	Prefix string `yaml:"prefix,omitempty"`

	// SizeFormat selects byte-count rendering: bytes, human, or both.
	SizeFormat string `yaml:"size_format"`
}
