// Package commands implements the pmemview subcommands.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pmemtools/pmemview/pkg/config"
	"github.com/pmemtools/pmemview/pkg/output"
	"github.com/pmemtools/pmemview/pkg/pool"
)

// OutputOptions holds the flags shared by every inspection command.
type OutputOptions struct {
	Config  string
	Prefix  string
	Verbose int
}

// addOutputFlags registers the shared output flags on a command.
func addOutputFlags(cmd *cobra.Command, opts *OutputOptions) {
	cmd.Flags().CountVarP(&opts.Verbose, "verbose", "v", "Increase verbosity (repeatable)")
	cmd.Flags().StringVar(&opts.Config, "config", "", "Path to configuration file")
	cmd.Flags().StringVar(&opts.Prefix, "prefix", "", "Prefix every output line")
}

// loadConfig loads the configuration file if one was given, defaults
// otherwise.
func loadConfig(cmd *cobra.Command, path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return config.Load(ctx, path)
}

// newPrinter builds the printer for a command run, layering command-line
// flags over the configuration.
func newPrinter(cmd *cobra.Command, cfg *config.Config, opts *OutputOptions) *output.Printer {
	p := output.NewPrinter(cmd.OutOrStdout())
	p.SetErrorStream(cmd.ErrOrStderr())
	p.SetVerbosity(cfg.Verbosity + opts.Verbose)
	p.SetColumnWidth(cfg.ColumnWidth)

	prefix := cfg.Prefix
	if opts.Prefix != "" {
		prefix = opts.Prefix
	}
	p.SetPrefix(prefix)

	return p
}

// readHeader reads the pool header from the start of a pool file and
// returns it together with the file size.
func readHeader(path string) ([]byte, int64, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided pool path is expected
	if err != nil {
		return nil, 0, fmt.Errorf("opening pool file: %w", err)
	}
	defer func() { _ = f.Close() }()

	fi, err := f.Stat()
	if err != nil {
		return nil, 0, fmt.Errorf("stating pool file: %w", err)
	}

	buf := make([]byte, pool.HeaderSize)
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, 0, fmt.Errorf("reading pool header: %w", err)
	}

	return buf, fi.Size(), nil
}
