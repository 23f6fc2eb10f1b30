// Package cli provides the command-line interface for pmemview.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pmemtools/pmemview/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pmemview",
		Short: "Inspect persistent-memory pool files",
		Long: `pmemview is an inspection tool for persistent-memory pool files.

It reads the pool header and the BTT layout directly from a pool file
and prints them in a human-readable form:

  - Pool header fields (signature, version, UUIDs, creation time)
  - Header checksum validation
  - Canonical hex+ASCII dumps of arbitrary file ranges
  - Decoded BTT map entries

Output is gated by a verbosity level; repeat -v for more detail.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewInfoCommand())
	rootCmd.AddCommand(commands.NewDumpCommand())
	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
