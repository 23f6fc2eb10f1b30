package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pmemtools/pmemview/pkg/output"
	"github.com/pmemtools/pmemview/pkg/pool"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// CheckOptions holds command-line options for the check command.
type CheckOptions struct {
	OutputOptions
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}

	cmd := &cobra.Command{
		Use:   "check <pool-file>",
		Short: "Validate the pool header checksum",
		Long: `Validate the checksum stored in the pool header.

Exit codes:
  0 - Header checksum is consistent
  1 - Header checksum mismatch
  2 - Configuration or runtime error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts)
		},
	}

	addOutputFlags(cmd, &opts.OutputOptions)

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, opts *CheckOptions) error {
	cfg, err := loadConfig(cmd, opts.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	path := args[0]
	data, _, err := readHeader(path)
	if err != nil {
		return err
	}

	p := newPrinter(cmd, cfg, &opts.OutputOptions)

	ok, _ := pool.ValidateChecksum(data, pool.HeaderChecksumOff)
	p.Field(2, "checksum", "%s", output.Checksum(data, pool.HeaderChecksumOff))

	if ok {
		ExitCode = 0
		p.Printf(1, "%s: consistent\n", path)
	} else {
		ExitCode = 1
		p.Printf(1, "%s: not consistent\n", path)
	}

	return nil
}
