package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pmemtools/pmemview/pkg/output"
	"github.com/pmemtools/pmemview/pkg/pool"
)

// InfoOptions holds command-line options for the info command.
type InfoOptions struct {
	OutputOptions
	SizeFormat string
	Headers    bool
}

// NewInfoCommand creates the info command.
func NewInfoCommand() *cobra.Command {
	opts := &InfoOptions{}

	cmd := &cobra.Command{
		Use:   "info <pool-file>",
		Short: "Print pool header information",
		Long: `Print the header fields of a persistent-memory pool file.

Shows the signature, pool type, layout version, UUIDs, creation time,
file size, and the header checksum with its validation verdict.
Feature flags print at verbosity 2 and above.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, args, opts)
		},
	}

	addOutputFlags(cmd, &opts.OutputOptions)
	cmd.Flags().StringVar(&opts.SizeFormat, "size-format", "", "Size display (bytes|human|both)")
	cmd.Flags().BoolVar(&opts.Headers, "headers", false, "Hex dump the raw pool header")

	return cmd
}

func runInfo(cmd *cobra.Command, args []string, opts *InfoOptions) error {
	cfg, err := loadConfig(cmd, opts.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	sizeFormat := cfg.SizeFormat
	if opts.SizeFormat != "" {
		sizeFormat = opts.SizeFormat
	}
	mode, err := output.ParseSizeMode(sizeFormat)
	if err != nil {
		return err
	}

	path := args[0]
	data, fileSize, err := readHeader(path)
	if err != nil {
		return err
	}

	hdr, err := pool.ParseHeader(data)
	if err != nil {
		return err
	}

	p := newPrinter(cmd, cfg, &opts.OutputOptions)

	p.Field(1, "signature", "%s", hdr.SignatureString())
	p.Field(1, "type", "%s", hdr.Type())
	p.Field(1, "major", "%d", hdr.Major)
	p.Field(2, "compat features", "0x%x", hdr.Compat)
	p.Field(2, "incompat features", "0x%x", hdr.Incompat)
	p.Field(2, "ro compat features", "0x%x", hdr.ROCompat)
	p.Field(1, "poolset uuid", "%s", output.UUID(hdr.PoolsetUUID[:]))
	p.Field(1, "uuid", "%s", output.UUID(hdr.UUID[:]))
	p.Field(1, "creation time", "%s", output.Time(hdr.CreatedAt()))
	p.Field(1, "checksum", "%s", output.Checksum(data, pool.HeaderChecksumOff))
	p.Field(1, "size", "%s", output.Size(uint64(fileSize), mode))

	if opts.Headers {
		p.Printf(1, "\nPool header:\n")
		p.Hexdump(1, data, 0, true)
	}

	return nil
}
