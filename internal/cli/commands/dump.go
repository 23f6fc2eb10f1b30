package commands

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/pmemtools/pmemview/pkg/output"
	"github.com/pmemtools/pmemview/pkg/pool"
)

// DumpOptions holds command-line options for the dump command.
type DumpOptions struct {
	OutputOptions
	Offset uint64
	Length uint64
	Sep    bool
	Map    bool
	Table  bool
}

// NewDumpCommand creates the dump command.
func NewDumpCommand() *cobra.Command {
	opts := &DumpOptions{}

	cmd := &cobra.Command{
		Use:   "dump <pool-file>",
		Short: "Dump a range of a pool file",
		Long: `Dump a byte range of a pool file in canonical hex+ASCII form.

Consecutive identical rows collapse into a single "*" line, the way
hexdump -C renders them.

With --map the range is decoded as BTT map entries instead, one line
per entry with its LBA and block state; --table renders the entries as
a table.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd, args, opts)
		},
	}

	addOutputFlags(cmd, &opts.OutputOptions)
	cmd.Flags().Uint64VarP(&opts.Offset, "offset", "o", 0, "Byte offset to start at")
	cmd.Flags().Uint64VarP(&opts.Length, "length", "l", 0, "Bytes to dump (0 = to end of file)")
	cmd.Flags().BoolVar(&opts.Sep, "sep", false, "Print a separator line after the dump")
	cmd.Flags().BoolVar(&opts.Map, "map", false, "Decode the range as BTT map entries")
	cmd.Flags().BoolVar(&opts.Table, "table", false, "Render BTT map entries as a table (with --map)")

	return cmd
}

func runDump(cmd *cobra.Command, args []string, opts *DumpOptions) error {
	cfg, err := loadConfig(cmd, opts.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	data, err := readRange(args[0], opts.Offset, opts.Length)
	if err != nil {
		return err
	}

	p := newPrinter(cmd, cfg, &opts.OutputOptions)

	if opts.Map {
		return dumpMap(cmd, p, data, opts)
	}

	p.Hexdump(1, data, opts.Offset, opts.Sep)
	return nil
}

func dumpMap(cmd *cobra.Command, p *output.Printer, data []byte, opts *DumpOptions) error {
	if len(data)%pool.BTTMapEntrySize != 0 {
		p.Errorf("range length %d is not a multiple of the map entry size; ignoring the tail\n", len(data))
	}

	if !p.Check(1) {
		return nil
	}

	if opts.Table {
		return renderMapTable(cmd.OutOrStdout(), data)
	}

	for i := 0; i+pool.BTTMapEntrySize <= len(data); i += pool.BTTMapEntrySize {
		entry := binary.LittleEndian.Uint32(data[i:])
		p.Printf(1, "%08d: %s\n", i/pool.BTTMapEntrySize, output.BTTMapEntry(entry))
	}
	return nil
}

// renderMapTable renders decoded BTT map entries as a table.
func renderMapTable(w io.Writer, data []byte) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeaderAutoFormat(tw.Off),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
	)
	table.Header("Entry", "LBA", "State")

	for i := 0; i+pool.BTTMapEntrySize <= len(data); i += pool.BTTMapEntrySize {
		entry := binary.LittleEndian.Uint32(data[i:])
		table.Append(
			strconv.Itoa(i/pool.BTTMapEntrySize),
			fmt.Sprintf("0x%08x", pool.BTTMapLBA(entry)),
			output.BTTState(pool.BTTMapFlags(entry)),
		)
	}

	return table.Render()
}

// readRange reads length bytes of a file starting at offset; a length
// of 0 means everything to the end of the file.
func readRange(path string, offset, length uint64) ([]byte, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided pool path is expected
	if err != nil {
		return nil, fmt.Errorf("opening pool file: %w", err)
	}
	defer func() { _ = f.Close() }()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stating pool file: %w", err)
	}

	size := uint64(fi.Size())
	if offset > size {
		return nil, fmt.Errorf("offset %d past end of file (%d bytes)", offset, size)
	}

	n := size - offset
	if length > 0 && length < n {
		n = length
	}

	data := make([]byte, n)
	if _, err := f.ReadAt(data, int64(offset)); err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading pool file: %w", err)
	}

	return data, nil
}
