// Package output provides verbosity-gated diagnostic printing for pool
// inspection: formatted field output, scalar formatters for sizes,
// times, UUIDs and checksums, and a canonical hex+ASCII dump renderer.
//
// A Printer is not safe for concurrent use; calls from multiple
// goroutines produce interleaved output.
package output

import (
	"fmt"
	"io"
	"os"
)

const defaultColumnWidth = 20

// Printer writes diagnostic text to a configurable stream, gated by a
// verbosity threshold. Error messages bypass both the gate and the
// configured stream and always go to the error stream.
type Printer struct {
	vlevel   int
	colWidth int
	prefix   string
	out      io.Writer
	errOut   io.Writer
}

// NewPrinter creates a printer writing to out, with errors on stderr
// and the default column width.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{
		colWidth: defaultColumnWidth,
		out:      out,
		errOut:   os.Stderr,
	}
}

// SetVerbosity sets the verbosity threshold. If no stream has been
// configured yet, the printer binds to standard output.
func (p *Printer) SetVerbosity(vlevel int) {
	p.vlevel = vlevel
	if p.out == nil {
		p.out = os.Stdout
	}
}

// SetColumnWidth sets the field-name column width used by Field.
// A width of 0 produces no padding.
func (p *Printer) SetColumnWidth(width int) {
	p.colWidth = width
}

// SetPrefix sets the string prepended (as "<prefix>: ") to every gated
// line. An empty string clears it. The prefix must not contain
// newlines.
func (p *Printer) SetPrefix(prefix string) {
	p.prefix = prefix
}

// SetStream replaces the destination stream.
func (p *Printer) SetStream(out io.Writer) {
	p.out = out
}

// SetErrorStream replaces the error stream. Used by tests; defaults to
// standard error.
func (p *Printer) SetErrorStream(out io.Writer) {
	p.errOut = out
}

// Check reports whether output at the given verbosity level is enabled.
func (p *Printer) Check(vlevel int) bool {
	return p.vlevel >= vlevel
}

// Errorf writes an error message to the error stream, prefixed with
// "error: ". It ignores the verbosity threshold and the configured
// stream.
func (p *Printer) Errorf(format string, args ...any) {
	fmt.Fprint(p.errOut, "error: ")
	fmt.Fprintf(p.errOut, format, args...)
}

// Printf writes a formatted message if the verbosity gate is open.
// Write failures are dropped; this is diagnostic output.
func (p *Printer) Printf(vlevel int, format string, args ...any) {
	if !p.Check(vlevel) {
		return
	}
	p.writePrefix()
	fmt.Fprintf(p.out, format, args...)
}

// Field writes a field name padded to the column width, followed by
// " : " and the formatted value on one line. Names longer than the
// column width are never truncated.
func (p *Printer) Field(vlevel int, name, format string, args ...any) {
	if !p.Check(vlevel) {
		return
	}
	p.writePrefix()
	fmt.Fprintf(p.out, "%-*s : ", p.colWidth, name)
	fmt.Fprintf(p.out, format, args...)
	fmt.Fprintln(p.out)
}

func (p *Printer) writePrefix() {
	if p.prefix != "" {
		fmt.Fprintf(p.out, "%s: ", p.prefix)
	}
}

// std is the process-wide printer behind the package-level functions.
var std = NewPrinter(os.Stdout)

// Default returns the process-wide printer.
func Default() *Printer { return std }

// SetVerbosity sets the verbosity threshold of the default printer.
func SetVerbosity(vlevel int) { std.SetVerbosity(vlevel) }

// SetColumnWidth sets the field column width of the default printer.
func SetColumnWidth(width int) { std.SetColumnWidth(width) }

// SetPrefix sets the line prefix of the default printer.
func SetPrefix(prefix string) { std.SetPrefix(prefix) }

// SetStream replaces the destination stream of the default printer.
func SetStream(out io.Writer) { std.SetStream(out) }

// Check reports whether the default printer emits at the given level.
func Check(vlevel int) bool { return std.Check(vlevel) }

// Errorf writes an error message through the default printer.
func Errorf(format string, args ...any) { std.Errorf(format, args...) }

// Printf writes a gated message through the default printer.
func Printf(vlevel int, format string, args ...any) { std.Printf(vlevel, format, args...) }

// Field writes a gated field line through the default printer.
func Field(vlevel int, name, format string, args ...any) { std.Field(vlevel, name, format, args...) }

// Hexdump writes a gated canonical dump through the default printer.
func Hexdump(vlevel int, data []byte, offset uint64, sep bool) {
	std.Hexdump(vlevel, data, offset, sep)
}
