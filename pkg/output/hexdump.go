package output

import (
	"bytes"
	"fmt"
	"strings"
)

// Hex dump row geometry: 16 bytes per row; the hex column is 16
// two-digit tokens with single spaces plus one extra space splitting
// the row in half.
const (
	hexdumpRowWidth  = 16
	hexdumpRowHexLen = hexdumpRowWidth*3 + 1
)

// Hexdump writes a canonical hex+ASCII dump of data, labelling each
// row with offset plus the row's position. Consecutive rows identical
// to the last printed row collapse into a single "*" line; the first
// and last rows always print, so a short final row is never suppressed
// by matching its predecessor's prefix.
//
// If sep is true and at least one row was written, a line of '-'
// characters matching the width of one dump line follows the dump.
func (p *Printer) Hexdump(vlevel int, data []byte, offset uint64, sep bool) {
	if !p.Check(vlevel) || len(data) == 0 {
		return
	}

	var prev, curr int
	repeated := false
	rowLen := 0
	remaining := len(data)

	for remaining > 0 {
		currLen := min(remaining, hexdumpRowWidth)
		last := remaining == currLen
		row := data[curr : curr+currLen]

		if !last && curr != 0 && bytes.Equal(data[prev:prev+currLen], row) {
			if !repeated {
				// print the star only for the first repeated row
				fmt.Fprint(p.out, "*\n")
				repeated = true
			}
		} else {
			repeated = false
			n, _ := fmt.Fprintf(p.out, "%08x  %-*s|%-*s|\n",
				uint64(curr)+offset,
				hexdumpRowHexLen, hexdumpHexString(row),
				hexdumpRowWidth, hexdumpASCIIString(row))
			rowLen = n
			prev = curr
		}

		remaining -= currLen
		curr += currLen
	}

	if sep && rowLen > 1 {
		fmt.Fprint(p.out, strings.Repeat("-", rowLen-1), "\n")
	}
}

// hexdumpHexString renders a row as space-separated hex bytes with an
// extra space after every 8th byte.
func hexdumpHexString(row []byte) string {
	var b strings.Builder
	for i, c := range row {
		if i > 0 && i%8 == 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%02x ", c)
	}
	return b.String()
}

// hexdumpASCIIString renders a row as printable ASCII, with dots for
// everything else.
func hexdumpASCIIString(row []byte) string {
	var b strings.Builder
	for _, c := range row {
		if c >= 0x20 && c < 0x7f {
			b.WriteByte(c)
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}
