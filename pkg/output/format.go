package output

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/pmemtools/pmemview/pkg/pool"
)

// SizeMode selects how Size renders a byte count.
type SizeMode int

const (
	// SizeBytes renders the exact decimal byte count.
	SizeBytes SizeMode = iota
	// SizeHuman renders a scaled value with a K/M/G/T unit letter.
	SizeHuman
	// SizeBoth renders the scaled form followed by the exact count.
	SizeBoth
)

// ParseSizeMode converts a size format name to a SizeMode.
func ParseSizeMode(s string) (SizeMode, error) {
	switch s {
	case "bytes":
		return SizeBytes, nil
	case "human":
		return SizeHuman, nil
	case "both":
		return SizeBoth, nil
	default:
		return SizeBytes, fmt.Errorf("invalid size format %q (must be bytes, human, or both)", s)
	}
}

// Percentage renders a percentage. Values between 0 and 1e-4 use
// scientific notation; 0 and values of 100 or more drop the fraction;
// everything else gets six decimals.
func Percentage(perc float64) string {
	if perc > 0 && perc < 0.0001 {
		return fmt.Sprintf("%e %%", perc)
	}

	decimals := 6
	if perc >= 100 || perc == 0 {
		decimals = 0
	}
	return fmt.Sprintf("%.*f %%", decimals, perc)
}

var sizeUnits = [...]byte{'K', 'M', 'G', 'T'}

// Size renders a byte count according to mode. Values below 1024 stay
// decimal in every mode; scaled values keep one fractional digit.
func Size(size uint64, mode SizeMode) string {
	if mode == SizeBytes {
		return strconv.FormatUint(size, 10)
	}

	scaled := float64(size)
	unit := -1
	for scaled >= 1024 && unit < len(sizeUnits)-1 {
		scaled /= 1024
		unit++
	}
	if unit < 0 {
		return strconv.FormatUint(size, 10)
	}

	if mode == SizeBoth {
		return fmt.Sprintf("%.1f%c [%d]", scaled, sizeUnits[unit], size)
	}
	return fmt.Sprintf("%.1f%c", scaled, sizeUnits[unit])
}

// UUID renders a 16-byte UUID in canonical 8-4-4-4-12 form, or
// "unknown" if b is not 16 bytes.
func UUID(b []byte) string {
	u, err := uuid.FromBytes(b)
	if err != nil {
		return "unknown"
	}
	return u.String()
}

// timeLayout matches strftime "%a %b %d %Y %H:%M:%S".
const timeLayout = "Mon Jan 02 2006 15:04:05"

// Time renders a timestamp in the pool diagnostic format, or "unknown"
// for the zero time.
func Time(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return t.Format(timeLayout)
}

// Checksum validates the checksum field embedded at off within data
// and renders the stored value with the verdict. The buffer is never
// modified.
func Checksum(data []byte, off int) string {
	stored := binary.LittleEndian.Uint64(data[off:])
	ok, expected := pool.ValidateChecksum(data, off)

	if ok {
		return fmt.Sprintf("0x%08x [OK]", uint32(stored))
	}
	return fmt.Sprintf("0x%08x [wrong! should be: 0x%08x]", uint32(stored), uint32(expected))
}

// BTTState renders the state flag bits of a BTT map entry.
func BTTState(flags uint32) string {
	switch flags {
	case 0:
		return "init"
	case pool.BTTMapEntryZero:
		return "zero"
	case pool.BTTMapEntryError:
		return "error"
	case pool.BTTMapEntryNormal:
		return "normal"
	default:
		return "unknown"
	}
}

// BTTMapEntry renders a BTT map entry as its LBA and block state.
func BTTMapEntry(entry uint32) string {
	return fmt.Sprintf("0x%08x state: %s",
		pool.BTTMapLBA(entry), BTTState(pool.BTTMapFlags(entry)))
}
