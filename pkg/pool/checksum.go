package pool

import "encoding/binary"

// CheckSum computes the Fletcher64 checksum of data as two running
// 32-bit sums over little-endian 32-bit words. The 8-byte checksum
// field at csumOff is skipped so the result is stable whether or not
// the field is populated. csumOff must be 4-byte aligned and, together
// with its 8-byte width, lie within data.
func CheckSum(data []byte, csumOff int) uint64 {
	var lo, hi uint32

	for off := 0; off+4 <= len(data); off += 4 {
		if off == csumOff || off == csumOff+4 {
			continue
		}
		lo += binary.LittleEndian.Uint32(data[off:])
		hi += lo
	}

	return uint64(hi)<<32 | uint64(lo)
}

// ValidateChecksum checks the stored checksum at csumOff against the
// computed one. It never modifies data; the expected value is returned
// so callers can report a mismatch.
func ValidateChecksum(data []byte, csumOff int) (bool, uint64) {
	expected := CheckSum(data, csumOff)
	stored := binary.LittleEndian.Uint64(data[csumOff:])
	return stored == expected, expected
}
