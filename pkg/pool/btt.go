package pool

// BTT map entry encoding: the low 30 bits carry the logical block
// address, the high 2 bits carry the block state. An entry with all
// flag bits clear has never been written (init state).
const (
	BTTMapEntrySize = 4

	BTTMapEntryLBAMask uint32 = 0x3fffffff
	BTTMapEntryError   uint32 = 0x40000000
	BTTMapEntryZero    uint32 = 0x80000000
	BTTMapEntryNormal  uint32 = 0xc0000000
)

// BTTMapLBA extracts the logical block address from a map entry.
func BTTMapLBA(entry uint32) uint32 {
	return entry & BTTMapEntryLBAMask
}

// BTTMapFlags extracts the state flag bits from a map entry.
func BTTMapFlags(entry uint32) uint32 {
	return entry &^ BTTMapEntryLBAMask
}
