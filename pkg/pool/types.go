// Package pool provides parsing and validation for persistent-memory pool
// files: the pool header layout, its Fletcher64 checksum, and the BTT
// (Block Translation Table) map entry encoding.
package pool

import "bytes"

// Type identifies the kind of pool a file holds, derived from the
// header signature.
type Type int

const (
	TypeUnknown Type = iota
	TypeLog
	TypeBlk
	TypeObj
)

// Pool header signatures. The on-disk field is 8 bytes, NUL-padded.
const (
	LogSignature = "PMEMLOG"
	BlkSignature = "PMEMBLK"
	ObjSignature = "PMEMOBJ"
)

// String returns the short pool type tag used in diagnostic output.
func (t Type) String() string {
	switch t {
	case TypeLog:
		return "log"
	case TypeBlk:
		return "blk"
	case TypeObj:
		return "obj"
	default:
		return "unknown"
	}
}

// ParseSignature maps a raw header signature to a pool type.
func ParseSignature(sig []byte) Type {
	switch string(bytes.TrimRight(sig, "\x00")) {
	case LogSignature:
		return TypeLog
	case BlkSignature:
		return TypeBlk
	case ObjSignature:
		return TypeObj
	default:
		return TypeUnknown
	}
}
