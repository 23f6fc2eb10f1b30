package pool

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"
)

// Pool header geometry. The header occupies the first 4096 bytes of a
// pool file; the checksum is the trailing 8 bytes and covers the whole
// header with the checksum field itself treated as absent.
const (
	HeaderSize        = 4096
	SignatureLen      = 8
	HeaderChecksumOff = HeaderSize - 8
)

// Header is the fixed-size descriptor at the start of every pool file.
// All integer fields are little-endian on disk.
type Header struct {
	Signature   [SignatureLen]byte
	Major       uint32
	Compat      uint32
	Incompat    uint32
	ROCompat    uint32
	PoolsetUUID [16]byte
	UUID        [16]byte
	Crtime      uint64
	Checksum    uint64
}

// Field offsets within the header.
const (
	sigOff         = 0
	majorOff       = 8
	compatOff      = 12
	incompatOff    = 16
	roCompatOff    = 20
	poolsetUUIDOff = 24
	uuidOff        = 40
	crtimeOff      = 56
)

// ParseHeader decodes a pool header from the first HeaderSize bytes of data.
func ParseHeader(data []byte) (*Header, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("pool header truncated: %d bytes, need %d", len(data), HeaderSize)
	}

	h := &Header{}
	copy(h.Signature[:], data[sigOff:sigOff+SignatureLen])
	h.Major = binary.LittleEndian.Uint32(data[majorOff:])
	h.Compat = binary.LittleEndian.Uint32(data[compatOff:])
	h.Incompat = binary.LittleEndian.Uint32(data[incompatOff:])
	h.ROCompat = binary.LittleEndian.Uint32(data[roCompatOff:])
	copy(h.PoolsetUUID[:], data[poolsetUUIDOff:poolsetUUIDOff+16])
	copy(h.UUID[:], data[uuidOff:uuidOff+16])
	h.Crtime = binary.LittleEndian.Uint64(data[crtimeOff:])
	h.Checksum = binary.LittleEndian.Uint64(data[HeaderChecksumOff:])

	return h, nil
}

// Type returns the pool type encoded in the header signature.
func (h *Header) Type() Type {
	return ParseSignature(h.Signature[:])
}

// SignatureString returns the signature with NUL padding stripped.
func (h *Header) SignatureString() string {
	return string(bytes.TrimRight(h.Signature[:], "\x00"))
}

// CreatedAt returns the pool creation time. A zero Crtime yields the
// zero time.
func (h *Header) CreatedAt() time.Time {
	if h.Crtime == 0 {
		return time.Time{}
	}
	return time.Unix(int64(h.Crtime), 0)
}
