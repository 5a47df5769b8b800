package persistence

import "errors"

const (
	// MagicNumber identifies ripsgo snapshot files (ASCII: "RIPS")
	MagicNumber = 0x52495053
	// Version is the current file format version (v1.0.0)
	Version = 0x00010000
)

var (
	ErrInvalidMagic       = errors.New("invalid magic number")
	ErrInvalidVersion     = errors.New("unsupported version")
	ErrInvalidCompression = errors.New("unknown compression type")
	ErrTruncatedSnapshot  = errors.New("truncated snapshot")
)

// FileHeader is the 40-byte header at the start of every snapshot file.
type FileHeader struct {
	Magic       uint32 // 0x52495053 ("RIPS")
	Version     uint32 // File format version
	Compression uint8  // 0=None, 1=LZ4, 2=ZSTD
	Padding     [3]byte
	Dimensions  uint32 // Number of per-dimension interval lists
	NumEdges    uint64 // Edge count of the source filtration
	PayloadSize uint32 // Size of the compressed payload block
	Checksum    uint32 // CRC32 of the payload block
	Reserved    [8]byte
}
