// Package persistence provides binary snapshot serialization for barcodes.
//
// A snapshot is a fixed header (magic number, version, compression type,
// payload size, CRC32 checksum) followed by a single compressed block
// holding the interval data. LZ4 favors speed, zstd favors ratio; the
// default stores the payload uncompressed.
//
// The Manager adds file handling on top of the stream format, with optional
// IO rate limiting through a resource.Controller.
package persistence
