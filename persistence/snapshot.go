package persistence

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/hupe1980/ripsgo"
)

// WriteBarcode serializes a barcode to w in snapshot format.
func WriteBarcode(w io.Writer, barcode *ripsgo.Barcode, compression CompressionType) error {
	payload := encodeIntervals(barcode.Intervals)

	block, err := compressBlock(payload, compression)
	if err != nil {
		return fmt.Errorf("compress payload: %w", err)
	}

	header := FileHeader{
		Magic:       MagicNumber,
		Version:     Version,
		Compression: uint8(compression),
		Dimensions:  uint32(len(barcode.Intervals)),
		NumEdges:    uint64(barcode.NumEdges),
		PayloadSize: uint32(len(block)),
		Checksum:    ComputeChecksum(block),
	}

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	if _, err := w.Write(block); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}

	return nil
}

// ReadBarcode deserializes a barcode from r, verifying the magic number,
// version and payload checksum.
func ReadBarcode(r io.Reader) (*ripsgo.Barcode, error) {
	var header FileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, ErrTruncatedSnapshot
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	if header.Magic != MagicNumber {
		return nil, ErrInvalidMagic
	}
	if header.Version != Version {
		return nil, ErrInvalidVersion
	}
	if header.Compression > uint8(CompressionZSTD) {
		return nil, ErrInvalidCompression
	}

	block := make([]byte, header.PayloadSize)
	if _, err := io.ReadFull(r, block); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, ErrTruncatedSnapshot
		}
		return nil, fmt.Errorf("read payload: %w", err)
	}

	if actual := ComputeChecksum(block); actual != header.Checksum {
		return nil, &ChecksumMismatchError{Expected: header.Checksum, Actual: actual}
	}

	payload, err := decompressBlock(block, CompressionType(header.Compression))
	if err != nil {
		return nil, fmt.Errorf("decompress payload: %w", err)
	}

	intervals, err := decodeIntervals(payload, int(header.Dimensions))
	if err != nil {
		return nil, err
	}

	cocycles := make([][]ripsgo.Cocycle, len(intervals))
	for dim := range cocycles {
		cocycles[dim] = []ripsgo.Cocycle{}
	}

	return &ripsgo.Barcode{
		Intervals: intervals,
		Cocycles:  cocycles,
		NumEdges:  int(header.NumEdges),
	}, nil
}

// encodeIntervals packs interval lists as length-prefixed float32 pairs.
// Infinite deaths round-trip through their IEEE 754 bit pattern.
func encodeIntervals(intervals [][]ripsgo.Pair) []byte {
	size := 0
	for _, pairs := range intervals {
		size += 4 + 8*len(pairs)
	}

	payload := make([]byte, 0, size)
	var scratch [8]byte

	for _, pairs := range intervals {
		binary.LittleEndian.PutUint32(scratch[:4], uint32(len(pairs)))
		payload = append(payload, scratch[:4]...)

		for _, p := range pairs {
			binary.LittleEndian.PutUint32(scratch[0:], math.Float32bits(p.Birth))
			binary.LittleEndian.PutUint32(scratch[4:], math.Float32bits(p.Death))
			payload = append(payload, scratch[:8]...)
		}
	}

	return payload
}

func decodeIntervals(payload []byte, dims int) ([][]ripsgo.Pair, error) {
	intervals := make([][]ripsgo.Pair, dims)
	offset := 0

	for dim := 0; dim < dims; dim++ {
		if offset+4 > len(payload) {
			return nil, ErrTruncatedSnapshot
		}
		count := int(binary.LittleEndian.Uint32(payload[offset:]))
		offset += 4

		if offset+8*count > len(payload) {
			return nil, ErrTruncatedSnapshot
		}

		pairs := make([]ripsgo.Pair, count)
		for i := range pairs {
			pairs[i] = ripsgo.Pair{
				Birth: math.Float32frombits(binary.LittleEndian.Uint32(payload[offset:])),
				Death: math.Float32frombits(binary.LittleEndian.Uint32(payload[offset+4:])),
			}
			offset += 8
		}
		intervals[dim] = pairs
	}

	if offset != len(payload) {
		return nil, fmt.Errorf("snapshot payload has %d trailing bytes", len(payload)-offset)
	}

	return intervals, nil
}
