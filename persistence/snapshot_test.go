package persistence

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/ripsgo"
)

func testBarcode() *ripsgo.Barcode {
	inf := float32(math.Inf(1))
	return &ripsgo.Barcode{
		Intervals: [][]ripsgo.Pair{
			{
				{Birth: 0, Death: 1},
				{Birth: 0, Death: 1},
				{Birth: 0, Death: 1},
				{Birth: 0, Death: inf},
			},
			{
				{Birth: 1, Death: 1.4142135},
			},
		},
		Cocycles: [][]ripsgo.Cocycle{{}, {}},
		NumEdges: 6,
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	tests := []struct {
		name        string
		compression CompressionType
	}{
		{name: "none", compression: CompressionNone},
		{name: "lz4", compression: CompressionLZ4},
		{name: "zstd", compression: CompressionZSTD},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := testBarcode()

			var buf bytes.Buffer
			require.NoError(t, WriteBarcode(&buf, want, tt.compression))

			got, err := ReadBarcode(bytes.NewReader(buf.Bytes()))
			require.NoError(t, err)

			assert.Equal(t, want.Intervals, got.Intervals)
			assert.Equal(t, want.NumEdges, got.NumEdges)
			assert.True(t, got.Intervals[0][3].IsEssential())
		})
	}
}

func TestSnapshotEmptyBarcode(t *testing.T) {
	want := &ripsgo.Barcode{
		Intervals: [][]ripsgo.Pair{{}},
		Cocycles:  [][]ripsgo.Cocycle{{}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteBarcode(&buf, want, CompressionNone))

	got, err := ReadBarcode(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, got.Intervals, 1)
	assert.Empty(t, got.Intervals[0])
	assert.Zero(t, got.NumEdges)
}

func TestSnapshotInvalidMagic(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBarcode(&buf, testBarcode(), CompressionNone))

	data := buf.Bytes()
	binary.LittleEndian.PutUint32(data[0:], 0xdeadbeef)

	_, err := ReadBarcode(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrInvalidMagic)
}

func TestSnapshotInvalidVersion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBarcode(&buf, testBarcode(), CompressionNone))

	data := buf.Bytes()
	binary.LittleEndian.PutUint32(data[4:], 0x00990000)

	_, err := ReadBarcode(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrInvalidVersion)
}

func TestSnapshotChecksumMismatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBarcode(&buf, testBarcode(), CompressionNone))

	// Flip a payload byte past the header.
	data := buf.Bytes()
	data[len(data)-1] ^= 0xff

	_, err := ReadBarcode(bytes.NewReader(data))
	assert.True(t, IsChecksumMismatch(err))
}

func TestSnapshotTruncated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBarcode(&buf, testBarcode(), CompressionNone))

	data := buf.Bytes()

	_, err := ReadBarcode(bytes.NewReader(data[:len(data)-4]))
	assert.ErrorIs(t, err, ErrTruncatedSnapshot)

	_, err = ReadBarcode(bytes.NewReader(data[:8]))
	assert.ErrorIs(t, err, ErrTruncatedSnapshot)
}
