package container

import (
	"testing"

	"github.com/Llucs/TurboZip/codec"
	"github.com/Llucs/TurboZip/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntries() []IndexEntry {
	return []IndexEntry{
		{PayloadOffset: 0, CompressedSize: 100, OriginalSize: 200, Algorithm: codec.LZ4Fast, Level: 0, BlockFlags: 0, CRC32: 0xDEADBEEF},
		{PayloadOffset: 100, CompressedSize: 50, OriginalSize: 80, Algorithm: codec.ZstdBalanced, Level: 6, BlockFlags: 1, CRC32: 0x12345678},
		{PayloadOffset: 150, CompressedSize: 80, OriginalSize: 80, Algorithm: codec.Stored, Level: 0, BlockFlags: 0, CRC32: 0xCAFEBABE},
	}
}

func TestIndexEntry_RoundTrip(t *testing.T) {
	e := sampleEntries()[1]
	b := e.Bytes()
	require.Len(t, b, IndexEntrySize)

	got, err := ParseIndexEntry(b, 0)
	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func TestEncodeParseIndex_RoundTrip(t *testing.T) {
	entries := sampleEntries()
	encoded := EncodeIndex(entries)
	require.Len(t, encoded, len(entries)*IndexEntrySize)

	got, err := ParseIndex(encoded, len(entries))
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestParseIndex_TooShort(t *testing.T) {
	_, err := ParseIndex(make([]byte, 10), 1)
	assert.ErrorIs(t, err, errs.ErrMalformedIndex)
}

func TestParseIndex_NonMonotonicOffsetRejected(t *testing.T) {
	entries := []IndexEntry{
		{PayloadOffset: 0, CompressedSize: 10},
		{PayloadOffset: 5, CompressedSize: 10}, // should be 10
	}
	encoded := EncodeIndex(entries)

	_, err := ParseIndex(encoded, len(entries))
	assert.ErrorIs(t, err, errs.ErrMalformedIndex)
}

func TestParseIndex_Empty(t *testing.T) {
	got, err := ParseIndex(nil, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}
