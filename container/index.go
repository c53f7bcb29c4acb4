package container

import (
	"github.com/Llucs/TurboZip/codec"
	"github.com/Llucs/TurboZip/errs"
)

// IndexEntrySize is the fixed size, in bytes, of one block index entry.
const IndexEntrySize = 24

// IndexEntry records one block's location, size, codec, and checksum, per
// section 6.1.
type IndexEntry struct {
	// PayloadOffset is the byte offset of this block's payload, relative
	// to the start of the payload region.
	PayloadOffset uint64 // byte offset 0-7

	// CompressedSize is the length of the on-disk payload.
	CompressedSize uint32 // byte offset 8-11

	// OriginalSize is the length of the block's original bytes.
	OriginalSize uint32 // byte offset 12-15

	// Algorithm is the codec this block was compressed with.
	Algorithm codec.Algorithm // byte offset 16

	// Level is the algorithm-specific level (or packed hybrid level).
	Level uint8 // byte offset 17

	// BlockFlags holds the per-block preprocessing/hybrid bits of
	// section 6.4.
	BlockFlags uint16 // byte offset 18-19

	// CRC32 is the IEEE 802.3 CRC32 of the block's original bytes.
	CRC32 uint32 // byte offset 20-23
}

// Bytes serializes the entry into a fixed IndexEntrySize byte slice.
func (e IndexEntry) Bytes() []byte {
	b := make([]byte, IndexEntrySize)
	e.WriteToSlice(b, 0)
	return b
}

// WriteToSlice writes the entry into data at offset and returns the next
// write position (offset + IndexEntrySize).
func (e IndexEntry) WriteToSlice(data []byte, offset int) int {
	endianEngine.PutUint64(data[offset:offset+8], e.PayloadOffset)
	endianEngine.PutUint32(data[offset+8:offset+12], e.CompressedSize)
	endianEngine.PutUint32(data[offset+12:offset+16], e.OriginalSize)
	data[offset+16] = byte(e.Algorithm)
	data[offset+17] = e.Level
	endianEngine.PutUint16(data[offset+18:offset+20], e.BlockFlags)
	endianEngine.PutUint32(data[offset+20:offset+24], e.CRC32)

	return offset + IndexEntrySize
}

// ParseIndexEntry parses one IndexEntry from data at offset.
func ParseIndexEntry(data []byte, offset int) (IndexEntry, error) {
	if offset+IndexEntrySize > len(data) {
		return IndexEntry{}, errs.ErrMalformedIndex
	}

	return IndexEntry{
		PayloadOffset:  endianEngine.Uint64(data[offset : offset+8]),
		CompressedSize: endianEngine.Uint32(data[offset+8 : offset+12]),
		OriginalSize:   endianEngine.Uint32(data[offset+12 : offset+16]),
		Algorithm:      codec.Algorithm(data[offset+16]),
		Level:          data[offset+17],
		BlockFlags:     endianEngine.Uint16(data[offset+18 : offset+20]),
		CRC32:          endianEngine.Uint32(data[offset+20 : offset+24]),
	}, nil
}

// ParseIndex parses count consecutive IndexEntry records from data (the
// raw block index section) and validates the monotonicity invariants of
// section 3: payload_offset values strictly increasing, each equal to the
// prior entry's payload_offset + compressed_size.
func ParseIndex(data []byte, count int) ([]IndexEntry, error) {
	if len(data) < count*IndexEntrySize {
		return nil, errs.ErrMalformedIndex
	}

	entries := make([]IndexEntry, count)
	for i := 0; i < count; i++ {
		entry, err := ParseIndexEntry(data, i*IndexEntrySize)
		if err != nil {
			return nil, err
		}
		entries[i] = entry
	}

	if err := validateMonotonicity(entries); err != nil {
		return nil, err
	}

	return entries, nil
}

// validateMonotonicity enforces "index entries appear in input order;
// payload_offset values are strictly increasing and each equals the
// prior entry's payload_offset + compressed_size" (section 3).
func validateMonotonicity(entries []IndexEntry) error {
	var want uint64
	for i, e := range entries {
		if i == 0 {
			want = 0
		}
		if e.PayloadOffset != want {
			return errs.ErrMalformedIndex
		}
		want = e.PayloadOffset + uint64(e.CompressedSize)
	}

	return nil
}

// EncodeIndex serializes entries into a single contiguous byte slice.
func EncodeIndex(entries []IndexEntry) []byte {
	out := make([]byte, len(entries)*IndexEntrySize)
	offset := 0
	for _, e := range entries {
		offset = e.WriteToSlice(out, offset)
	}

	return out
}
