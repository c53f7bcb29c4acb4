// Package pipeline implements the per-block compression pipeline: CRC32
// over the original bytes, optional preprocessing, codec compression, and
// a fallback to the stored (uncompressed) representation whenever the
// codec fails or does not shrink the data.
package pipeline

import (
	"hash/crc32"

	"github.com/Llucs/TurboZip/codec"
	"github.com/Llucs/TurboZip/errs"
	"github.com/Llucs/TurboZip/preprocess"
	"github.com/Llucs/TurboZip/strategy"
)

// multiPassHybridFlag is block_flags bit 3 (section 6.4): set on blocks
// compressed with the two-stage hybrid codec.
const multiPassHybridFlag uint16 = 1 << 3

// Record is one block's encoded form: the payload bytes to write plus the
// index-entry fields describing how to invert them.
type Record struct {
	Payload        []byte
	CompressedSize uint32
	OriginalSize   uint32
	Algorithm      codec.Algorithm
	Level          uint8
	BlockFlags     uint16
	CRC32          uint32
}

// Encode applies s to block, per section 4.4 steps 1-6. It never returns
// an error from a codec failure: CodecFailure is recovered locally by
// falling back to stored, matching the propagation policy of section 7.
func Encode(block []byte, s strategy.Strategy) Record {
	crc := crc32.ChecksumIEEE(block)

	if s.Algorithm == codec.Stored {
		return storedRecord(block, crc)
	}

	transformed := applyPreprocess(block, s.PreprocessFlags)

	c, err := codec.New(s.Algorithm)
	if err != nil {
		return storedRecord(block, crc)
	}

	compressed, err := c.Compress(s.Level, transformed)
	if err != nil {
		return storedRecord(block, crc)
	}

	if len(compressed) >= len(block) {
		return storedRecord(block, crc)
	}

	blockFlags := uint16(s.PreprocessFlags)
	if s.Algorithm == codec.Hybrid {
		blockFlags |= multiPassHybridFlag
	}

	return Record{
		Payload:        compressed,
		CompressedSize: uint32(len(compressed)),
		OriginalSize:   uint32(len(block)),
		Algorithm:      s.Algorithm,
		Level:          uint8(s.Level),
		BlockFlags:     blockFlags,
		CRC32:          crc,
	}
}

// storedRecord produces the section-3 required shape for a stored block:
// compressed_size == original_size, payload is the literal block, and
// block_flags is zero.
func storedRecord(block []byte, crc uint32) Record {
	return Record{
		Payload:        block,
		CompressedSize: uint32(len(block)),
		OriginalSize:   uint32(len(block)),
		Algorithm:      codec.Stored,
		Level:          0,
		BlockFlags:     0,
		CRC32:          crc,
	}
}

// applyPreprocess runs the preprocessor declared by flags (delta before
// rle; at most one is ever active per section 4.3).
func applyPreprocess(block []byte, flags uint8) []byte {
	switch {
	case flags&strategy.FlagDelta != 0:
		return preprocess.Delta{}.Forward(block)
	case flags&strategy.FlagRLE != 0:
		return preprocess.RLE{}.Forward(block)
	default:
		return block
	}
}

// Decode reverses Encode given the stored algorithm, level, block flags,
// original length, and the on-disk payload bytes. It verifies the CRC32
// of the recovered original bytes against expectedCRC, reporting
// blockIndex on mismatch so the caller can surface which block failed.
func Decode(payload []byte, algorithm codec.Algorithm, level uint8, blockFlags uint16, originalLen int, expectedCRC uint32, blockIndex int) ([]byte, error) {
	var original []byte

	if algorithm == codec.Stored {
		original = payload
	} else {
		c, err := codec.New(algorithm)
		if err != nil {
			return nil, err
		}

		transformed, err := c.Decompress(payload, preprocessedSizeHint(blockFlags, originalLen))
		if err != nil {
			return nil, err
		}

		original, err = inversePreprocess(transformed, blockFlags)
		if err != nil {
			return nil, err
		}
	}

	if crc32.ChecksumIEEE(original) != expectedCRC {
		return nil, errs.NewBlockChecksumMismatch(blockIndex)
	}

	return original, nil
}

// preprocessedSizeHint returns the length the codec should decompress to.
// Delta preprocessing preserves length, so the original block length is
// exact. RLE preprocessing can at most double the length (every byte
// becoming its own (count, value) pair), so an upper bound is used
// instead: Zstd frames are self-describing and ignore the hint's
// precision, while the LZ4 codecs grow their destination buffer if this
// upper bound still proves insufficient.
func preprocessedSizeHint(blockFlags uint16, originalLen int) int {
	if blockFlags&uint16(strategy.FlagRLE) != 0 {
		return originalLen*2 + 2
	}

	return originalLen
}

// inversePreprocess reverses the preprocessor declared by blockFlags.
func inversePreprocess(data []byte, blockFlags uint16) ([]byte, error) {
	switch {
	case blockFlags&uint16(strategy.FlagDelta) != 0:
		return preprocess.Delta{}.Inverse(data)
	case blockFlags&uint16(strategy.FlagRLE) != 0:
		return preprocess.RLE{}.Inverse(data)
	default:
		return data, nil
	}
}
