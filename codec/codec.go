// Package codec provides stateless compress/decompress adapters for the
// algorithms named in the container format's algorithm code table: LZ4
// fast, LZ4 high-compression, Zstandard at several levels, and a two-stage
// hybrid of the two.
//
// Each adapter is safe for concurrent use: any reusable compressor or
// decoder objects are cached thread-local via sync.Pool, never shared
// across a lock, matching the "codec caches are thread-local" rule of the
// concurrency model.
package codec

import "fmt"

// Algorithm identifies a compression strategy by its on-disk code.
//
// The set is closed and version-gated: new algorithms require a new
// container format version, so this is expressed as a fixed enum rather
// than an open plugin interface.
type Algorithm uint8

const (
	Stored       Algorithm = 0x00
	LZ4Fast      Algorithm = 0x01
	LZ4HC        Algorithm = 0x02
	ZstdFast     Algorithm = 0x03 // levels 1-3
	ZstdBalanced Algorithm = 0x04 // levels 6-9
	ZstdHigh     Algorithm = 0x05 // levels 15-19
	ZstdMax      Algorithm = 0x06 // level 22
	Hybrid       Algorithm = 0x07 // LZ4-HC then Zstd
	Adaptive     Algorithm = 0x08 // reserved, never emitted
)

func (a Algorithm) String() string {
	switch a {
	case Stored:
		return "stored"
	case LZ4Fast:
		return "lz4-fast"
	case LZ4HC:
		return "lz4-hc"
	case ZstdFast:
		return "zstd-fast"
	case ZstdBalanced:
		return "zstd-balanced"
	case ZstdHigh:
		return "zstd-high"
	case ZstdMax:
		return "zstd-max"
	case Hybrid:
		return "hybrid"
	case Adaptive:
		return "adaptive"
	default:
		return "unknown"
	}
}

// Codec compresses and decompresses byte slices for one algorithm.
//
// Compress and Decompress are both stateless from the caller's point of
// view: internal scratch state (pooled compressors, hash tables) must
// never leak between calls.
type Codec interface {
	// Compress compresses data at the given algorithm-specific level.
	Compress(level int, data []byte) ([]byte, error)

	// Decompress decompresses data, given a size hint for the decompressed
	// length. The hint sizes the initial destination buffer; it is not
	// checked against the result, and the LZ4 codecs double the buffer and
	// retry when the hint proves too small.
	Decompress(data []byte, originalLen int) ([]byte, error)
}

// New returns the Codec implementing the given algorithm.
//
// Stored, Adaptive, and any unrecognized algorithm are rejected: Stored
// blocks never go through a codec (the payload is literal), and Adaptive
// is reserved in this format version.
func New(algorithm Algorithm) (Codec, error) {
	switch algorithm {
	case LZ4Fast:
		return NewLZ4FastCodec(), nil
	case LZ4HC:
		return NewLZ4HCCodec(), nil
	case ZstdFast, ZstdBalanced, ZstdHigh, ZstdMax:
		return NewZstdCodec(), nil
	case Hybrid:
		return NewHybridCodec(), nil
	default:
		return nil, fmt.Errorf("codec: unsupported algorithm %s (0x%02x)", algorithm, uint8(algorithm))
	}
}

// ZstdLevelForAlgorithm maps a Zstd algorithm code to its reference level,
// per section 4.3 of the container specification.
func ZstdLevelForAlgorithm(a Algorithm) int {
	switch a {
	case ZstdFast:
		return 3
	case ZstdBalanced:
		return 6
	case ZstdHigh:
		return 15
	case ZstdMax:
		return 22
	default:
		return 3
	}
}
