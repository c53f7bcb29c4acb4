// Package codec implements compress/decompress adapters for the container
// format's codec table.
//
// # Overview
//
// Every algorithm supported by the container format has a Codec
// implementation here:
//
//   - LZ4Fast / LZ4HC: github.com/pierrec/lz4/v4 block-mode compression.
//   - Zstd: github.com/klauspost/compress/zstd, four speed tiers covering
//     the seven reference levels (1, 3, 6, 9, 15, 19, 22).
//   - Hybrid: LZ4-HC followed by Zstd applied to the LZ4-HC output.
//
// Stored blocks (algorithm code 0x00) never reach this package: a stored
// block's payload is the literal input, handled directly by the block
// pipeline.
//
// # Thread safety
//
// All codecs are safe for concurrent use. Reusable encoder/decoder state
// is cached in sync.Pool instances local to this package, never shared
// through a lock, so callers never serialize on a shared compressor.
package codec
