package codec

import (
	"fmt"
	"sync"

	"github.com/Llucs/TurboZip/internal/pool"
	"github.com/klauspost/compress/zstd"
)

// zstdEncoderPools caches pooled zstd.Encoder instances keyed by
// zstd.EncoderLevel, since klauspost/compress/zstd fixes the level at
// encoder construction time. Keying by (algorithm, level) this way avoids
// serializing unrelated levels on a single shared encoder.
var zstdEncoderPools sync.Map // map[zstd.EncoderLevel]*sync.Pool

// zstdDecoderPool pools zstd decoders; decoding needs no level and so has
// a single shared pool.
//
// klauspost/compress/zstd documents that its decoder "has been designed to
// operate without allocations after a warmup", so reuse matters here too.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		dec, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("codec: failed to create zstd decoder: %v", err))
		}

		return dec
	},
}

func encoderLevelFor(level int) zstd.EncoderLevel {
	switch {
	case level <= 3:
		return zstd.SpeedFastest
	case level <= 9:
		return zstd.SpeedDefault
	case level <= 19:
		return zstd.SpeedBetterCompression
	default:
		return zstd.SpeedBestCompression
	}
}

func encoderPoolFor(el zstd.EncoderLevel) *sync.Pool {
	if p, ok := zstdEncoderPools.Load(el); ok {
		return p.(*sync.Pool)
	}

	p := &sync.Pool{
		New: func() any {
			enc, err := zstd.NewWriter(nil,
				zstd.WithEncoderLevel(el),
				zstd.WithEncoderCRC(false),
			)
			if err != nil {
				panic(fmt.Sprintf("codec: failed to create zstd encoder: %v", err))
			}

			return enc
		},
	}

	actual, _ := zstdEncoderPools.LoadOrStore(el, p)

	return actual.(*sync.Pool)
}

// ZstdCodec implements algorithm codes 0x03-0x06: Zstandard at fast,
// balanced, high, and max compression tiers, selected by level.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewZstdCodec creates a new Zstd codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}

// Compress compresses data at the given Zstd level (1, 3, 6, 9, 15, 19, or 22).
func (c ZstdCodec) Compress(level int, data []byte) ([]byte, error) {
	el := encoderLevelFor(level)
	pool := encoderPoolFor(el)

	enc := pool.Get().(*zstd.Encoder)
	defer pool.Put(enc)

	return enc.EncodeAll(data, nil), nil
}

// Decompress decompresses Zstd-compressed data. originalLen is used as an
// allocation hint only: Zstd frames are self-describing.
func (c ZstdCodec) Decompress(data []byte, originalLen int) ([]byte, error) {
	if len(data) == 0 {
		if originalLen == 0 {
			return nil, nil
		}

		return nil, fmt.Errorf("codec: empty zstd payload for non-empty block")
	}

	dec := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(dec)

	scratch, release := pool.GetByteSlice(originalLen)
	defer release()

	decoded, err := dec.DecodeAll(data, scratch[:0])
	if err != nil {
		return nil, fmt.Errorf("codec: zstd decompression failed: %w", err)
	}

	// DecodeAll may grow scratch's backing array or return it unchanged;
	// either way scratch is pooled, so the result is copied out before
	// release returns it for reuse by another block.
	out := make([]byte, len(decoded))
	copy(out, decoded)

	return out, nil
}
