package codec

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Llucs/TurboZip/internal/pool"
	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances for reuse. lz4.Compressor
// maintains an internal hash table that benefits from reuse across calls.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4FastCodec implements algorithm code 0x01: LZ4 in its default, fastest
// mode.
type LZ4FastCodec struct{}

var _ Codec = LZ4FastCodec{}

// NewLZ4FastCodec creates a new LZ4 fast codec.
func NewLZ4FastCodec() LZ4FastCodec {
	return LZ4FastCodec{}
}

// Compress compresses data using LZ4's fast block mode. The level
// parameter is accepted for interface symmetry but unused: fast mode has
// no tunable level.
func (c LZ4FastCodec) Compress(_ int, data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst, release := pool.GetByteSlice(lz4.CompressBlockBound(len(data)))
	defer release()

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		// Incompressible input: lz4 signals this by returning 0 bytes written.
		return nil, errIncompressible
	}

	out := make([]byte, n)
	copy(out, dst[:n])
	return out, nil
}

// Decompress decompresses LZ4 block data, using originalLen as the initial
// destination buffer size (see lz4Uncompress).
func (c LZ4FastCodec) Decompress(data []byte, originalLen int) ([]byte, error) {
	return lz4Uncompress(data, originalLen)
}

// LZ4HCCodec implements algorithm code 0x02: LZ4 high-compression mode.
type LZ4HCCodec struct{}

var _ Codec = LZ4HCCodec{}

// NewLZ4HCCodec creates a new LZ4-HC codec.
func NewLZ4HCCodec() LZ4HCCodec {
	return LZ4HCCodec{}
}

// Compress compresses data using LZ4-HC at the given depth level (1-9).
func (c LZ4HCCodec) Compress(level int, data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst, release := pool.GetByteSlice(lz4.CompressBlockBound(len(data)))
	defer release()

	n, err := lz4.CompressBlockHC(data, dst, lz4.CompressionLevel(level), nil, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, errIncompressible
	}

	out := make([]byte, n)
	copy(out, dst[:n])
	return out, nil
}

// Decompress decompresses LZ4-HC data (the block format is identical to
// fast mode; only the encoder differs).
func (c LZ4HCCodec) Decompress(data []byte, originalLen int) ([]byte, error) {
	return lz4Uncompress(data, originalLen)
}

// errIncompressible signals that lz4 declined to produce a smaller block;
// the pipeline treats this the same as any other codec failure and falls
// back to a stored block.
var errIncompressible = errors.New("codec: lz4 block did not compress")

// lz4Uncompress decompresses an LZ4 block. sizeHint is the caller's best
// known upper bound on the decompressed length (exact for blocks with no
// preprocessing or with length-preserving preprocessing such as delta;
// only an upper bound for RLE-preprocessed blocks, whose decoded length
// is the still-encoded byte stream, not the original block length). When
// the hint proves too small, the destination buffer is doubled and the
// block is decompressed again, mirroring the retry-on-undersized-buffer
// pattern used for unsized inputs.
func lz4Uncompress(data []byte, sizeHint int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	size := sizeHint
	if size <= 0 {
		size = len(data) * 4
	}

	for {
		dst, release := pool.GetByteSlice(size)

		n, err := lz4.UncompressBlock(data, dst)
		if err == nil {
			out := make([]byte, n)
			copy(out, dst[:n])
			release()
			return out, nil
		}
		release()
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, fmt.Errorf("codec: lz4 decompression failed: %w", err)
		}

		size *= 2
	}
}
