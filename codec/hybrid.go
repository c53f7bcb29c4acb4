package codec

// PackHybridLevel packs an LZ4-HC depth and a Zstd level index into the
// single Level byte carried by a hybrid block's index entry, per section
// 6.3: "for hybrid, the high nibble holds the LZ4-HC level and the low
// nibble holds a Zstd-level index (0->15, 1->19, 2->22)".
func PackHybridLevel(lz4Level int, zstdLevelIndex int) int {
	return (lz4Level&0x0F)<<4 | (zstdLevelIndex & 0x0F)
}

// UnpackHybridLevel reverses PackHybridLevel.
func UnpackHybridLevel(level int) (lz4Level int, zstdLevelIndex int) {
	return (level >> 4) & 0x0F, level & 0x0F
}

// hybridZstdLevels maps a Zstd-level index (as packed in the low nibble)
// back to the actual Zstd level.
var hybridZstdLevels = [3]int{15, 19, 22}

func zstdLevelFromIndex(idx int) int {
	if idx < 0 || idx >= len(hybridZstdLevels) {
		return 19
	}

	return hybridZstdLevels[idx]
}

// HybridCodec implements algorithm code 0x07: a two-stage pipeline that
// applies LZ4-HC first, then Zstd to the LZ4-HC output.
//
// Decompression only needs the final original length: the inner LZ4 stage
// is decompressed last, using that same length, because Zstd frames
// self-describe their own output length.
type HybridCodec struct {
	lz4 LZ4HCCodec
	zst ZstdCodec
}

var _ Codec = HybridCodec{}

// NewHybridCodec creates a new hybrid codec.
func NewHybridCodec() HybridCodec {
	return HybridCodec{lz4: NewLZ4HCCodec(), zst: NewZstdCodec()}
}

// Compress applies LZ4-HC then Zstd. level is the packed byte produced by
// PackHybridLevel.
func (c HybridCodec) Compress(level int, data []byte) ([]byte, error) {
	lz4Level, zstdIdx := UnpackHybridLevel(level)

	stage1, err := c.lz4.Compress(lz4Level, data)
	if err != nil {
		return nil, err
	}

	stage2, err := c.zst.Compress(zstdLevelFromIndex(zstdIdx), stage1)
	if err != nil {
		return nil, err
	}

	return stage2, nil
}

// Decompress reverses the hybrid pipeline: Zstd first (self-describing),
// then LZ4 using the known final original length.
func (c HybridCodec) Decompress(data []byte, originalLen int) ([]byte, error) {
	stage1, err := c.zst.Decompress(data, 0)
	if err != nil {
		return nil, err
	}

	return c.lz4.Decompress(stage1, originalLen)
}
