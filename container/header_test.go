package container

import (
	"testing"

	"github.com/Llucs/TurboZip/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeader_RoundTrip(t *testing.T) {
	h := Header{
		Flags:         FlagAnalysisPerformed | FlagAdaptiveBlockSizing,
		OriginalLen:   123456789,
		BlockCount:    42,
		BaseBlockSize: 1 << 20,
		GlobalHash:    [8]byte{1, 2, 3, 4, 5, 6, 7, 8},
		MetadataLen:   256,
	}

	b := h.Bytes()
	require.Len(t, b, HeaderSize)

	got, err := ParseHeader(b)
	require.NoError(t, err)
	assert.Equal(t, h, got)
}

func TestHeader_MagicAndVersionBytes(t *testing.T) {
	h := Header{}
	b := h.Bytes()

	assert.Equal(t, []byte{0x54, 0x5A, 0x50, 0x03}, b[0:4])
	assert.Equal(t, []byte{0x01, 0x03}, b[4:6])
}

func TestHeader_ReservedBytesZero(t *testing.T) {
	h := Header{OriginalLen: 1, BlockCount: 1, BaseBlockSize: 1}
	b := h.Bytes()

	for i := 36; i < 48; i++ {
		assert.Equal(t, byte(0), b[i], "reserved byte %d must be zero", i)
	}
}

func TestParseHeader_WrongSize(t *testing.T) {
	_, err := ParseHeader(make([]byte, 10))
	assert.ErrorIs(t, err, errs.ErrUnsupportedFormat)
}

func TestParseHeader_BadMagic(t *testing.T) {
	h := Header{}
	b := h.Bytes()
	b[0] = 0x00

	_, err := ParseHeader(b)
	assert.ErrorIs(t, err, errs.ErrUnsupportedFormat)
}

func TestParseHeader_BadVersion(t *testing.T) {
	h := Header{}
	b := h.Bytes()
	b[4] = 0xFF

	_, err := ParseHeader(b)
	assert.ErrorIs(t, err, errs.ErrUnsupportedFormat)
}
