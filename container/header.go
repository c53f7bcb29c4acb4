package container

import (
	"github.com/Llucs/TurboZip/endian"
	"github.com/Llucs/TurboZip/errs"
)

// HeaderSize is the fixed size of the container header in bytes.
const HeaderSize = 48

// Magic is the 4-byte file signature "TZP\3".
var Magic = [4]byte{0x54, 0x5A, 0x50, 0x03}

// Version is the fixed format version: on-disk bytes 01 03, numeric value
// 0x0301.
const Version uint16 = 0x0301

// Global flag bits, section 6.2.
const (
	FlagAnalysisPerformed    uint16 = 1 << 0
	FlagAdaptiveDictionaries uint16 = 1 << 1 // reserved, must be 0
	FlagPreprocessingApplied uint16 = 1 << 2
	FlagMultiPassUsed        uint16 = 1 << 3
	FlagAdaptiveBlockSizing  uint16 = 1 << 4
	FlagPatternOptimization  uint16 = 1 << 5
)

// Header is the fixed 48-byte header at the start of every container file.
type Header struct {
	// Flags holds the global flags of section 6.2.
	Flags uint16 // byte offset 6-7

	// OriginalLen is the total length of the original input, in bytes.
	OriginalLen uint64 // byte offset 8-15

	// BlockCount is the number of entries in the block index.
	BlockCount uint32 // byte offset 16-19

	// BaseBlockSize is the base block size chosen by the planner.
	BaseBlockSize uint32 // byte offset 20-23

	// GlobalHash is the first 8 bytes of SHA-256(original input).
	GlobalHash [8]byte // byte offset 24-31

	// MetadataLen is the length in bytes of the metadata section that
	// immediately follows the header.
	MetadataLen uint32 // byte offset 32-35
}

var endianEngine = endian.GetLittleEndianEngine()

// Bytes serializes the header into a 48-byte slice. Bytes 36-47 (reserved)
// are always zero-filled.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	copy(b[0:4], Magic[:])
	endianEngine.PutUint16(b[4:6], Version)
	endianEngine.PutUint16(b[6:8], h.Flags)
	endianEngine.PutUint64(b[8:16], h.OriginalLen)
	endianEngine.PutUint32(b[16:20], h.BlockCount)
	endianEngine.PutUint32(b[20:24], h.BaseBlockSize)
	copy(b[24:32], h.GlobalHash[:])
	endianEngine.PutUint32(b[32:36], h.MetadataLen)
	// b[36:48] left zero: reserved.

	return b
}

// ParseHeader parses a Header from exactly HeaderSize bytes, validating
// the magic and version.
func ParseHeader(data []byte) (Header, error) {
	if len(data) != HeaderSize {
		return Header{}, errs.ErrUnsupportedFormat
	}

	if data[0] != Magic[0] || data[1] != Magic[1] || data[2] != Magic[2] || data[3] != Magic[3] {
		return Header{}, errs.ErrUnsupportedFormat
	}

	version := endianEngine.Uint16(data[4:6])
	if version != Version {
		return Header{}, errs.ErrUnsupportedFormat
	}

	var h Header
	h.Flags = endianEngine.Uint16(data[6:8])
	h.OriginalLen = endianEngine.Uint64(data[8:16])
	h.BlockCount = endianEngine.Uint32(data[16:20])
	h.BaseBlockSize = endianEngine.Uint32(data[20:24])
	copy(h.GlobalHash[:], data[24:32])
	h.MetadataLen = endianEngine.Uint32(data[32:36])

	return h, nil
}
