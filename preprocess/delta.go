package preprocess

import "encoding/binary"

// Delta implements delta encoding over 4-byte little-endian integers: each
// 4-byte word is replaced by its difference from the previous word
// (two's-complement wraparound, so the transform is exactly reversible
// regardless of sign). A trailing remainder of 1-3 bytes, if the block
// length is not a multiple of 4, passes through unchanged.
type Delta struct{}

var _ Preprocessor = Delta{}

// NewDelta creates a new delta preprocessor.
func NewDelta() Delta {
	return Delta{}
}

// Forward replaces each 4-byte little-endian word with its delta from the
// previous word (the first word is emitted as-is).
func (Delta) Forward(data []byte) []byte {
	n := len(data)
	words := n / 4
	out := make([]byte, n)

	var prev uint32
	for i := 0; i < words; i++ {
		off := i * 4
		cur := binary.LittleEndian.Uint32(data[off : off+4])

		var delta uint32
		if i == 0 {
			delta = cur
		} else {
			delta = cur - prev
		}

		binary.LittleEndian.PutUint32(out[off:off+4], delta)
		prev = cur
	}

	copy(out[words*4:], data[words*4:])

	return out
}

// Inverse reconstructs the original words by accumulating deltas.
func (Delta) Inverse(data []byte) ([]byte, error) {
	n := len(data)
	words := n / 4
	out := make([]byte, n)

	var prev uint32
	for i := 0; i < words; i++ {
		off := i * 4
		delta := binary.LittleEndian.Uint32(data[off : off+4])

		var cur uint32
		if i == 0 {
			cur = delta
		} else {
			cur = prev + delta
		}

		binary.LittleEndian.PutUint32(out[off:off+4], cur)
		prev = cur
	}

	copy(out[words*4:], data[words*4:])

	return out, nil
}
