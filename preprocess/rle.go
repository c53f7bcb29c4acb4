package preprocess

import "fmt"

// maxRunLength is the largest run a single RLE pair can represent; longer
// runs are split across multiple pairs.
const maxRunLength = 255

// RLE implements byte-wise run-length encoding: the input is split into
// maximal runs of a repeated byte, each run emitted as a (count, value)
// pair with count capped at maxRunLength.
type RLE struct{}

var _ Preprocessor = RLE{}

// NewRLE creates a new run-length preprocessor.
func NewRLE() RLE {
	return RLE{}
}

// Forward encodes data as a sequence of (count, value) pairs.
func (RLE) Forward(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}

	out := make([]byte, 0, len(data)*2)

	i := 0
	for i < len(data) {
		value := data[i]
		run := 1
		for i+run < len(data) && data[i+run] == value && run < maxRunLength {
			run++
		}

		out = append(out, byte(run), value)
		i += run
	}

	return out
}

// Inverse decodes a sequence of (count, value) pairs back into the
// original bytes. The total decoded length is implicit: it is simply the
// sum of the run counts, so no separate length needs to be stored.
func (RLE) Inverse(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("preprocess: malformed rle stream, odd length %d", len(data))
	}

	total := 0
	for i := 0; i < len(data); i += 2 {
		total += int(data[i])
	}

	out := make([]byte, 0, total)
	for i := 0; i < len(data); i += 2 {
		count, value := data[i], data[i+1]
		for c := byte(0); c < count; c++ {
			out = append(out, value)
		}
	}

	return out, nil
}
