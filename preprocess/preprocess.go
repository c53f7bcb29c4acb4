// Package preprocess implements the reversible byte-level transforms
// applied to a block before it reaches a codec: delta encoding over 4-byte
// little-endian integers, and byte-wise run-length encoding.
//
// Both transforms are pure, allocation-bounded functions: forward produces
// a new slice from the input, inverse reconstructs the original bytes
// exactly. Neither transform retains state across calls.
package preprocess

// Preprocessor is a reversible byte-level transform.
type Preprocessor interface {
	// Forward applies the transform to data, returning a new slice.
	Forward(data []byte) []byte

	// Inverse reverses Forward, returning a new slice equal to the
	// original input. It returns an error if data is not well-formed
	// output of Forward (used defensively; a correctly-written pipeline
	// never feeds it anything else).
	Inverse(data []byte) ([]byte, error)
}
