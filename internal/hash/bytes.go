// Package hash provides the single xxHash64 entry point shared by every
// package that needs a fast, non-cryptographic digest of a byte window
// (sliding-window pattern detection, cache keys, and similar internal
// bookkeeping).
package hash

import "github.com/cespare/xxhash/v2"

// Bytes computes the xxHash64 of the given byte slice.
func Bytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}
