// Package container implements the on-disk file layout: the fixed 48-byte
// header, the JSON metadata section, and the fixed-stride block index.
// All multi-byte integers are little-endian, via the endian package.
package container
