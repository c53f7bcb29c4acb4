// Package endian provides byte order utilities for binary encoding and
// decoding.
//
// It extends the standard encoding/binary package by combining the
// ByteOrder and AppendByteOrder interfaces into a single EndianEngine
// interface, so header and index serialization code can take one value
// and get both the Put/Uint family and the allocation-free Append family.
//
// # Basic usage
//
// The container format is fixed little-endian (section 6.1), so callers
// use GetLittleEndianEngine():
//
//	engine := endian.GetLittleEndianEngine()
//	engine.PutUint32(buf, value)
//	buf = engine.AppendUint64(buf, value)
//
// # Performance
//
// Using EndianEngine's AppendUint64/AppendUint32 avoids the extra
// allocate-then-copy of PutUint64 into a temporary buffer followed by
// append:
//
//	// Using EndianEngine (recommended)
//	buf = engine.AppendUint64(buf, value)
//
//	// Using ByteOrder only
//	tmp := make([]byte, 8)
//	engine.PutUint64(tmp, value)
//	buf = append(buf, tmp...)  // extra allocation
//
// # Thread safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single interface for convenient byte order
// operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian
// from the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine, the byte order
// fixed by the container format's header and index layout.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
