package pool

import "sync"

// byteSlicePool pools []byte scratch slices used by the codec adapters as
// compression and decompression destination buffers.
var byteSlicePool = sync.Pool{
	New: func() any { return &[]byte{} },
}

// GetByteSlice retrieves and resizes a []byte from the pool.
//
// The returned slice has length equal to size. If the pooled slice has
// insufficient capacity, a new slice is allocated. The caller must call the
// returned cleanup function (typically via defer) to return the slice to
// the pool.
func GetByteSlice(size int) ([]byte, func()) {
	ptr, _ := byteSlicePool.Get().(*[]byte)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]byte, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { byteSlicePool.Put(ptr) }
}
