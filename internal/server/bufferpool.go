package server

import "sync"

// Read buffers are pooled at the default size. Configs asking for a
// larger buffer fall back to plain allocation and skip the pool.
var bufferPool = sync.Pool{
	New: func() any {
		buf := make([]byte, defaultMaxRequestBytes)
		return &buf
	},
}

// getBuffer returns a buffer of the requested size
func getBuffer(size int) []byte {
	if size > defaultMaxRequestBytes {
		return make([]byte, size)
	}
	buf := bufferPool.Get().(*[]byte)
	return (*buf)[:size]
}

// putBuffer returns a pooled buffer; non-standard sizes go to the GC
func putBuffer(buf []byte) {
	if cap(buf) != defaultMaxRequestBytes {
		return
	}
	full := buf[:defaultMaxRequestBytes]
	bufferPool.Put(&full)
}
