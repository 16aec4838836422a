package minon

import (
	"bytes"
	"sync"
)

// bytesBufPool reuses buffers when decoding from streams. This reduces
// GC pressure by avoiding a fresh allocation per ReadFrom call. We pool
// *bytes.Buffer because they are easily reset and resized.
var bytesBufPool = sync.Pool{
	New: func() any {
		// A 4KB default avoids re-allocations for common record sizes.
		return bytes.NewBuffer(make([]byte, 0, 4096))
	},
}
