package buffer

import (
	"bytes"
	"sync"
)

// Buffers larger than this are not returned to the pool.
const maxPooled = 8 * 1024 * 1024

var scratchPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 64*1024)
		return &b
	},
}

var copyPool = sync.Pool{
	New: func() any {
		b := make([]byte, 32*1024)
		return &b
	},
}

var bytesPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

// Get returns a pooled slice of length n. Contents are not zeroed.
func Get(n int) *[]byte {
	bp := scratchPool.Get().(*[]byte)
	if cap(*bp) < n {
		*bp = make([]byte, n)
	}
	*bp = (*bp)[:n]
	return bp
}

func Put(bp *[]byte) {
	if cap(*bp) > maxPooled {
		return
	}
	*bp = (*bp)[:0]
	scratchPool.Put(bp)
}

// GetBuffer returns an empty pooled bytes.Buffer.
func GetBuffer() *bytes.Buffer {
	b := bytesPool.Get().(*bytes.Buffer)
	b.Reset()
	return b
}

func PutBuffer(b *bytes.Buffer) {
	if b.Cap() > maxPooled {
		return
	}
	bytesPool.Put(b)
}
