package buffer

import (
	"io"
)

// copies data from src to dst using a pooled buffer
func Copy(dst io.Writer, src io.Reader) (int64, error) {
	bufp := copyPool.Get().(*[]byte)
	defer copyPool.Put(bufp)
	buf := *bufp

	return io.CopyBuffer(dst, src, buf)
}
