// SPDX-License-Identifier: MIT

package zerorun

import "sync"

// bufferPool hands out scratch []byte buffers of a fixed capacity to Reader
// and Writer. Each NewReader and NewWriter call creates its own bufferPool,
// so buffers are not shared between streams.
type bufferPool struct {
	pool sync.Pool
	size int
}

func newBufferPool(size int) *bufferPool {
	bp := &bufferPool{size: size}
	bp.pool.New = func() any {
		buf := make([]byte, size)
		return &buf
	}

	return bp
}

func (bp *bufferPool) get() []byte {
	buf := bp.pool.Get().(*[]byte)
	if cap(*buf) < bp.size {
		*buf = make([]byte, bp.size)
	}

	return (*buf)[:bp.size]
}

func (bp *bufferPool) put(buf []byte) {
	bp.pool.Put(&buf)
}
