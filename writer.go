// SPDX-License-Identifier: MIT

package zerorun

import "io"

// Writer encodes bytes written to it and streams the result to an
// underlying io.Writer. It implements io.WriteCloser; Close must be called
// to flush the end-of-stream marker, after which further Write calls fail
// with ErrWriterClosed.
type Writer struct {
	w       io.Writer
	enc     Encoder
	pool    *bufferPool
	scratch []byte
	closed  bool
}

// NewWriter returns a Writer that streams encoded data to w. A nil opts is
// equivalent to DefaultWriterOptions().
func NewWriter(w io.Writer, opts *WriterOptions) *Writer {
	if opts == nil {
		opts = DefaultWriterOptions()
	}

	size := opts.BufferSize
	if size == 0 {
		size = defaultBufferSize
	}

	pool := newBufferPool(size)

	return &Writer{
		w:       w,
		pool:    pool,
		scratch: pool.get(),
	}
}

// Write encodes p and writes the result to the underlying writer. It
// returns len(p), nil on success, matching io.Writer's contract that a
// short write is always accompanied by a non-nil error.
func (z *Writer) Write(p []byte) (int, error) {
	if z.closed {
		return 0, ErrWriterClosed
	}

	consumed := 0

	for consumed < len(p) {
		c, n, status := z.enc.Step(p[consumed:], z.scratch)
		consumed += c

		if n > 0 {
			if _, err := z.w.Write(z.scratch[:n]); err != nil {
				return consumed, err
			}
		}

		switch status {
		case CanConsume:
			// Encoder drained everything it was handed; loop condition
			// will exit once consumed reaches len(p).
		case CanProduce:
			// scratch was full; loop back around and flush more.
		case Terminated:
			return consumed, ErrConsistency
		}
	}

	return consumed, nil
}

// Close signals end of input, flushes the trailing end-of-stream marker and
// any buffered bytes to the underlying writer, and marks the Writer
// closed. It does not close the underlying io.Writer.
func (z *Writer) Close() error {
	if z.closed {
		return nil
	}

	z.closed = true
	z.enc.SetEndOfInput()

	for {
		_, n, status := z.enc.Step(nil, z.scratch)

		if n > 0 {
			if _, err := z.w.Write(z.scratch[:n]); err != nil {
				return err
			}
		}

		if status == Terminated {
			z.pool.put(z.scratch)
			return nil
		}
	}
}
