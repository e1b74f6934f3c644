// SPDX-License-Identifier: MIT

package zerorun

import (
	"fmt"
	"io"
)

// Reader decodes a zerorun stream read incrementally from an underlying
// io.Reader. It implements io.Reader.
type Reader struct {
	r       io.Reader
	dec     Decoder
	pool    *bufferPool
	pending []byte // unconsumed encoded bytes read from r
	off     int    // read offset into pending
	err     error  // sticky error, once the stream has ended or faulted
}

// NewReader returns a Reader that decodes data read from r. A nil opts is
// equivalent to DefaultReaderOptions().
func NewReader(r io.Reader, opts *ReaderOptions) *Reader {
	if opts == nil {
		opts = DefaultReaderOptions()
	}

	size := opts.BufferSize
	if size == 0 {
		size = defaultBufferSize
	}

	return &Reader{
		r:    r,
		pool: newBufferPool(size),
	}
}

// Read implements io.Reader. It returns io.EOF once the end-of-stream
// marker has been decoded and all produced bytes have been returned; if the
// stream terminated abnormally it returns ErrCorrupted or ErrUnaligned,
// wrapping io.EOF so errors.Is(err, io.EOF) still holds.
func (z *Reader) Read(p []byte) (int, error) {
	if z.err != nil {
		return 0, z.err
	}

	if len(p) == 0 {
		return 0, nil
	}

	produced := 0

	for produced == 0 {
		consumed, n, state := z.dec.Step(z.pending[z.off:], p)
		z.off += consumed
		produced += n

		switch state.Status {
		case CanProduce:
			// p is full; return what we have.
			return produced, nil

		case CanConsume:
			if err := z.refill(); err != nil {
				z.err = err
				if produced > 0 {
					return produced, nil
				}

				return 0, err
			}

		case Terminated:
			switch {
			case state.Corrupted:
				z.err = fmt.Errorf("%w: %w", ErrCorrupted, io.EOF)
			case state.Unaligned:
				z.err = fmt.Errorf("%w: %w", ErrUnaligned, io.EOF)
			default:
				z.err = io.EOF
			}

			if produced > 0 {
				return produced, nil
			}

			return 0, z.err
		}
	}

	return produced, nil
}

// refill pulls more encoded bytes from the underlying reader into a fresh
// pool buffer. It is only called once the decoder needs more input, so an
// io.EOF from the underlying reader with no bytes read means the stream
// ended before its end-of-stream marker and is reported as ErrTruncatedInput.
func (z *Reader) refill() error {
	buf := z.pool.get()

	n, err := z.r.Read(buf)
	if n == 0 {
		if err == io.EOF {
			z.pending = nil
			z.off = 0
			return ErrTruncatedInput
		}

		if err != nil {
			return err
		}
	}

	z.pending = buf[:n]
	z.off = 0
	return nil
}

// TrailingBits returns the last partial output byte (right-aligned) and its
// valid bit count, once Read has returned io.EOF and the stream's payload
// did not end on a byte boundary. It returns ok=false otherwise, including
// when the stream ended byte-aligned.
func (z *Reader) TrailingBits() (data byte, bits int, ok bool) {
	return z.dec.PartialOutputByte()
}
