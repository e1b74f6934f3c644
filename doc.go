// SPDX-License-Identifier: MIT

/*
Package zerorun implements a streaming, bit-oriented run-length codec for
sparse binary data: payloads dominated by long runs of a single bit value,
such as sparse-file contents, allocation bitmaps, or zero-padded firmware
images.

The wire format is a big-endian, MSB-first bit stream of variable-length
symbols, each encoding either a run length (relative to the run's mode:
all-zero or all-one bits), a continuation that chains two same-mode runs
together, or the end-of-stream marker. There is no framing header, no length
prefix and no checksum.

Decoder and Encoder are step-driven state machines: the caller presents
input and output byte buffers and repeatedly calls Step until the codec
reports it is starved for input or output space, or has reached its
terminal state. Neither type allocates or blocks.

# One-shot helpers

For callers that just want a slice in, a slice out:

	compressed := zerorun.Encode(data)
	decoded, err := zerorun.Decode(compressed)

# Streaming

For callers that want to encode or decode a byte stream incrementally
without materializing the whole payload:

	r := zerorun.NewReader(compressedSource, nil)
	n, err := io.Copy(dst, r)

	w := zerorun.NewWriter(compressedSink, nil)
	_, err = io.Copy(w, src)
	err = w.Close()
*/
package zerorun
