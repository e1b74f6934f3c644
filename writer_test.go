// SPDX-License-Identifier: MIT

package zerorun

import (
	"bytes"
	"io"
	"testing"
)

func TestWriterRoundTrip(t *testing.T) {
	for _, v := range roundTripVectors {
		t.Run(v.name, func(t *testing.T) {
			var buf bytes.Buffer

			w := NewWriter(&buf, nil)
			if _, err := w.Write(v.decoded); err != nil {
				t.Fatalf("Write: %v", err)
			}

			if err := w.Close(); err != nil {
				t.Fatalf("Close: %v", err)
			}

			if !bytes.Equal(buf.Bytes(), v.encoded) {
				t.Fatalf("got %v, want %v", buf.Bytes(), v.encoded)
			}
		})
	}
}

// TestWriterSmallBufferSize forces the internal scratch buffer far below
// the input length, exercising repeated flush cycles mid-Write.
func TestWriterSmallBufferSize(t *testing.T) {
	input := bytes.Repeat([]byte{0x00, 0xFF, 0x00, 0x00}, 2048)

	var buf bytes.Buffer
	w := NewWriter(&buf, &WriterOptions{BufferSize: 4})

	if _, err := w.Write(input); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	decoded, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if !bytes.Equal(decoded, input) {
		t.Fatalf("round trip mismatch with small buffer size")
	}
}

// TestWriterChunkedWrites checks that splitting one logical payload across
// many small Write calls produces the same canonical encoding as a single
// Write of the whole payload.
func TestWriterChunkedWrites(t *testing.T) {
	input := bytes.Repeat([]byte{0xAA, 0x00, 0xFF, 0x0F}, 513)

	var whole bytes.Buffer
	wWhole := NewWriter(&whole, nil)
	if _, err := wWhole.Write(input); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := wWhole.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	var chunked bytes.Buffer
	wChunked := NewWriter(&chunked, nil)
	for i := 0; i < len(input); i += 3 {
		end := min(i+3, len(input))
		if _, err := wChunked.Write(input[i:end]); err != nil {
			t.Fatalf("Write chunk: %v", err)
		}
	}
	if err := wChunked.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if !bytes.Equal(whole.Bytes(), chunked.Bytes()) {
		t.Fatalf("chunked write diverged from whole write")
	}
}

func TestWriterWriteAfterClose(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, nil)

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if _, err := w.Write([]byte{0x01}); err != ErrWriterClosed {
		t.Fatalf("got %v, want ErrWriterClosed", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v, want nil", err)
	}
}

// TestWriterReaderPipe round-trips a Writer's output through a Reader via
// io.Copy, exercising both streaming types together.
func TestWriterReaderPipe(t *testing.T) {
	input := bytes.Repeat([]byte{0x00, 0x00, 0xFF, 0x00, 0xFF, 0xFF}, 4000)

	var encoded bytes.Buffer
	w := NewWriter(&encoded, nil)
	if _, err := w.Write(input); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r := NewReader(&encoded, nil)

	var decoded bytes.Buffer
	if _, err := io.Copy(&decoded, r); err != nil {
		t.Fatalf("io.Copy: %v", err)
	}

	if !bytes.Equal(decoded.Bytes(), input) {
		t.Fatalf("pipe round trip mismatch")
	}
}
