// SPDX-License-Identifier: MIT

package zerorun

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestReaderRoundTrip(t *testing.T) {
	for _, v := range roundTripVectors {
		t.Run(v.name, func(t *testing.T) {
			r := NewReader(bytes.NewReader(v.encoded), nil)

			got, err := io.ReadAll(r)
			if err != nil {
				t.Fatalf("ReadAll: %v", err)
			}

			if !bytes.Equal(got, v.decoded) {
				t.Fatalf("got %v, want %v", got, v.decoded)
			}
		})
	}
}

// TestReaderSmallBufferSize forces the internal scratch buffer far below
// the encoded stream length, exercising repeated refill calls.
func TestReaderSmallBufferSize(t *testing.T) {
	input := bytes.Repeat([]byte{0x00, 0xFF, 0x00, 0x00}, 2048)
	encoded := Encode(input)

	r := NewReader(bytes.NewReader(encoded), &ReaderOptions{BufferSize: 4})

	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}

	if !bytes.Equal(got, input) {
		t.Fatalf("round trip mismatch with small buffer size")
	}
}

// TestReaderSmallOutputBuffer forces Read to be called with a destination
// slice much smaller than one symbol's worth of decoded output.
func TestReaderSmallOutputBuffer(t *testing.T) {
	input := bytes.Repeat([]byte{0x00}, 4096)
	encoded := Encode(input)

	r := NewReader(bytes.NewReader(encoded), nil)

	var got bytes.Buffer
	buf := make([]byte, 1)

	for {
		n, err := r.Read(buf)
		got.Write(buf[:n])

		if err == io.EOF {
			break
		}

		if err != nil {
			t.Fatalf("Read: %v", err)
		}
	}

	if !bytes.Equal(got.Bytes(), input) {
		t.Fatalf("round trip mismatch with 1-byte reads")
	}
}

func TestReaderTruncatedInput(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0b00111000}), nil)

	_, err := io.ReadAll(r)
	if err != ErrTruncatedInput {
		t.Fatalf("got %v, want ErrTruncatedInput", err)
	}
}

func TestReaderUnaligned(t *testing.T) {
	encoded := []byte{0b00100101, 0b00000000, 0b00001111, 0b11111111}
	r := NewReader(bytes.NewReader(encoded), nil)

	_, err := io.ReadAll(r)
	if !errors.Is(err, ErrUnaligned) || !errors.Is(err, io.EOF) {
		t.Fatalf("got %v, want ErrUnaligned wrapping io.EOF", err)
	}

	if _, _, ok := r.TrailingBits(); !ok {
		t.Fatalf("TrailingBits ok = false, want true")
	}
}

func TestReaderCorrupted(t *testing.T) {
	encoded := []byte{0b00100100, 0b00000000, 0b00111111, 0b11111111}
	r := NewReader(bytes.NewReader(encoded), nil)

	_, err := io.ReadAll(r)
	if !errors.Is(err, ErrCorrupted) || !errors.Is(err, io.EOF) {
		t.Fatalf("got %v, want ErrCorrupted wrapping io.EOF", err)
	}
}
