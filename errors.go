// SPDX-License-Identifier: MIT

package zerorun

import "errors"

// Sentinel errors surfaced by the slice and streaming helpers.
var (
	// ErrTruncatedInput is returned when decoding ran out of symbol bits
	// before reaching the end-of-stream marker.
	ErrTruncatedInput = errors.New("zerorun: truncated input")
	// ErrNeedsMoreSpace is returned when the destination buffer was too
	// small to hold the result.
	ErrNeedsMoreSpace = errors.New("zerorun: needs more output space")
	// ErrCorrupted is returned when bits trailing the end-of-stream marker
	// were nonzero.
	ErrCorrupted = errors.New("zerorun: corrupted trailing bits")
	// ErrUnaligned is returned when the decoded payload did not end on a
	// byte boundary.
	ErrUnaligned = errors.New("zerorun: unaligned payload")
	// ErrConsistency is returned when an internal invariant of the step
	// state machines is violated (e.g. Writer.Write still has input to hand
	// the encoder but the encoder reports Terminated).
	ErrConsistency = errors.New("zerorun: internal consistency check failed")
	// ErrWriterClosed is returned by Writer.Write after Close has been
	// called.
	ErrWriterClosed = errors.New("zerorun: write to closed writer")
)
