// SPDX-License-Identifier: MIT

package zerorun

import "math/bits"

// Encoder is a streaming encoder for the sparse-data run-length format. The
// zero value is a valid, fully-reset encoder. Encoder holds no buffers
// beyond its own fixed-size fields; it performs no allocation.
//
// The field names below follow the reference implementation rather than
// their true roles: outputBits/outputData hold residual bits of the input
// byte under scan, while symbolBits/symbolData hold the bits destined for
// the compressed output.
type Encoder struct {
	symbolBits int
	queuedBits int
	outputBits int

	symbolData uint32
	outputData byte

	queuedDone bool
	queuedMode bool
	symbolTerm bool
	queuedTerm bool
	outputTerm bool
}

// NewEncoder returns an Encoder in its initial state.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Reset returns e to its initial state.
func (e *Encoder) Reset() {
	*e = Encoder{}
}

// SetEndOfInput tells the encoder that no further input bytes will ever
// arrive. It is a one-way signal; there is no way to undo it short of
// Reset.
func (e *Encoder) SetEndOfInput() {
	e.queuedTerm = true
}

// Step advances the encoder, consuming from input and producing into
// output, and returns how many bytes of each were used along with the
// resulting status. Step never blocks: it returns as soon as input or
// output space is exhausted, or the encoder reaches Terminated.
func (e *Encoder) Step(input []byte, output []byte) (consumed, produced int, status Status) {
	for {
		if e.consume(input, &consumed) {
			return consumed, produced, CanConsume
		}

		if e.produce(output, &produced) {
			return consumed, produced, CanProduce
		}

		if e.outputTerm {
			break
		}
	}

	return consumed, produced, Terminated
}

// consume scans input one byte at a time as a single bit stream, extending
// the current run until it flips mode or end-of-input is reached. It
// returns true if more input is needed before it can make progress.
func (e *Encoder) consume(input []byte, consumed *int) bool {
	if e.outputBits == 0 && !e.symbolTerm {
		if *consumed < len(input) {
			e.outputData = input[*consumed]
			e.outputBits = 8
			*consumed++
		} else if !e.queuedTerm {
			return true
		}
	}

	if e.queuedDone {
		return false
	}

	switch {
	case e.outputBits > 0 || e.queuedBits > 0:
		count := leadingRunBits(e.outputData, e.queuedMode)
		if count > e.outputBits {
			count = e.outputBits
		}

		if count == 0 {
			e.queuedMode = !e.queuedMode
			e.queuedDone = true
		} else {
			if count < 8 {
				e.outputData <<= count
			}

			e.outputBits -= count
			e.queuedBits += count
		}

	default:
		e.symbolTerm = true
	}

	return false
}

// leadingRunBits counts the leading bits of data that equal mode's value
// (true for a run of ones, false for a run of zeroes), scanning MSB-first.
func leadingRunBits(data byte, mode bool) int {
	if mode {
		return bits.LeadingZeros8(^data)
	}

	return bits.LeadingZeros8(data)
}

// produce packs the next symbol into the 32-bit symbol window and flushes
// whole bytes to output. It returns true if output space ran out with
// symbol bytes still pending.
func (e *Encoder) produce(output []byte, produced *int) bool {
	if e.symbolBits <= 8 {
		switch {
		case e.symbolTerm && !e.outputTerm:
			e.emitEndOfStream()

		case e.queuedDone:
			e.emitQueuedRun()
		}
	}

	for e.symbolBits >= 8 {
		if *produced >= len(output) {
			return true
		}

		output[*produced] = byte(e.symbolData >> 24)
		e.symbolData <<= 8
		e.symbolBits -= 8
		*produced++
	}

	if e.symbolTerm && e.symbolBits == 0 {
		e.outputTerm = true
	}

	return false
}

// emitEndOfStream packs the 0xFFF end-of-stream long symbol. If the window
// is currently empty it is packed as a plain 24-bit symbol; otherwise the
// whole 32-bit window (including its zero-padded low byte) is counted so
// the subsequent flush loop drains it a byte at a time.
func (e *Encoder) emitEndOfStream() {
	e.symbolData |= uint32(payloadEndOfStream) << (8 - e.symbolBits)

	if e.symbolBits == 0 {
		e.symbolBits = longSymbolBits
	} else {
		e.symbolBits = 32
	}
}

// emitQueuedRun packs a symbol for the completed run in e.queuedMode and
// e.queuedBits, chaining a continuation symbol and recursing (via the
// caller's produce loop) when the run exceeds what one symbol can express.
func (e *Encoder) emitQueuedRun() {
	var cont bool

	// e.queuedMode has already been flipped past the run it describes (see
	// consume): true selects the doubled-width code, false the unary one.
	if e.queuedMode {
		cont = e.emitDoubledRun()
	} else {
		cont = e.emitUnaryRun()
	}

	if !cont {
		e.queuedBits = 0
		e.queuedDone = false
	}
}

// doubledRunCode is one entry of the doubled-width prefix code table: codes
// for lengths in [lo, hi] share a prefix of width prefixBits, followed by a
// payload of payloadBits low-order bits holding length-lo.
type doubledRunCode struct {
	lo, hi      int
	prefix      uint32
	prefixBits  int
	payloadBits int
}

// doubledRunTable is the doubled-width prefix code of spec §4.3, lengths
// 1..8190. Lengths beyond this range use the long-symbol form
// (8191..12283) or a continuation (>=12284), handled outside the table in
// emitDoubledRun.
var doubledRunTable = []doubledRunCode{
	{1, 2, 0b1, 1, 1},
	{3, 6, 0b01, 2, 2},
	{7, 14, 0b001, 3, 3},
	{15, 30, 0b0001, 4, 4},
	{31, 62, 0b00001, 5, 5},
	{63, 126, 0b000001, 6, 6},
	{127, 254, 0b0000001, 7, 7},
	{255, 510, 0b00000001, 8, 8},
	{511, 1022, 0b000000001, 9, 9},
	{1023, 2046, 0b0000000001, 10, 10},
	{2047, 4094, 0b00000000001, 11, 11},
	{4095, 8190, 0b000000000001, 12, 12},
}

// emitDoubledRun packs a symbol for a run of e.queuedBits bits using the
// doubled-width short code. It returns true if a continuation was emitted
// and the caller must recurse.
func (e *Encoder) emitDoubledRun() bool {
	n := e.queuedBits

	if n == 0 {
		e.symbolData |= uint32(payloadNoOp) << (8 - e.symbolBits)
		e.symbolBits += longSymbolBits
		return false
	}

	for _, c := range doubledRunTable {
		if n < c.lo || n > c.hi {
			continue
		}

		code := c.prefix<<c.payloadBits | uint32(n-c.lo)
		width := c.prefixBits + c.payloadBits
		e.symbolData |= code << (32 - width - e.symbolBits)
		e.symbolBits += width
		return false
	}

	if n <= maxDoubledRun {
		e.symbolData |= uint32(n-doubledLongBias) << (8 - e.symbolBits)
		e.symbolBits += longSymbolBits
		return false
	}

	e.symbolData |= uint32(payloadContinuation) << (8 - e.symbolBits)
	e.symbolBits += longSymbolBits
	e.queuedBits -= continuationStepDoubled
	return true
}

// emitUnaryRun packs a symbol for a run of e.queuedBits bits using the
// single-bit unary short code. It returns true if a continuation was
// emitted and the caller must recurse.
func (e *Encoder) emitUnaryRun() bool {
	n := e.queuedBits

	if n == 0 {
		e.symbolData |= uint32(payloadNoOp) << (8 - e.symbolBits)
		e.symbolBits += longSymbolBits
		return false
	}

	if n <= maxUnaryShortRun {
		// Unary prefix 0^(n-1) 1, width n.
		e.symbolData |= uint32(1) << (32 - n - e.symbolBits)
		e.symbolBits += n
		return false
	}

	if n <= maxUnaryRun {
		e.symbolData |= uint32(n-unaryLongBias) << (8 - e.symbolBits)
		e.symbolBits += longSymbolBits
		return false
	}

	e.symbolData |= uint32(payloadContinuation) << (8 - e.symbolBits)
	e.symbolBits += longSymbolBits
	e.queuedBits -= continuationStepUnary
	return true
}
