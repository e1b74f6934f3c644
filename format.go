// SPDX-License-Identifier: MIT

package zerorun

// Wire format constants: long-symbol payloads, prefix length bounds and the
// run-length bias applied to long-symbol payloads per table shape.
//
// The codec has two short-code shapes, selected by the bit that flips with
// each symbol (symbolMode on the decode side, queuedMode on the encode
// side): a single-bit unary code (0^(k-1) 1, widths 1..12) and a doubled,
// two-field code (prefix 0^p 1 followed by p+1 payload bits, widths 2..24).
// Each shape has its own long-symbol bias and continuation threshold; which
// shape applies to a zero-run versus a one-run is a property of the wire
// format, not of the table names below.

const (
	// longSymbolPrefixThreshold is the leading-zero-bit count (of the
	// 32-bit symbol window) at or above which a symbol is a fixed 24-bit
	// long symbol rather than a short prefix-coded one.
	longSymbolPrefixThreshold = 12

	// longSymbolBits is the fixed width of a long symbol.
	longSymbolBits = 24

	// maxUnaryShortRun is the largest run length the unary short code
	// (0^(k-1) 1, k in [1,12]) can express directly.
	maxUnaryShortRun = 12

	// Reserved 12-bit long-symbol payloads.
	payloadEndOfStream  = 0xFFF // sets symbol_term, emits no run
	payloadNoOp         = 0xFFE // explicit empty run, emits no run
	payloadContinuation = 0xFFD // joins two same-shape runs, carries continuationStep* bits of the run

	// maxLongPayload is the largest payload value that still encodes a
	// real run length (payloadContinuation - 1).
	maxLongPayload = payloadContinuation - 1

	// unaryLongBias/doubledLongBias is the value added to a long symbol's
	// payload to recover the run length, for the unary and doubled short
	// code shapes respectively.
	unaryLongBias   = 13
	doubledLongBias = 8191

	// maxUnaryRun/maxDoubledRun is the largest run length a single
	// non-continuation symbol can express in each shape; longer runs are
	// chained with a continuation symbol.
	maxUnaryRun   = maxLongPayload + unaryLongBias   // 4105
	maxDoubledRun = maxLongPayload + doubledLongBias // 12283

	// continuationStepUnary/Doubled is how much a continuation symbol's
	// chained run subtracts from the queued run length before the
	// remainder loops back through symbol emission in the same shape.
	continuationStepUnary   = maxUnaryRun + 1   // 4106
	continuationStepDoubled = maxDoubledRun + 1 // 12284
)
