// SPDX-License-Identifier: MIT

package zerorun

// DecodeSlice decodes input in full into output and returns the number of
// bytes written. It fails if input is truncated, if output is too small, or
// if the encoded data is corrupted or unaligned.
//
// Corrupted takes precedence over Unaligned when a terminated decode
// exhibits both: ErrCorrupted is returned and ErrUnaligned is not.
func DecodeSlice(input []byte, output []byte) (int, error) {
	var d Decoder

	_, produced, state := d.Step(input, output)

	switch state.Status {
	case CanConsume:
		return 0, ErrTruncatedInput
	case CanProduce:
		return 0, ErrNeedsMoreSpace
	default:
		switch {
		case state.Corrupted:
			return 0, ErrCorrupted
		case state.Unaligned:
			return 0, ErrUnaligned
		default:
			return produced, nil
		}
	}
}

// EncodeSlice encodes all of input into output and returns the number of
// bytes written. It fails only if output is too small; a freshly-reset
// Encoder fed its entire input in one Step call, with SetEndOfInput already
// set, never reports CanConsume.
func EncodeSlice(input []byte, output []byte) (int, error) {
	var e Encoder
	e.SetEndOfInput()

	_, produced, status := e.Step(input, output)

	switch status {
	case CanConsume:
		panic("zerorun: encoder given its entire input still reported CanConsume")
	case CanProduce:
		return 0, ErrNeedsMoreSpace
	default:
		return produced, nil
	}
}

// Decode decodes input, growing its returned buffer as needed. Unlike
// DecodeSlice it never fails with ErrNeedsMoreSpace.
func Decode(input []byte) ([]byte, error) {
	output := make([]byte, len(input)*2+64)

	for {
		n, err := DecodeSlice(input, output)
		if err == ErrNeedsMoreSpace {
			output = make([]byte, len(output)*2)
			continue
		}

		if err != nil {
			return nil, err
		}

		return output[:n], nil
	}
}

// Encode encodes input, growing its returned buffer as needed. Unlike
// EncodeSlice it never fails with ErrNeedsMoreSpace.
func Encode(input []byte) []byte {
	output := make([]byte, len(input)/4+64)

	for {
		n, err := EncodeSlice(input, output)
		if err == ErrNeedsMoreSpace {
			output = make([]byte, len(output)*2)
			continue
		}

		return output[:n]
	}
}
