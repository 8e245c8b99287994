package cbor

import (
	"errors"
	"fmt"
)

// ErrPrematureEOF is returned when the buffer ends before a major-type tag,
// an argument extension, or a declared payload could be read in full.
var ErrPrematureEOF = errors.New("cbor: premature end of input")

// ErrMalformedUTF8 is returned by [DecodeString] when a text-string payload
// is not valid UTF-8.
var ErrMalformedUTF8 = errors.New("cbor: text string is not valid UTF-8")

// ErrIntegerOverflow is returned by [DecodeInt] when the decoded value does
// not fit in an int64.
var ErrIntegerOverflow = errors.New("cbor: integer overflows int64")

// An InvalidMajorArgError reports a head field this package cannot decode:
// either a reserved additional-information value (28, 29, or 30), or, from
// [DecodeBytes] and [DecodeString], a major-type tag other than the one the
// decoder requires. In the latter case Arg holds the raw 3-bit tag.
type InvalidMajorArgError struct {
	Arg byte
}

func (e *InvalidMajorArgError) Error() string {
	return fmt.Sprintf("cbor: invalid major argument %d", e.Arg)
}

// An IncorrectTypeError reports that the major-type tag at the front of the
// buffer did not match what the calling decoder expected.
type IncorrectTypeError struct {
	MajorType MajorType
}

func (e *IncorrectTypeError) Error() string {
	return fmt.Sprintf("cbor: unexpected major type %d", e.MajorType)
}
