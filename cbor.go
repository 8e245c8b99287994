// Package cbor implements a decode-only subset of the Concise Binary Object
// Representation, RFC 8949.
//
// The supported major types are unsigned integers, negative integers, byte
// strings, text strings, and definite-length arrays. Maps, tags, simple
// values, floats, and indefinite-length items are out of scope and are
// rejected by the type checks of the individual decoders.
//
// Every decoder takes a [Buffer] and, on success, returns the decoded value
// together with the unconsumed remainder of the buffer. Remainders chain:
// the remainder of one decode is the input of the next.
//
//	buf := cbor.NewBuffer(data)
//	n, buf, err := cbor.DecodeInt(buf)
//	s, buf, err := cbor.DecodeString(buf)
//
// Negative integers do not follow the RFC 8949 value mapping. The stored
// argument n decodes to 1 - n rather than -(n + 1); the quirk is kept for
// compatibility with existing callers. See [DecodeInt].
package cbor

// MajorType is the 3-bit category tag at the start of a CBOR data item,
// per RFC 8949 section 3.1.
type MajorType byte

// Major types recognized by this package. Types 5 (map), 6 (tag), and
// 7 (simple/float) are never matched by any decoder here.
const (
	MajorUnsignedInt MajorType = 0
	MajorNegativeInt MajorType = 1
	MajorByteString  MajorType = 2
	MajorTextString  MajorType = 3
	MajorArray       MajorType = 4
)

// Field widths of the head of a data item.
const (
	majorTypeBits = 3
	argumentBits  = 5
)

// Additional-information values (low 5 bits of the head).
const (
	maxLiteralArg uint64 = 23 // 0..23 encode the argument directly
	oneByteArg    uint64 = 24
	twoByteArg    uint64 = 25
	fourByteArg   uint64 = 26
	eightByteArg  uint64 = 27
	indefiniteArg uint64 = 31 // indefinite length, unsupported
)
