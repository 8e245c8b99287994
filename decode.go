package cbor

import (
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// decodeArg parses the 5-bit additional-information field and, for values
// 24..27, the 1/2/4/8 big-endian extension bytes holding the argument.
// Reserved values 28..30 fail with *InvalidMajorArgError carrying the raw
// field. Value 31 (indefinite length) is unsupported and falls out as
// ErrPrematureEOF, the same as truncated input.
func decodeArg(buf Buffer) (uint64, Buffer, error) {
	arg, rest, err := buf.readBits(argumentBits)
	if err != nil {
		return 0, buf, err
	}
	switch {
	case arg <= maxLiteralArg:
		return arg, rest, nil
	case arg <= eightByteArg:
		p, rest, err := rest.readBytes(1 << (arg - oneByteArg))
		if err != nil {
			return 0, buf, err
		}
		return beUint(p), rest, nil
	case arg < indefiniteArg:
		return 0, buf, &InvalidMajorArgError{Arg: byte(arg)}
	default:
		return 0, buf, ErrPrematureEOF
	}
}

func beUint(p []byte) uint64 {
	switch len(p) {
	case 1:
		return uint64(p[0])
	case 2:
		return uint64(binary.BigEndian.Uint16(p))
	case 4:
		return uint64(binary.BigEndian.Uint32(p))
	default:
		return binary.BigEndian.Uint64(p)
	}
}

// maxNegativeArg is the largest stored argument whose 1 - n image still
// fits in an int64 (1 - maxNegativeArg == math.MinInt64).
const maxNegativeArg = 1<<63 + 1

// DecodeInt decodes an unsigned integer (major type 0) or a negative
// integer (major type 1) from the front of buf and returns the value and
// the unconsumed remainder.
//
// A stored negative argument n decodes to 1 - n, not the -(n + 1) of
// RFC 8949; the quirk is kept deliberately for compatibility. Values
// outside the int64 range fail with ErrIntegerOverflow.
//
// Any major type other than 0 or 1 fails with *IncorrectTypeError carrying
// the tag found.
func DecodeInt(buf Buffer) (int64, Buffer, error) {
	tag, rest, err := buf.readBits(majorTypeBits)
	if err != nil {
		return 0, buf, err
	}
	switch MajorType(tag) {
	case MajorUnsignedInt:
		n, rest, err := decodeArg(rest)
		if err != nil {
			return 0, buf, err
		}
		if n > math.MaxInt64 {
			return 0, buf, ErrIntegerOverflow
		}
		return int64(n), rest, nil
	case MajorNegativeInt:
		n, rest, err := decodeArg(rest)
		if err != nil {
			return 0, buf, err
		}
		if n > maxNegativeArg {
			return 0, buf, ErrIntegerOverflow
		}
		return int64(1 - n), rest, nil
	default:
		return 0, buf, &IncorrectTypeError{MajorType: MajorType(tag)}
	}
}

// DecodeBytes decodes a definite-length byte string (major type 2) and
// returns the payload and the unconsumed remainder. The payload shares
// memory with the buffer's data when the read position is byte aligned.
//
// A head of any other major type fails with *InvalidMajorArgError carrying
// the raw 3-bit tag. A payload shorter than its declared length fails with
// ErrPrematureEOF.
func DecodeBytes(buf Buffer) ([]byte, Buffer, error) {
	return decodeSized(buf, MajorByteString)
}

// DecodeString decodes a definite-length text string (major type 3) and
// returns it with the unconsumed remainder. The payload must be valid
// UTF-8; if it is not, DecodeString fails with ErrMalformedUTF8.
//
// Type and length errors are as in [DecodeBytes].
func DecodeString(buf Buffer) (string, Buffer, error) {
	p, rest, err := decodeSized(buf, MajorTextString)
	if err != nil {
		return "", buf, err
	}
	if !utf8.Valid(p) {
		return "", buf, ErrMalformedUTF8
	}
	return string(p), rest, nil
}

// decodeSized handles the shared shape of byte and text strings: a required
// major type, an argument giving the payload length, then that many raw
// bytes. A mismatched tag is reported as *InvalidMajorArgError, not
// *IncorrectTypeError; callers depend on this mapping.
func decodeSized(buf Buffer, want MajorType) ([]byte, Buffer, error) {
	tag, rest, err := buf.readBits(majorTypeBits)
	if err != nil {
		return nil, buf, err
	}
	if MajorType(tag) != want {
		return nil, buf, &InvalidMajorArgError{Arg: byte(tag)}
	}
	n, rest, err := decodeArg(rest)
	if err != nil {
		return nil, buf, err
	}
	if n > uint64(rest.Len()/8) {
		return nil, buf, ErrPrematureEOF
	}
	p, rest, err := rest.readBytes(int(n))
	if err != nil {
		return nil, buf, err
	}
	return p, rest, nil
}
