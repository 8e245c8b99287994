package cbor

import "iter"

// A DecodeFunc decodes a single element from the front of a buffer,
// returning the element and the unconsumed remainder. The package's scalar
// decoders all satisfy this shape, as do compositions of them.
type DecodeFunc[T any] func(Buffer) (T, Buffer, error)

// A List is a lazy, pull-based iterator over the elements of a CBOR array.
// Elements are decoded one at a time as they are requested, so a declared
// count is never trusted with an allocation up front and decoding stops at
// the first malformed element.
//
// The iteration protocol follows [bufio.Scanner]: call Next until it
// returns false, reading each element with Value, then check Err to
// distinguish exhaustion from a decode failure. Once Next has returned
// false the List is terminal; further calls return false and no further
// elements are attempted, even if undecoded elements remain.
//
// A List never exposes the buffer remainder past the array: once iteration
// ends, whatever follows the array is unreachable through it, unlike the
// scalar decoders which always return their remainder.
type List[T any] struct {
	rest   Buffer
	decode DecodeFunc[T]
	remain uint64
	cur    T
	err    error
	done   bool
}

// DecodeList decodes an array head (major type 4) from the front of buf and
// returns a [List] that decodes each element with f on demand.
//
// DecodeList itself fails only on a malformed head: a non-array major type
// (*IncorrectTypeError), a reserved argument, or truncated input. Element
// failures surface through the returned List.
func DecodeList[T any](buf Buffer, f DecodeFunc[T]) (*List[T], error) {
	tag, rest, err := buf.readBits(majorTypeBits)
	if err != nil {
		return nil, err
	}
	if MajorType(tag) != MajorArray {
		return nil, &IncorrectTypeError{MajorType: MajorType(tag)}
	}
	n, rest, err := decodeArg(rest)
	if err != nil {
		return nil, err
	}
	return &List[T]{rest: rest, decode: f, remain: n}, nil
}

// Next decodes the next element, making it available through [List.Value].
// It returns false when the declared count is exhausted or an element
// fails to decode; after a failure [List.Err] returns the error and the
// cursor is frozen.
func (l *List[T]) Next() bool {
	if l.done || l.remain == 0 {
		l.done = true
		return false
	}
	v, rest, err := l.decode(l.rest)
	if err != nil {
		l.err = err
		l.done = true
		return false
	}
	l.cur = v
	l.rest = rest
	l.remain--
	return true
}

// Value returns the element decoded by the last successful call to
// [List.Next].
func (l *List[T]) Value() T {
	return l.cur
}

// Err returns the error that stopped iteration, or nil if iteration ended
// because every declared element was decoded.
func (l *List[T]) Err() error {
	return l.err
}

// Remaining returns the number of declared elements not yet decoded.
func (l *List[T]) Remaining() uint64 {
	return l.remain
}

// All returns the remaining elements as a range-over-func sequence. Each
// element is yielded with a nil error; if an element fails to decode, the
// zero value is yielded with the error as the final pair and the sequence
// ends. All pulls from the same cursor as [List.Next], so the two can be
// mixed but not interleaved concurrently.
func (l *List[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for l.Next() {
			if !yield(l.cur, nil) {
				return
			}
		}
		if l.err != nil {
			var zero T
			yield(zero, l.err)
		}
	}
}
