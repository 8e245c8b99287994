package cbor

// A Buffer is an immutable view of a sequence of bits, read from the front.
// Buffers are values: reads return a new Buffer advanced past the consumed
// bits and never modify the receiver or the underlying data, so the
// remainder returned by one decoder can be handed to the next while the
// original view stays valid.
//
// The zero Buffer is empty and ready to use.
type Buffer struct {
	data []byte
	off  int // bit offset of the next unread bit
	end  int // bit offset one past the last readable bit
}

// NewBuffer returns a Buffer reading the bits of data. The data is not
// copied; it must not be modified while the Buffer or any remainder derived
// from it is in use.
func NewBuffer(data []byte) Buffer {
	return Buffer{data: data, end: len(data) * 8}
}

// NewBufferBits is like [NewBuffer] but limits the view to the first nbits
// bits of data. It panics if nbits is negative or exceeds 8*len(data).
func NewBufferBits(data []byte, nbits int) Buffer {
	if nbits < 0 || nbits > len(data)*8 {
		panic("cbor: bit length out of range")
	}
	return Buffer{data: data, end: nbits}
}

// Len returns the number of unread bits.
func (b Buffer) Len() int {
	return b.end - b.off
}

// Empty reports whether no unread bits remain.
func (b Buffer) Empty() bool {
	return b.off == b.end
}

// Bytes returns the unread contents truncated to whole bytes, without
// consuming them. When the read position is byte aligned the result shares
// memory with the underlying data.
func (b Buffer) Bytes() []byte {
	p, _, err := b.readBytes(b.Len() / 8)
	if err != nil {
		return nil
	}
	return p
}

// readBits consumes the next n bits, 0 <= n <= 64, and returns them as a
// big-endian unsigned integer along with the advanced Buffer.
func (b Buffer) readBits(n int) (uint64, Buffer, error) {
	if b.Len() < n {
		return 0, b, ErrPrematureEOF
	}
	var v uint64
	for n > 0 {
		rem := 8 - b.off&7
		take := min(n, rem)
		bits := uint64(b.data[b.off>>3]) >> (rem - take) & (1<<take - 1)
		v = v<<take | bits
		b.off += take
		n -= take
	}
	return v, b, nil
}

// readBytes consumes the next n whole bytes. When the read position is byte
// aligned the returned slice shares memory with the underlying data;
// otherwise the bytes are reassembled across byte boundaries.
func (b Buffer) readBytes(n int) ([]byte, Buffer, error) {
	if n > b.Len()/8 {
		return nil, b, ErrPrematureEOF
	}
	start := b.off >> 3
	shift := b.off & 7
	if shift == 0 {
		p := b.data[start : start+n : start+n]
		b.off += n * 8
		return p, b, nil
	}
	p := make([]byte, n)
	for i := range p {
		p[i] = b.data[start+i]<<shift | b.data[start+i+1]>>(8-shift)
	}
	b.off += n * 8
	return p, b, nil
}
