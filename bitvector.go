package huffman

import (
	"github.com/chronos-tachyon/assert"
)

// BitVector is an append-only sequence of bits with random read access.
// Bits are packed MSB-first into bytes, and any pad bits beyond Len() in the
// final byte are kept zero, so the packed form can be framed directly.
//
// The zero value is an empty vector ready for use.
type BitVector struct {
	bits []byte
	size int
}

// Len returns the number of bits in the vector.
func (bv *BitVector) Len() int {
	return bv.size
}

// Bit returns the i'th bit of the vector.
func (bv *BitVector) Bit(i int) bool {
	assert.Assertf(i >= 0 && i < bv.size, "bit index %d out of range [0, %d)", i, bv.size)
	return bv.bits[i/8]&(0x80>>(i%8)) != 0
}

// AppendBit appends a single bit to the vector.
func (bv *BitVector) AppendBit(bit bool) {
	if bv.size%8 == 0 {
		bv.bits = append(bv.bits, 0)
	}
	if bit {
		bv.bits[bv.size/8] |= 0x80 >> (bv.size % 8)
	}
	bv.size++
}

// AppendCode appends every bit of c to the vector.
func (bv *BitVector) AppendCode(c Code) {
	for i := 0; i < c.size; i++ {
		bv.AppendBit(c.Bit(i))
	}
}

// Bytes returns a copy of the vector's bits packed MSB-first into bytes,
// the final byte zero-padded when Len() is not a multiple of 8.
func (bv *BitVector) Bytes() []byte {
	out := make([]byte, len(bv.bits))
	copy(out, bv.bits)
	return out
}

// Equal reports whether two vectors hold the same bit sequence.
func (bv *BitVector) Equal(other *BitVector) bool {
	if bv.size != other.size {
		return false
	}
	for i, b := range bv.bits {
		if b != other.bits[i] {
			return false
		}
	}
	return true
}
