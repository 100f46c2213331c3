package huffman

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// AppendValue appends the byte serialization of v to dst and returns the
// extended slice.  The wire order is always little-endian, regardless of the
// host's byte order; this function and its inverses are the only place in
// the package where endianness is resolved.
func AppendValue[S Symbol](dst []byte, v S) []byte {
	u := uint64(v)
	for i := 0; i < symbolWidth[S](); i++ {
		dst = append(dst, byte(u>>(8*i)))
	}
	return dst
}

// ValueFromBytes reads a value of type S from data starting at offset start.
// It fails with ErrTruncatedInput if fewer than sizeof(S) bytes remain.
func ValueFromBytes[S Symbol](data []byte, start int) (S, error) {
	assert.Assertf(start >= 0, "start %d must not be negative", start)
	w := symbolWidth[S]()
	if start > len(data) || len(data)-start < w {
		return 0, fmt.Errorf("huffman: %d-byte value at offset %d of %d: %w", w, start, len(data), ErrTruncatedInput)
	}
	var u uint64
	for i := 0; i < w; i++ {
		u |= uint64(data[start+i]) << (8 * i)
	}
	return S(u), nil
}

// AppendValueBits appends the 8*sizeof(S) bits of v to bv: bytes in
// little-endian order, most significant bit first within each byte.
func AppendValueBits[S Symbol](bv *BitVector, v S) {
	u := uint64(v)
	for i := 0; i < symbolWidth[S](); i++ {
		b := byte(u >> (8 * i))
		for j := 0; j < 8; j++ {
			bv.AppendBit(b&(0x80>>j) != 0)
		}
	}
}

// ValueFromBits reads a value of type S from bv starting at bit offset
// start.  It fails with ErrTruncatedInput if fewer than 8*sizeof(S) bits
// remain.
func ValueFromBits[S Symbol](bv *BitVector, start int) (S, error) {
	assert.Assertf(start >= 0, "start %d must not be negative", start)
	w := symbolWidth[S]()
	if start > bv.Len() || bv.Len()-start < 8*w {
		return 0, fmt.Errorf("huffman: %d-bit value at bit offset %d of %d: %w", 8*w, start, bv.Len(), ErrTruncatedInput)
	}
	var u uint64
	for i := 0; i < w; i++ {
		var b byte
		for j := 0; j < 8; j++ {
			if bv.Bit(start + 8*i + j) {
				b |= 0x80 >> j
			}
		}
		u |= uint64(b) << (8 * i)
	}
	return S(u), nil
}
