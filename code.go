package huffman

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Code represents the bit sequence assigned to one symbol, first bit first.
// The tree's depth is bounded only by the alphabet size, so a code can
// outgrow any machine word; the bits are kept packed MSB-first in a byte
// slice.
type Code struct {
	size int
	bits []byte
}

// MakeCode is a convenience function that constructs a Code from individual
// bits, first bit first.
func MakeCode(bits ...bool) Code {
	var c Code
	for _, bit := range bits {
		c.appendBit(bit)
	}
	return c
}

// Len returns the number of bits in the code.
func (c Code) Len() int {
	return c.size
}

// Bit returns the i'th bit of the code.
func (c Code) Bit(i int) bool {
	assert.Assertf(i >= 0 && i < c.size, "bit index %d out of range [0, %d)", i, c.size)
	return c.bits[i/8]&(0x80>>(i%8)) != 0
}

// Reversed returns the corresponding Code with the bits in reverse order.
// The tree builder grows codes leaf-to-root and reverses them once into
// transmission order.
func (c Code) Reversed() Code {
	var out Code
	out.bits = make([]byte, 0, len(c.bits))
	for i := c.size; i > 0; i-- {
		out.appendBit(c.Bit(i - 1))
	}
	return out
}

// String returns the string representation of this Code.
func (c Code) String() string {
	if c.size == 0 {
		return "\"\""
	}
	var sb strings.Builder
	sb.Grow(c.size)
	for i := 0; i < c.size; i++ {
		if c.Bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return strconv.Quote(sb.String())
}

var _ fmt.Stringer = Code{}

func (c *Code) appendBit(bit bool) {
	if c.size%8 == 0 {
		c.bits = append(c.bits, 0)
	}
	if bit {
		c.bits[c.size/8] |= 0x80 >> (c.size % 8)
	}
	c.size++
}
