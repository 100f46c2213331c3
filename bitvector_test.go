package huffman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitVector_AppendAndRead(t *testing.T) {
	var bv BitVector
	assert.Equal(t, 0, bv.Len())

	bv.AppendBit(true)
	bv.AppendBit(false)
	bv.AppendBit(true)
	require.Equal(t, 3, bv.Len())
	assert.True(t, bv.Bit(0))
	assert.False(t, bv.Bit(1))
	assert.True(t, bv.Bit(2))

	// Pad bits beyond Len() stay zero.
	assert.Equal(t, []byte{0xa0}, bv.Bytes())
}

func TestBitVector_AppendCode(t *testing.T) {
	var bv BitVector
	bv.AppendBit(true)
	bv.AppendCode(MakeCode(false, true, true))
	checkBits(t, &bv, "1011")
}

func TestBitVector_Equal(t *testing.T) {
	var a, b BitVector
	assert.True(t, a.Equal(&b))

	a.AppendBit(true)
	assert.False(t, a.Equal(&b))

	b.AppendBit(true)
	assert.True(t, a.Equal(&b))

	a.AppendBit(false)
	b.AppendBit(true)
	assert.False(t, a.Equal(&b))
}
