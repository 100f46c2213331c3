package huffman

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// truncated returns a copy of the first n bits of bv.
func truncated(bv *BitVector, n int) *BitVector {
	out := new(BitVector)
	for i := 0; i < n; i++ {
		out.AppendBit(bv.Bit(i))
	}
	return out
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"aaaa",
		"ab",
		"aaab",
		"aabc",
		"abracadabra",
		"mississippi",
		"the quick brown fox jumps over the lazy dog",
	}
	for _, in := range inputs {
		t.Run(strconv.Quote(in), func(t *testing.T) {
			bits := Encode([]byte(in))
			got, err := Decode[byte](bits, len(in))
			require.NoError(t, err)
			assert.Equal(t, []byte(in), got)
		})
	}
}

func TestRoundTrip_Framed(t *testing.T) {
	in := []byte("hello huffman")
	bits := Encode(in)
	framed := Frame(bits)
	require.Len(t, framed, 8+(bits.Len()+7)/8)

	unframed, err := Unframe(framed)
	require.NoError(t, err)
	got, err := Decode[byte](unframed, len(in))
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestRoundTrip_WideSymbols(t *testing.T) {
	t.Run("uint16", func(t *testing.T) {
		in := []uint16{0xdead, 0xbeef, 0xdead, 1, 2, 2, 2}
		got, err := Decode[uint16](Encode(in), len(in))
		require.NoError(t, err)
		assert.Equal(t, in, got)
	})
	t.Run("int16", func(t *testing.T) {
		in := []int16{-1, -1, 0, 32767, -32768, -1}
		got, err := Decode[int16](Encode(in), len(in))
		require.NoError(t, err)
		assert.Equal(t, in, got)
	})
	t.Run("uint32", func(t *testing.T) {
		in := []uint32{0xdeadbeef, 7, 7, 7, 0xcafebabe}
		got, err := Decode[uint32](Encode(in), len(in))
		require.NoError(t, err)
		assert.Equal(t, in, got)
	})
	t.Run("uint64", func(t *testing.T) {
		in := []uint64{1 << 63, 0, 0, 1 << 63}
		got, err := Decode[uint64](Encode(in), len(in))
		require.NoError(t, err)
		assert.Equal(t, in, got)
	})
}

func TestRoundTrip_RandomData(t *testing.T) {
	// Random data does not compress; the framed result may exceed the
	// input and that is not an error.
	rng := rand.New(rand.NewSource(1))
	in := make([]byte, 1024)
	_, _ = rng.Read(in)

	bits := Encode(in)
	framed := Frame(bits)
	t.Logf("1024 input bytes framed to %d bytes (ratio %.2f)",
		len(framed), float64(bits.Len())/float64(8*len(in)))

	unframed, err := Unframe(framed)
	require.NoError(t, err)
	got, err := Decode[byte](unframed, len(in))
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestDecode_SingleSymbolNeedsCount(t *testing.T) {
	bits := Encode([]byte("aaaa"))

	_, err := Decode[byte](bits, 0)
	require.ErrorIs(t, err, ErrUnknownSymbolCount)

	got, err := Decode[byte](bits, 4)
	require.NoError(t, err)
	assert.Equal(t, []byte("aaaa"), got)
}

func TestDecode_EmptyStreamWithCount(t *testing.T) {
	_, err := Decode[byte](new(BitVector), 3)
	require.ErrorIs(t, err, ErrMalformedTree)
}

func TestDecode_MalformedTree(t *testing.T) {
	bits := Encode([]byte("aabc"))
	require.Equal(t, 35, bits.Len())

	for _, n := range []int{1, 5, 10, 28} {
		_, err := Decode[byte](truncated(bits, n), 4)
		require.ErrorIs(t, err, ErrMalformedTree, "truncated to %d bits", n)
	}
}

func TestDecode_TruncatedPayload(t *testing.T) {
	bits := Encode([]byte("aabc"))
	require.Equal(t, 35, bits.Len())

	cut := truncated(bits, 34)
	_, err := Decode[byte](cut, 4)
	require.ErrorIs(t, err, ErrTruncatedPayload)

	got, err := DecodeTruncated[byte](cut, 4)
	require.NoError(t, err)
	assert.Equal(t, []byte("aab"), got)
}

func TestDecode_TreeOnly(t *testing.T) {
	// A stream cut exactly after the tree decodes to nothing.
	bits := Encode([]byte("aabc"))
	got, err := Decode[byte](truncated(bits, 29), 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}
