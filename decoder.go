package huffman

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// Decode decompresses a bitstream produced by Encode.
//
// symbolCount is the length of the original symbol sequence.  It is
// consulted only when the stream's tree is a single leaf: that tree assigns
// the zero-length code to its only symbol, so the payload carries no
// position information and the count cannot be recovered from the bits
// alone.  For any other tree the payload's end is the end of the bitstream
// and symbolCount is ignored.
//
// A payload that ends in the middle of a code fails with
// ErrTruncatedPayload; see DecodeTruncated to accept such streams.
func Decode[S Symbol](bv *BitVector, symbolCount int) ([]S, error) {
	return decode[S](bv, symbolCount, false)
}

// DecodeTruncated is Decode, except that a payload ending in the middle of
// a code is accepted and the dangling partial code silently discarded.
func DecodeTruncated[S Symbol](bv *BitVector, symbolCount int) ([]S, error) {
	return decode[S](bv, symbolCount, true)
}

func decode[S Symbol](bv *BitVector, symbolCount int, allowTruncated bool) ([]S, error) {
	assert.Assertf(symbolCount >= 0, "symbolCount %d must not be negative", symbolCount)

	if bv.Len() == 0 {
		if symbolCount != 0 {
			return nil, fmt.Errorf("huffman: empty bitstream cannot hold %d symbols: %w", symbolCount, ErrMalformedTree)
		}
		return []S{}, nil
	}

	root, start, err := readTree[S](bv)
	if err != nil {
		return nil, err
	}

	if root.leaf() {
		if symbolCount == 0 {
			return nil, ErrUnknownSymbolCount
		}
		out := make([]S, symbolCount)
		for i := range out {
			out[i] = root.symbols[0]
		}
		return out, nil
	}

	out := make([]S, 0, symbolCount)
	cur := root
	for i := start; i < bv.Len(); i++ {
		if bv.Bit(i) {
			cur = cur.right
		} else {
			cur = cur.left
		}
		if cur.leaf() {
			out = append(out, cur.symbols[0])
			cur = root
		}
	}
	if cur != root && !allowTruncated {
		return nil, fmt.Errorf("huffman: bitstream ends mid-code: %w", ErrTruncatedPayload)
	}
	return out, nil
}

// readTree reconstructs a serialized tree from the front of bv, returning
// the root and the bit offset where the payload begins.  The stack holds
// internal nodes still waiting for a child; the left slot fills first, so
// the pre-order layout written by appendTo is consumed exactly.
func readTree[S Symbol](bv *BitVector) (*node[S], int, error) {
	width := 8 * symbolWidth[S]()
	var root *node[S]
	stack := make([]*node[S], 0, log2uint32(uint32(bv.Len()))+1)
	cursor := 0
	for {
		if cursor >= bv.Len() {
			return nil, 0, fmt.Errorf("huffman: bitstream ends inside the tree at bit %d: %w", cursor, ErrMalformedTree)
		}
		isLeaf := bv.Bit(cursor)
		cursor++

		n := &node[S]{}
		if isLeaf {
			v, err := ValueFromBits[S](bv, cursor)
			if err != nil {
				return nil, 0, fmt.Errorf("huffman: bitstream ends inside a leaf symbol at bit %d: %w", cursor, ErrMalformedTree)
			}
			cursor += width
			n.symbols = []S{v}
		}

		if len(stack) == 0 {
			root = n
		} else if parent := stack[len(stack)-1]; parent.left == nil {
			parent.left = n
		} else {
			parent.right = n
			stack = stack[:len(stack)-1]
		}
		if !isLeaf {
			stack = append(stack, n)
		}
		if len(stack) == 0 {
			return root, cursor, nil
		}
	}
}
