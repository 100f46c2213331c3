package huffman

import (
	"github.com/chronos-tachyon/assert"
)

// Encode compresses a symbol sequence into a self-describing bitstream: the
// pre-order serialized tree followed by each symbol's code in input order.
// An empty input produces an empty bitstream.
//
// Note that a stream built from a single distinct symbol assigns it the
// zero-length code, so its payload is empty; Decode needs the original
// symbol count to reproduce such an input.
func Encode[S Symbol](symbols []S) *BitVector {
	out := new(BitVector)
	var t Tree[S]
	t.Init(symbols)
	if t.Empty() {
		return out
	}
	t.appendTo(out)
	for _, s := range symbols {
		c, ok := t.Code(s)
		assert.Assertf(ok, "symbol %d missing from code table", s)
		out.AppendCode(c)
	}
	return out
}

// appendTo serializes the tree in pre-order: a leaf is a 1 bit followed by
// the symbol's bits, an internal node is a 0 bit followed by its left then
// right subtree.  The sequence is self-delimiting, so no length is written.
//
// An explicit stack stands in for recursion; the tree's depth is bounded
// only by the alphabet size.
func (t *Tree[S]) appendTo(bv *BitVector) {
	stack := make([]*node[S], 0, log2uint32(uint32(len(t.codes)))+1)
	stack = append(stack, t.root)
	for len(stack) != 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.leaf() {
			bv.AppendBit(true)
			AppendValueBits(bv, n.symbols[0])
			continue
		}
		bv.AppendBit(false)
		stack = append(stack, n.right, n.left)
	}
}
