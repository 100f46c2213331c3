package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
)

// node is either a leaf holding exactly one symbol or an internal node
// owning exactly two children.  Internal nodes built by Init also carry the
// symbol set of their subtree, which the merge loop uses to grow codes.
type node[S Symbol] struct {
	freq    uint64
	symbols []S
	left    *node[S]
	right   *node[S]
}

func (n *node[S]) leaf() bool {
	return n.left == nil
}

// Tree is a Huffman code tree together with its symbol-to-code table.
//
// The zero value is an empty tree; call Init to build one.
type Tree[S Symbol] struct {
	root    *node[S]
	codes   map[S]Code
	minSize int
	maxSize int
}

// Init builds the tree for the given symbol sequence.
//
// The working set is kept ordered by frequency descending and the two tail
// nodes are merged repeatedly, the very last becoming the left child (bit 0)
// and the other the right (bit 1); a new parent is inserted ahead of the
// first node of equal or lower frequency.  Codes grow leaf-to-root during
// the merges and are reversed into transmission order at the end.
//
// An empty input yields an empty tree.  A single distinct symbol yields a
// tree whose root is a leaf and whose only code is zero bits long.
func (t *Tree[S]) Init(symbols []S) {
	freqs := make(map[S]uint64, len(symbols))
	for _, s := range symbols {
		freqs[s]++
	}
	if len(freqs) == 0 {
		*t = Tree[S]{}
		return
	}

	nodes := make([]*node[S], 0, len(freqs))
	grow := make(map[S]*Code, len(freqs))
	for s, f := range freqs {
		nodes = append(nodes, &node[S]{freq: f, symbols: []S{s}})
		grow[s] = new(Code)
	}

	// Equal frequencies keep symbol order, so the merge sequence, and with
	// it the serialized tree, is deterministic.
	sort.Slice(nodes, func(i, j int) bool {
		a, b := nodes[i], nodes[j]
		if a.freq != b.freq {
			return a.freq > b.freq
		}
		return a.symbols[0] < b.symbols[0]
	})

	for len(nodes) > 1 {
		left := nodes[len(nodes)-1]
		right := nodes[len(nodes)-2]
		nodes = nodes[:len(nodes)-2]

		for _, s := range left.symbols {
			grow[s].appendBit(false)
		}
		for _, s := range right.symbols {
			grow[s].appendBit(true)
		}

		parent := &node[S]{
			freq:    left.freq + right.freq,
			symbols: make([]S, 0, len(left.symbols)+len(right.symbols)),
			left:    left,
			right:   right,
		}
		parent.symbols = append(parent.symbols, left.symbols...)
		parent.symbols = append(parent.symbols, right.symbols...)

		at := len(nodes)
		for i, n := range nodes {
			if n.freq <= parent.freq {
				at = i
				break
			}
		}
		nodes = append(nodes, nil)
		copy(nodes[at+1:], nodes[at:])
		nodes[at] = parent
	}

	codes := make(map[S]Code, len(grow))
	var minSize, maxSize int
	var hasMinMax bool
	for s, c := range grow {
		rc := c.Reversed()
		codes[s] = rc
		size := rc.Len()
		if !hasMinMax {
			hasMinMax = true
			minSize = size
			maxSize = size
		} else if minSize > size {
			minSize = size
		} else if maxSize < size {
			maxSize = size
		}
	}

	*t = Tree[S]{
		root:    nodes[0],
		codes:   codes,
		minSize: minSize,
		maxSize: maxSize,
	}
}

// Empty reports whether the tree was built from an empty input.
func (t *Tree[S]) Empty() bool {
	return t.root == nil
}

// Code returns the root-to-leaf code assigned to symbol, and whether the
// symbol occurs in the tree at all.
func (t *Tree[S]) Code(symbol S) (Code, bool) {
	c, ok := t.codes[symbol]
	return c, ok
}

// MinSize is the bit length of the shortest assigned code.
func (t *Tree[S]) MinSize() int {
	return t.minSize
}

// MaxSize is the bit length of the longest assigned code.
func (t *Tree[S]) MaxSize() int {
	return t.maxSize
}

// Dump writes a programmer-readable debugging dump of the Tree's current
// state to the given writer.
func (t *Tree[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.maxSize)
	syms := make([]S, 0, len(t.codes))
	for s := range t.codes {
		syms = append(syms, s)
	}
	sort.Slice(syms, func(i, j int) bool {
		return syms[i] < syms[j]
	})
	for _, s := range syms {
		fmt.Fprintf(&buf, "\tCode(%d) = %s\n", s, t.codes[s])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
