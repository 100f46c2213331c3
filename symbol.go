package huffman

import (
	"unsafe"
)

// Symbol constrains the element types usable as alphabet symbols.  A symbol
// is any fixed-width integer; its width defines the number of bits used to
// store it inside a serialized tree.
type Symbol interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64
}

// symbolWidth returns sizeof(S) in bytes.
func symbolWidth[S Symbol]() int {
	var zero S
	return int(unsafe.Sizeof(zero))
}
