package huffman

import (
	"errors"
)

// ErrTruncatedInput is returned when a fixed-width value or a framed
// bitstream ends before all of its bytes or bits could be read.
var ErrTruncatedInput = errors.New("huffman: truncated input")

// ErrMalformedTree is returned when a bitstream ends before a complete
// serialized tree could be reconstructed.
var ErrMalformedTree = errors.New("huffman: malformed tree")

// ErrTruncatedPayload is returned when the coded payload ends in the middle
// of a code, leaving a dangling partial traversal.
var ErrTruncatedPayload = errors.New("huffman: truncated payload")

// ErrUnknownSymbolCount is returned when a stream whose tree is a single
// leaf is decoded without an expected symbol count.  Such a stream assigns
// the zero-length code to its only symbol, so the payload carries no
// position information and the caller must supply the count.
var ErrUnknownSymbolCount = errors.New("huffman: symbol count required to decode a single-symbol stream")
