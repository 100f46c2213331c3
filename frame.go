package huffman

import (
	"fmt"
)

// Frame wraps a bitstream in the persisted envelope: a uint64 little-endian
// bit count followed by the bits packed MSB-first into bytes, the final byte
// zero-padded.  The envelope carries no version or checksum; corruption
// surfaces only as a downstream decode failure.
func Frame(bv *BitVector) []byte {
	out := make([]byte, 0, 8+len(bv.bits))
	out = AppendValue(out, uint64(bv.size))
	return append(out, bv.bits...)
}

// Unframe reads back a bitstream written by Frame.  It fails with
// ErrTruncatedInput if the 8-byte count or any needed payload byte is
// missing.  Pad bits beyond the count are discarded.
func Unframe(data []byte) (*BitVector, error) {
	count, err := ValueFromBytes[uint64](data, 0)
	if err != nil {
		return nil, fmt.Errorf("huffman: reading frame bit count: %w", err)
	}
	avail := uint64(len(data)-8) * 8
	if count > avail {
		return nil, fmt.Errorf("huffman: frame claims %d bits but only %d are present: %w", count, avail, ErrTruncatedInput)
	}
	size := int(count)
	n := (size + 7) / 8
	bits := make([]byte, n)
	copy(bits, data[8:8+n])
	if pad := size % 8; pad != 0 {
		bits[n-1] &= 0xFF << (8 - pad)
	}
	return &BitVector{bits: bits, size: size}, nil
}
