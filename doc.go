// Package huffman implements a self-describing Huffman bitstream codec for
// alphabets of fixed-width integer symbols.
//
// The encoded bitstream carries its own code tree: a pre-order serialization
// of the Huffman tree precedes the coded payload, so a decoder needs no side
// table to reconstruct the code.  The Frame / Unframe pair wraps such a
// bitstream in a length-prefixed byte envelope suitable for persistence.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
