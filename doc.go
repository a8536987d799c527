// Package huff implements a lossless byte-stream compressor built on static
// Huffman coding.  The prefix code is derived from the input's actual byte
// frequencies, and the code tree itself is serialized into the compressed
// stream, so decoding needs no external dictionary.
//
// Compressed stream layout:
//
//	[32 bits]  magic word 0xFACE8201
//	[tree]     recursive preorder tree encoding
//	[payload]  one code per input byte, in order, then the terminator's code
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huff
