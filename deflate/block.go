// Package deflate implements the RFC 1951 DEFLATE bitstream: an Encoder
// that buffers the literal/length-distance symbols an lzss.Window produces
// and assembles them into a stored, fixed-Huffman, or dynamic-Huffman
// block, whichever is cheapest, and a Decoder that reverses the process.
//
// This engine speaks exactly one block per stream: the whole input is
// buffered into one symbol list, and EndBlock picks one block type (or, for
// a stored block longer than 65535 bytes, several physical sub-blocks with
// a single final BFINAL=1 bit). There is no cross-block streaming API.
package deflate

const (
	typeStored  = 0
	typeFixed   = 1
	typeDynamic = 2

	litAlphabetSize  = 286 // 0..255 literal, 256 end-of-block, 257..285 length
	distAlphabetSize = 30
	hcAlphabetSize   = 19
	limit            = 15 // longest literal/length or distance code RFC 1951 allows
	hcLimit          = 7  // longest code-length-alphabet code

	maxStoredLen = 65535
)

// hcIndex is the fixed, deliberately scrambled order in which code-length
// code lengths are transmitted (RFC 1951 3.2.7) — chosen by the format so
// that trailing all-zero entries can usually be omitted via HCLEN.
var hcIndex = [hcAlphabetSize]int{
	16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15,
}
