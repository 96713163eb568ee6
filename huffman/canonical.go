// Package huffman builds and walks the canonical Huffman codes DEFLATE
// blocks use (RFC 1951 3.2.2): code-length assignment, length-limited code
// construction via package-merge, decode-tree construction, and the fixed
// literal/length/distance tables for RFC 1951 3.2.6 blocks.
package huffman

// Canonical assigns canonical Huffman codes to a set of code lengths,
// following RFC 1951 3.2.2: codes of the same length are consecutive, and
// codes are ordered by increasing length. size[i] is the bit length of
// symbol i, or 0 if the symbol is unused. The result has the same length as
// size, code[i] holding symbol i's code (undefined, and left 0, where
// size[i] is 0). limit bounds the longest code length that may appear in
// size.
func Canonical(size []int, limit int) []int {
	blcount := make([]int, limit+1)
	for _, n := range size {
		if n > 0 {
			blcount[n]++
		}
	}
	nextcode := make([]int, limit+1)
	code := 0
	blcount[0] = 0
	for bits := 1; bits <= limit; bits++ {
		code = (code + blcount[bits-1]) << 1
		nextcode[bits] = code
	}
	hfcode := make([]int, len(size))
	for i, n := range size {
		if n == 0 {
			continue
		}
		hfcode[i] = nextcode[n]
		nextcode[n]++
	}
	return hfcode
}
