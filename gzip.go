// Package godeflate is a from-scratch DEFLATE (RFC 1951) and gzip
// (RFC 1952) implementation: canonical and package-merge Huffman coding in
// huffman, LZSS string matching in lzss, block assembly/parsing in
// deflate, and the gzip container format in gzipfmt. This package offers
// one-shot Compress/Decompress entry points; gzipfmt.Writer/Reader remain
// available directly for callers that want to pass lzss.Option values
// (such as WithProgress), which is how cmd/gzipcli uses them.
package godeflate

import (
	"io"

	"github.com/tociyuki/godeflate/gzipfmt"
)

// Compress reads r to completion and writes a complete gzip stream to w,
// returning the number of uncompressed bytes read.
func Compress(w io.Writer, r io.Reader) (int, error) {
	return gzipfmt.NewWriter(w).CompressFrom(r)
}

// Decompress reads one gzip stream from r to completion, writing the
// decompressed bytes to w and validating the trailer's CRC-32 and ISIZE.
// It returns the number of decompressed bytes written.
func Decompress(w io.Writer, r io.Reader) (int, error) {
	return gzipfmt.NewReader(r).DecompressInto(w)
}
