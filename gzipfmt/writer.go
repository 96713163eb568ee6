package gzipfmt

import (
	"io"

	"github.com/tociyuki/godeflate/bitio"
	"github.com/tociyuki/godeflate/crc32"
	"github.com/tociyuki/godeflate/deflate"
	"github.com/tociyuki/godeflate/lzss"
)

// Writer compresses one input stream into a gzip container written to an
// underlying io.Writer: header, DEFLATE payload, trailer. A Writer is used
// once, via CompressFrom — the engine compresses its whole input as a
// single DEFLATE block, so there is no incremental io.Writer surface to
// offer on top of it. Header, payload, and trailer all share one
// bitio.Writer so the trailer's byte-aligned writes correctly pad out
// whatever partial byte the DEFLATE payload's last Huffman code left
// behind.
type Writer struct {
	bw      *bitio.Writer
	winOpts []lzss.Option
}

// NewWriter returns a Writer that writes its gzip stream to w. Any
// lzss.Option passed here (WithProgress, notably) is forwarded to the
// lzss.Window CompressFrom constructs internally.
func NewWriter(w io.Writer, opts ...lzss.Option) *Writer {
	return &Writer{bw: bitio.NewWriter(w), winOpts: opts}
}

// CompressFrom reads r to completion, writing a complete gzip stream
// (header, DEFLATE payload, CRC-32 + ISIZE trailer) to the Writer's
// underlying io.Writer. It returns the number of uncompressed bytes read
// from r.
func (gw *Writer) CompressFrom(r io.Reader) (int, error) {
	if err := gw.writeHeader(); err != nil {
		return 0, err
	}

	var digest crc32.Digest
	win := lzss.NewWindow(&digest, gw.winOpts...)
	enc := deflate.NewEncoderFromBitWriter(gw.bw)
	size, err := win.Compress(r, enc)
	if err != nil {
		return 0, err
	}

	if err := gw.bw.Put4Byte(digest.Digest()); err != nil {
		return 0, err
	}
	if err := gw.bw.Put4Byte(uint32(size)); err != nil {
		return 0, err
	}
	return size, nil
}

func (gw *Writer) writeHeader() error {
	for _, b := range []byte{magic1, magic2, cmDeflate, 0x00} {
		if err := gw.bw.PutByte(b); err != nil {
			return err
		}
	}
	if err := gw.bw.Put4Byte(0); err != nil { // MTIME
		return err
	}
	if err := gw.bw.PutByte(0); err != nil { // XFL
		return err
	}
	return gw.bw.PutByte(osUnix)
}
