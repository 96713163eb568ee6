package gzipfmt

import (
	"io"

	"github.com/tociyuki/godeflate/bitio"
	"github.com/tociyuki/godeflate/crc32"
	"github.com/tociyuki/godeflate/deflate"
	"github.com/tociyuki/godeflate/lzss"
)

// Reader decompresses one gzip container read from an underlying
// io.Reader. Header and DEFLATE payload are read through the same
// bitio.Reader, since the compressor's final Huffman code may leave a
// partial byte that only byte-alignment-discarding trailer reads (not a
// second, independently buffered reader) can correctly skip past.
type Reader struct {
	br      *bitio.Reader
	winOpts []lzss.Option
}

// NewReader returns a Reader reading its gzip stream from r. Any
// lzss.Option passed here (WithProgress, notably) is forwarded to the
// lzss.Window DecompressInto constructs internally.
func NewReader(r io.Reader, opts ...lzss.Option) *Reader {
	return &Reader{br: bitio.NewReader(r), winOpts: opts}
}

// DecompressInto reads and validates the gzip header, decodes the DEFLATE
// payload to out, and validates the trailer's CRC-32 and ISIZE against what
// was actually produced. It returns the number of decompressed bytes
// written to out.
func (gr *Reader) DecompressInto(out io.Writer) (int, error) {
	if err := gr.readHeader(); err != nil {
		return 0, err
	}

	var digest crc32.Digest
	win := lzss.NewWindow(&digest, gr.winOpts...)
	dec := deflate.NewDecoderFromBitReader(gr.br)
	size, err := dec.Decode(win, out)
	if err != nil {
		return 0, err
	}

	expectedCRC, err := gr.br.Get4Byte()
	if err != nil {
		return 0, err
	}
	expectedSize, err := gr.br.Get4Byte()
	if err != nil {
		return 0, err
	}
	if digest.Digest() != expectedCRC {
		return 0, ErrCRCMismatch
	}
	if uint32(size) != expectedSize {
		return 0, ErrSizeMismatch
	}
	return size, nil
}

func (gr *Reader) readHeader() error {
	id1, err := gr.br.GetByte()
	if err != nil {
		return err
	}
	id2, err := gr.br.GetByte()
	if err != nil {
		return err
	}
	if id1 != magic1 || id2 != magic2 {
		return ErrNotGzip
	}
	cm, err := gr.br.GetByte()
	if err != nil {
		return err
	}
	if cm != cmDeflate {
		return ErrUnsupportedCM
	}
	flg, err := gr.br.GetByte()
	if err != nil {
		return err
	}
	if _, err := gr.br.Get4Byte(); err != nil { // MTIME
		return err
	}
	if _, err := gr.br.GetByte(); err != nil { // XFL
		return err
	}
	if _, err := gr.br.GetByte(); err != nil { // OS
		return err
	}
	if flg&flagFEXTRA != 0 {
		xlen, err := gr.br.Get2Byte()
		if err != nil {
			return err
		}
		for i := uint32(0); i < xlen; i++ {
			if _, err := gr.br.GetByte(); err != nil {
				return err
			}
		}
	}
	if flg&flagFNAME != 0 {
		if _, err := gr.br.GetASCIIZ(); err != nil {
			return err
		}
	}
	if flg&flagFCOMMENT != 0 {
		if _, err := gr.br.GetASCIIZ(); err != nil {
			return err
		}
	}
	if flg&flagFHCRC != 0 {
		if _, err := gr.br.Get2Byte(); err != nil {
			return err
		}
	}
	return nil
}
