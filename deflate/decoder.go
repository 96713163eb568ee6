package deflate

import (
	"io"

	"github.com/tociyuki/godeflate/bitio"
	"github.com/tociyuki/godeflate/huffman"
	"github.com/tociyuki/godeflate/lzss"
)

// Decoder reads a DEFLATE bitstream and replays its literal/back-reference
// symbols into an lzss.Window, which reconstructs the original bytes.
type Decoder struct {
	br *bitio.Reader
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return NewDecoderFromBitReader(bitio.NewReader(r))
}

// NewDecoderFromBitReader returns a Decoder reading from an
// already-constructed bitio.Reader, so a caller that needs to share bit
// alignment across a header and the DEFLATE payload (as gzipfmt.Reader
// does) can use one Reader for both.
func NewDecoderFromBitReader(br *bitio.Reader) *Decoder {
	return &Decoder{br: br}
}

// Decode reads blocks until BFINAL is set, writing reconstructed bytes to
// out via w, and returns the total number of bytes produced.
func (d *Decoder) Decode(w *lzss.Window, out io.Writer) (int, error) {
	for {
		fin, err := d.br.GetData(1)
		if err != nil {
			return 0, err
		}
		typ, err := d.br.GetData(2)
		if err != nil {
			return 0, err
		}
		switch typ {
		case typeStored:
			err = d.decodePlainBlock(w, out)
		case typeFixed:
			err = d.decodeFixedBlock(w, out)
		case typeDynamic:
			err = d.decodeCustomBlock(w, out)
		default:
			err = ErrInvalidBlockType
		}
		if err != nil {
			return 0, err
		}
		if fin == 1 {
			break
		}
	}
	w.FlushProgress()
	return w.Size(), nil
}

func (d *Decoder) decodePlainBlock(w *lzss.Window, out io.Writer) error {
	length, err := d.br.Get2Byte()
	if err != nil {
		return err
	}
	nlength, err := d.br.Get2Byte()
	if err != nil {
		return err
	}
	if length != (nlength ^ 0xffff) {
		return ErrInvalidStoredBlock
	}
	for i := uint32(0); i < length; i++ {
		c, err := d.br.GetByte()
		if err != nil {
			return err
		}
		if err := w.DecompressLiteral(out, c); err != nil {
			return err
		}
	}
	return nil
}

func (d *Decoder) decodeFixedBlock(w *lzss.Window, out io.Writer) error {
	for {
		c, err := huffman.DecodeFixedLiteral(d.br.GetBit)
		if err != nil {
			return err
		}
		switch {
		case c < 256:
			if err := w.DecompressLiteral(out, byte(c)); err != nil {
				return err
			}
		case c == 256:
			return nil
		default:
			length, dist, err := d.readLengthDistance(c, func() (int, error) {
				code, err := d.br.GetHuffmanFixed(5)
				return int(code), err
			})
			if err != nil {
				return err
			}
			if err := w.DecompressLengthDistance(out, length, dist); err != nil {
				return err
			}
		}
	}
}

func (d *Decoder) decodeCustomBlock(w *lzss.Window, out io.Writer) error {
	hlit, err := d.br.GetData(5)
	if err != nil {
		return err
	}
	hdist, err := d.br.GetData(5)
	if err != nil {
		return err
	}
	hclen, err := d.br.GetData(4)
	if err != nil {
		return err
	}
	hctree, err := d.decodeCustomBlockHCTable(hclen)
	if err != nil {
		return err
	}
	littree, disttree, err := d.decodeCustomBlockTable(hlit, hdist, hctree)
	if err != nil {
		return err
	}
	for {
		c, err := littree.Decode(d.br.GetBit)
		if err != nil {
			return err
		}
		switch {
		case c < 256:
			if err := w.DecompressLiteral(out, byte(c)); err != nil {
				return err
			}
		case c == 256:
			return nil
		default:
			length, dist, err := d.readLengthDistance(c, func() (int, error) {
				sym, err := disttree.Decode(d.br.GetBit)
				return sym, err
			})
			if err != nil {
				return err
			}
			if err := w.DecompressLengthDistance(out, length, dist); err != nil {
				return err
			}
		}
	}
}

// readLengthDistance decodes the length extra bits for literal/length
// symbol c, reads a distance symbol via getDistSym, and decodes that
// symbol's extra bits, returning the final length and distance.
func (d *Decoder) readLengthDistance(c int, getDistSym func() (int, error)) (length, dist int, err error) {
	base, lbits, ok := huffman.DecodeLength(c)
	if !ok {
		return 0, 0, ErrInvalidCoding
	}
	length = base
	if lbits > 0 {
		extra, err := d.br.GetData(lbits)
		if err != nil {
			return 0, 0, err
		}
		length += int(extra)
	}
	distsym, err := getDistSym()
	if err != nil {
		return 0, 0, err
	}
	dbase, dbits, ok := huffman.DecodeDistance(distsym)
	if !ok {
		return 0, 0, ErrInvalidCoding
	}
	dist = dbase
	if dbits > 0 {
		extra, err := d.br.GetData(dbits)
		if err != nil {
			return 0, 0, err
		}
		dist += int(extra)
	}
	return length, dist, nil
}

func (d *Decoder) decodeCustomBlockHCTable(hclen uint32) (*huffman.Tree, error) {
	hcsize := make([]int, hcAlphabetSize)
	for i := uint32(0); i < hclen+4; i++ {
		c, err := d.br.GetData(3)
		if err != nil {
			return nil, err
		}
		hcsize[hcIndex[i]] = int(c)
	}
	hccode := huffman.Canonical(hcsize, hcLimit)
	return huffman.BuildTree(hcsize, hccode), nil
}

func (d *Decoder) decodeCustomBlockTable(hlit, hdist uint32, hctree *huffman.Tree) (littree, disttree *huffman.Tree, err error) {
	n := int(hlit) + 257 + int(hdist) + 1
	a := make([]int, 0, n)
	for {
		c, err := hctree.Decode(d.br.GetBit)
		if err != nil {
			return nil, nil, err
		}
		switch {
		case c < 16:
			a = append(a, c)
		case c == 16:
			if len(a) == 0 {
				return nil, nil, ErrInvalidCoding
			}
			m, err := d.br.GetData(2)
			if err != nil {
				return nil, nil, err
			}
			prev := a[len(a)-1]
			for i := uint32(0); i < m+3; i++ {
				a = append(a, prev)
			}
		case c == 17:
			m, err := d.br.GetData(3)
			if err != nil {
				return nil, nil, err
			}
			for i := uint32(0); i < m+3; i++ {
				a = append(a, 0)
			}
		case c == 18:
			m, err := d.br.GetData(7)
			if err != nil {
				return nil, nil, err
			}
			for i := uint32(0); i < m+11; i++ {
				a = append(a, 0)
			}
		default:
			return nil, nil, ErrInvalidCoding
		}
		if len(a) >= n {
			break
		}
	}
	litsize := a[:hlit+257]
	distsize := a[hlit+257:]
	litcode := huffman.Canonical(litsize, maxOf(litsize))
	distcode := huffman.Canonical(distsize, maxOf(distsize))
	return huffman.BuildTree(litsize, litcode), huffman.BuildTree(distsize, distcode), nil
}

func maxOf(s []int) int {
	m := 1
	for _, v := range s {
		if v > m {
			m = v
		}
	}
	return m
}
