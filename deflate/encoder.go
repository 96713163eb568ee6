package deflate

import (
	"io"

	"github.com/tociyuki/godeflate/bitio"
	"github.com/tociyuki/godeflate/huffman"
)

// Encoder buffers the literal and length/distance symbols an lzss.Window
// produces for one block and, on EndBlock, assembles them into whichever of
// a stored, fixed-Huffman, or dynamic-Huffman block is estimated cheapest.
// It implements lzss.Encoder.
type Encoder struct {
	bw *bitio.Writer

	hclist   []int
	codelist []int

	hccounts   [hcAlphabetSize]int
	litcounts  [litAlphabetSize]int
	distcounts [distAlphabetSize]int

	statExtra   int
	statLendist int
	statFixed   int
}

// NewEncoder returns an Encoder that writes its DEFLATE bitstream to w.
func NewEncoder(w io.Writer) *Encoder {
	return NewEncoderFromBitWriter(bitio.NewWriter(w))
}

// NewEncoderFromBitWriter returns an Encoder that writes to an
// already-constructed bitio.Writer, so a caller that needs to share bit
// alignment across a header, the DEFLATE payload, and a trailer (as
// gzipfmt.Writer does) can use one Writer for all three.
func NewEncoderFromBitWriter(bw *bitio.Writer) *Encoder {
	return &Encoder{bw: bw}
}

// StartBlock resets the symbol buffer and statistics for a new block.
func (e *Encoder) StartBlock() {
	e.hclist = e.hclist[:0]
	e.codelist = e.codelist[:0]
	for i := range e.hccounts {
		e.hccounts[i] = 0
	}
	for i := range e.litcounts {
		e.litcounts[i] = 0
	}
	for i := range e.distcounts {
		e.distcounts[i] = 0
	}
	e.statExtra, e.statLendist, e.statFixed = 0, 0, 0
}

// PutLiteral buffers a literal byte (0..255).
func (e *Encoder) PutLiteral(code int) {
	e.codelist = append(e.codelist, code)
	e.litcounts[code]++
	bits, _ := huffman.FixedLiteralCode(code)
	e.statFixed += bits
}

// PutLengthDistance buffers a back-reference of the given length and
// distance. 257 is used internally as a marker ahead of the (length, dist)
// pair in codelist, distinguishing a match from a literal/EOB symbol (which
// are always <= 256).
func (e *Encoder) PutLengthDistance(length, dist int) {
	e.codelist = append(e.codelist, 257, length, dist)
	lencode, lexbits, _ := huffman.EncodeLength(length)
	distcode, dexbits, _ := huffman.EncodeDistance(dist)
	e.litcounts[lencode]++
	e.distcounts[distcode]++
	lenbits, _ := huffman.FixedLiteralCode(lencode)
	e.statFixed += lenbits + lexbits + 5 + dexbits
	e.statExtra += lexbits + dexbits
	e.statLendist++
}

// EndBlock appends the end-of-block symbol and emits the block.
func (e *Encoder) EndBlock() error {
	e.codelist = append(e.codelist, 256)
	e.litcounts[256]++
	e.statFixed += 8
	return e.encodeBlock()
}

func (e *Encoder) encodeBlock() error {
	if len(e.codelist) == 1 { // nothing but the EOB symbol
		return e.encodeFixedBlock()
	}
	litsize := huffman.LimitedLengths(e.litcounts[:], litAlphabetSize, limit)
	distsize := huffman.LimitedLengths(e.distcounts[:], distAlphabetSize, limit)
	e.compressCustomTable(litsize, distsize)
	hcsize := huffman.LimitedLengths(e.hccounts[:], hcAlphabetSize, hcLimit)

	statCustom := e.estimateStatCustom(hcsize, litsize, distsize)
	statNon := max(statCustom, e.statFixed) + 8
	if e.statLendist == 0 {
		statNon = e.estimateStatNon()
	}
	statMin := min(statCustom, e.statFixed, statNon)

	switch statMin {
	case statCustom:
		return e.encodeCustomBlock(hcsize, litsize, distsize)
	case e.statFixed:
		return e.encodeFixedBlock()
	default:
		return e.encodePlainBlock()
	}
}

// encodePlainBlock emits the buffered bytes as one or more stored blocks
// (RFC 1951 3.2.4), splitting at 65535 bytes. It is only ever selected when
// statLendist is zero, so every symbol in codelist (besides the trailing
// EOB, which stored blocks carry no marker for) is a literal byte.
func (e *Encoder) encodePlainBlock() error {
	data := e.codelist[:len(e.codelist)-1]
	pos := 0
	remaining := len(data)
	for remaining > maxStoredLen {
		if err := e.writeStoredSegment(data[pos:pos+maxStoredLen], false); err != nil {
			return err
		}
		pos += maxStoredLen
		remaining -= maxStoredLen
	}
	return e.writeStoredSegment(data[pos:], true)
}

func (e *Encoder) writeStoredSegment(data []int, final bool) error {
	fin := uint32(0)
	if final {
		fin = 1
	}
	if err := e.bw.PutBit(fin); err != nil {
		return err
	}
	if err := e.bw.PutData(2, typeStored); err != nil {
		return err
	}
	n := uint32(len(data))
	if err := e.bw.Put2Byte(n); err != nil {
		return err
	}
	if err := e.bw.Put2Byte(n ^ 0xffff); err != nil {
		return err
	}
	for _, c := range data {
		if err := e.bw.PutByte(byte(c)); err != nil {
			return err
		}
	}
	return nil
}

// encodeFixedBlock emits the buffered symbols under the fixed Huffman code
// (RFC 1951 3.2.6), a single final block.
func (e *Encoder) encodeFixedBlock() error {
	if err := e.bw.PutBit(1); err != nil {
		return err
	}
	if err := e.bw.PutData(2, typeFixed); err != nil {
		return err
	}
	for i := 0; i < len(e.codelist); i++ {
		c := e.codelist[i]
		if c <= 256 {
			bits, huff := huffman.FixedLiteralCode(c)
			if err := e.bw.PutHuffman(bits, huff); err != nil {
				return err
			}
			continue
		}
		i++
		length := e.codelist[i]
		i++
		dist := e.codelist[i]
		lencode, lexbits, lextra := huffman.EncodeLength(length)
		distcode, dexbits, dextra := huffman.EncodeDistance(dist)
		lenbits, lenhuff := huffman.FixedLiteralCode(lencode)
		if err := e.bw.PutHuffman(lenbits, lenhuff); err != nil {
			return err
		}
		if lexbits > 0 {
			if err := e.bw.PutData(lexbits, lextra); err != nil {
				return err
			}
		}
		if err := e.bw.PutHuffman(5, uint32(distcode)); err != nil {
			return err
		}
		if dexbits > 0 {
			if err := e.bw.PutData(dexbits, dextra); err != nil {
				return err
			}
		}
	}
	return nil
}

// encodeCustomBlock emits the buffered symbols under a dynamic Huffman code
// (RFC 1951 3.2.7), a single final block. HLIT and HDIST are always
// transmitted at their maximum (the full 286-entry literal/length and
// 30-entry distance alphabets) rather than trimmed to the highest used
// code — simpler bookkeeping at the cost of a few wasted all-zero code
// length entries, same trade the original encoder makes.
func (e *Encoder) encodeCustomBlock(hcsize, litsize, distsize []int) error {
	hchuff := huffman.Canonical(hcsize, limit)
	lithuff := huffman.Canonical(litsize, limit)
	disthuff := huffman.Canonical(distsize, limit)

	if err := e.bw.PutBit(1); err != nil {
		return err
	}
	if err := e.bw.PutData(2, typeDynamic); err != nil {
		return err
	}
	if err := e.bw.PutData(5, uint32(litAlphabetSize-257)); err != nil {
		return err
	}
	if err := e.bw.PutData(5, uint32(distAlphabetSize-1)); err != nil {
		return err
	}
	if err := e.bw.PutData(4, uint32(hcAlphabetSize-4)); err != nil {
		return err
	}
	for _, i := range hcIndex {
		if err := e.bw.PutData(3, uint32(hcsize[i])); err != nil {
			return err
		}
	}
	for i := 0; i < len(e.hclist); i++ {
		c := e.hclist[i]
		if err := e.bw.PutHuffman(hcsize[c], uint32(hchuff[c])); err != nil {
			return err
		}
		switch c {
		case 16:
			i++
			if err := e.bw.PutData(2, uint32(e.hclist[i])); err != nil {
				return err
			}
		case 17:
			i++
			if err := e.bw.PutData(3, uint32(e.hclist[i])); err != nil {
				return err
			}
		case 18:
			i++
			if err := e.bw.PutData(7, uint32(e.hclist[i])); err != nil {
				return err
			}
		}
	}
	for i := 0; i < len(e.codelist); i++ {
		c := e.codelist[i]
		if c <= 256 {
			if err := e.bw.PutHuffman(litsize[c], uint32(lithuff[c])); err != nil {
				return err
			}
			continue
		}
		i++
		length := e.codelist[i]
		i++
		dist := e.codelist[i]
		lencode, lexbits, lextra := huffman.EncodeLength(length)
		distcode, dexbits, dextra := huffman.EncodeDistance(dist)
		if err := e.bw.PutHuffman(litsize[lencode], uint32(lithuff[lencode])); err != nil {
			return err
		}
		if lexbits > 0 {
			if err := e.bw.PutData(lexbits, lextra); err != nil {
				return err
			}
		}
		if err := e.bw.PutHuffman(distsize[distcode], uint32(disthuff[distcode])); err != nil {
			return err
		}
		if dexbits > 0 {
			if err := e.bw.PutData(dexbits, dextra); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Encoder) estimateStatCustom(hcsize, litsize, distsize []int) int {
	n := 5 + 5 + 4 + e.statExtra
	n += len(e.hccounts) * 3
	for i, c := range e.hccounts {
		n += c * hcsize[i]
	}
	for i, c := range e.litcounts {
		n += c * litsize[i]
	}
	for i, c := range e.distcounts {
		n += c * distsize[i]
	}
	return n
}

func (e *Encoder) estimateStatNon() int {
	m := (len(e.codelist) - 1) / maxStoredLen
	n := (len(e.codelist) - 1) % maxStoredLen
	return m*(maxStoredLen*8+32) + n*8 + 32
}

// compressCustomTable run-length encodes the literal/length and distance
// code length sequences into hclist/hccounts, ready to be Huffman-coded by
// the code-length alphabet (RFC 1951 3.2.7).
func (e *Encoder) compressCustomTable(litsize, distsize []int) {
	var code []int
	var runlength []int
	push := func(c int) {
		if len(code) > 0 && code[len(code)-1] == c {
			runlength[len(runlength)-1]++
			return
		}
		code = append(code, c)
		runlength = append(runlength, 1)
	}
	for _, c := range litsize {
		push(c)
	}
	for _, c := range distsize {
		push(c)
	}
	for i, c := range code {
		if c == 0 {
			e.runlengthZeros(runlength[i])
		} else {
			e.runlengthNonzeros(c, runlength[i])
		}
	}
}

func (e *Encoder) runlengthNonzeros(c, n int) {
	e.hclist = append(e.hclist, c)
	e.hccounts[c]++
	n--
	for ; n > 6; n -= 6 {
		e.hclist = append(e.hclist, 16, 3)
		e.hccounts[16]++
		e.statExtra += 2
	}
	if n >= 3 {
		e.hclist = append(e.hclist, 16, n-3)
		e.hccounts[16]++
		e.statExtra += 2
	} else if n > 0 {
		for i := 0; i < n; i++ {
			e.hclist = append(e.hclist, c)
		}
		e.hccounts[c] += n
	}
}

func (e *Encoder) runlengthZeros(n int) {
	for ; n > 138; n -= 138 {
		e.hclist = append(e.hclist, 18, 127)
		e.hccounts[18]++
		e.statExtra += 7
	}
	if n >= 11 {
		e.hclist = append(e.hclist, 18, n-11)
		e.hccounts[18]++
		e.statExtra += 7
	} else if n >= 3 {
		e.hclist = append(e.hclist, 17, n-3)
		e.hccounts[17]++
		e.statExtra += 3
	} else if n > 0 {
		for i := 0; i < n; i++ {
			e.hclist = append(e.hclist, 0)
		}
		e.hccounts[0] += n
	}
}
