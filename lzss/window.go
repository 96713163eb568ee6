// Package lzss implements the LZSS string-matching stage DEFLATE runs ahead
// of Huffman coding (RFC 1951 3.2.1): a 32 KiB sliding window, a chained
// hash table over 3-byte prefixes for finding candidate matches, and the
// symmetric literal/back-reference replay a decoder uses to rebuild the
// original bytes.
package lzss

import (
	"bufio"
	"io"
)

const (
	// WinSize is the maximum back-reference distance DEFLATE allows.
	WinSize = 32768
	// DataSize is the longest match length DEFLATE's length codes can carry.
	DataSize = 258
	// Threshold is the shortest run length worth coding as a match rather
	// than literals.
	Threshold = 3
	// BufSize is the ring buffer's capacity: large enough to hold a full
	// window plus the longest possible match, with headroom.
	BufSize = 65536
	// HashSize is the number of hash-chain buckets (2^hashLog2).
	HashSize  = 8192
	hashLog2  = 13
	hashFrac  = 0x009e416d // Knuth multiplicative hash constant, TAOCP vol.3 6.4
)

// Digest accumulates a running checksum over bytes as they pass through the
// window, in both the compress and decompress directions — the same digest
// hook the original lzss_compression holds so CRC-32 is computed for free
// alongside the match search instead of as a separate pass.
type Digest interface {
	Put([]byte)
	Digest() uint32
	Clear()
}

// Encoder receives the literal and length/distance symbols a Window's
// Compress method produces, and is responsible for assembling them into
// Huffman-coded DEFLATE blocks.
type Encoder interface {
	StartBlock()
	PutLiteral(c int)
	PutLengthDistance(length, dist int)
	EndBlock() error
}

// Window is the LZSS compression/decompression state: a ring buffer holding
// the last BufSize bytes seen, and a chained hash table over 3-byte
// prefixes used to find earlier occurrences of the bytes about to be coded.
type Window struct {
	buf        [BufSize]byte
	msize      int
	top        [HashSize]int
	idx        [BufSize]int
	digest     Digest
	progressCh chan<- Progress
	reported   int
}

// Progress reports how many bytes have passed through a Window so far:
// input consumed by Compress, or bytes reconstructed by the decompress
// methods. Each report pertains to one pass; there is no per-block
// granularity to report beneath that, since a Window always assembles its
// entire input into a single DEFLATE block.
type Progress struct {
	Bytes int64
}

// Option configures a Window at construction time.
type Option func(*Window)

// WithProgress sets the channel Progress updates are sent to, roughly every
// progressStride bytes plus one final report at completion: from Compress
// when compressing, and from DecompressLiteral and FlushProgress when
// decompressing. The channel is never closed by the Window; the caller owns
// its lifetime, mirroring how pbzip2's
// BZSendUpdates hands a channel to its Decompressor rather than owning one.
func WithProgress(ch chan<- Progress) Option {
	return func(w *Window) { w.progressCh = ch }
}

// progressStride is how often, in input bytes, Compress reports progress.
const progressStride = 4096

// NewWindow returns a Window that accumulates digest over every byte it
// sees, whether by direct literal or by replaying a back-reference.
func NewWindow(digest Digest, opts ...Option) *Window {
	w := &Window{digest: digest}
	for _, opt := range opts {
		opt(w)
	}
	w.reset()
	return w
}

func (w *Window) reportProgress(final bool) {
	if w.progressCh == nil {
		return
	}
	if !final && w.msize-w.reported < progressStride {
		return
	}
	w.reported = w.msize
	w.progressCh <- Progress{Bytes: int64(w.msize)}
}

// Size returns the total number of bytes that have passed through the
// window so far, by literal or by back-reference replay.
func (w *Window) Size() int { return w.msize }

func (w *Window) reset() {
	for i := range w.top {
		w.top[i] = -WinSize
	}
	for i := range w.idx {
		w.idx[i] = -WinSize
	}
	w.msize = 0
	w.reported = 0
}

func (w *Window) put(c byte) {
	w.buf[w.msize%BufSize] = c
	w.msize++
	w.digest.Put([]byte{c})
}

// DecompressLiteral writes a single literal byte to out and folds it into
// the window (and digest) as history for subsequent back-references.
func (w *Window) DecompressLiteral(out io.Writer, c byte) error {
	if _, err := out.Write([]byte{c}); err != nil {
		return err
	}
	w.put(c)
	w.reportProgress(false)
	return nil
}

// FlushProgress sends a final Progress report covering every byte the
// Window has processed, if a progress channel was registered with
// WithProgress. Decoder.Decode calls this once a stream's final block has
// been fully replayed, since the decompress path has no single Compress
// call to emit one from.
func (w *Window) FlushProgress() {
	w.reportProgress(true)
}

// DecompressLengthDistance replays a back-reference of the given length and
// distance, writing the reconstructed bytes to out. length may exceed dist
// (an overlapping copy), which works because each byte is folded into the
// window before the next one is read, exactly as encoding read them.
func (w *Window) DecompressLengthDistance(out io.Writer, length, dist int) error {
	i := w.msize - dist
	for j := 0; j < length; j++ {
		c := w.buf[i%BufSize]
		i++
		if err := w.DecompressLiteral(out, c); err != nil {
			return err
		}
	}
	return nil
}

// index3gram hashes the 3-byte prefix starting at cur into the hash table,
// chaining it onto whatever position previously hashed to the same bucket,
// and returns that previous position (the head of the chain before this
// call), or -WinSize without indexing anything if fewer than four buffered
// bytes start at cur (cur+3 >= Size()).
func (w *Window) index3gram(cur int) int {
	if cur+3 >= w.msize {
		return -WinSize
	}
	k := uint32(w.buf[cur%BufSize])<<16 |
		uint32(w.buf[(cur+1)%BufSize])<<8 |
		uint32(w.buf[(cur+2)%BufSize])
	h := ((k * hashFrac) & 0x00ffffff) >> (24 - hashLog2)
	prev := w.top[h]
	w.idx[cur%BufSize] = prev
	w.top[h] = cur
	return prev
}

// longestMatch searches the hash chain for cur's 3-byte prefix for the
// longest run of bytes matching what's at cur, within WinSize back. It
// returns false if no match of at least Threshold bytes is found.
func (w *Window) longestMatch(cur int) (length, dist int, ok bool) {
	if cur+Threshold >= w.msize {
		return 0, 0, false
	}
	longestPos := cur
	longestSize := 0
	pos := w.index3gram(cur)
	for cur-pos < WinSize {
		n := 0
		for n < DataSize && cur+n < w.msize {
			if w.buf[(pos+n)%BufSize] != w.buf[(cur+n)%BufSize] {
				break
			}
			n++
		}
		if n >= Threshold && n > longestSize {
			longestPos = pos
			longestSize = n
		}
		pos = w.idx[pos%BufSize]
	}
	return longestSize, cur - longestPos, longestSize > 0
}

// Compress reads r to completion, feeding literal bytes and length/distance
// matches to enc, and returns the total number of bytes read. It buffers
// DataSize+1 bytes of lookahead before starting the match search (so the
// first match attempt already has a full window to search against) and
// applies one step of lazy matching: before committing to a match at cur,
// it also checks for a longer match at cur+1, emitting a literal and
// deferring to the better match when one exists.
func (w *Window) Compress(r io.Reader, enc Encoder) (int, error) {
	br := bufio.NewReader(r)
	get := func() (int, error) {
		c, err := br.ReadByte()
		if err == io.EOF {
			return -1, nil
		}
		if err != nil {
			return -1, err
		}
		return int(c), nil
	}

	w.reset()
	for i := 0; i < DataSize+1; i++ {
		c, err := get()
		if err != nil {
			return 0, err
		}
		if c == -1 {
			break
		}
		w.put(byte(c))
	}

	enc.StartBlock()
	for cur := 0; cur < w.msize; {
		length, dist, m := w.longestMatch(cur)
		var lenlazy, distlazy int
		var mlazy bool
		if m {
			lenlazy, distlazy, mlazy = w.longestMatch(cur + 1)
		}
		matchOffset := 2
		if !m || (mlazy && length < lenlazy) {
			c := w.buf[cur%BufSize]
			cur++
			enc.PutLiteral(int(c))
			nc, err := get()
			if err != nil {
				return 0, err
			}
			if nc != -1 {
				w.put(byte(nc))
			}
			if !m {
				continue
			}
			m = mlazy
			length = lenlazy
			dist = distlazy
			matchOffset = 1
		}
		enc.PutLengthDistance(length, dist)
		for i := matchOffset; i < length; i++ {
			w.index3gram(cur + i)
		}
		for i := 0; i < length; i++ {
			nc, err := get()
			if err != nil {
				return 0, err
			}
			if nc == -1 {
				break
			}
			w.put(byte(nc))
		}
		cur += length
		w.reportProgress(false)
	}
	if err := enc.EndBlock(); err != nil {
		return 0, err
	}
	w.reportProgress(true)
	return w.msize, nil
}
