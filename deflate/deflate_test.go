package deflate_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tociyuki/godeflate/crc32"
	"github.com/tociyuki/godeflate/deflate"
	"github.com/tociyuki/godeflate/lzss"
)

func roundTrip(t *testing.T, input string) string {
	t.Helper()

	var cdigest crc32.Digest
	cwin := lzss.NewWindow(&cdigest)
	var compressed bytes.Buffer
	enc := deflate.NewEncoder(&compressed)
	if _, err := cwin.Compress(strings.NewReader(input), enc); err != nil {
		t.Fatalf("Compress: %v", err)
	}

	var ddigest crc32.Digest
	dwin := lzss.NewWindow(&ddigest)
	dec := deflate.NewDecoder(&compressed)
	var out bytes.Buffer
	n, err := dec.Decode(dwin, &out)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n != len(input) {
		t.Errorf("Decode returned size %d, want %d", n, len(input))
	}
	if cdigest.Digest() != ddigest.Digest() {
		t.Errorf("CRC mismatch: compress=%#x decode=%#x", cdigest.Digest(), ddigest.Digest())
	}
	return out.String()
}

func TestRoundTripEmpty(t *testing.T) {
	if got := roundTrip(t, ""); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestRoundTripLiteralOnly(t *testing.T) {
	input := "The quick brown fox jumps over the lazy dog."
	if got := roundTrip(t, input); got != input {
		t.Errorf("got %q, want %q", got, input)
	}
}

func TestRoundTripRepetitive(t *testing.T) {
	input := strings.Repeat("abcabcabcabc", 2000)
	if got := roundTrip(t, input); got != input {
		t.Errorf("round trip mismatch, lengths got=%d want=%d", len(got), len(input))
	}
}

func TestRoundTripBinaryLike(t *testing.T) {
	buf := make([]byte, 5000)
	x := uint32(12345)
	for i := range buf {
		x = x*1664525 + 1013904223
		buf[i] = byte(x >> 24)
	}
	input := string(buf)
	if got := roundTrip(t, input); got != input {
		t.Errorf("round trip mismatch for pseudo-random input, lengths got=%d want=%d", len(got), len(input))
	}
}

func TestRoundTripLargeRepetitive(t *testing.T) {
	// A 200,000-byte input with a 7-byte period: it spans many windows and
	// yields long runs of back-references, so the encoder's whole input
	// goes into one Huffman-coded block (never a stored one, since
	// back-references are present).
	var b strings.Builder
	for i := 0; i < 200000; i++ {
		b.WriteByte(byte('a' + i%7))
	}
	input := b.String()
	if got := roundTrip(t, input); got != input {
		t.Errorf("round trip mismatch for large input, lengths got=%d want=%d", len(got), len(input))
	}
}
