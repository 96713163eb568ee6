package godeflate_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	godeflate "github.com/tociyuki/godeflate"
)

func TestCompressDecompressRoundTrip(t *testing.T) {
	for _, input := range []string{
		"",
		"Hello, World!\n",
		strings.Repeat("x", 1000),
	} {
		var compressed, out bytes.Buffer
		if _, err := godeflate.Compress(&compressed, strings.NewReader(input)); err != nil {
			t.Fatalf("Compress(%q): %v", input, err)
		}
		n, err := godeflate.Decompress(&out, &compressed)
		if err != nil {
			t.Fatalf("Decompress(%q): %v", input, err)
		}
		if n != len(input) || out.String() != input {
			t.Errorf("round trip mismatch for %q: got %q (%d bytes)", input, out.String(), n)
		}
	}
}

// TestDecompressIndependentFixtures decodes gzip streams built by hand
// (not through this module's own Writer) to confirm the decoder accepts
// streams from an independent encoder, per spec.md scenario 5. One is the
// canonical 20-byte gzip-of-empty-input (a single fixed block holding only
// the end-of-block symbol); the other hand-assembles a STORED block, the
// simplest valid DEFLATE encoding any implementation could choose.
func TestDecompressIndependentFixtures(t *testing.T) {
	for _, tc := range []struct {
		file string
		want string
	}{
		{"empty.txt.gz", ""},
		{"hello-stored.txt.gz", "Hello, World!\n"},
	} {
		data, err := os.ReadFile(filepath.Join("testdata", tc.file))
		if err != nil {
			t.Fatalf("%s: %v", tc.file, err)
		}
		var out bytes.Buffer
		n, err := godeflate.Decompress(&out, bytes.NewReader(data))
		if err != nil {
			t.Fatalf("%s: Decompress: %v", tc.file, err)
		}
		if n != len(tc.want) || out.String() != tc.want {
			t.Errorf("%s: got %q (%d bytes), want %q", tc.file, out.String(), n, tc.want)
		}
	}
}

func TestDecompressMalformedStoredBlock(t *testing.T) {
	// header + BFINAL=1,BTYPE=00 byte (0x01) + LEN=0x0005 + NLEN=0xFFF0,
	// which fails the LEN == ^NLEN check (scenario 6).
	data := []byte{
		0x1f, 0x8b, 0x08, 0x00, 0, 0, 0, 0, 0, 0x03,
		0x01, 0x05, 0x00, 0xf0, 0xff,
	}
	var out bytes.Buffer
	if _, err := godeflate.Decompress(&out, bytes.NewReader(data)); err == nil {
		t.Fatal("expected an error decoding a malformed stored block")
	}
}
