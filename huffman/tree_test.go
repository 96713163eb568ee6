package huffman

import "testing"

func TestTreeRoundTrip(t *testing.T) {
	size := []int{3, 3, 3, 3, 3, 2, 4, 4}
	code := Canonical(size, 7)
	tree := BuildTree(size, code)

	for symbol, bits := range size {
		huff := code[symbol]
		pos := 0
		get := func() (uint32, error) {
			bit := (huff >> uint(bits-pos-1)) & 1
			pos++
			return uint32(bit), nil
		}
		got, err := tree.Decode(get)
		if err != nil {
			t.Fatalf("symbol %d: Decode error: %v", symbol, err)
		}
		if got != symbol {
			t.Errorf("symbol %d: Decode returned %d", symbol, got)
		}
	}
}

func TestTreeDecodePropagatesGetbitError(t *testing.T) {
	size := []int{1, 1}
	code := Canonical(size, 1)
	tree := BuildTree(size, code)
	calls := 0
	get := func() (uint32, error) {
		calls++
		return 0, errEOF
	}
	_, err := tree.Decode(get)
	if err != errEOF {
		t.Errorf("expected getbit's error to propagate, got %v", err)
	}
}

var errEOF = &sentinelErr{"eof"}

type sentinelErr struct{ s string }

func (e *sentinelErr) Error() string { return e.s }
