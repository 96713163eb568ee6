package huffman

import "reflect"

import "testing"

func TestCanonicalRFC1951Example(t *testing.T) {
	// RFC 1951 3.2.2's worked example: symbols A-H with lengths 3,3,3,3,3,2,4,4.
	size := []int{3, 3, 3, 3, 3, 2, 4, 4}
	want := []int{2, 3, 4, 5, 6, 0, 14, 15}
	got := Canonical(size, 7)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Canonical(%v) = %v, want %v", size, got, want)
	}
}

func TestCanonicalSkipsZeroLength(t *testing.T) {
	size := []int{0, 1, 0, 1}
	got := Canonical(size, 4)
	if got[0] != 0 || got[2] != 0 {
		t.Errorf("unused symbols should keep code 0, got %v", got)
	}
	if got[1] == got[3] {
		t.Errorf("distinct 1-bit symbols must get distinct codes, got %v", got)
	}
}

func TestCanonicalSingleSymbol(t *testing.T) {
	size := []int{1}
	got := Canonical(size, 1)
	if got[0] != 0 {
		t.Errorf("single-symbol code should be 0, got %v", got)
	}
}
