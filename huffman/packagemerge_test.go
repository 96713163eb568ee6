package huffman

import "testing"

func kraftSum(size []int) float64 {
	var sum float64
	for _, n := range size {
		if n > 0 {
			sum += 1.0 / float64(int(1)<<uint(n))
		}
	}
	return sum
}

func TestLimitedLengthsKraftInequality(t *testing.T) {
	counts := []int{1, 1, 2, 3, 5, 8, 13, 21, 34, 55}
	size := LimitedLengths(counts, len(counts), 7)
	if sum := kraftSum(size); sum > 1.0+1e-9 {
		t.Errorf("Kraft sum %v exceeds 1 for lengths %v", sum, size)
	}
	for i, n := range size {
		if counts[i] > 0 && n == 0 {
			t.Errorf("symbol %d has nonzero count but zero length", i)
		}
		if n > 7 {
			t.Errorf("symbol %d length %d exceeds limit 7", i, n)
		}
	}
}

func TestLimitedLengthsSingleSymbol(t *testing.T) {
	counts := []int{0, 0, 9, 0}
	size := LimitedLengths(counts, 4, 15)
	if size[2] != 1 {
		t.Errorf("lone symbol should get length 1, got %v", size)
	}
}

func TestLimitedLengthsNoSymbols(t *testing.T) {
	size := LimitedLengths([]int{0, 0, 0}, 3, 7)
	for i, n := range size {
		if n != 0 {
			t.Errorf("symbol %d: expected length 0 with no counts, got %d", i, n)
		}
	}
}

func TestLimitedLengthsRespectsLimit(t *testing.T) {
	// Heavily skewed frequencies (Fibonacci-like) would need >limit bits for
	// the rarest symbol under an unconstrained Huffman tree; package-merge
	// must still respect the limit.
	counts := make([]int, 19)
	counts[0] = 1
	f0, f1 := 1, 1
	for i := 1; i < len(counts); i++ {
		counts[i] = f1
		f0, f1 = f1, f0+f1
	}
	size := LimitedLengths(counts, len(counts), 7)
	for i, n := range size {
		if n > 7 {
			t.Errorf("symbol %d length %d exceeds limit 7", i, n)
		}
	}
	if sum := kraftSum(size); sum > 1.0+1e-9 {
		t.Errorf("Kraft sum %v exceeds 1", sum)
	}
}
