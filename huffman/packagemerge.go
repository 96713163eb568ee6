package huffman

import "sort"

// coin is a package-merge "coin": a candidate merge carrying the combined
// weight of the leaves it represents. leaves replaces the shared-pointer
// pair_coin/coin class hierarchy of the original package-merge
// implementation with a flat, pre-expanded leaf list — merging two coins is
// just concatenating their leaves, no tree walk needed at accumulation time.
type coin struct {
	weight int
	leaves []int
}

// LimitedLengths computes code lengths for nhfsize symbols, limited to at
// most limit bits, via the package-merge algorithm (an optimal
// length-limited prefix code construction — see
// https://en.wikipedia.org/wiki/Package-merge_algorithm). counts[i] is the
// frequency of symbol i; symbols with a zero count are left unused (length
// 0) in the result.
func LimitedLengths(counts []int, nhfsize, limit int) []int {
	hfsize := make([]int, nhfsize)

	var freq []coin
	for i, n := range counts {
		if n > 0 {
			freq = append(freq, coin{weight: n, leaves: []int{i}})
		}
	}
	if len(freq) == 1 {
		hfsize[freq[0].leaves[0]] = 1
		return hfsize
	}
	if len(freq) <= 1 {
		return hfsize
	}

	sort.SliceStable(freq, func(i, j int) bool { return freq[i].weight < freq[j].weight })

	coins := append([]coin(nil), freq...)
	for i := limit - 1; i >= 0; i-- {
		var pairs []coin
		for j := 0; j+1 < len(coins); j += 2 {
			leaves := make([]int, 0, len(coins[j].leaves)+len(coins[j+1].leaves))
			leaves = append(leaves, coins[j].leaves...)
			leaves = append(leaves, coins[j+1].leaves...)
			pairs = append(pairs, coin{weight: coins[j].weight + coins[j+1].weight, leaves: leaves})
		}
		if i == 0 {
			coins = pairs
			continue
		}
		coins = mergeByWeight(freq, pairs)
	}

	for i := 0; i < len(freq)-1; i++ {
		for _, leaf := range coins[i].leaves {
			hfsize[leaf]++
		}
	}
	return hfsize
}

// mergeByWeight stably merges two weight-ascending coin slices, preferring
// a from a on ties — the same tie-break std::merge gives the original
// freq/pairs merge.
func mergeByWeight(a, b []coin) []coin {
	merged := make([]coin, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		if j >= len(b) || (i < len(a) && a[i].weight <= b[j].weight) {
			merged = append(merged, a[i])
			i++
		} else {
			merged = append(merged, b[j])
			j++
		}
	}
	return merged
}
