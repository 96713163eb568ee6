// Package fuzzutil generates test corpora for round-trip property testing
// of the compression engine: predictable and reproducible pseudorandom
// byte streams, and named patterns that exercise LZSS match-length and
// distance edge cases.
package fuzzutil

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Seed for the pseudorandom generator, shared by every call to
// PredictableRandomData so test fixtures stay stable across runs.
const fixedSeed = 0x1234

var randSource rand.Source

func init() {
	seed := time.Now().UnixNano()
	fmt.Printf("rand seed for ReproducibleRandomData: %v\n", seed)
	randSource = rand.NewSource(seed)
}

// PredictableRandomData generates size bytes of pseudorandom data from a
// fixed, known seed: the same bytes every run, useful for fixtures that
// need to be diffed or embedded verbatim.
func PredictableRandomData(size int) []byte {
	gen := rand.New(rand.NewSource(fixedSeed))
	out := make([]byte, size)
	for i := range out {
		out[i] = byte(gen.Intn(256))
	}
	return out
}

// ReproducibleRandomData uses the random seed this package's init printed,
// so a failing test can be reproduced by setting that seed explicitly.
func ReproducibleRandomData(size int) []byte {
	gen := rand.New(randSource)
	out := make([]byte, size)
	for i := range out {
		out[i] = byte(gen.Intn(256))
	}
	return out
}

// RepeatedPattern returns s repeated until the result is at least n bytes
// long, truncated to exactly n: a quick way to build input dominated by
// one short back-reference distance.
func RepeatedPattern(s string, n int) []byte {
	if len(s) == 0 {
		return nil
	}
	var b strings.Builder
	b.Grow(n)
	for b.Len() < n {
		b.WriteString(s)
	}
	return []byte(b.String()[:n])
}

// LongRun returns n copies of c: the degenerate case where every match
// after the first Threshold bytes can extend all the way to DataSize.
func LongRun(c byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = c
	}
	return out
}

// EdgeCasePatterns returns a named set of inputs chosen to exercise LZSS's
// match-length and back-reference-distance boundaries (Threshold, the
// DataSize cap, and distances that straddle the WinSize boundary), plus a
// few degenerate sizes (empty, single byte), repeated plain text, and 64 KiB
// of pseudorandom bytes.
// Sizes below intentionally mirror lzss.Threshold (3), lzss.DataSize (258)
// and lzss.WinSize (32768) without importing that package, so this corpus
// stays usable by any caller regardless of its own import graph.
func EdgeCasePatterns() map[string][]byte {
	const (
		threshold = 3
		dataSize  = 258
		winSize   = 32768
	)
	return map[string][]byte{
		"empty":                 nil,
		"single-byte":           []byte("x"),
		"below-match-threshold": LongRun('a', threshold-1),
		"at-match-threshold":    LongRun('a', threshold),
		"max-match-length":      LongRun('a', dataSize),
		"max-match-length-plus": LongRun('a', dataSize+1),
		"distance-at-window":    append(LongRun('b', winSize), LongRun('a', dataSize)...),
		"distance-past-window":  append(LongRun('b', winSize+1), LongRun('a', dataSize)...),
		"mixed-text":            RepeatedPattern("the quick brown fox jumps over the lazy dog. ", 10000),
		"binary-random":         PredictableRandomData(65536),
	}
}
