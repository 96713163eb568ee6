package main

import (
	"io"

	"github.com/schollz/progressbar/v2"

	"github.com/tociyuki/godeflate/gzipfmt"
)

// runProgressBar drives a progressbar.ProgressBar off ch until it is
// closed, adding the delta between successive reports' byte counts. size
// is the total input size if known, or -1 for an unbounded spinner (stdin
// has no a priori length).
func runProgressBar(w io.Writer, ch <-chan gzipfmt.Progress, size int64) {
	bar := progressbar.NewOptions64(size,
		progressbar.OptionSetBytes64(size),
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetPredictTime(true))
	bar.RenderBlank()
	var seen int64
	for p := range ch {
		bar.Add(int(p.Bytes - seen))
		seen = p.Bytes
	}
	io.WriteString(w, "\n")
}
