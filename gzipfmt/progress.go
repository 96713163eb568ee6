package gzipfmt

import "github.com/tociyuki/godeflate/lzss"

// Progress reports how many bytes a Writer's CompressFrom has consumed, or
// a Reader's DecompressInto has produced, so far. It is the same report
// lzss.Window produces;
// gzipfmt re-exports the type so callers need not import lzss themselves.
type Progress = lzss.Progress

// WithProgress returns a NewWriter/NewReader option that sends a Progress
// report to ch roughly every 4 KiB of bytes processed, plus a final report
// at completion. Mirrors pbzip2's BZSendUpdates: the caller owns ch and it
// is never closed by the Writer or Reader.
func WithProgress(ch chan<- Progress) lzss.Option {
	return lzss.WithProgress(ch)
}
