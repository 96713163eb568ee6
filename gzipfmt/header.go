// Package gzipfmt wraps a deflate/lzss DEFLATE stream in the RFC 1952 gzip
// container: a 10-byte header, the compressed data, and an 8-byte trailer
// holding the CRC-32 and size of the uncompressed input.
package gzipfmt

// Error is a structural error in a gzip container: a bad magic number, an
// unsupported compression method, or a trailer that disagrees with what was
// actually decompressed.
type Error string

func (e Error) Error() string { return "gzip: " + string(e) }

const (
	// ErrNotGzip is returned when the two-byte magic number doesn't match.
	ErrNotGzip Error = "not a gzip stream (bad magic number)"
	// ErrUnsupportedCM is returned when the compression method byte isn't 8
	// (DEFLATE) — the only method this package, or RFC 1952, ever defines.
	ErrUnsupportedCM Error = "unsupported compression method"
	// ErrCRCMismatch is returned when the trailer's CRC-32 doesn't match
	// the CRC-32 actually computed over the decompressed bytes.
	ErrCRCMismatch Error = "CRC-32 mismatch"
	// ErrSizeMismatch is returned when the trailer's ISIZE doesn't match
	// the number of bytes actually produced by decompression.
	ErrSizeMismatch Error = "size mismatch"
)

const (
	magic1 = 0x1f
	magic2 = 0x8b
	cmDeflate = 8

	// OS byte this package writes: "Unix", matching the original encoder,
	// since there is no more specific platform worth naming.
	osUnix = 3

	flagFTEXT    = 1 << 0
	flagFHCRC    = 1 << 1
	flagFEXTRA   = 1 << 2
	flagFNAME    = 1 << 3
	flagFCOMMENT = 1 << 4
)
