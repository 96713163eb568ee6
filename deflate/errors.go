package deflate

// Error is a structural error in a DEFLATE bitstream — the input names a
// code, block type, or length field that RFC 1951 forbids. It carries no
// wrapped cause: by the time one of these is detected, the bitstream itself
// is the only context there is.
type Error string

func (e Error) Error() string { return "deflate: " + string(e) }

const (
	// ErrInvalidHuffman names a Huffman-coded symbol that matches no
	// assigned code. Decoder does not return it: a walk into a missing
	// decode-tree child surfaces as huffman.ErrInvalidCode.
	ErrInvalidHuffman Error = "invalid huffman code length"
	// ErrInvalidCoding is returned when a length or distance code is
	// outside the range RFC 1951 3.2.5 defines.
	ErrInvalidCoding Error = "invalid length/distance coding"
	// ErrInvalidBlockType is returned for a BTYPE value of 3 (reserved).
	ErrInvalidBlockType Error = "invalid block type"
	// ErrInvalidStoredBlock is returned when a stored block's LEN and NLEN
	// fields are not one's complements of each other.
	ErrInvalidStoredBlock Error = "invalid stored block: LEN/NLEN mismatch"
)
