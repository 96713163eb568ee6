package bitio

import (
	"bytes"
	"io"
	"testing"
)

func TestPutDataGetDataRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	values := []struct{ n int; v uint32 }{
		{3, 5}, {5, 17}, {1, 1}, {8, 200}, {0, 0}, {13, 7777},
	}
	for _, tc := range values {
		if err := w.PutData(tc.n, tc.v); err != nil {
			t.Fatalf("PutData: %v", err)
		}
	}
	// pad to a byte boundary
	for w.bitpos != 0 {
		if err := w.PutBit(0); err != nil {
			t.Fatalf("PutBit: %v", err)
		}
	}

	r := NewReader(&buf)
	for i, tc := range values {
		got, err := r.GetData(tc.n)
		if err != nil {
			t.Fatalf("case %d: GetData: %v", i, err)
		}
		if got != tc.v {
			t.Errorf("case %d: GetData(%d) = %d, want %d", i, tc.n, got, tc.v)
		}
	}
}

func TestPutHuffmanIsMSBFirst(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	// code 0b101 (5), 3 bits: MSB first means bits written are 1,0,1.
	if err := w.PutHuffman(3, 5); err != nil {
		t.Fatalf("PutHuffman: %v", err)
	}
	for i := 0; i < 5; i++ {
		if err := w.PutBit(0); err != nil {
			t.Fatalf("PutBit: %v", err)
		}
	}
	r := NewReader(&buf)
	want := []uint32{1, 0, 1}
	for i, w := range want {
		b, err := r.GetBit()
		if err != nil {
			t.Fatalf("GetBit: %v", err)
		}
		if b != w {
			t.Errorf("bit %d = %d, want %d", i, b, w)
		}
	}
}

func TestByteAlignment(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.PutData(3, 5); err != nil { // leaves a partial byte
		t.Fatalf("PutData: %v", err)
	}
	if err := w.PutByte(0xab); err != nil { // should flush the partial byte first
		t.Fatalf("PutByte: %v", err)
	}
	if buf.Len() != 2 {
		t.Fatalf("expected 2 bytes written, got %d", buf.Len())
	}
	if buf.Bytes()[1] != 0xab {
		t.Errorf("second byte = %#x, want 0xab", buf.Bytes()[1])
	}

	r := NewReader(&buf)
	if _, err := r.GetBit(); err != nil { // partially consume the first byte
		t.Fatalf("GetBit: %v", err)
	}
	c, err := r.GetByte() // must discard the rest of the first byte and read fresh
	if err != nil {
		t.Fatalf("GetByte: %v", err)
	}
	if c != 0xab {
		t.Errorf("GetByte() = %#x, want 0xab", c)
	}
}

func TestMultiByteLittleEndian(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.Put2Byte(0x1234); err != nil {
		t.Fatalf("Put2Byte: %v", err)
	}
	if err := w.Put4Byte(0xdeadbeef); err != nil {
		t.Fatalf("Put4Byte: %v", err)
	}
	want := []byte{0x34, 0x12, 0xef, 0xbe, 0xad, 0xde}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("bytes = % x, want % x", buf.Bytes(), want)
	}

	r := NewReader(&buf)
	v2, err := r.Get2Byte()
	if err != nil || v2 != 0x1234 {
		t.Errorf("Get2Byte() = %#x, %v, want 0x1234", v2, err)
	}
	v4, err := r.Get4Byte()
	if err != nil || v4 != 0xdeadbeef {
		t.Errorf("Get4Byte() = %#x, %v, want 0xdeadbeef", v4, err)
	}
}

func TestGetASCIIZ(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("hello\x00world")
	r := NewReader(&buf)
	s, err := r.GetASCIIZ()
	if err != nil {
		t.Fatalf("GetASCIIZ: %v", err)
	}
	if string(s) != "hello" {
		t.Errorf("GetASCIIZ() = %q, want %q", s, "hello")
	}
}

func TestReaderUnexpectedEOF(t *testing.T) {
	r := NewReader(bytes.NewReader(nil))
	if _, err := r.GetBit(); err != io.ErrUnexpectedEOF {
		t.Errorf("GetBit() on empty input = %v, want io.ErrUnexpectedEOF", err)
	}
}
