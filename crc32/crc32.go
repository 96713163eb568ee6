// Package crc32 implements the IEEE-802.3 CRC-32 (polynomial 0xEDB88320,
// bit-reversed 0x04C11DB7) accumulator used by the gzip trailer.
package crc32

import (
	"hash/crc32"
	"sync"
)

// table is built lazily on first use, mirroring the "lazy table
// construction" the original digest_crc32 implements with its table_ok
// flag.
var (
	tableOnce sync.Once
	table     *crc32.Table
)

func fillTable() {
	tableOnce.Do(func() {
		table = crc32.IEEETable
	})
}

// Digest accumulates an IEEE-802.3 CRC-32 over a byte stream.
type Digest struct {
	crc uint32
}

// Clear resets the accumulator to its initial state.
func (d *Digest) Clear() {
	d.crc = 0
}

// Put folds buf into the running CRC.
func (d *Digest) Put(buf []byte) {
	fillTable()
	d.crc = crc32.Update(d.crc, table, buf)
}

// PutByte folds a single byte into the running CRC.
func (d *Digest) PutByte(c byte) {
	d.Put([]byte{c})
}

// Digest returns the CRC-32 of every byte Put so far.
func (d *Digest) Digest() uint32 {
	return d.crc
}
