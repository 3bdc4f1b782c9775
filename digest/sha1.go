// Package digest implements the SHA-1 digest engine used by the hash registry,
// the OAEP pad and the RSA signer.
//
// [SHA1] is a stateful Merkle–Damgård digest over an arbitrary byte stream. It also
// satisfies [hash.Hash], so it can be handed to code that expects a standard library
// hash constructor (MGF1, HKDF).
//
// A SHA1 value is not safe for concurrent use.
package digest

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash"

	"github.com/tarantool/go-cryptokit/cryptoerr"
)

const (
	// Size is the size of a SHA-1 digest in bytes.
	Size = 20
	// BlockSize is the SHA-1 block size in bytes.
	BlockSize = 64

	init0 = 0x67452301
	init1 = 0xEFCDAB89
	init2 = 0x98BADCFE
	init3 = 0x10325476
	init4 = 0xC3D2E1F0
)

// Empty is the published SHA-1 digest of the empty byte sequence.
//
//nolint:gochecknoglobals
var Empty = [Size]byte{
	0xda, 0x39, 0xa3, 0xee, 0x5e, 0x6b, 0x4b, 0x0d, 0x32, 0x55,
	0xbf, 0xef, 0x95, 0x60, 0x18, 0x90, 0xaf, 0xd8, 0x07, 0x09,
}

//nolint:gochecknoinits
func init() {
	if err := SelfTest(); err != nil {
		panic(err)
	}
}

// SHA1 is the running state of a SHA-1 computation.
type SHA1 struct {
	h    [5]uint32
	x    [BlockSize]byte
	nx   int
	bits uint64

	sum      [Size]byte
	finished bool
}

var _ hash.Hash = (*SHA1)(nil)

// NewSHA1 returns a SHA-1 digest in its initial state.
func NewSHA1() *SHA1 {
	d := new(SHA1)
	d.Reset()

	return d
}

// NewHash returns NewSHA1 as a [hash.Hash]. It matches the constructor shape
// expected by MGF1 and HKDF.
func NewHash() hash.Hash {
	return NewSHA1()
}

// Sum1 returns the SHA-1 digest of data.
func Sum1(data []byte) [Size]byte {
	d := NewSHA1()
	_, _ = d.Write(data)

	return d.checkSum()
}

// SelfTest compares the digest of the empty message with [Empty].
func SelfTest() error {
	got := Sum1(nil)
	if !bytes.Equal(got[:], Empty[:]) {
		return fmt.Errorf("sha1 self-check failed: empty digest %x, want %x", got, Empty)
	}

	return nil
}

// Reset reinitializes the digest for a new message.
func (d *SHA1) Reset() {
	d.h = [5]uint32{init0, init1, init2, init3, init4}
	d.nx = 0
	d.bits = 0
	d.finished = false
}

// Size returns [Size].
func (d *SHA1) Size() int { return Size }

// BlockSize returns [BlockSize].
func (d *SHA1) BlockSize() int { return BlockSize }

// Update appends a single byte.
func (d *SHA1) Update(b byte) {
	d.finished = false
	d.bits += 8

	d.x[d.nx] = b
	d.nx++

	if d.nx == BlockSize {
		block(d, d.x[:])
		d.nx = 0
	}
}

// UpdateUint16 appends v in big-endian order.
func (d *SHA1) UpdateUint16(v uint16) {
	var buf [2]byte

	binary.BigEndian.PutUint16(buf[:], v)
	_, _ = d.Write(buf[:])
}

// UpdateUint32 appends v in big-endian order.
func (d *SHA1) UpdateUint32(v uint32) {
	var buf [4]byte

	binary.BigEndian.PutUint32(buf[:], v)
	_, _ = d.Write(buf[:])
}

// UpdateUint64 appends v in big-endian order.
func (d *SHA1) UpdateUint64(v uint64) {
	var buf [8]byte

	binary.BigEndian.PutUint64(buf[:], v)
	_, _ = d.Write(buf[:])
}

// Write appends p to the running digest. It never returns an error.
func (d *SHA1) Write(p []byte) (int, error) {
	n := len(p)
	if n == 0 {
		return 0, nil
	}

	d.finished = false
	d.bits += uint64(n) << 3

	if d.nx > 0 {
		copied := copy(d.x[d.nx:], p)
		d.nx += copied

		if d.nx == BlockSize {
			block(d, d.x[:])
			d.nx = 0
		}

		p = p[copied:]
	}

	if len(p) >= BlockSize {
		full := len(p) &^ (BlockSize - 1)
		block(d, p[:full])
		p = p[full:]
	}

	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}

	return n, nil
}

// Digest finalizes the current message and returns its 20-byte digest.
// Repeated calls without an intervening update or reset return the cached value.
func (d *SHA1) Digest() []byte {
	if !d.finished {
		d.sum = d.checkSum()
		d.finished = true
	}

	out := make([]byte, Size)
	copy(out, d.sum[:])

	return out
}

// SumInto writes the digest to the beginning of buf and returns the number of bytes
// written. When reset is set the state is reinitialized afterwards.
func (d *SHA1) SumInto(reset bool, buf []byte) (int, error) {
	if len(buf) < Size {
		return 0, cryptoerr.OutputTooSmall("buf")
	}

	n := copy(buf, d.Digest())

	if reset {
		d.Reset()
	}

	return n, nil
}

// Sum appends the digest to in. It does not change the state.
func (d *SHA1) Sum(in []byte) []byte {
	return append(in, d.Digest()...)
}

// checkSum pads a copy of d, so the running state stays usable.
func (d *SHA1) checkSum() [Size]byte {
	d0 := *d
	bits := d0.bits

	var tmp [BlockSize + 8]byte

	tmp[0] = 0x80

	var padLen int
	if d0.nx < 56 {
		padLen = 56 - d0.nx
	} else {
		padLen = BlockSize + 56 - d0.nx
	}

	binary.BigEndian.PutUint64(tmp[padLen:], bits)
	_, _ = d0.Write(tmp[:padLen+8])

	if d0.nx != 0 {
		panic("sha1: block accumulator not empty after padding")
	}

	var out [Size]byte

	for i, v := range d0.h {
		binary.BigEndian.PutUint32(out[i*4:], v)
	}

	return out
}
