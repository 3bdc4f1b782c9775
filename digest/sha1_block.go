package digest

import (
	"encoding/binary"
	"math/bits"
)

const (
	k0 = 0x5A827999
	k1 = 0x6ED9EBA1
	k2 = 0x8F1BBCDC
	k3 = 0xCA62C1D6
)

// block runs the 80-round compression function over every full block of p.
func block(d *SHA1, p []byte) {
	var w [16]uint32

	h0, h1, h2, h3, h4 := d.h[0], d.h[1], d.h[2], d.h[3], d.h[4]

	for len(p) >= BlockSize {
		for i := range 16 {
			w[i] = binary.BigEndian.Uint32(p[i*4:])
		}

		a, b, c, dd, e := h0, h1, h2, h3, h4

		i := 0
		for ; i < 20; i++ {
			f := (b & (c ^ dd)) ^ dd
			t := bits.RotateLeft32(a, 5) + f + e + schedule(&w, i) + k0
			a, b, c, dd, e = t, a, bits.RotateLeft32(b, 30), c, dd
		}

		for ; i < 40; i++ {
			f := b ^ c ^ dd
			t := bits.RotateLeft32(a, 5) + f + e + schedule(&w, i) + k1
			a, b, c, dd, e = t, a, bits.RotateLeft32(b, 30), c, dd
		}

		for ; i < 60; i++ {
			f := (b & c) | (dd & (b | c))
			t := bits.RotateLeft32(a, 5) + f + e + schedule(&w, i) + k2
			a, b, c, dd, e = t, a, bits.RotateLeft32(b, 30), c, dd
		}

		for ; i < 80; i++ {
			f := b ^ c ^ dd
			t := bits.RotateLeft32(a, 5) + f + e + schedule(&w, i) + k3
			a, b, c, dd, e = t, a, bits.RotateLeft32(b, 30), c, dd
		}

		h0 += a
		h1 += b
		h2 += c
		h3 += dd
		h4 += e

		p = p[BlockSize:]
	}

	d.h[0], d.h[1], d.h[2], d.h[3], d.h[4] = h0, h1, h2, h3, h4
}

// schedule returns the message word for round i, expanding the ring in place
// once the first 16 words are consumed.
func schedule(w *[16]uint32, i int) uint32 {
	if i < 16 {
		return w[i]
	}

	tmp := w[(i-3)&0xf] ^ w[(i-8)&0xf] ^ w[(i-14)&0xf] ^ w[i&0xf]
	w[i&0xf] = bits.RotateLeft32(tmp, 1)

	return w[i&0xf]
}
