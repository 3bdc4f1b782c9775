// Package bigint holds the big-integer helpers shared by the key generators
// and the block ciphers.
package bigint

import (
	"math/big"
)

// Common big integers.
//
//nolint:gochecknoglobals
var (
	Zero  = big.NewInt(0)
	One   = big.NewInt(1)
	Two   = big.NewInt(2)
	Three = big.NewInt(3)
	Four  = big.NewInt(4)
)

// ByteLength returns ceil(bitLength(x)/8).
func ByteLength(x *big.Int) int {
	return (x.BitLen() + 7) / 8
}

// Coprime reports whether gcd(a, b) == 1.
func Coprime(a, b *big.Int) bool {
	return new(big.Int).GCD(nil, nil, a, b).Cmp(One) == 0
}

// ToTwosComplement encodes x as a minimal-length two's-complement big-endian
// sequence: a leading 0x00 is present only when the top bit of the magnitude is set
// for a non-negative value.
func ToTwosComplement(x *big.Int) []byte {
	switch x.Sign() {
	case 0:
		return []byte{0}
	case 1:
		mag := x.Bytes()
		if mag[0]&0x80 != 0 {
			return append([]byte{0}, mag...)
		}

		return mag
	}

	// Negative: encode 2^(8n) + x in the smallest n that keeps the sign bit set.
	n := ByteLength(new(big.Int).Neg(x)) + 1
	mod := new(big.Int).Lsh(One, uint(8*n))
	raw := new(big.Int).Add(mod, x).Bytes()

	out := make([]byte, n)
	for i := range out {
		out[i] = 0xff
	}

	copy(out[n-len(raw):], raw)

	// Drop redundant 0xff bytes.
	for len(out) > 1 && out[0] == 0xff && out[1]&0x80 != 0 {
		out = out[1:]
	}

	return out
}

// FromTwosComplement decodes a two's-complement big-endian sequence.
func FromTwosComplement(b []byte) *big.Int {
	x := new(big.Int).SetBytes(b)
	if len(b) > 0 && b[0]&0x80 != 0 {
		x.Sub(x, new(big.Int).Lsh(One, uint(8*len(b))))
	}

	return x
}
