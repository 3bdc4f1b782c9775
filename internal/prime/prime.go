// Package prime implements the probable-prime searches used by the BBS and RSA
// key generators.
//
// Primality is tested with a certainty exponent: a candidate accepted with
// certainty c is composite with probability at most 2^-c.
package prime

import (
	"fmt"
	"io"
	"math/big"

	"github.com/tarantool/go-cryptokit/cryptoerr"
	"github.com/tarantool/go-cryptokit/internal/bigint"
)

// DefaultCertainty is the certainty exponent used by the key generators.
const DefaultCertainty = 12

// Rounds converts a certainty exponent to a Miller-Rabin round count. Every round
// lets a composite through with probability at most 1/4.
func Rounds(certainty int) int {
	rounds := (certainty + 1) / 2
	if rounds < 1 {
		rounds = 1
	}

	return rounds
}

// IsProbable reports whether x is prime with the given certainty.
func IsProbable(x *big.Int, certainty int) bool {
	return x.ProbablyPrime(Rounds(certainty))
}

// Candidate reads an odd integer of exactly bits bits with the two top bits set,
// so the product of two candidates has exactly twice as many bits.
func Candidate(rnd io.Reader, bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, cryptoerr.InvalidArgument("bits")
	}

	buf := make([]byte, (bits+7)/8)
	if _, err := io.ReadFull(rnd, buf); err != nil {
		return nil, fmt.Errorf("failed to read candidate: %w", err)
	}

	// Clear the bits above the requested length.
	excess := uint(len(buf)*8 - bits)
	buf[0] &= byte(0xff >> excess)

	c := new(big.Int).SetBytes(buf)
	c.SetBit(c, bits-1, 1)
	c.SetBit(c, bits-2, 1)
	c.SetBit(c, 0, 1)

	return c, nil
}

// Probable samples candidates of bits bits until one passes the primality test.
// It returns the prime and the number of candidates drawn.
func Probable(rnd io.Reader, bits, certainty int) (*big.Int, int, error) {
	for attempts := 1; ; attempts++ {
		c, err := Candidate(rnd, bits)
		if err != nil {
			return nil, attempts, err
		}

		if IsProbable(c, certainty) {
			return c, attempts, nil
		}
	}
}

// Blum draws probable primes until one is congruent to 3 mod 4. It returns the
// prime and the total number of candidates drawn.
func Blum(rnd io.Reader, bits, certainty int) (*big.Int, int, error) {
	total := 0
	mod := new(big.Int)

	for {
		p, attempts, err := Probable(rnd, bits, certainty)
		total += attempts

		if err != nil {
			return nil, total, err
		}

		if mod.Mod(p, bigint.Four).Cmp(bigint.Three) == 0 {
			return p, total, nil
		}
	}
}
