// Package rsa implements textbook RSA over single blocks: key generation,
// raw encipher and decipher, and signing of digests.
//
// Inputs and outputs are unsigned big-endian integers. Outputs are trimmed to
// their minimal length, so callers that need fixed-size blocks pad them with
// [Cipher.Pad]. No padding scheme is applied here; see package rsao.
package rsa

import (
	"math/big"

	"github.com/tarantool/go-cryptokit/cryptoerr"
)

// Cipher enciphers and deciphers single blocks under one key.
type Cipher struct {
	key      Key
	blockLen int
}

// NewCipher returns a cipher for key.
func NewCipher(key Key) (*Cipher, error) {
	if key.N == nil || key.N.Sign() <= 0 {
		return nil, cryptoerr.InvalidArgument("key")
	}

	return &Cipher{
		key:      key,
		blockLen: key.BlockLength(),
	}, nil
}

// Key returns the key the cipher was built with.
func (c *Cipher) Key() Key {
	return c.key
}

// BlockLengthPlain returns the largest plaintext block in bytes.
func (c *Cipher) BlockLengthPlain() int {
	return c.blockLen
}

// BlockLengthCipher returns the largest ciphertext block in bytes.
func (c *Cipher) BlockLengthCipher() int {
	return c.blockLen
}

// EncipherOutputLength returns the output buffer length needed to encipher n
// bytes, or -1 if n exceeds the plaintext block length.
func (c *Cipher) EncipherOutputLength(n int) int {
	if n > c.blockLen {
		return -1
	}

	return c.blockLen
}

// DecipherOutputLength returns the output buffer length needed to decipher n
// bytes, or -1 if n exceeds the ciphertext block length.
func (c *Cipher) DecipherOutputLength(n int) int {
	if n > c.blockLen {
		return -1
	}

	return c.blockLen
}

func (c *Cipher) apply(exp *big.Int, dst, src []byte) (int, error) {
	if len(src) > c.blockLen {
		return 0, errOversizedBlock()
	}

	m := new(big.Int).SetBytes(src)
	if m.Cmp(c.key.N) >= 0 {
		return 0, errOversizedBlock()
	}

	out := m.Exp(m, exp, c.key.N).Bytes()
	if len(dst) < len(out) {
		return 0, errShortOutput()
	}

	return copy(dst, out), nil
}

// Encipher computes src^e mod n into dst and returns the number of bytes
// written. src must be numerically below n.
func (c *Cipher) Encipher(dst, src []byte) (int, error) {
	e, ok := c.key.E.Get()
	if !ok {
		return 0, errMissingExponent("encipher")
	}

	return c.apply(e, dst, src)
}

// Decipher computes src^d mod n into dst and returns the number of bytes
// written.
func (c *Cipher) Decipher(dst, src []byte) (int, error) {
	d, ok := c.key.D.Get()
	if !ok {
		return 0, errMissingExponent("decipher")
	}

	return c.apply(d, dst, src)
}

// Sign deciphers the raw digest bytes with the private exponent.
func (c *Cipher) Sign(digest []byte) ([]byte, error) {
	out := make([]byte, c.blockLen)

	n, err := c.Decipher(out, digest)
	if err != nil {
		return nil, err
	}

	return out[:n], nil
}

// Verify enciphers signature with the public exponent and compares the result
// with digest as an integer.
func (c *Cipher) Verify(digest, signature []byte) error {
	out := make([]byte, c.blockLen)

	n, err := c.Encipher(out, signature)
	if err != nil {
		return err
	}

	if new(big.Int).SetBytes(out[:n]).Cmp(new(big.Int).SetBytes(digest)) != 0 {
		return ErrSignatureMismatch
	}

	return nil
}

// CanPad reports whether a block of n bytes can be padded to the block length.
func (c *Cipher) CanPad(n int) bool {
	return n >= 0 && n <= c.blockLen
}

// Pad prepends zero bytes to block up to the block length. The numeric value
// of the block is unchanged.
func (c *Cipher) Pad(block []byte) ([]byte, error) {
	if !c.CanPad(len(block)) {
		return nil, errOversizedBlock()
	}

	out := make([]byte, c.blockLen)
	copy(out[c.blockLen-len(block):], block)

	return out, nil
}
