// Package rsao composes an RSA block cipher with a padding transform.
//
// A message is padded to the full block length and the padded block is
// enciphered; deciphering reverses both steps. The usable message length is
// the RSA block length minus the pad overhead.
package rsao

import (
	"fmt"

	"github.com/tarantool/go-cryptokit/crypto"
	"github.com/tarantool/go-cryptokit/cryptoerr"
	"github.com/tarantool/go-cryptokit/oaep"
	"github.com/tarantool/go-cryptokit/rsa"
)

// Cipher is RSA with padding. It is not safe for concurrent use.
type Cipher struct {
	rsa       crypto.BlockCipher
	pad       crypto.Pad
	blockLen  int
	effective int
}

// New composes cipher with pad. blockLen is the raw block length of cipher.
func New(cipher crypto.BlockCipher, blockLen int, pad crypto.Pad) (*Cipher, error) {
	switch {
	case cipher == nil:
		return nil, cryptoerr.InvalidArgument("cipher")
	case pad == nil:
		return nil, cryptoerr.InvalidArgument("pad")
	}

	effective := blockLen - pad.HLength()
	if effective < 0 {
		return nil, cryptoerr.InvalidArgument("pad")
	}

	return &Cipher{
		rsa:       cipher,
		pad:       pad,
		blockLen:  blockLen,
		effective: effective,
	}, nil
}

// NewOAEP builds an RSA cipher for key and an OAEP pad sized to its block.
func NewOAEP(key rsa.Key, pad func(blockSize int) (*oaep.Pad, error)) (*Cipher, error) {
	cipher, err := rsa.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	p, err := pad(cipher.BlockLengthPlain())
	if err != nil {
		return nil, fmt.Errorf("failed to create pad: %w", err)
	}

	return New(cipher, cipher.BlockLengthPlain(), p)
}

// MessageLength returns the largest message a block can carry.
func (c *Cipher) MessageLength() int {
	return c.effective
}

// EncipherOutputLength returns the ciphertext block length, or -1 if an n-byte
// message exceeds the effective capacity.
func (c *Cipher) EncipherOutputLength(n int) int {
	if n > c.effective {
		return -1
	}

	return c.rsa.EncipherOutputLength(c.pad.EncipherOutputLength(n))
}

// DecipherOutputLength returns the largest message a ciphertext of n bytes can
// carry, or -1 if n exceeds the block length.
func (c *Cipher) DecipherOutputLength(n int) int {
	if n > c.blockLen {
		return -1
	}

	return c.effective
}

// Encipher pads src and enciphers the padded block into dst.
func (c *Cipher) Encipher(dst, src []byte) (int, error) {
	if len(src) > c.effective {
		return 0, cryptoerr.OversizedInput("src")
	}

	size := c.pad.EncipherOutputLength(len(src))
	if size < 0 {
		return 0, cryptoerr.OversizedInput("src")
	}

	padded := make([]byte, size)

	n, err := c.pad.Encipher(padded, src)
	if err != nil {
		return 0, fmt.Errorf("failed to pad: %w", err)
	}

	n, err = c.rsa.Encipher(dst, padded[:n])
	if err != nil {
		return 0, fmt.Errorf("failed to encipher: %w", err)
	}

	return n, nil
}

// Decipher deciphers src and strips the padding into dst.
func (c *Cipher) Decipher(dst, src []byte) (int, error) {
	if len(src) > c.blockLen {
		return 0, cryptoerr.OversizedInput("src")
	}

	padded := make([]byte, c.blockLen)

	n, err := c.rsa.Decipher(padded, src)
	if err != nil {
		return 0, fmt.Errorf("failed to decipher: %w", err)
	}

	// Restore the leading zeros trimmed from the deciphered integer.
	block := make([]byte, c.blockLen)
	copy(block[c.blockLen-n:], padded[:n])

	n, err = c.pad.Decipher(dst, block)
	if err != nil {
		return 0, fmt.Errorf("failed to unpad: %w", err)
	}

	return n, nil
}
