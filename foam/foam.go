// Package foam implements symmetric encryption from a shared secret by padding
// each message with an all-or-nothing transform and xoring the padded block
// with a keystream.
//
// Callers must not encipher more than one message under the same secret, and
// the pad must use hash and random functions unrelated to the keystream.
package foam

//go:generate go tool minimock -i Keystream -o ../internal/mocks -s _mock.go

import (
	"fmt"
	"io"

	"github.com/tarantool/go-cryptokit/crypto"
	"github.com/tarantool/go-cryptokit/cryptoerr"
	"github.com/tarantool/go-cryptokit/internal/options"
	"github.com/tarantool/go-cryptokit/oaep"
	"github.com/tarantool/go-cryptokit/otp"
)

// Keystream is a keystream cipher that can be rekeyed.
type Keystream interface {
	crypto.BlockCipher

	// Reset rekeys the keystream with a new shared secret.
	Reset(secret []byte) error
}

// Cipher is a padded keystream cipher. It is not safe for concurrent use.
type Cipher struct {
	stream    Keystream
	pad       crypto.Pad
	blockLen  int
	effective int
}

// New composes stream with pad. blockLen is the padded block length.
func New(stream Keystream, pad crypto.Pad, blockLen int) (*Cipher, error) {
	switch {
	case stream == nil:
		return nil, cryptoerr.InvalidArgument("keystream")
	case pad == nil:
		return nil, cryptoerr.InvalidArgument("pad")
	}

	effective := blockLen - pad.HLength()
	if effective < 0 {
		return nil, cryptoerr.InvalidArgument("pad")
	}

	return &Cipher{
		stream:    stream,
		pad:       pad,
		blockLen:  blockLen,
		effective: effective,
	}, nil
}

type secretOptions struct {
	keystream []otp.Option
	pad       []oaep.Option
}

// Option configures NewFromSecret.
type Option = options.Callback[secretOptions]

// WithKeystream passes options to the keystream cipher.
func WithKeystream(opts ...otp.Option) Option {
	return func(o *secretOptions) {
		o.keystream = append(o.keystream, opts...)
	}
}

// WithPad passes options to the OAEP pad.
func WithPad(opts ...oaep.Option) Option {
	return func(o *secretOptions) {
		o.pad = append(o.pad, opts...)
	}
}

// NewFromSecret builds an OTP keystream keyed by secret and an OAEP pad of
// blockSize bytes drawing its seeds from rnd.
func NewFromSecret(rnd io.Reader, secret []byte, blockSize int, opts ...Option) (*Cipher, error) {
	o := options.Apply(nil, opts)

	stream, err := otp.New(secret, o.keystream...)
	if err != nil {
		return nil, fmt.Errorf("failed to create keystream: %w", err)
	}

	pad, err := oaep.New(rnd, blockSize, o.pad...)
	if err != nil {
		return nil, fmt.Errorf("failed to create pad: %w", err)
	}

	return New(stream, pad, blockSize)
}

// MessageLength returns the largest message a block can carry.
func (c *Cipher) MessageLength() int {
	return c.effective
}

// Reset rekeys the keystream. The pad is kept.
func (c *Cipher) Reset(secret []byte) error {
	if err := c.stream.Reset(secret); err != nil {
		return fmt.Errorf("failed to reset keystream: %w", err)
	}

	return nil
}

// EncipherOutputLength returns the ciphertext length, or -1 if an n-byte
// message exceeds the effective capacity.
func (c *Cipher) EncipherOutputLength(n int) int {
	if n > c.effective {
		return -1
	}

	return c.stream.EncipherOutputLength(c.pad.EncipherOutputLength(n))
}

// DecipherOutputLength returns the largest message a ciphertext of n bytes can
// carry, or -1 if n exceeds the block length.
func (c *Cipher) DecipherOutputLength(n int) int {
	if n > c.blockLen {
		return -1
	}

	return c.effective
}

// Encipher pads src and xors the padded block with the keystream into dst.
func (c *Cipher) Encipher(dst, src []byte) (int, error) {
	size := c.pad.EncipherOutputLength(len(src))
	if len(src) > c.effective || size < 0 {
		return 0, cryptoerr.OversizedInput("src")
	}

	padded := make([]byte, size)

	n, err := c.pad.Encipher(padded, src)
	if err != nil {
		return 0, fmt.Errorf("failed to pad: %w", err)
	}

	n, err = c.stream.Encipher(dst, padded[:n])
	if err != nil {
		return 0, fmt.Errorf("failed to encipher: %w", err)
	}

	return n, nil
}

// Decipher xors src with the keystream and strips the padding into dst.
func (c *Cipher) Decipher(dst, src []byte) (int, error) {
	if len(src) > c.blockLen {
		return 0, cryptoerr.OversizedInput("src")
	}

	size := c.stream.DecipherOutputLength(len(src))
	if size < 0 {
		return 0, cryptoerr.OversizedInput("src")
	}

	padded := make([]byte, size)

	n, err := c.stream.Decipher(padded, src)
	if err != nil {
		return 0, fmt.Errorf("failed to decipher: %w", err)
	}

	n, err = c.pad.Decipher(dst, padded[:n])
	if err != nil {
		return 0, fmt.Errorf("failed to unpad: %w", err)
	}

	return n, nil
}
