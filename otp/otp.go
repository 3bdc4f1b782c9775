// Package otp implements a keystream cipher keyed by a shared secret.
//
// The secret is expanded with HKDF over a named digest into a ChaCha20 key and
// nonce. The "chacha20" generator uses that stream as the keystream directly;
// the "bbs" generator draws a Blum modulus and seed from it and uses the BBS
// bit stream instead. Enciphering and deciphering are the same XOR.
package otp

import (
	"fmt"
	"hash"
	"io"

	"github.com/minio/sha256-simd"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/hkdf"

	"github.com/tarantool/go-cryptokit/bbs"
	"github.com/tarantool/go-cryptokit/cryptoerr"
	"github.com/tarantool/go-cryptokit/digest"
	"github.com/tarantool/go-cryptokit/internal/options"
)

// Digest names accepted by WithDigest.
const (
	DigestSHA1   = "sha1"
	DigestSHA256 = "sha256"
)

// Generator names accepted by WithGenerator.
const (
	GeneratorChaCha20 = "chacha20"
	GeneratorBBS      = "bbs"
)

// DefaultBBSBits is the modulus length of the "bbs" generator.
const DefaultBBSBits = 256

type cipherOptions struct {
	digest    string
	generator string
	bbsBits   int
	logger    logrus.FieldLogger
}

// Option configures a Cipher.
type Option = options.Callback[cipherOptions]

// WithDigest selects the HKDF digest by name.
func WithDigest(name string) Option {
	return func(o *cipherOptions) {
		o.digest = name
	}
}

// WithGenerator selects the keystream generator by name.
func WithGenerator(name string) Option {
	return func(o *cipherOptions) {
		o.generator = name
	}
}

// WithBBSBits sets the modulus length of the "bbs" generator.
func WithBBSBits(bits int) Option {
	return func(o *cipherOptions) {
		o.bbsBits = bits
	}
}

// WithLogger sets the logger passed to the BBS key generator.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *cipherOptions) {
		o.logger = logger
	}
}

func defaultCipherOptions() cipherOptions {
	return cipherOptions{
		digest:    DigestSHA256,
		generator: GeneratorChaCha20,
		bbsBits:   DefaultBBSBits,
		logger:    logrus.StandardLogger(),
	}
}

func hashByName(name string) (func() hash.Hash, error) {
	switch name {
	case DigestSHA1:
		return digest.NewHash, nil
	case DigestSHA256:
		return sha256.New, nil
	default:
		return nil, cryptoerr.InvalidArgument("digest")
	}
}

type keystream interface {
	XORKeyStream(dst, src []byte)
}

// Cipher is a keystream cipher. It is not safe for concurrent use.
type Cipher struct {
	opts    cipherOptions
	newHash func() hash.Hash
	stream  keystream
}

// New returns a cipher keyed by secret.
func New(secret []byte, opts ...Option) (*Cipher, error) {
	o := options.Apply(defaultCipherOptions, opts)

	newHash, err := hashByName(o.digest)
	if err != nil {
		return nil, err
	}

	switch o.generator {
	case GeneratorChaCha20:
	case GeneratorBBS:
		if o.bbsBits < bbs.MinBits {
			return nil, cryptoerr.InvalidArgument("bbs bits")
		}
	default:
		return nil, cryptoerr.InvalidArgument("generator")
	}

	c := &Cipher{
		opts:    o,
		newHash: newHash,
		stream:  nil,
	}

	if err := c.Reset(secret); err != nil {
		return nil, err
	}

	return c, nil
}

// Digest returns the HKDF digest name.
func (c *Cipher) Digest() string {
	return c.opts.digest
}

// Generator returns the keystream generator name.
func (c *Cipher) Generator() string {
	return c.opts.generator
}

// Reset rekeys the keystream with a new secret.
func (c *Cipher) Reset(secret []byte) error {
	if len(secret) == 0 {
		return cryptoerr.InvalidArgument("secret")
	}

	kdf := hkdf.New(c.newHash, secret, nil, []byte("otp "+c.opts.generator))

	material := make([]byte, chacha20.KeySize+chacha20.NonceSize)
	if _, err := io.ReadFull(kdf, material); err != nil {
		return fmt.Errorf("failed to derive key: %w", err)
	}

	stream, err := chacha20.NewUnauthenticatedCipher(material[:chacha20.KeySize], material[chacha20.KeySize:])
	if err != nil {
		return fmt.Errorf("failed to create stream: %w", err)
	}

	if c.opts.generator == GeneratorChaCha20 {
		c.stream = stream

		return nil
	}

	g, err := bbs.GenerateKeyAndSeed(streamReader{stream}, c.opts.bbsBits, bbs.WithLogger(c.opts.logger))
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}

	c.stream = bbsStream{g}

	return nil
}

// EncipherOutputLength returns n.
func (c *Cipher) EncipherOutputLength(n int) int {
	return n
}

// DecipherOutputLength returns n.
func (c *Cipher) DecipherOutputLength(n int) int {
	return n
}

func (c *Cipher) xor(dst, src []byte) (int, error) {
	if len(dst) < len(src) {
		return 0, cryptoerr.OutputTooSmall("dst")
	}

	c.stream.XORKeyStream(dst[:len(src)], src)

	return len(src), nil
}

// Encipher xors src with the next len(src) keystream bytes.
func (c *Cipher) Encipher(dst, src []byte) (int, error) {
	return c.xor(dst, src)
}

// Decipher xors src with the next len(src) keystream bytes.
func (c *Cipher) Decipher(dst, src []byte) (int, error) {
	return c.xor(dst, src)
}

// streamReader reads a keystream.
type streamReader struct {
	stream *chacha20.Cipher
}

func (r streamReader) Read(p []byte) (int, error) {
	clear(p)
	r.stream.XORKeyStream(p, p)

	return len(p), nil
}

type bbsStream struct {
	g *bbs.Generator
}

func (s bbsStream) XORKeyStream(dst, src []byte) {
	for i := range src {
		var b [1]byte

		_, _ = s.g.Read(b[:])
		dst[i] = src[i] ^ b[0]
	}
}
