// Package oaep implements the EME-OAEP padding transform as a fixed-size block
// pad.
//
// An encoded block has the layout 0x00 || maskedSeed || maskedDB where
// DB = lHash || PS || 0x01 || M, both halves masked with MGF1. The leading zero
// byte keeps every encoded block numerically below an RSA modulus of the same
// byte length.
package oaep

import (
	"crypto/subtle"
	"fmt"
	"hash"
	"io"

	"github.com/tarantool/go-cryptokit/cryptoerr"
	"github.com/tarantool/go-cryptokit/digest"
	"github.com/tarantool/go-cryptokit/internal/options"
)

type padOptions struct {
	newHash func() hash.Hash
	label   []byte
}

// Option configures a Pad.
type Option = options.Callback[padOptions]

// WithHash sets the hash behind the label digest and MGF1.
func WithHash(newHash func() hash.Hash) Option {
	return func(o *padOptions) {
		o.newHash = newHash
	}
}

// WithLabel sets the label bound into every encoded block.
func WithLabel(label []byte) Option {
	return func(o *padOptions) {
		o.label = label
	}
}

func defaultPadOptions() padOptions {
	return padOptions{
		newHash: digest.NewHash,
		label:   nil,
	}
}

// Pad encodes messages into blocks of a fixed size. It is not safe for
// concurrent use.
type Pad struct {
	rnd       io.Reader
	hash      hash.Hash
	lHash     []byte
	blockSize int
}

// New returns a pad producing blocks of blockSize bytes. Seeds are read from rnd.
func New(rnd io.Reader, blockSize int, opts ...Option) (*Pad, error) {
	o := options.Apply(defaultPadOptions, opts)

	switch {
	case rnd == nil:
		return nil, cryptoerr.InvalidArgument("rand")
	case o.newHash == nil:
		return nil, cryptoerr.InvalidArgument("hash")
	}

	h := o.newHash()
	h.Write(o.label)
	lHash := h.Sum(nil)

	if blockSize < 2*len(lHash)+2 {
		return nil, cryptoerr.InvalidArgument("block size")
	}

	return &Pad{
		rnd:       rnd,
		hash:      h,
		lHash:     lHash,
		blockSize: blockSize,
	}, nil
}

// HLength returns the overhead of the encoding, 2*hLen + 2.
func (p *Pad) HLength() int {
	return 2*len(p.lHash) + 2
}

// BlockSize returns the encoded block length.
func (p *Pad) BlockSize() int {
	return p.blockSize
}

// MessageLength returns the largest message that fits a block.
func (p *Pad) MessageLength() int {
	return p.blockSize - p.HLength()
}

// EncipherOutputLength returns the block size, or -1 if an n-byte message does
// not fit.
func (p *Pad) EncipherOutputLength(n int) int {
	if n > p.MessageLength() {
		return -1
	}

	return p.blockSize
}

// DecipherOutputLength returns the largest message a block of n bytes can
// carry, or -1 if n exceeds the block size.
func (p *Pad) DecipherOutputLength(n int) int {
	if n > p.blockSize {
		return -1
	}

	return p.MessageLength()
}

// Encipher encodes src into dst and returns the block size.
func (p *Pad) Encipher(dst, src []byte) (int, error) {
	switch {
	case len(src) > p.MessageLength():
		return 0, cryptoerr.OversizedInput("src")
	case len(dst) < p.blockSize:
		return 0, cryptoerr.OutputTooSmall("dst")
	}

	hLen := len(p.lHash)
	em := make([]byte, p.blockSize)

	seed := em[1 : 1+hLen]
	db := em[1+hLen:]

	copy(db, p.lHash)
	db[len(db)-len(src)-1] = 0x01
	copy(db[len(db)-len(src):], src)

	if _, err := io.ReadFull(p.rnd, seed); err != nil {
		return 0, fmt.Errorf("failed to read seed: %w", err)
	}

	mgf1XOR(db, p.hash, seed)
	mgf1XOR(seed, p.hash, db)

	return copy(dst, em), nil
}

// Decipher decodes the block in src into dst and returns the message length.
// Blocks shorter than the block size are treated as left-padded with zeros.
func (p *Pad) Decipher(dst, src []byte) (int, error) {
	if len(src) > p.blockSize {
		return 0, cryptoerr.OversizedInput("src")
	}

	hLen := len(p.lHash)
	em := make([]byte, p.blockSize)
	copy(em[p.blockSize-len(src):], src)

	seed := em[1 : 1+hLen]
	db := em[1+hLen:]

	mgf1XOR(seed, p.hash, db)
	mgf1XOR(db, p.hash, seed)

	valid := subtle.ConstantTimeByteEq(em[0], 0)
	valid &= subtle.ConstantTimeCompare(db[:hLen], p.lHash)

	rest := db[hLen:]
	index, found := separator(rest)

	if valid&found != 1 {
		return 0, cryptoerr.InvalidArgument("src")
	}

	msg := rest[index+1:]
	if len(dst) < len(msg) {
		return 0, cryptoerr.OutputTooSmall("dst")
	}

	return copy(dst, msg), nil
}

// separator returns the offset of the first non-zero byte of ps, and 1 as found
// if that byte is 0x01. Every byte is visited and no branch depends on ps.
func separator(ps []byte) (offset, found int) {
	searching := 1

	for i, b := range ps {
		hit := searching &^ subtle.ConstantTimeByteEq(b, 0x00)
		offset = subtle.ConstantTimeSelect(hit, i, offset)
		found = subtle.ConstantTimeSelect(hit, subtle.ConstantTimeByteEq(b, 0x01), found)
		searching &^= hit
	}

	return offset, found
}
