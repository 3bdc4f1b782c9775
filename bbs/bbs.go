// Package bbs implements the Blum-Blum-Shub pseudo-random bit generator.
//
// The generator squares its state modulo a Blum integer N and emits the low bit
// of the state after every squaring, one bit per iteration. A [Generator] is
// fully seeded by its constructor; the seeding hook required by
// [math/rand.Source] is a deliberate no-op so a [rand.Rand] wrapper can never
// reseed it.
package bbs

import (
	"fmt"
	"io"
	"math/big"
	"math/rand"

	"github.com/tarantool/go-cryptokit/cryptoerr"
	"github.com/tarantool/go-cryptokit/internal/bigint"
)

// MaxNextBits is the largest bit count Next returns at once.
const MaxNextBits = 32

// Generator is a BBS bit generator. It is not safe for concurrent use.
type Generator struct {
	key Key
	x   *big.Int
}

var (
	_ io.Reader     = (*Generator)(nil)
	_ rand.Source64 = (*Generator)(nil)
)

// New returns a generator over key seeded with seed, which must be relatively
// prime to N. The initial state is seed^2 mod N.
func New(key Key, seed *big.Int) (*Generator, error) {
	if key.N == nil {
		return nil, cryptoerr.InvalidArgument("key")
	}

	g := &Generator{key: key, x: new(big.Int)}
	if err := g.SetSeed(seed); err != nil {
		return nil, err
	}

	return g, nil
}

// NewRandom returns a generator over key seeded from rnd.
func NewRandom(rnd io.Reader, key Key) (*Generator, error) {
	seed, err := RandomSeed(rnd, key)
	if err != nil {
		return nil, err
	}

	return New(key, seed)
}

// RandomSeed samples values of bitLength(N)-1 bits from rnd until one is
// relatively prime to N.
func RandomSeed(rnd io.Reader, key Key) (*big.Int, error) {
	if key.N == nil || key.BitLength() < 2 {
		return nil, cryptoerr.InvalidArgument("key")
	}

	bits := key.BitLength() - 1
	buf := make([]byte, (bits+7)/8)

	for {
		if _, err := io.ReadFull(rnd, buf); err != nil {
			return nil, fmt.Errorf("failed to read seed: %w", err)
		}

		buf[0] &= byte(0xff >> uint(len(buf)*8-bits))

		x := new(big.Int).SetBytes(buf)
		if x.Sign() > 0 && bigint.Coprime(x, key.N) {
			return x, nil
		}
	}
}

// SetSeed replaces the state with seed^2 mod N. The seed must be positive and
// relatively prime to N.
func (g *Generator) SetSeed(seed *big.Int) error {
	if seed == nil || seed.Sign() <= 0 || !bigint.Coprime(seed, g.key.N) {
		return errInvalidSeed()
	}

	g.x.Exp(seed, bigint.Two, g.key.N)

	return nil
}

// Seed does nothing. The generator is seeded at construction and only through
// SetSeed afterwards.
func (g *Generator) Seed(int64) {}

// SeedBytes always fails: raw bytes are not a meaningful BBS seed.
func (g *Generator) SeedBytes([]byte) error {
	return cryptoerr.UnsupportedOperation("SeedBytes")
}

// BitLength returns the bit length of the modulus.
func (g *Generator) BitLength() int {
	return g.key.BitLength()
}

// Key returns the modulus the generator runs over.
func (g *Generator) Key() Key {
	return g.key
}

func (g *Generator) nextBit() uint32 {
	bit := g.x.Bit(0)
	g.x.Exp(g.x, bigint.Two, g.key.N)

	return uint32(bit)
}

// Next returns numbits fresh bits, the first generated bit in the least
// significant position.
func (g *Generator) Next(numbits int) (uint32, error) {
	if numbits < 1 || numbits > MaxNextBits {
		return 0, cryptoerr.InvalidArgument("numbits")
	}

	var out uint32
	for i := range numbits {
		out |= g.nextBit() << uint(i)
	}

	return out, nil
}

func (g *Generator) nextByte() byte {
	var out byte
	for i := range 8 {
		out |= byte(g.nextBit()) << uint(i)
	}

	return out
}

// Read fills p with generated bytes. It never fails.
func (g *Generator) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = g.nextByte()
	}

	return len(p), nil
}

// Uint64 returns 64 fresh bits.
func (g *Generator) Uint64() uint64 {
	lo, _ := g.Next(MaxNextBits)
	hi, _ := g.Next(MaxNextBits)

	return uint64(hi)<<32 | uint64(lo)
}

// Int63 returns 63 fresh bits as a non-negative int64.
func (g *Generator) Int63() int64 {
	return int64(g.Uint64() >> 1) //nolint:gosec
}

// StateRecord is the persistent form of a generator: the modulus and the current
// state as minimal two's-complement big-endian bytes.
type StateRecord struct {
	N []byte `msgpack:"n" yaml:"n"`
	X []byte `msgpack:"x" yaml:"x"`
}

// State returns a snapshot of the generator.
func (g *Generator) State() StateRecord {
	return StateRecord{
		N: bigint.ToTwosComplement(g.key.N),
		X: bigint.ToTwosComplement(g.x),
	}
}

// Restore rebuilds a generator from a snapshot. The restored generator continues
// the exact bit sequence of the one the snapshot was taken from.
func Restore(record StateRecord) (*Generator, error) {
	key, err := NewKey(bigint.FromTwosComplement(record.N))
	if err != nil {
		return nil, err
	}

	x := bigint.FromTwosComplement(record.X)
	if x.Sign() <= 0 || x.Cmp(key.N) >= 0 || !bigint.Coprime(x, key.N) {
		return nil, errInvalidSeed()
	}

	return &Generator{key: key, x: x}, nil
}

// GenerateKeyAndSeed is a shortcut for GenerateKey followed by NewRandom.
func GenerateKeyAndSeed(rnd io.Reader, bits int, opts ...Option) (*Generator, error) {
	key, err := GenerateKey(rnd, bits, opts...)
	if err != nil {
		return nil, err
	}

	return NewRandom(rnd, key)
}
