package rsa

import (
	"math/big"

	"github.com/tarantool/go-option"

	"github.com/tarantool/go-cryptokit/cryptoerr"
	"github.com/tarantool/go-cryptokit/internal/bigint"
)

// Key is RSA key material: the modulus and at least one of the exponents.
type Key struct {
	N *big.Int
	E option.Generic[*big.Int]
	D option.Generic[*big.Int]
}

// NewKey validates and assembles key material.
func NewKey(n *big.Int, e, d option.Generic[*big.Int]) (Key, error) {
	if n == nil || n.Sign() <= 0 {
		return Key{}, cryptoerr.InvalidArgument("n") //nolint:exhaustruct
	}

	if !e.IsSome() && !d.IsSome() {
		return Key{}, cryptoerr.InvalidArgument("exponent") //nolint:exhaustruct
	}

	if v, ok := e.Get(); ok && (v == nil || v.Sign() <= 0) {
		return Key{}, cryptoerr.InvalidArgument("e") //nolint:exhaustruct
	}

	if v, ok := d.Get(); ok && (v == nil || v.Sign() <= 0) {
		return Key{}, cryptoerr.InvalidArgument("d") //nolint:exhaustruct
	}

	return Key{N: n, E: e, D: d}, nil
}

// NewPublicKey returns a key holding only the public exponent.
func NewPublicKey(n, e *big.Int) (Key, error) {
	return NewKey(n, option.Some(e), option.None[*big.Int]())
}

// NewPrivateKey returns a key holding only the private exponent.
func NewPrivateKey(n, d *big.Int) (Key, error) {
	return NewKey(n, option.None[*big.Int](), option.Some(d))
}

// BitLength returns the bit length of the modulus.
func (k Key) BitLength() int {
	return k.N.BitLen()
}

// BlockLength returns ceil(bitLength(n)/8).
func (k Key) BlockLength() int {
	return bigint.ByteLength(k.N)
}

// Public strips the private exponent.
func (k Key) Public() (Key, error) {
	e, ok := k.E.Get()
	if !ok {
		return Key{}, cryptoerr.InvalidArgument("e") //nolint:exhaustruct
	}

	return NewPublicKey(k.N, e)
}

// KeyPair is a generated key together with its prime factors.
type KeyPair struct {
	Key

	P *big.Int
	Q *big.Int
}

// KeyRecord is the serialized form of a key. Every integer is stored as a minimal
// two's-complement big-endian byte sequence; absent components are empty.
type KeyRecord struct {
	N []byte `msgpack:"n"           yaml:"n"`
	E []byte `msgpack:"e,omitempty" yaml:"e,omitempty"`
	D []byte `msgpack:"d,omitempty" yaml:"d,omitempty"`
	P []byte `msgpack:"p,omitempty" yaml:"p,omitempty"`
	Q []byte `msgpack:"q,omitempty" yaml:"q,omitempty"`
}

func encodeOptional(v option.Generic[*big.Int]) []byte {
	x, ok := v.Get()
	if !ok {
		return nil
	}

	return bigint.ToTwosComplement(x)
}

func decodeOptional(b []byte) option.Generic[*big.Int] {
	if len(b) == 0 {
		return option.None[*big.Int]()
	}

	return option.Some(bigint.FromTwosComplement(b))
}

// Record returns the serialized form of the key.
func (k Key) Record() KeyRecord {
	return KeyRecord{
		N: bigint.ToTwosComplement(k.N),
		E: encodeOptional(k.E),
		D: encodeOptional(k.D),
		P: nil,
		Q: nil,
	}
}

// Record returns the serialized form of the key and its factors.
func (kp KeyPair) Record() KeyRecord {
	record := kp.Key.Record()
	record.P = bigint.ToTwosComplement(kp.P)
	record.Q = bigint.ToTwosComplement(kp.Q)

	return record
}

// Key decodes and validates the key. Factors are ignored.
func (r KeyRecord) Key() (Key, error) {
	if len(r.N) == 0 {
		return Key{}, cryptoerr.InvalidArgument("n") //nolint:exhaustruct
	}

	return NewKey(bigint.FromTwosComplement(r.N), decodeOptional(r.E), decodeOptional(r.D))
}

// KeyPair decodes the key and its factors, checking that n = p*q.
func (r KeyRecord) KeyPair() (KeyPair, error) {
	key, err := r.Key()
	if err != nil {
		return KeyPair{}, err //nolint:exhaustruct
	}

	if len(r.P) == 0 || len(r.Q) == 0 {
		return KeyPair{}, cryptoerr.InvalidArgument("factors") //nolint:exhaustruct
	}

	p := bigint.FromTwosComplement(r.P)
	q := bigint.FromTwosComplement(r.Q)

	if new(big.Int).Mul(p, q).Cmp(key.N) != 0 {
		return KeyPair{}, cryptoerr.InvalidArgument("factors") //nolint:exhaustruct
	}

	return KeyPair{Key: key, P: p, Q: q}, nil
}
