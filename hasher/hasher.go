// Package hasher provides the hash-function registry: a closed set of named,
// interchangeable hash variants behind the single [Hasher] capability.
//
// Each variant is identified by an [Algorithm] tag. The free functions [Sum],
// [Sum32] and [Sum64] dispatch on the tag; [Function] binds a tag to the name it
// was registered under. All variants are stateless and pure: the result depends on
// the input bytes only.
package hasher

import (
	"crypto/md5" //nolint:gosec
	"encoding/binary"
	"fmt"

	sha256simd "github.com/minio/sha256-simd"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"

	"github.com/tarantool/go-cryptokit/cryptoerr"
	"github.com/tarantool/go-cryptokit/digest"
)

// Hasher is the interface that registry hash functions implement.
type Hasher interface {
	// Name returns the name the function is registered under.
	Name() string
	// Hash returns the digest in the algorithm's preferred width.
	Hash(data []byte) []byte
	// Hash32 returns the digest folded to 32 bits.
	Hash32(data []byte) uint32
	// Hash64 returns the digest folded to 64 bits.
	Hash64(data []byte) uint64
}

// Algorithm tags a hash variant.
type Algorithm uint8

const (
	// Djb is Bernstein's hash with a 64-bit preferred width.
	Djb Algorithm = iota + 1
	// Djb32 is Bernstein's hash with a 32-bit preferred width.
	Djb32
	// Pal is the shift-add-subtract hash with a 64-bit preferred width.
	Pal
	// Pal32 is the shift-add-subtract hash with a 32-bit preferred width.
	Pal32
	// Xor is the rotating-barrel XOR fold with a 64-bit preferred width.
	Xor
	// Xor32 is the rotating-barrel XOR fold with a 32-bit preferred width.
	Xor32
	// Md5 returns the raw 16-byte MD5 digest.
	Md5
	// Md5Fold32 is MD5 folded to 32 bits.
	Md5Fold32
	// Md5Fold64 is MD5 folded to 64 bits.
	Md5Fold64
	// Sha1 returns the raw 20-byte SHA-1 digest.
	Sha1
	// Sha1Fold32 is SHA-1 folded to 32 bits.
	Sha1Fold32
	// Sha1Fold64 is SHA-1 folded to 64 bits.
	Sha1Fold64
	// Sha256 returns the raw 32-byte SHA-256 digest.
	Sha256
	// Sha256Fold32 is SHA-256 folded to 32 bits.
	Sha256Fold32
	// Sha256Fold64 is SHA-256 folded to 64 bits.
	Sha256Fold64
	// Blake2b returns the raw 32-byte BLAKE2b-256 digest.
	Blake2b
	// Blake3 returns the raw 32-byte BLAKE3 digest.
	Blake3
	// Xxh3 is the 64-bit XXH3 hash.
	Xxh3
	// Xxh332 is XXH3 with a 32-bit preferred width.
	Xxh332
)

// String returns the canonical name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case Djb:
		return "djb"
	case Djb32:
		return "djb-32"
	case Pal:
		return "pal"
	case Pal32:
		return "pal-32"
	case Xor:
		return "xor"
	case Xor32:
		return "xor-32"
	case Md5:
		return "md5"
	case Md5Fold32:
		return "md5-32"
	case Md5Fold64:
		return "md5-64"
	case Sha1:
		return "sha1"
	case Sha1Fold32:
		return "sha1-32"
	case Sha1Fold64:
		return "sha1-64"
	case Sha256:
		return "sha256"
	case Sha256Fold32:
		return "sha256-32"
	case Sha256Fold64:
		return "sha256-64"
	case Blake2b:
		return "blake2b"
	case Blake3:
		return "blake3"
	case Xxh3:
		return "xxh3"
	case Xxh332:
		return "xxh3-32"
	default:
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}
}

// Valid reports whether a is one of the declared variants.
func (a Algorithm) Valid() bool {
	return a >= Djb && a <= Xxh332
}

type family int

const (
	familyDjb family = iota
	familyPal
	familyXor
	familyMd5
	familySha1
	familySha256
	familyBlake2b
	familyBlake3
	familyXxh3
)

func (a Algorithm) family() family {
	switch a {
	case Djb, Djb32:
		return familyDjb
	case Pal, Pal32:
		return familyPal
	case Xor, Xor32:
		return familyXor
	case Md5, Md5Fold32, Md5Fold64:
		return familyMd5
	case Sha1, Sha1Fold32, Sha1Fold64:
		return familySha1
	case Sha256, Sha256Fold32, Sha256Fold64:
		return familySha256
	case Blake2b:
		return familyBlake2b
	case Blake3:
		return familyBlake3
	default:
		return familyXxh3
	}
}

// Width returns the length in bytes of [Sum] for the algorithm.
func (a Algorithm) Width() int {
	switch a {
	case Djb32, Pal32, Xor32, Md5Fold32, Sha1Fold32, Sha256Fold32, Xxh332:
		return 4
	case Djb, Pal, Xor, Md5Fold64, Sha1Fold64, Sha256Fold64, Xxh3:
		return 8
	case Md5:
		return md5.Size
	case Sha1:
		return digest.Size
	case Sha256, Blake2b, Blake3:
		return 32
	default:
		return 0
	}
}

// rawDigest returns the full digest of the digest-backed families.
func rawDigest(f family, data []byte) []byte {
	switch f {
	case familyMd5:
		sum := md5.Sum(data) //nolint:gosec
		return sum[:]
	case familySha1:
		sum := digest.Sum1(data)
		return sum[:]
	case familySha256:
		sum := sha256simd.Sum256(data)
		return sum[:]
	case familyBlake2b:
		sum := blake2b.Sum256(data)
		return sum[:]
	case familyBlake3:
		sum := blake3.Sum256(data)
		return sum[:]
	default:
		return nil
	}
}

// Sum32 computes the 32-bit hash of data with algorithm a.
func Sum32(a Algorithm, data []byte) uint32 {
	switch f := a.family(); f {
	case familyDjb:
		return djb32(data)
	case familyPal:
		return pal32(data)
	case familyXor:
		return Xor32Fold(data)
	case familyXxh3:
		var buf [8]byte

		binary.BigEndian.PutUint64(buf[:], xxh3.Hash(data))

		return Xor32Fold(buf[:])
	default:
		return Xor32Fold(rawDigest(f, data))
	}
}

// Sum64 computes the 64-bit hash of data with algorithm a.
func Sum64(a Algorithm, data []byte) uint64 {
	switch f := a.family(); f {
	case familyDjb:
		return djb64(data)
	case familyPal:
		return pal64(data)
	case familyXor:
		return Xor64Fold(data)
	case familyXxh3:
		return xxh3.Hash(data)
	default:
		return Xor64Fold(rawDigest(f, data))
	}
}

// Sum computes the hash of data in the preferred width of a: 4 or 8 big-endian bytes
// for the folded variants, the native digest for the raw ones.
func Sum(a Algorithm, data []byte) []byte {
	switch width := a.Width(); {
	case width == 4:
		out := make([]byte, 4)
		binary.BigEndian.PutUint32(out, Sum32(a, data))

		return out
	case width == 8:
		out := make([]byte, 8)
		binary.BigEndian.PutUint64(out, Sum64(a, data))

		return out
	default:
		return rawDigest(a.family(), data)
	}
}

// Function is a registry entry: an algorithm bound to the name it is known by.
type Function struct {
	name string
	alg  Algorithm
}

var _ Hasher = Function{} //nolint:exhaustruct

// NewFunction binds alg to name.
func NewFunction(name string, alg Algorithm) (Function, error) {
	switch {
	case name == "":
		return Function{}, cryptoerr.InvalidArgument("name") //nolint:exhaustruct
	case !alg.Valid():
		return Function{}, cryptoerr.InvalidArgument("algorithm") //nolint:exhaustruct
	}

	return Function{name: name, alg: alg}, nil
}

// NewSHA1Hasher returns the raw SHA-1 variant registered as "sha1".
func NewSHA1Hasher() Hasher {
	return Function{name: Sha1.String(), alg: Sha1}
}

// NewSHA256Hasher returns the raw SHA-256 variant registered as "sha256".
func NewSHA256Hasher() Hasher {
	return Function{name: Sha256.String(), alg: Sha256}
}

// Name implements Hasher interface.
func (f Function) Name() string {
	return f.name
}

// Algorithm returns the variant tag.
func (f Function) Algorithm() Algorithm {
	return f.alg
}

// Hash implements Hasher interface.
func (f Function) Hash(data []byte) []byte {
	return Sum(f.alg, data)
}

// Hash32 implements Hasher interface.
func (f Function) Hash32(data []byte) uint32 {
	return Sum32(f.alg, data)
}

// Hash64 implements Hasher interface.
func (f Function) Hash64(data []byte) uint64 {
	return Sum64(f.alg, data)
}
