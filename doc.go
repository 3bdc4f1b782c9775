// Package cryptokit is a collection of cryptographic primitives written from
// scratch: a SHA-1 digest, a registry of named 32/64-bit hash functions, the
// Blum-Blum-Shub bit generator, textbook RSA with its own key generation, and
// two padded compositions built on them.
//
// The primitives live in their own packages:
//
//   - [github.com/tarantool/go-cryptokit/digest]: SHA-1, also a [hash.Hash].
//   - [github.com/tarantool/go-cryptokit/hasher]: named hash variants and the registry.
//   - [github.com/tarantool/go-cryptokit/bbs]: the BBS generator and Blum key generation.
//   - [github.com/tarantool/go-cryptokit/rsa]: RSA keys, block cipher and signing.
//   - [github.com/tarantool/go-cryptokit/rsao]: RSA composed with a padding transform.
//   - [github.com/tarantool/go-cryptokit/foam]: a padded keystream cipher keyed by a shared secret.
//
// Every component is a single-threaded value: callers serialize access or keep
// one instance per goroutine. Randomness is always passed in as an [io.Reader].
//
// See the [github.com/tarantool/go-cryptokit/integrity] package for sealing
// typed values with hashes and signatures.
package cryptokit
