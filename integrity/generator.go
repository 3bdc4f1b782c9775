// Package integrity seals typed values with hashes and signatures and checks
// them back.
//
// A [Generator] marshals a value and attaches the output of every configured
// hasher and signer; a [Validator] unmarshals the value and joins one
// [SealError] per missing or mismatching hash and signature.
package integrity

import (
	"maps"
	"slices"

	"github.com/tarantool/go-cryptokit/crypto"
	"github.com/tarantool/go-cryptokit/hasher"
	"github.com/tarantool/go-cryptokit/marshaller"
)

// Generator creates sealed records for values of type T.
type Generator[T any] struct {
	marshaller marshaller.TypedMarshaller[T]
	hashers    map[string]hasher.Hasher
	signers    map[string]crypto.Signer
}

// NewGenerator creates a new Generator instance.
func NewGenerator[T any](
	marshaller marshaller.TypedMarshaller[T],
	hashers []hasher.Hasher,
	signers []crypto.Signer,
) Generator[T] {
	hasherMap := make(map[string]hasher.Hasher)
	for _, h := range hashers {
		hasherMap[h.Name()] = h
	}

	signerMap := make(map[string]crypto.Signer)
	for _, s := range signers {
		signerMap[s.Name()] = s
	}

	return Generator[T]{
		marshaller: marshaller,
		hashers:    hasherMap,
		signers:    signerMap,
	}
}

// Generate marshals value and seals it.
func (g Generator[T]) Generate(value T) (Sealed, error) {
	marshalledValue, err := g.marshaller.Marshal(value)
	if err != nil {
		return Sealed{}, errMarshalValue(err) //nolint:exhaustruct
	}

	sealed := Sealed{
		Value:      marshalledValue,
		Hashes:     make(map[string][]byte, len(g.hashers)),
		Signatures: make(map[string][]byte, len(g.signers)),
	}

	for name, h := range g.hashers {
		sealed.Hashes[name] = h.Hash(marshalledValue)
	}

	for _, name := range slices.Sorted(maps.Keys(g.signers)) {
		signature, err := g.signers[name].Sign(marshalledValue)
		if err != nil {
			return Sealed{}, errSign(name, err) //nolint:exhaustruct
		}

		sealed.Signatures[name] = signature
	}

	return sealed, nil
}
