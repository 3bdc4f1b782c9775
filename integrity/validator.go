package integrity

import (
	"bytes"
	"errors"
	"maps"
	"slices"

	"github.com/tarantool/go-option"

	"github.com/tarantool/go-cryptokit/crypto"
	"github.com/tarantool/go-cryptokit/hasher"
	"github.com/tarantool/go-cryptokit/marshaller"
)

// Validator verifies sealed records of type T.
type Validator[T any] struct {
	marshaller marshaller.TypedMarshaller[T]
	hashers    map[string]hasher.Hasher
	verifiers  map[string]crypto.Verifier
}

// NewValidator creates a new Validator instance.
func NewValidator[T any](
	marshaller marshaller.TypedMarshaller[T],
	hashers []hasher.Hasher,
	verifiers []crypto.Verifier,
) Validator[T] {
	hasherMap := make(map[string]hasher.Hasher, len(hashers))
	for _, h := range hashers {
		hasherMap[h.Name()] = h
	}

	verifierMap := make(map[string]crypto.Verifier, len(verifiers))
	for _, v := range verifiers {
		verifierMap[v.Name()] = v
	}

	return Validator[T]{
		marshaller: marshaller,
		hashers:    hasherMap,
		verifiers:  verifierMap,
	}
}

// Validate unmarshals the sealed value and checks every configured hash and
// signature. Entries no hasher or verifier is configured for are ignored.
// Failures are joined in name order, hashes first.
func (v Validator[T]) Validate(sealed Sealed) ValidatedResult[T] {
	val, err := v.marshaller.Unmarshal(sealed.Value)
	if err != nil {
		return ValidatedResult[T]{Value: option.None[T](), Error: errMalformedValue(err)}
	}

	var errs []error

	for _, name := range slices.Sorted(maps.Keys(v.hashers)) {
		h := v.hashers[name]

		stored, ok := sealed.Hashes[name]
		if !ok {
			errs = append(errs, errMissingHash(name, h))
			continue
		}

		if computed := h.Hash(sealed.Value); !bytes.Equal(stored, computed) {
			errs = append(errs, errHashMismatch(name, h, stored, computed))
		}
	}

	for _, name := range slices.Sorted(maps.Keys(v.verifiers)) {
		signature, ok := sealed.Signatures[name]
		if !ok {
			errs = append(errs, errMissingSignature(name))
			continue
		}

		if err := v.verifiers[name].Verify(sealed.Value, signature); err != nil {
			errs = append(errs, errSignatureRejected(name, err))
		}
	}

	return ValidatedResult[T]{Value: option.Some(val), Error: errors.Join(errs...)}
}
