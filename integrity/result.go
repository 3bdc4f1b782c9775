package integrity

import (
	"github.com/tarantool/go-option"
)

// ValidatedResult represents a validated value. Value is set whenever the
// record could be unmarshalled, even if a hash or signature check failed.
type ValidatedResult[T any] struct {
	Value option.Generic[T]
	Error error
}

// Sealed is a marshalled value together with its hashes and signatures, keyed
// by hasher and signer name.
type Sealed struct {
	Value      []byte            `msgpack:"value"                yaml:"value"`
	Hashes     map[string][]byte `msgpack:"hashes,omitempty"     yaml:"hashes,omitempty"`
	Signatures map[string][]byte `msgpack:"signatures,omitempty" yaml:"signatures,omitempty"`
}
