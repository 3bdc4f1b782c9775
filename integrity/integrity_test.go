package integrity_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-cryptokit/crypto"
	"github.com/tarantool/go-cryptokit/cryptoerr"
	"github.com/tarantool/go-cryptokit/hasher"
	"github.com/tarantool/go-cryptokit/integrity"
	"github.com/tarantool/go-cryptokit/marshaller"
	"github.com/tarantool/go-cryptokit/rsa"
)

func TestSealWithRSAAndRegistry(t *testing.T) {
	t.Parallel()

	pair, err := rsa.GenerateKey(rand.Reader, 512)
	require.NoError(t, err)

	signer, err := crypto.NewRSASigner(pair.Key, nil)
	require.NoError(t, err)

	public, err := pair.Public()
	require.NoError(t, err)

	verifier, err := crypto.NewRSASigner(public, nil)
	require.NoError(t, err)

	registry := hasher.NewRegistry()
	hashers := []hasher.Hasher{
		registry.Lookup("sha1-64").Unwrap(),
		registry.Lookup("xxh3").Unwrap(),
		registry.Lookup("blake2b").Unwrap(),
	}

	gen := integrity.NewGenerator[rsa.KeyRecord](
		marshaller.NewTypedMsgpackMarshaller[rsa.KeyRecord](),
		hashers,
		[]crypto.Signer{signer},
	)

	val := integrity.NewValidator[rsa.KeyRecord](
		marshaller.NewTypedMsgpackMarshaller[rsa.KeyRecord](),
		hashers,
		[]crypto.Verifier{verifier},
	)

	sealed, err := gen.Generate(public.Record())
	require.NoError(t, err)

	// The sealed record itself travels as YAML.
	envelope := marshaller.NewTypedYamlMarshaller[integrity.Sealed]()

	data, err := envelope.Marshal(sealed)
	require.NoError(t, err)

	received, err := envelope.Unmarshal(data)
	require.NoError(t, err)

	result := val.Validate(received)
	require.NoError(t, result.Error)

	key, err := result.Value.Unwrap().Key()
	require.NoError(t, err)
	assert.Equal(t, 0, key.N.Cmp(pair.N))

	signature := received.Signatures["rsa-sha1"]
	signature[len(signature)-1] ^= 0x01

	result = val.Validate(received)
	require.ErrorIs(t, result.Error, rsa.ErrSignatureMismatch)
	require.ErrorIs(t, result.Error, integrity.ErrSignatureRejected)
	require.ErrorIs(t, result.Error, cryptoerr.ErrInvalidArgument)
}
