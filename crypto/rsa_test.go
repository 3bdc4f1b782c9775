package crypto_test

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-cryptokit/crypto"
	"github.com/tarantool/go-cryptokit/cryptoerr"
	"github.com/tarantool/go-cryptokit/hasher"
	"github.com/tarantool/go-cryptokit/rsa"
)

func generateKey(t *testing.T, bits int) rsa.KeyPair {
	t.Helper()

	pair, err := rsa.GenerateKey(rand.Reader, bits)
	require.NoError(t, err)

	return pair
}

func TestRSACipherImplementsBlockCipher(t *testing.T) {
	t.Parallel()

	c, err := rsa.NewCipher(generateKey(t, 256).Key)
	require.NoError(t, err)

	var _ crypto.BlockCipher = c
}

func TestRsaWithoutKeys(t *testing.T) {
	t.Parallel()

	_, err := crypto.NewRSASigner(rsa.Key{}, nil) //nolint:exhaustruct
	require.ErrorIs(t, err, cryptoerr.ErrInvalidArgument)
	require.ErrorContains(t, err, "failed to create cipher")
}

func TestRsaOnlyPrivateKey(t *testing.T) {
	t.Parallel()

	pair := generateKey(t, 512)

	private, err := rsa.NewPrivateKey(pair.N, pair.D.Unwrap())
	require.NoError(t, err)

	signer, err := crypto.NewRSASigner(private, nil)
	require.NoError(t, err)

	data := []byte("abc")

	sig, err := signer.Sign(data)
	require.NoError(t, err, "Sign must be successful")
	require.NotNil(t, sig, "signature must be returned")

	err = signer.Verify(data, sig)
	require.ErrorIs(t, err, cryptoerr.ErrUnsupportedOperation)
	require.ErrorContains(t, err, "failed to verify")
}

func TestRsaOnlyPublicKey(t *testing.T) {
	t.Parallel()

	pair := generateKey(t, 512)

	public, err := pair.Public()
	require.NoError(t, err)

	verifier, err := crypto.NewRSASigner(public, nil)
	require.NoError(t, err)

	data := []byte("abc")

	sig, err := verifier.Sign(data)
	require.ErrorIs(t, err, cryptoerr.ErrUnsupportedOperation)
	require.Nil(t, sig, "signature must be nil")

	// Re-create to have a valid sign.
	signer, err := crypto.NewRSASigner(pair.Key, nil)
	require.NoError(t, err)

	sign, err := signer.Sign(data)
	require.NoError(t, err)

	require.NoError(t, verifier.Verify(data, sign), "Verify must be successful")
}

func TestRsaSignVerify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		hasher   hasher.Hasher
		expected string
	}{
		{"default", nil, "rsa-sha1"},
		{"sha256", hasher.NewSHA256Hasher(), "rsa-sha256"},
		{"blake3", hasher.New("blake3").Unwrap(), "rsa-blake3"},
	}

	pair := generateKey(t, 512)

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			signer, err := crypto.NewRSASigner(pair.Key, test.hasher)
			require.NoError(t, err)
			assert.Equal(t, test.expected, signer.Name())

			data := []byte("some data to sign")

			sig, err := signer.Sign(data)
			require.NoError(t, err)

			require.NoError(t, signer.Verify(data, sig))

			err = signer.Verify([]byte("other data"), sig)
			require.ErrorIs(t, err, rsa.ErrSignatureMismatch)
		})
	}
}

func TestRsaDigestLongerThanModulus(t *testing.T) {
	t.Parallel()

	// 3233 cannot hold a 160-bit digest.
	key, err := rsa.NewPrivateKey(big.NewInt(3233), big.NewInt(2753))
	require.NoError(t, err)

	signer, err := crypto.NewRSASigner(key, nil)
	require.NoError(t, err)

	_, err = signer.Sign([]byte("abc"))
	require.ErrorIs(t, err, cryptoerr.ErrOversizedInput)
}
