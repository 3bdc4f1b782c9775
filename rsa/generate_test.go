package rsa_test

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-cryptokit/cryptoerr"
	"github.com/tarantool/go-cryptokit/internal/mocks"
	"github.com/tarantool/go-cryptokit/rsa"
)

func gcdIsOne(a, b *big.Int) bool {
	return new(big.Int).GCD(nil, nil, a, b).Cmp(big.NewInt(1)) == 0
}

func requireKeyInvariants(t *testing.T, pair rsa.KeyPair, bits int) {
	t.Helper()

	e := pair.E.Unwrap()
	d := pair.D.Unwrap()
	one := big.NewInt(1)
	pm1 := new(big.Int).Sub(pair.P, one)
	qm1 := new(big.Int).Sub(pair.Q, one)
	phi := new(big.Int).Mul(pm1, qm1)

	assert.Equal(t, bits, pair.BitLength())
	assert.Equal(t, 0, pair.N.Cmp(new(big.Int).Mul(pair.P, pair.Q)))
	assert.True(t, gcdIsOne(d, pair.N))
	assert.True(t, gcdIsOne(e, pm1))
	assert.True(t, gcdIsOne(e, qm1))
	assert.Equal(t, int64(1), new(big.Int).Mod(new(big.Int).Mul(e, d), phi).Int64())
	assert.Equal(t, int64(3), new(big.Int).Mod(pair.P, big.NewInt(4)).Int64())
	assert.Equal(t, int64(3), new(big.Int).Mod(pair.Q, big.NewInt(4)).Int64())
}

func TestGenerateKey_FixedExponents(t *testing.T) {
	t.Parallel()

	for _, e := range []int{rsa.Exponent3, rsa.Exponent17, rsa.Exponent65537} {
		pair, err := rsa.GenerateKey(rand.Reader, 256, rsa.WithExponent(e))
		require.NoError(t, err)

		requireKeyInvariants(t, pair, 256)
		assert.Equal(t, int64(e), pair.E.Unwrap().Int64())
	}
}

func TestGenerateKey_OddLength(t *testing.T) {
	t.Parallel()

	pair, err := rsa.GenerateKey(rand.Reader, 129)
	require.NoError(t, err)

	requireKeyInvariants(t, pair, 129)
}

func TestGenerateKey_RandomExponent(t *testing.T) {
	t.Parallel()

	pair, err := rsa.GenerateKey(rand.Reader, 128, rsa.WithRandomExponent(20))
	require.NoError(t, err)

	requireKeyInvariants(t, pair, 128)
	assert.Equal(t, 20, pair.E.Unwrap().BitLen())
}

func TestGenerateKey_RandomExponentClamped(t *testing.T) {
	t.Parallel()

	pair, err := rsa.GenerateKey(rand.Reader, 64, rsa.WithRandomExponent(1000))
	require.NoError(t, err)

	requireKeyInvariants(t, pair, 64)
	assert.Equal(t, 63, pair.E.Unwrap().BitLen())
}

func TestGenerateKey_InvalidOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		bits int
		opts []rsa.Option
	}{
		{"too short", 16, nil},
		{"unsupported exponent", 128, []rsa.Option{rsa.WithExponent(5)}},
		{"exponent too short", 128, []rsa.Option{rsa.WithRandomExponent(1)}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := rsa.GenerateKey(rand.Reader, test.bits, test.opts...)
			require.ErrorIs(t, err, cryptoerr.ErrInvalidArgument)
		})
	}
}

func TestGenerateKey_Deterministic(t *testing.T) {
	t.Parallel()

	first, err := rsa.GenerateKey(mocks.NewReader("rsa"), 256, rsa.WithCertainty(20))
	require.NoError(t, err)

	second, err := rsa.GenerateKey(mocks.NewReader("rsa"), 256, rsa.WithCertainty(20))
	require.NoError(t, err)

	assert.Equal(t, first.Record(), second.Record())
}

func TestKeyRecord(t *testing.T) {
	t.Parallel()

	key := smallKey(t)
	record := key.Record()

	assert.Equal(t, []byte{0x0c, 0xa1}, record.N)
	assert.Equal(t, []byte{0x11}, record.E)
	assert.Equal(t, []byte{0x0a, 0xc1}, record.D)
	assert.Nil(t, record.P)

	decoded, err := record.Key()
	require.NoError(t, err)
	assert.Equal(t, 0, decoded.N.Cmp(key.N))
	assert.Equal(t, 0, decoded.D.Unwrap().Cmp(key.D.Unwrap()))

	_, err = record.KeyPair()
	require.ErrorIs(t, err, cryptoerr.ErrInvalidArgument)
}

func TestKeyRecord_SignByte(t *testing.T) {
	t.Parallel()

	key, err := rsa.NewPublicKey(big.NewInt(3233), big.NewInt(255))
	require.NoError(t, err)

	record := key.Record()
	assert.Equal(t, []byte{0x00, 0xff}, record.E)
	assert.Empty(t, record.D)

	decoded, err := record.Key()
	require.NoError(t, err)
	assert.False(t, decoded.D.IsSome())
	assert.Equal(t, int64(255), decoded.E.Unwrap().Int64())
}

func TestKeyPairRecord(t *testing.T) {
	t.Parallel()

	pair, err := rsa.GenerateKey(rand.Reader, 128)
	require.NoError(t, err)

	decoded, err := pair.Record().KeyPair()
	require.NoError(t, err)

	assert.Equal(t, 0, decoded.P.Cmp(pair.P))
	assert.Equal(t, 0, decoded.Q.Cmp(pair.Q))
	assert.Equal(t, 0, decoded.E.Unwrap().Cmp(pair.E.Unwrap()))

	record := pair.Record()
	record.Q = []byte{0x03}

	_, err = record.KeyPair()
	require.ErrorIs(t, err, cryptoerr.ErrInvalidArgument)
}
