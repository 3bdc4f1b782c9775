package rsa_test

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarantool/go-option"

	"github.com/tarantool/go-cryptokit/cryptoerr"
	"github.com/tarantool/go-cryptokit/rsa"
)

// p = 61, q = 53, e = 17, d = 2753.
func smallKey(t *testing.T) rsa.Key {
	t.Helper()

	key, err := rsa.NewKey(big.NewInt(3233), option.Some(big.NewInt(17)), option.Some(big.NewInt(2753)))
	require.NoError(t, err)

	return key
}

func smallCipher(t *testing.T) *rsa.Cipher {
	t.Helper()

	c, err := rsa.NewCipher(smallKey(t))
	require.NoError(t, err)

	return c
}

func TestCipher_KnownVector(t *testing.T) {
	t.Parallel()

	c := smallCipher(t)
	assert.Equal(t, 2, c.BlockLengthPlain())
	assert.Equal(t, 2, c.BlockLengthCipher())

	dst := make([]byte, c.EncipherOutputLength(1))

	n, err := c.Encipher(dst, []byte{0x41})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0a, 0xe6}, dst[:n])

	plain := make([]byte, c.DecipherOutputLength(n))

	n, err = c.Decipher(plain, dst[:n])
	require.NoError(t, err)
	assert.Equal(t, []byte{0x41}, plain[:n])
}

func TestCipher_OutputLength(t *testing.T) {
	t.Parallel()

	c := smallCipher(t)

	tests := []struct {
		in       int
		expected int
	}{
		{0, 2},
		{1, 2},
		{2, 2},
		{3, -1},
		{100, -1},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, c.EncipherOutputLength(test.in))
		assert.Equal(t, test.expected, c.DecipherOutputLength(test.in))
	}
}

func TestCipher_Errors(t *testing.T) {
	t.Parallel()

	c := smallCipher(t)
	dst := make([]byte, 2)

	tests := []struct {
		name string
		dst  []byte
		src  []byte
		kind error
	}{
		{"block equals modulus", dst, []byte{0x0c, 0xa1}, cryptoerr.ErrOversizedInput},
		{"block above modulus", dst, []byte{0xff, 0xff}, cryptoerr.ErrOversizedInput},
		{"block too long", dst, []byte{0x00, 0x00, 0x01}, cryptoerr.ErrOversizedInput},
		{"short output", make([]byte, 1), []byte{0x41}, cryptoerr.ErrOutputTooSmall},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := c.Encipher(test.dst, test.src)
			require.ErrorIs(t, err, test.kind)
		})
	}
}

func TestCipher_MissingExponent(t *testing.T) {
	t.Parallel()

	public, err := smallKey(t).Public()
	require.NoError(t, err)

	c, err := rsa.NewCipher(public)
	require.NoError(t, err)

	_, err = c.Decipher(make([]byte, 2), []byte{0x01})
	require.ErrorIs(t, err, cryptoerr.ErrUnsupportedOperation)

	private, err := rsa.NewPrivateKey(big.NewInt(3233), big.NewInt(2753))
	require.NoError(t, err)

	c, err = rsa.NewCipher(private)
	require.NoError(t, err)

	_, err = c.Encipher(make([]byte, 2), []byte{0x01})
	require.ErrorIs(t, err, cryptoerr.ErrUnsupportedOperation)

	_, err = private.Public()
	require.ErrorIs(t, err, cryptoerr.ErrInvalidArgument)
}

func TestNewKey_Invalid(t *testing.T) {
	t.Parallel()

	none := option.None[*big.Int]()
	one := option.Some(big.NewInt(3))

	tests := []struct {
		name  string
		n     *big.Int
		e, d  option.Generic[*big.Int]
		field string
	}{
		{"nil modulus", nil, one, none, "n"},
		{"zero modulus", big.NewInt(0), one, none, "n"},
		{"no exponents", big.NewInt(3233), none, none, "exponent"},
		{"nil e", big.NewInt(3233), option.Some[*big.Int](nil), none, "e"},
		{"negative d", big.NewInt(3233), none, option.Some(big.NewInt(-1)), "d"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := rsa.NewKey(test.n, test.e, test.d)
			require.ErrorIs(t, err, cryptoerr.ErrInvalidArgument)

			field, ok := cryptoerr.Field(err)
			require.True(t, ok)
			assert.Equal(t, test.field, field)
		})
	}
}

func TestCipher_SignVerify(t *testing.T) {
	t.Parallel()

	c := smallCipher(t)

	signature, err := c.Sign([]byte{0x41})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x4c}, signature)

	require.NoError(t, c.Verify([]byte{0x41}, signature))
	require.ErrorIs(t, c.Verify([]byte{0x42}, signature), rsa.ErrSignatureMismatch)
}

func TestCipher_Pad(t *testing.T) {
	t.Parallel()

	c := smallCipher(t)

	assert.True(t, c.CanPad(0))
	assert.True(t, c.CanPad(2))
	assert.False(t, c.CanPad(3))

	padded, err := c.Pad([]byte{0x41})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x41}, padded)

	_, err = c.Pad([]byte{1, 2, 3})
	require.ErrorIs(t, err, cryptoerr.ErrOversizedInput)
}

func TestCipher_RoundTripAllBlocks(t *testing.T) {
	t.Parallel()

	c := smallCipher(t)
	enc := make([]byte, 2)
	dec := make([]byte, 2)

	for m := int64(0); m < 3233; m += 7 {
		block := big.NewInt(m).Bytes()

		n, err := c.Encipher(enc, block)
		require.NoError(t, err)

		k, err := c.Decipher(dec, enc[:n])
		require.NoError(t, err)

		assert.Equal(t, m, new(big.Int).SetBytes(dec[:k]).Int64())
	}
}

func TestHelloEndToEnd(t *testing.T) {
	t.Parallel()

	pair, err := rsa.GenerateKey(rand.Reader, 1024)
	require.NoError(t, err)
	assert.Equal(t, 1024, pair.BitLength())

	public, err := pair.Public()
	require.NoError(t, err)

	encrypter, err := rsa.NewCipher(public)
	require.NoError(t, err)

	decrypter, err := rsa.NewCipher(pair.Key)
	require.NoError(t, err)

	ciphertext := make([]byte, encrypter.EncipherOutputLength(5))

	n, err := encrypter.Encipher(ciphertext, []byte("hello"))
	require.NoError(t, err)

	plaintext := make([]byte, decrypter.DecipherOutputLength(n))

	n, err = decrypter.Decipher(plaintext, ciphertext[:n])
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), plaintext[:n])
}
