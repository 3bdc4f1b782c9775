package otp_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-cryptokit/cryptoerr"
	"github.com/tarantool/go-cryptokit/otp"
)

func TestCipher_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []otp.Option
	}{
		{"default", nil},
		{"sha1 chacha20", []otp.Option{otp.WithDigest(otp.DigestSHA1)}},
		{"bbs", []otp.Option{otp.WithGenerator(otp.GeneratorBBS), otp.WithBBSBits(128)}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			secret := []byte("shared secret")
			msg := []byte("attack at dawn, bring snacks")

			sender, err := otp.New(secret, test.opts...)
			require.NoError(t, err)

			receiver, err := otp.New(secret, test.opts...)
			require.NoError(t, err)

			ciphertext := make([]byte, sender.EncipherOutputLength(len(msg)))

			n, err := sender.Encipher(ciphertext, msg)
			require.NoError(t, err)
			assert.Len(t, msg, n)
			assert.NotEqual(t, msg, ciphertext)

			plaintext := make([]byte, receiver.DecipherOutputLength(n))

			n, err = receiver.Decipher(plaintext, ciphertext[:n])
			require.NoError(t, err)
			assert.Equal(t, msg, plaintext[:n])
		})
	}
}

func TestCipher_DifferentSecrets(t *testing.T) {
	t.Parallel()

	a, err := otp.New([]byte("one"))
	require.NoError(t, err)

	b, err := otp.New([]byte("two"))
	require.NoError(t, err)

	zeros := make([]byte, 32)
	outA := make([]byte, 32)
	outB := make([]byte, 32)

	_, err = a.Encipher(outA, zeros)
	require.NoError(t, err)

	_, err = b.Encipher(outB, zeros)
	require.NoError(t, err)

	assert.NotEqual(t, outA, outB)
}

func TestCipher_GeneratorsDiffer(t *testing.T) {
	t.Parallel()

	a, err := otp.New([]byte("secret"))
	require.NoError(t, err)

	b, err := otp.New([]byte("secret"), otp.WithGenerator(otp.GeneratorBBS), otp.WithBBSBits(64))
	require.NoError(t, err)

	assert.Equal(t, otp.GeneratorBBS, b.Generator())
	assert.Equal(t, otp.DigestSHA256, b.Digest())

	outA := make([]byte, 16)
	outB := make([]byte, 16)

	_, _ = a.Encipher(outA, make([]byte, 16))
	_, _ = b.Encipher(outB, make([]byte, 16))

	assert.NotEqual(t, outA, outB)
}

func TestCipher_Reset(t *testing.T) {
	t.Parallel()

	c, err := otp.New([]byte("first"))
	require.NoError(t, err)

	first := make([]byte, 16)
	_, err = c.Encipher(first, make([]byte, 16))
	require.NoError(t, err)

	require.NoError(t, c.Reset([]byte("first")))

	again := make([]byte, 16)
	_, err = c.Encipher(again, make([]byte, 16))
	require.NoError(t, err)
	assert.Equal(t, first, again)

	require.NoError(t, c.Reset([]byte("second")))

	other := make([]byte, 16)
	_, err = c.Encipher(other, make([]byte, 16))
	require.NoError(t, err)
	assert.NotEqual(t, first, other)

	require.ErrorIs(t, c.Reset(nil), cryptoerr.ErrInvalidArgument)
}

func TestCipher_InPlace(t *testing.T) {
	t.Parallel()

	enc, err := otp.New([]byte("k"))
	require.NoError(t, err)

	dec, err := otp.New([]byte("k"))
	require.NoError(t, err)

	buf := []byte("in place")

	_, err = enc.Encipher(buf, buf)
	require.NoError(t, err)

	_, err = dec.Decipher(buf, buf)
	require.NoError(t, err)
	assert.True(t, bytes.Equal([]byte("in place"), buf))
}

func TestNew_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		secret []byte
		opts   []otp.Option
		field  string
	}{
		{"empty secret", nil, nil, "secret"},
		{"unknown digest", []byte("s"), []otp.Option{otp.WithDigest("md4")}, "digest"},
		{"unknown generator", []byte("s"), []otp.Option{otp.WithGenerator("rc4")}, "generator"},
		{"tiny bbs", []byte("s"), []otp.Option{otp.WithGenerator(otp.GeneratorBBS), otp.WithBBSBits(8)}, "bbs bits"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := otp.New(test.secret, test.opts...)
			require.ErrorIs(t, err, cryptoerr.ErrInvalidArgument)

			field, ok := cryptoerr.Field(err)
			require.True(t, ok)
			assert.Equal(t, test.field, field)
		})
	}
}

func TestCipher_ShortOutput(t *testing.T) {
	t.Parallel()

	c, err := otp.New([]byte("k"))
	require.NoError(t, err)

	_, err = c.Encipher(make([]byte, 3), make([]byte, 4))
	require.ErrorIs(t, err, cryptoerr.ErrOutputTooSmall)
}
