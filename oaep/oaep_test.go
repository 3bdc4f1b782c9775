package oaep_test

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/minio/sha256-simd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-cryptokit/cryptoerr"
	"github.com/tarantool/go-cryptokit/internal/mocks"
	"github.com/tarantool/go-cryptokit/oaep"
)

func newPad(t *testing.T, blockSize int, opts ...oaep.Option) *oaep.Pad {
	t.Helper()

	pad, err := oaep.New(rand.Reader, blockSize, opts...)
	require.NoError(t, err)

	return pad
}

func TestPad_Lengths(t *testing.T) {
	t.Parallel()

	pad := newPad(t, 128)
	assert.Equal(t, 42, pad.HLength())
	assert.Equal(t, 86, pad.MessageLength())
	assert.Equal(t, 128, pad.BlockSize())

	assert.Equal(t, 128, pad.EncipherOutputLength(0))
	assert.Equal(t, 128, pad.EncipherOutputLength(86))
	assert.Equal(t, -1, pad.EncipherOutputLength(87))

	assert.Equal(t, 86, pad.DecipherOutputLength(128))
	assert.Equal(t, -1, pad.DecipherOutputLength(129))

	wide := newPad(t, 128, oaep.WithHash(sha256.New))
	assert.Equal(t, 66, wide.HLength())
}

func TestPad_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []oaep.Option
	}{
		{"sha1", nil},
		{"sha256", []oaep.Option{oaep.WithHash(sha256.New)}},
		{"label", []oaep.Option{oaep.WithLabel([]byte("key material"))}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			pad := newPad(t, 100, test.opts...)

			for size := 0; size <= pad.MessageLength(); size++ {
				msg := bytes.Repeat([]byte{0xa5}, size)
				block := make([]byte, pad.EncipherOutputLength(size))

				n, err := pad.Encipher(block, msg)
				require.NoError(t, err)
				require.Equal(t, 100, n)
				assert.Equal(t, byte(0), block[0])

				out := make([]byte, pad.DecipherOutputLength(n))

				n, err = pad.Decipher(out, block)
				require.NoError(t, err)
				assert.Equal(t, msg, out[:n])
			}
		})
	}
}

func TestPad_DecipherShortBlock(t *testing.T) {
	t.Parallel()

	pad := newPad(t, 64)
	block := make([]byte, 64)

	_, err := pad.Encipher(block, []byte("hi"))
	require.NoError(t, err)

	out := make([]byte, pad.MessageLength())

	n, err := pad.Decipher(out, block[1:])
	require.NoError(t, err)
	assert.Equal(t, []byte("hi"), out[:n])
}

func TestPad_Deterministic(t *testing.T) {
	t.Parallel()

	first, err := oaep.New(mocks.NewReader("oaep"), 64)
	require.NoError(t, err)

	second, err := oaep.New(mocks.NewReader("oaep"), 64)
	require.NoError(t, err)

	a := make([]byte, 64)
	b := make([]byte, 64)

	_, err = first.Encipher(a, []byte("msg"))
	require.NoError(t, err)

	_, err = second.Encipher(b, []byte("msg"))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestPad_Tampered(t *testing.T) {
	t.Parallel()

	pad := newPad(t, 64)
	block := make([]byte, 64)

	_, err := pad.Encipher(block, []byte("secret"))
	require.NoError(t, err)

	for _, i := range []int{0, 5, 30, 63} {
		tampered := bytes.Clone(block)
		tampered[i] ^= 0x01

		_, err = pad.Decipher(make([]byte, 64), tampered)
		require.ErrorIs(t, err, cryptoerr.ErrInvalidArgument)
	}
}

func TestPad_LabelMismatch(t *testing.T) {
	t.Parallel()

	sender := newPad(t, 64, oaep.WithLabel([]byte("a")))
	receiver := newPad(t, 64, oaep.WithLabel([]byte("b")))

	block := make([]byte, 64)

	_, err := sender.Encipher(block, []byte("msg"))
	require.NoError(t, err)

	_, err = receiver.Decipher(make([]byte, 64), block)
	require.ErrorIs(t, err, cryptoerr.ErrInvalidArgument)
}

func TestPad_Errors(t *testing.T) {
	t.Parallel()

	_, err := oaep.New(nil, 64)
	require.ErrorIs(t, err, cryptoerr.ErrInvalidArgument)

	_, err = oaep.New(rand.Reader, 41)
	require.ErrorIs(t, err, cryptoerr.ErrInvalidArgument)

	pad := newPad(t, 64)

	_, err = pad.Encipher(make([]byte, 64), make([]byte, 23))
	require.ErrorIs(t, err, cryptoerr.ErrOversizedInput)

	_, err = pad.Encipher(make([]byte, 63), []byte("x"))
	require.ErrorIs(t, err, cryptoerr.ErrOutputTooSmall)

	block := make([]byte, 64)
	_, err = pad.Encipher(block, []byte("four"))
	require.NoError(t, err)

	_, err = pad.Decipher(make([]byte, 3), block)
	require.ErrorIs(t, err, cryptoerr.ErrOutputTooSmall)

	_, err = pad.Decipher(make([]byte, 64), make([]byte, 65))
	require.ErrorIs(t, err, cryptoerr.ErrOversizedInput)
}
