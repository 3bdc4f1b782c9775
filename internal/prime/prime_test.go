package prime_test

import (
	"crypto/rand"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-cryptokit/cryptoerr"
	"github.com/tarantool/go-cryptokit/internal/prime"
)

type failingReader struct{}

func (failingReader) Read(_ []byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func TestRounds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 6, prime.Rounds(12))
	assert.Equal(t, 1, prime.Rounds(0))
	assert.Equal(t, 1, prime.Rounds(-5))
	assert.Equal(t, 10, prime.Rounds(20))
}

func TestCandidate(t *testing.T) {
	t.Parallel()

	for _, bits := range []int{2, 3, 9, 64, 257} {
		c, err := prime.Candidate(rand.Reader, bits)
		require.NoError(t, err)

		assert.Equal(t, bits, c.BitLen())
		assert.Equal(t, uint(1), c.Bit(0))
		assert.Equal(t, uint(1), c.Bit(bits-2))
	}

	_, err := prime.Candidate(rand.Reader, 1)
	require.ErrorIs(t, err, cryptoerr.ErrInvalidArgument)
}

func TestProbable(t *testing.T) {
	t.Parallel()

	p, attempts, err := prime.Probable(rand.Reader, 128, prime.DefaultCertainty)
	require.NoError(t, err)
	assert.Positive(t, attempts)
	assert.Equal(t, 128, p.BitLen())
	assert.True(t, p.ProbablyPrime(20))
}

func TestBlum(t *testing.T) {
	t.Parallel()

	for range 5 {
		p, _, err := prime.Blum(rand.Reader, 96, prime.DefaultCertainty)
		require.NoError(t, err)

		assert.Equal(t, int64(3), new(big.Int).Mod(p, big.NewInt(4)).Int64())
		assert.Equal(t, 96, p.BitLen())
	}
}

func TestBlum_ReaderError(t *testing.T) {
	t.Parallel()

	_, _, err := prime.Blum(failingReader{}, 64, prime.DefaultCertainty)
	require.ErrorContains(t, err, "entropy exhausted")
}

func TestIsProbable(t *testing.T) {
	t.Parallel()

	// 561 is the smallest Carmichael number.
	assert.False(t, prime.IsProbable(big.NewInt(561), prime.DefaultCertainty))
	assert.True(t, prime.IsProbable(big.NewInt(65537), prime.DefaultCertainty))
}
