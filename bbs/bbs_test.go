package bbs_test

import (
	"crypto/rand"
	"math/big"
	mathrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-cryptokit/bbs"
	"github.com/tarantool/go-cryptokit/cryptoerr"
	"github.com/tarantool/go-cryptokit/internal/mocks"
)

// N = 7 * 11, seed 3: the state cycles through 9, 4, 16, 25.
func smallGenerator(t *testing.T) *bbs.Generator {
	t.Helper()

	key, err := bbs.NewKey(big.NewInt(77))
	require.NoError(t, err)

	g, err := bbs.New(key, big.NewInt(3))
	require.NoError(t, err)

	return g
}

func TestGenerator_Next(t *testing.T) {
	t.Parallel()

	g := smallGenerator(t)

	bits, err := g.Next(8)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x99), bits)

	bits, err = g.Next(4)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x9), bits)

	bits, err = g.Next(1)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), bits)
}

func TestGenerator_NextInvalidCount(t *testing.T) {
	t.Parallel()

	g := smallGenerator(t)

	for _, n := range []int{0, -1, 33} {
		_, err := g.Next(n)
		require.ErrorIs(t, err, cryptoerr.ErrInvalidArgument)
	}
}

func TestGenerator_Read(t *testing.T) {
	t.Parallel()

	g := smallGenerator(t)
	buf := make([]byte, 3)

	n, err := g.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte{0x99, 0x99, 0x99}, buf)
}

func TestNew_InvalidSeed(t *testing.T) {
	t.Parallel()

	key, err := bbs.NewKey(big.NewInt(77))
	require.NoError(t, err)

	tests := []struct {
		name string
		seed *big.Int
	}{
		{"nil", nil},
		{"zero", big.NewInt(0)},
		{"negative", big.NewInt(-3)},
		{"shares factor 7", big.NewInt(14)},
		{"shares factor 11", big.NewInt(22)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := bbs.New(key, test.seed)
			require.ErrorIs(t, err, cryptoerr.ErrInvalidArgument)

			field, ok := cryptoerr.Field(err)
			require.True(t, ok)
			assert.Equal(t, "seed", field)
		})
	}
}

func TestNewKey_Invalid(t *testing.T) {
	t.Parallel()

	for _, n := range []*big.Int{
		nil, big.NewInt(0), big.NewInt(1), big.NewInt(9), big.NewInt(-77), big.NewInt(78), big.NewInt(79),
	} {
		_, err := bbs.NewKey(n)
		require.ErrorIs(t, err, cryptoerr.ErrInvalidArgument)
	}
}

func TestRandomSeed_DegenerateKey(t *testing.T) {
	t.Parallel()

	for _, n := range []int64{1, 2} {
		key := bbs.Key{N: big.NewInt(n), P: nil, Q: nil}

		require.NotPanics(t, func() {
			_, err := bbs.RandomSeed(rand.Reader, key)
			require.ErrorIs(t, err, cryptoerr.ErrInvalidArgument)

			_, err = bbs.NewRandom(rand.Reader, key)
			require.ErrorIs(t, err, cryptoerr.ErrInvalidArgument)
		})
	}
}

func TestGenerateKey(t *testing.T) {
	t.Parallel()

	key, err := bbs.GenerateKey(rand.Reader, 128)
	require.NoError(t, err)

	four := big.NewInt(4)
	assert.Equal(t, int64(3), new(big.Int).Mod(key.P, four).Int64())
	assert.Equal(t, int64(3), new(big.Int).Mod(key.Q, four).Int64())
	assert.NotEqual(t, 0, key.P.Cmp(key.Q))
	assert.Equal(t, 0, key.N.Cmp(new(big.Int).Mul(key.P, key.Q)))
	assert.Equal(t, 128, key.BitLength())
}

func TestGenerateKey_OddBits(t *testing.T) {
	t.Parallel()

	key, err := bbs.GenerateKey(rand.Reader, 129)
	require.NoError(t, err)

	assert.Equal(t, 129, key.BitLength())
	assert.Equal(t, 65, key.P.BitLen())
	assert.Equal(t, 64, key.Q.BitLen())
}

func TestGenerateKey_TooSmall(t *testing.T) {
	t.Parallel()

	_, err := bbs.GenerateKey(rand.Reader, 8)
	require.ErrorIs(t, err, cryptoerr.ErrInvalidArgument)
}

func TestGenerateKey_Deterministic(t *testing.T) {
	t.Parallel()

	first, err := bbs.GenerateKeyAndSeed(mocks.NewReader("bbs"), 96, bbs.WithCertainty(16))
	require.NoError(t, err)

	second, err := bbs.GenerateKeyAndSeed(mocks.NewReader("bbs"), 96, bbs.WithCertainty(16))
	require.NoError(t, err)

	assert.Equal(t, first.State(), second.State())
	assert.Equal(t, 96, first.BitLength())
}

func TestGenerator_SameStateSameBits(t *testing.T) {
	t.Parallel()

	key, err := bbs.GenerateKey(rand.Reader, 64)
	require.NoError(t, err)

	seed, err := bbs.RandomSeed(rand.Reader, key)
	require.NoError(t, err)

	first, err := bbs.New(key, seed)
	require.NoError(t, err)

	second, err := bbs.New(key, seed)
	require.NoError(t, err)

	for range 16 {
		a, err := first.Next(bbs.MaxNextBits)
		require.NoError(t, err)

		b, err := second.Next(bbs.MaxNextBits)
		require.NoError(t, err)

		assert.Equal(t, a, b)
	}
}

func TestGenerator_RandSourceSeedIsNoop(t *testing.T) {
	t.Parallel()

	first := smallGenerator(t)
	second := smallGenerator(t)

	rnd := mathrand.New(first) //nolint:gosec
	rnd.Seed(42)

	assert.Equal(t, second.Uint64(), rnd.Uint64())
	assert.GreaterOrEqual(t, second.Int63(), int64(0))
}

func TestGenerator_SeedBytes(t *testing.T) {
	t.Parallel()

	err := smallGenerator(t).SeedBytes([]byte{1, 2, 3})
	require.ErrorIs(t, err, cryptoerr.ErrUnsupportedOperation)
}

func TestGenerator_StateRestore(t *testing.T) {
	t.Parallel()

	g, err := bbs.GenerateKeyAndSeed(rand.Reader, 64)
	require.NoError(t, err)

	_, err = g.Next(13)
	require.NoError(t, err)

	restored, err := bbs.Restore(g.State())
	require.NoError(t, err)

	expected := make([]byte, 16)
	actual := make([]byte, 16)

	_, _ = g.Read(expected)
	_, _ = restored.Read(actual)

	assert.Equal(t, expected, actual)
}

func TestRestore_Invalid(t *testing.T) {
	t.Parallel()

	_, err := bbs.Restore(bbs.StateRecord{N: []byte{77}, X: []byte{14}})
	require.ErrorIs(t, err, cryptoerr.ErrInvalidArgument)

	_, err = bbs.Restore(bbs.StateRecord{N: []byte{77}, X: []byte{0}})
	require.ErrorIs(t, err, cryptoerr.ErrInvalidArgument)
}
