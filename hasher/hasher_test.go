package hasher_test

import (
	"crypto/md5" //nolint:gosec
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-cryptokit/cryptoerr"
	"github.com/tarantool/go-cryptokit/hasher"
)

func TestSum_KnownValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		alg    hasher.Algorithm
		in     string
		want32 uint32
		want64 uint64
	}{
		{"djb empty", hasher.Djb, "", 0x1505, 0x1505},
		{"djb a", hasher.Djb, "a", 0x2b5c4, 0x2b5c4},
		{"djb hello", hasher.Djb, "hello", 0x0a9cede7, 0x310a9cede7},
		{"pal empty", hasher.Pal, "", 0, 0},
		{"pal hello", hasher.Pal32, "hello", 0x28d19932, 0x66eb1bb328d19932},
		{"xor hello", hasher.Xor, "hello", 0x656c6c07, 0x68656c6c6f},
		{"sha1 abc", hasher.Sha1, "abc", 0xb02180dc, 0x3f5643068f77c3da},
		{"sha1-32 abc", hasher.Sha1Fold32, "abc", 0xb02180dc, 0x3f5643068f77c3da},
		{"md5 abc", hasher.Md5Fold64, "abc", 0x52a45f27, 0x46976fe5143330c2},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.want32, hasher.Sum32(test.alg, []byte(test.in)))
			assert.Equal(t, test.want64, hasher.Sum64(test.alg, []byte(test.in)))
		})
	}
}

func TestSum_PreferredWidth(t *testing.T) {
	t.Parallel()

	data := []byte("abc")

	tests := []struct {
		alg      hasher.Algorithm
		expected string
	}{
		{hasher.Djb32, "0b873285"},
		{hasher.Sha1, "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{hasher.Sha1Fold32, "b02180dc"},
		{hasher.Sha1Fold64, "3f5643068f77c3da"},
		{hasher.Md5, "900150983cd24fb0d6963f7d28e17f72"},
		{hasher.Md5Fold32, "52a45f27"},
		{hasher.Sha256, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	}

	for _, test := range tests {
		t.Run(test.alg.String(), func(t *testing.T) {
			t.Parallel()

			sum := hasher.Sum(test.alg, data)
			assert.Len(t, sum, test.alg.Width())
			assert.Equal(t, test.expected, hex.EncodeToString(sum))
		})
	}
}

func TestSum_RawDigestsMatchStandardLibrary(t *testing.T) {
	t.Parallel()

	data := []byte("the quick brown fox")

	md5Sum := md5.Sum(data) //nolint:gosec
	assert.Equal(t, md5Sum[:], hasher.Sum(hasher.Md5, data))

	shaSum := sha256.Sum256(data)
	assert.Equal(t, shaSum[:], hasher.Sum(hasher.Sha256, data))

	assert.Len(t, hasher.Sum(hasher.Blake2b, data), 32)
	assert.Len(t, hasher.Sum(hasher.Blake3, data), 32)
	assert.Len(t, hasher.Sum(hasher.Xxh3, data), 8)
	assert.Len(t, hasher.Sum(hasher.Xxh332, data), 4)
}

func TestSum_Deterministic(t *testing.T) {
	t.Parallel()

	data := []byte{0x00, 0x7f, 0x80, 0xff, 0x10, 0x20}

	for alg := hasher.Djb; alg.Valid(); alg++ {
		t.Run(alg.String(), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, hasher.Sum(alg, data), hasher.Sum(alg, data))
			assert.Equal(t, hasher.Sum32(alg, data), hasher.Sum32(alg, data))
			assert.Equal(t, hasher.Sum64(alg, data), hasher.Sum64(alg, data))
		})
	}
}

func TestXorFold(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(0x0102030405060708), hasher.Xor64Fold([]byte{1, 2, 3, 4, 5, 6, 7, 8}))
	assert.Equal(t, uint64(0x0203040506070808), hasher.Xor64Fold([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9}))
	assert.Equal(t, uint32(0x01020304), hasher.Xor32Fold([]byte{1, 2, 3, 4}))
	assert.Equal(t, uint32(0x01020304^0x05060708), hasher.Xor32Fold([]byte{1, 2, 3, 4, 5, 6, 7, 8}))
	assert.Equal(t, uint64(0), hasher.Xor64Fold(nil))
}

func TestHash8(t *testing.T) {
	t.Parallel()

	assert.Equal(t, byte(0), hasher.Hash8(nil))
	assert.Equal(t, byte(0x01^0x02^0x04), hasher.Hash8([]byte{0x01, 0x02, 0x04}))
	assert.Equal(t, byte(0x12^0x34^0x56^0x78), hasher.Fold8(0x12345678))
}

func TestNewFunction(t *testing.T) {
	t.Parallel()

	fn, err := hasher.NewFunction("custom", hasher.Djb32)
	require.NoError(t, err)
	assert.Equal(t, "custom", fn.Name())
	assert.Equal(t, hasher.Djb32, fn.Algorithm())
	assert.Equal(t, hasher.Sum(hasher.Djb32, []byte("x")), fn.Hash([]byte("x")))

	_, err = hasher.NewFunction("", hasher.Djb)
	require.ErrorIs(t, err, cryptoerr.ErrInvalidArgument)

	_, err = hasher.NewFunction("bad", hasher.Algorithm(0))
	require.ErrorIs(t, err, cryptoerr.ErrInvalidArgument)
}

func TestNewSHA1Hasher(t *testing.T) {
	t.Parallel()

	h := hasher.NewSHA1Hasher()
	assert.Equal(t, "sha1", h.Name())
	assert.Equal(t, "da39a3ee5e6b4b0d3255bfef95601890afd80709", hex.EncodeToString(h.Hash(nil)))

	h = hasher.NewSHA256Hasher()
	assert.Equal(t, "sha256", h.Name())
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		hex.EncodeToString(h.Hash([]byte(""))),
	)
}
