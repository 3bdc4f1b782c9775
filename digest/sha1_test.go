package digest_test

import (
	"crypto/sha1" //nolint:gosec
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-cryptokit/cryptoerr"
	"github.com/tarantool/go-cryptokit/digest"
)

func TestSHA1_KnownVectors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		out  string
	}{
		{"empty", "", "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
		{"abc", "abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{
			"two blocks",
			"abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
			"84983e441c3bd26ebaae4aa1f95129e5e54670f1",
		},
		{"million a", strings.Repeat("a", 1000000), "34aa973cd4c4daa4f61eeb2bdbad27316534016f"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			d := digest.NewSHA1()
			_, err := d.Write([]byte(test.in))
			require.NoError(t, err)

			assert.Equal(t, test.out, hex.EncodeToString(d.Digest()))
		})
	}
}

func TestSHA1_EmptyConstant(t *testing.T) {
	t.Parallel()

	require.NoError(t, digest.SelfTest())
	assert.Equal(t, digest.Empty[:], digest.NewSHA1().Digest())
}

func TestSHA1_MatchesStandardLibrary(t *testing.T) {
	t.Parallel()

	data := make([]byte, 300)
	for i := range data {
		data[i] = byte(i * 7)
	}

	for n := 0; n <= len(data); n += 13 {
		expected := sha1.Sum(data[:n]) //nolint:gosec
		got := digest.Sum1(data[:n])

		assert.Equal(t, expected, got, "length %d", n)
	}
}

func TestSHA1_ByteAtATime(t *testing.T) {
	t.Parallel()

	data := []byte(strings.Repeat("0123456789", 20))

	whole := digest.NewSHA1()
	_, _ = whole.Write(data)

	single := digest.NewSHA1()
	for _, b := range data {
		single.Update(b)
	}

	assert.Equal(t, whole.Digest(), single.Digest())
}

func TestSHA1_FixedWidthUpdates(t *testing.T) {
	t.Parallel()

	ints := digest.NewSHA1()
	ints.UpdateUint16(0x0102)
	ints.UpdateUint32(0x03040506)
	ints.UpdateUint64(0x0708090a0b0c0d0e)

	raw := digest.NewSHA1()
	_, _ = raw.Write([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14})

	assert.Equal(t, raw.Digest(), ints.Digest())
}

func TestSHA1_DigestIsCached(t *testing.T) {
	t.Parallel()

	d := digest.NewSHA1()
	_, _ = d.Write([]byte("abc"))

	first := d.Digest()
	second := d.Digest()
	assert.Equal(t, first, second)

	// Mutating the returned slice must not corrupt the cache.
	first[0] ^= 0xff
	assert.Equal(t, second, d.Digest())

	d.Update('d')
	assert.NotEqual(t, second, d.Digest())

	expected := sha1.Sum([]byte("abcd")) //nolint:gosec
	assert.Equal(t, expected[:], d.Digest())
}

func TestSHA1_SumInto(t *testing.T) {
	t.Parallel()

	d := digest.NewSHA1()
	_, _ = d.Write([]byte("abc"))

	buf := make([]byte, digest.Size+4)
	n, err := d.SumInto(true, buf[4:])
	require.NoError(t, err)
	assert.Equal(t, digest.Size, n)
	assert.Equal(t, "a9993e364706816aba3e25717850c26c9cd0d89d", hex.EncodeToString(buf[4:]))

	// Reset returned the engine to the initial state.
	assert.Equal(t, digest.Empty[:], d.Digest())

	_, err = d.SumInto(false, make([]byte, digest.Size-1))
	require.ErrorIs(t, err, cryptoerr.ErrOutputTooSmall)
}

func TestSHA1_HashInterface(t *testing.T) {
	t.Parallel()

	h := digest.NewHash()
	assert.Equal(t, digest.Size, h.Size())
	assert.Equal(t, digest.BlockSize, h.BlockSize())

	_, _ = h.Write([]byte("ab"))
	prefix := []byte{0xAA}
	sum := h.Sum(prefix)
	require.Len(t, sum, 1+digest.Size)
	assert.Equal(t, byte(0xAA), sum[0])

	// Sum does not change the state: writing more continues the same message.
	_, _ = h.Write([]byte("c"))
	assert.Equal(t, "a9993e364706816aba3e25717850c26c9cd0d89d", hex.EncodeToString(h.Sum(nil)))

	h.Reset()
	assert.Equal(t, digest.Empty[:], h.Sum(nil))
}
