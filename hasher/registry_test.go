package hasher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-cryptokit/cryptoerr"
	"github.com/tarantool/go-cryptokit/hasher"
)

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	registry := hasher.NewRegistry()

	for _, name := range []string{"sha1", "sha1-32", "djb", "djb-32", "xor-32", "md5-64", "xxh3", "blake3"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			found := registry.Lookup(name)
			require.True(t, found.IsSome())

			h, ok := found.Get()
			require.True(t, ok)
			assert.Equal(t, name, h.Name())
		})
	}

	assert.False(t, registry.Lookup("nonexistent").IsSome())
}

func TestRegistry_DefaultWidthAlias(t *testing.T) {
	t.Parallel()

	registry := hasher.NewRegistry()
	data := []byte("alias")

	djb, ok := registry.Lookup("djb").Get()
	require.True(t, ok)

	djb64, ok := registry.Lookup("djb-64").Get()
	require.True(t, ok)

	djb32, ok := registry.Lookup("djb-32").Get()
	require.True(t, ok)

	assert.Len(t, djb.Hash(data), 8)
	assert.Equal(t, djb.Hash(data), djb64.Hash(data))
	assert.Len(t, djb32.Hash(data), 4)
	assert.Equal(t, djb.Hash32(data), djb32.Hash32(data))
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	registry := hasher.NewEmptyRegistry()
	assert.Empty(t, registry.Names())

	fn, err := hasher.NewFunction("fast", hasher.Xxh3)
	require.NoError(t, err)

	require.NoError(t, registry.Register("fast", fn))
	assert.Equal(t, []string{"fast"}, registry.Names())
	assert.True(t, registry.Lookup("fast").IsSome())

	err = registry.Register("", fn)
	require.ErrorIs(t, err, cryptoerr.ErrInvalidArgument)

	err = registry.Register("nil", nil)
	require.ErrorIs(t, err, cryptoerr.ErrInvalidArgument)

	field, ok := cryptoerr.Field(err)
	require.True(t, ok)
	assert.Equal(t, "hasher", field)
}

func TestRegistry_Names(t *testing.T) {
	t.Parallel()

	names := hasher.NewRegistry().Names()
	assert.Contains(t, names, "sha1")
	assert.Contains(t, names, "md5-32")
	assert.IsNonDecreasing(t, names)
}

func TestNew(t *testing.T) {
	t.Parallel()

	h, ok := hasher.New("djb-32").Get()
	require.True(t, ok)
	assert.Equal(t, "djb-32", h.Name())

	assert.False(t, hasher.New("crc32").IsSome())
}
