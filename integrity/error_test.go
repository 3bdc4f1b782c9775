package integrity //nolint:testpackage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-cryptokit/cryptoerr"
	"github.com/tarantool/go-cryptokit/hasher"
	"github.com/tarantool/go-cryptokit/rsa"
)

type opaqueHasher struct{}

func (opaqueHasher) Name() string { return "opaque" }
func (opaqueHasher) Hash(data []byte) []byte { return data }
func (opaqueHasher) Hash32(data []byte) uint32 { return uint32(len(data)) }
func (opaqueHasher) Hash64(data []byte) uint64 { return uint64(len(data)) }

func TestEntry_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "value", EntryValue.String())
	assert.Equal(t, "hash", EntryHash.String())
	assert.Equal(t, "signature", EntrySignature.String())
	assert.Equal(t, "entry(9)", Entry(9).String())
}

func TestSealError_Error(t *testing.T) {
	t.Parallel()

	fast, err := hasher.NewFunction("fast", hasher.Djb32)
	require.NoError(t, err)

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"marshal", errMarshalValue(errors.New("boom")), "value: boom"},
		{"sign", errSign("rsa-sha1", errors.New("hsm offline")), `signature "rsa-sha1": hsm offline`},
		{
			"malformed value",
			errMalformedValue(errors.New("garbage")),
			"value: invalid argument: malformed value: garbage",
		},
		{
			"missing canonical hash",
			errMissingHash("sha1", hasher.NewSHA1Hasher()),
			`hash "sha1": invalid argument: entry missing`,
		},
		{
			"missing aliased hash",
			errMissingHash("fast", fast),
			`hash "fast" (djb-32): invalid argument: entry missing`,
		},
		{
			"missing opaque hash",
			errMissingHash("opaque", opaqueHasher{}),
			`hash "opaque": invalid argument: entry missing`,
		},
		{
			"missing signature",
			errMissingSignature("rsa-sha1"),
			`signature "rsa-sha1": invalid argument: entry missing`,
		},
		{
			"hash mismatch",
			errHashMismatch("sha1", hasher.NewSHA1Hasher(), []byte{0x01, 0x02}, []byte{0xff}),
			`hash "sha1": invalid argument: hash mismatch: stored 0102, computed ff`,
		},
		{
			"signature rejected",
			errSignatureRejected("rsa-sha1", rsa.ErrSignatureMismatch),
			`signature "rsa-sha1": invalid argument: signature rejected: signature mismatch`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.expected, test.err.Error())
		})
	}
}

func TestSealError_Kinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"malformed value", errMalformedValue(errors.New("garbage")), ErrMalformedValue},
		{"missing hash", errMissingHash("sha1", hasher.NewSHA1Hasher()), ErrMissing},
		{"missing signature", errMissingSignature("rsa-sha1"), ErrMissing},
		{"hash mismatch", errHashMismatch("sha1", hasher.NewSHA1Hasher(), nil, nil), ErrHashMismatch},
		{"signature rejected", errSignatureRejected("rsa-sha1", rsa.ErrSignatureMismatch), ErrSignatureRejected},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			require.ErrorIs(t, test.err, test.kind)
			require.ErrorIs(t, test.err, cryptoerr.ErrInvalidArgument)

			var sealErr SealError
			require.ErrorAs(t, test.err, &sealErr)
		})
	}

	require.NotErrorIs(t, errMarshalValue(errors.New("boom")), cryptoerr.ErrInvalidArgument)
	require.ErrorIs(t, errSignatureRejected("rsa-sha1", rsa.ErrSignatureMismatch), rsa.ErrSignatureMismatch)
}

func TestSealError_Algorithm(t *testing.T) {
	t.Parallel()

	var sealErr SealError
	require.ErrorAs(t, errMissingHash("md5-32", hasher.New("md5-32").Unwrap()), &sealErr)

	alg, ok := sealErr.Algorithm.Get()
	require.True(t, ok)
	assert.Equal(t, hasher.Md5Fold32, alg)
	assert.Equal(t, EntryHash, sealErr.Entry)
	assert.Equal(t, "md5-32", sealErr.Name)

	require.ErrorAs(t, errMissingHash("opaque", opaqueHasher{}), &sealErr)
	assert.False(t, sealErr.Algorithm.IsSome())
}
