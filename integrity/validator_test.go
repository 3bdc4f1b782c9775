package integrity_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-cryptokit/crypto"
	"github.com/tarantool/go-cryptokit/cryptoerr"
	"github.com/tarantool/go-cryptokit/hasher"
	"github.com/tarantool/go-cryptokit/integrity"
	"github.com/tarantool/go-cryptokit/marshaller"
)

func sealedFixture(t *testing.T) integrity.Sealed {
	t.Helper()

	gen := integrity.NewGenerator[SimpleStruct](
		marshaller.NewTypedYamlMarshaller[SimpleStruct](),
		[]hasher.Hasher{hasher.NewSHA256Hasher()},
		[]crypto.Signer{newMockSigner("mock")},
	)

	sealed, err := gen.Generate(SimpleStruct{Name: "fixture", Value: 7})
	require.NoError(t, err)

	return sealed
}

func newValidator() integrity.Validator[SimpleStruct] {
	return integrity.NewValidator[SimpleStruct](
		marshaller.NewTypedYamlMarshaller[SimpleStruct](),
		[]hasher.Hasher{hasher.NewSHA256Hasher()},
		[]crypto.Verifier{newMockSigner("mock")},
	)
}

func TestValidator_Valid(t *testing.T) {
	t.Parallel()

	result := newValidator().Validate(sealedFixture(t))
	require.NoError(t, result.Error)
	assert.Equal(t, SimpleStruct{Name: "fixture", Value: 7}, result.Value.Unwrap())
}

func TestValidator_IgnoresUnexpected(t *testing.T) {
	t.Parallel()

	sealed := sealedFixture(t)
	sealed.Hashes["unknown"] = []byte{1}
	sealed.Signatures["unknown"] = []byte{2}

	result := newValidator().Validate(sealed)
	require.NoError(t, result.Error)
}

func TestValidator_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mutate   func(s *integrity.Sealed)
		kinds    []error
		contains []string
	}{
		{
			name: "missing hash",
			mutate: func(s *integrity.Sealed) {
				delete(s.Hashes, "sha256")
			},
			kinds:    []error{integrity.ErrMissing},
			contains: []string{`hash "sha256": invalid argument: entry missing`},
		},
		{
			name: "missing signature",
			mutate: func(s *integrity.Sealed) {
				s.Signatures = nil
			},
			kinds:    []error{integrity.ErrMissing},
			contains: []string{`signature "mock": invalid argument: entry missing`},
		},
		{
			name: "hash mismatch",
			mutate: func(s *integrity.Sealed) {
				s.Hashes["sha256"] = []byte{0xde, 0xad}
			},
			kinds:    []error{integrity.ErrHashMismatch},
			contains: []string{`hash "sha256"`, "stored dead, computed "},
		},
		{
			name: "tampered value",
			mutate: func(s *integrity.Sealed) {
				s.Value = []byte("name: fixture\nvalue: 8\n")
			},
			kinds:    []error{integrity.ErrHashMismatch, integrity.ErrSignatureRejected},
			contains: []string{`hash "sha256"`, `signature "mock": invalid argument: signature rejected: bad signature`},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			sealed := sealedFixture(t)
			test.mutate(&sealed)

			result := newValidator().Validate(sealed)
			require.ErrorIs(t, result.Error, cryptoerr.ErrInvalidArgument)
			assert.True(t, result.Value.IsSome())

			for _, kind := range test.kinds {
				require.ErrorIs(t, result.Error, kind)
			}

			for _, part := range test.contains {
				assert.Contains(t, result.Error.Error(), part)
			}
		})
	}
}

func TestValidator_ReportsInNameOrder(t *testing.T) {
	t.Parallel()

	v := integrity.NewValidator[SimpleStruct](
		marshaller.NewTypedYamlMarshaller[SimpleStruct](),
		[]hasher.Hasher{hasher.New("xxh3").Unwrap(), hasher.New("djb").Unwrap()},
		[]crypto.Verifier{newMockSigner("zeta"), newMockSigner("alpha")},
	)

	result := v.Validate(integrity.Sealed{Value: []byte("name: x\nvalue: 1\n"), Hashes: nil, Signatures: nil})

	assert.Equal(t, strings.Join([]string{
		`hash "djb": invalid argument: entry missing`,
		`hash "xxh3": invalid argument: entry missing`,
		`signature "alpha": invalid argument: entry missing`,
		`signature "zeta": invalid argument: entry missing`,
	}, "\n"), result.Error.Error())
}

func TestValidator_UnmarshalError(t *testing.T) {
	t.Parallel()

	unmarshalErr := errors.New("garbage")
	v := integrity.NewValidator[SimpleStruct](
		&mockFailingTypedMarshaller[SimpleStruct]{marshalErr: nil, unmarshalErr: unmarshalErr},
		nil,
		nil,
	)

	result := v.Validate(integrity.Sealed{Value: []byte("x"), Hashes: nil, Signatures: nil})
	require.ErrorIs(t, result.Error, unmarshalErr)
	require.ErrorIs(t, result.Error, integrity.ErrMalformedValue)
	require.ErrorIs(t, result.Error, cryptoerr.ErrInvalidArgument)
	assert.False(t, result.Value.IsSome())

	var target integrity.SealError
	require.ErrorAs(t, result.Error, &target)
	assert.Equal(t, integrity.EntryValue, target.Entry)
}
