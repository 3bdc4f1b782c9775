package cryptoerr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-cryptokit/cryptoerr"
)

func TestFieldError_Kinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		kind     error
		expected string
	}{
		{"invalid argument", cryptoerr.InvalidArgument("seed"), cryptoerr.ErrInvalidArgument, "invalid argument: seed"},
		{"oversized input", cryptoerr.OversizedInput("block"), cryptoerr.ErrOversizedInput, "oversized input: block"},
		{"output too small", cryptoerr.OutputTooSmall("dst"), cryptoerr.ErrOutputTooSmall, "output buffer too small: dst"},
		{
			"unsupported operation",
			cryptoerr.UnsupportedOperation("SeedBytes"),
			cryptoerr.ErrUnsupportedOperation,
			"unsupported operation: SeedBytes",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			require.ErrorIs(t, test.err, test.kind)
			assert.Equal(t, test.expected, test.err.Error())
		})
	}
}

func TestFieldError_EmptyField(t *testing.T) {
	t.Parallel()

	err := cryptoerr.FieldError{Kind: cryptoerr.ErrOversizedInput, Field: ""}
	assert.Equal(t, "oversized input", err.Error())
}

func TestField(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("failed to encipher: %w", cryptoerr.OversizedInput("block"))

	field, ok := cryptoerr.Field(wrapped)
	require.True(t, ok)
	assert.Equal(t, "block", field)

	_, ok = cryptoerr.Field(errors.New("plain"))
	assert.False(t, ok)
}
