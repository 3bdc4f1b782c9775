package marshaller //nolint:testpackage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalError(t *testing.T) {
	t.Parallel()

	parentErr := errors.New("unsupported type")
	err := MarshalError{format: FormatMsgpack, parent: parentErr}

	assert.Equal(t, "failed to marshal msgpack: unsupported type", err.Error())
	assert.Equal(t, parentErr, err.Unwrap())
	assert.Equal(t, FormatMsgpack, err.Format())
}

func Test_errMarshal(t *testing.T) {
	t.Parallel()

	t.Run("with parent error", func(t *testing.T) {
		t.Parallel()

		parentErr := errors.New("yaml marshal error")
		err := errMarshal(FormatYAML, parentErr)
		require.Error(t, err)
		assert.Equal(t, "failed to marshal yaml: yaml marshal error", err.Error())

		var marshalErr MarshalError
		require.ErrorAs(t, err, &marshalErr)
		assert.Equal(t, parentErr, marshalErr.Unwrap())
	})

	t.Run("with nil parent error", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, errMarshal(FormatYAML, nil))
	})
}

func TestUnmarshalError(t *testing.T) {
	t.Parallel()

	parentErr := errors.New("unexpected code")
	err := UnmarshalError{format: FormatMsgpack, parent: parentErr}

	assert.Equal(t, "failed to unmarshal msgpack: unexpected code", err.Error())
	assert.Equal(t, parentErr, err.Unwrap())
	assert.Equal(t, FormatMsgpack, err.Format())
}

func Test_errUnmarshal(t *testing.T) {
	t.Parallel()

	t.Run("with parent error", func(t *testing.T) {
		t.Parallel()

		parentErr := errors.New("yaml unmarshal error")
		err := errUnmarshal(FormatYAML, parentErr)
		require.ErrorIs(t, err, parentErr)

		var unmarshalErr UnmarshalError
		require.ErrorAs(t, err, &unmarshalErr)
		assert.Equal(t, FormatYAML, unmarshalErr.Format())
	})

	t.Run("with nil parent error", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, errUnmarshal(FormatYAML, nil))
	})
}
