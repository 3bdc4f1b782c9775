package marshaller_test

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-cryptokit/bbs"
	"github.com/tarantool/go-cryptokit/marshaller"
	"github.com/tarantool/go-cryptokit/rsa"
)

type TestStruct struct {
	Name  string   `msgpack:"name"           yaml:"name"`
	Value int      `msgpack:"value"          yaml:"value"`
	Tags  []string `msgpack:"tags,omitempty" yaml:"tags,omitempty"`
}

func TestTypedYamlMarshaller_Marshal_Success(t *testing.T) {
	t.Parallel()

	marsh := marshaller.NewTypedYamlMarshaller[TestStruct]()

	data := TestStruct{
		Name:  "test",
		Value: 42,
		Tags:  []string{"tag1", "tag2"},
	}

	result, err := marsh.Marshal(data)
	require.NoError(t, err)

	expectedYaml := `name: test
value: 42
tags:
    - tag1
    - tag2
`
	require.YAMLEq(t, expectedYaml, string(result))

	decoded, err := marsh.Unmarshal(result)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestTypedYamlMarshaller_Unmarshal_Invalid(t *testing.T) {
	t.Parallel()

	marsh := marshaller.NewTypedYamlMarshaller[TestStruct]()

	invalidYaml := `
name: test
  value: [
`

	result, err := marsh.Unmarshal([]byte(invalidYaml))
	require.Error(t, err)
	assert.Equal(t, TestStruct{}, result) //nolint:exhaustruct

	var unmarshalErr marshaller.UnmarshalError
	require.ErrorAs(t, err, &unmarshalErr)
	assert.Equal(t, marshaller.FormatYAML, unmarshalErr.Format())
}

func TestTypedMsgpackMarshaller_RoundTrip(t *testing.T) {
	t.Parallel()

	marsh := marshaller.NewTypedMsgpackMarshaller[TestStruct]()

	data := TestStruct{Name: "msgpack", Value: -7, Tags: nil}

	result, err := marsh.Marshal(data)
	require.NoError(t, err)

	decoded, err := marsh.Unmarshal(result)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestTypedMsgpackMarshaller_Unmarshal_Invalid(t *testing.T) {
	t.Parallel()

	marsh := marshaller.NewTypedMsgpackMarshaller[TestStruct]()

	_, err := marsh.Unmarshal([]byte{0xc1})
	require.Error(t, err)

	var unmarshalErr marshaller.UnmarshalError
	require.ErrorAs(t, err, &unmarshalErr)
	assert.Equal(t, marshaller.FormatMsgpack, unmarshalErr.Format())
}

func TestKeyRecord_Formats(t *testing.T) {
	t.Parallel()

	pair, err := rsa.GenerateKey(rand.Reader, 256)
	require.NoError(t, err)

	marshallers := map[string]marshaller.TypedMarshaller[rsa.KeyRecord]{
		marshaller.FormatYAML:    marshaller.NewTypedYamlMarshaller[rsa.KeyRecord](),
		marshaller.FormatMsgpack: marshaller.NewTypedMsgpackMarshaller[rsa.KeyRecord](),
	}

	for name, marsh := range marshallers {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			data, err := marsh.Marshal(pair.Record())
			require.NoError(t, err)

			record, err := marsh.Unmarshal(data)
			require.NoError(t, err)

			decoded, err := record.KeyPair()
			require.NoError(t, err)

			assert.Equal(t, 0, decoded.N.Cmp(pair.N))
			assert.Equal(t, 0, decoded.D.Unwrap().Cmp(pair.D.Unwrap()))
			assert.Equal(t, 0, decoded.P.Cmp(pair.P))
		})
	}
}

func TestPublicKeyRecord_OmitsPrivateParts(t *testing.T) {
	t.Parallel()

	key, err := rsa.NewPublicKey(big.NewInt(3233), big.NewInt(17))
	require.NoError(t, err)

	data, err := marshaller.NewTypedYamlMarshaller[rsa.KeyRecord]().Marshal(key.Record())
	require.NoError(t, err)

	assert.NotContains(t, string(data), "d:")
	assert.NotContains(t, string(data), "p:")
}

func TestStateRecord_Msgpack(t *testing.T) {
	t.Parallel()

	g, err := bbs.GenerateKeyAndSeed(rand.Reader, 64)
	require.NoError(t, err)

	marsh := marshaller.NewTypedMsgpackMarshaller[bbs.StateRecord]()

	data, err := marsh.Marshal(g.State())
	require.NoError(t, err)

	record, err := marsh.Unmarshal(data)
	require.NoError(t, err)

	restored, err := bbs.Restore(record)
	require.NoError(t, err)

	expected, err := g.Next(bbs.MaxNextBits)
	require.NoError(t, err)

	actual, err := restored.Next(bbs.MaxNextBits)
	require.NoError(t, err)

	assert.Equal(t, expected, actual)
}
