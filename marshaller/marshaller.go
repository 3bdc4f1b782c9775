// Package marshaller serializes key material records and sealed values.
//
// Two formats are provided behind [TypedMarshaller]: YAML for human-editable
// records and msgpack for compact storage.
package marshaller

// Format names reported in errors.
const (
	FormatYAML    = "yaml"
	FormatMsgpack = "msgpack"
)

func zero[T any]() T {
	var out T
	return out
}
