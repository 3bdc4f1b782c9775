// Package cryptoerr defines the error kinds shared by the primitives of this module.
//
// Every failure reported by the ciphers, generators and the registry wraps exactly one
// of the kind sentinels below, so callers can branch with [errors.Is]. A [FieldError]
// additionally names the argument or field that violated its precondition.
package cryptoerr

import (
	"errors"
)

var (
	// ErrInvalidArgument is returned for invalid constructor inputs, seeds that are not
	// relatively prime to the modulus, negative bit lengths and similar.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOversizedInput is returned when a block does not fit the modulus or the
	// effective capacity of a pad.
	ErrOversizedInput = errors.New("oversized input")
	// ErrOutputTooSmall is returned when a destination buffer cannot hold the result.
	ErrOutputTooSmall = errors.New("output buffer too small")
	// ErrUnsupportedOperation is returned for operations a component refuses to perform.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// FieldError is an error of a given kind tied to the field that caused it.
type FieldError struct {
	Kind  error
	Field string
}

// Error returns "<kind>: <field>".
func (e FieldError) Error() string {
	if e.Field == "" {
		return e.Kind.Error()
	}

	return e.Kind.Error() + ": " + e.Field
}

// Unwrap returns the error kind.
func (e FieldError) Unwrap() error {
	return e.Kind
}

// InvalidArgument returns an invalid-argument error for field.
func InvalidArgument(field string) error {
	return FieldError{Kind: ErrInvalidArgument, Field: field}
}

// OversizedInput returns an oversized-input error for field.
func OversizedInput(field string) error {
	return FieldError{Kind: ErrOversizedInput, Field: field}
}

// OutputTooSmall returns an undersized-output-buffer error for field.
func OutputTooSmall(field string) error {
	return FieldError{Kind: ErrOutputTooSmall, Field: field}
}

// UnsupportedOperation returns an unsupported-operation error for operation op.
func UnsupportedOperation(op string) error {
	return FieldError{Kind: ErrUnsupportedOperation, Field: op}
}

// Field extracts the field name from err, if err carries one.
func Field(err error) (string, bool) {
	var fieldErr FieldError
	if !errors.As(err, &fieldErr) {
		return "", false
	}

	return fieldErr.Field, true
}
