package integrity

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/tarantool/go-option"

	"github.com/tarantool/go-cryptokit/cryptoerr"
	"github.com/tarantool/go-cryptokit/hasher"
)

// Validation failures wrap one of these kinds, each of which wraps
// cryptoerr.ErrInvalidArgument.
//
//nolint:gochecknoglobals
var (
	// ErrMalformedValue is wrapped when the sealed value does not unmarshal.
	ErrMalformedValue = fmt.Errorf("%w: malformed value", cryptoerr.ErrInvalidArgument)
	// ErrMissing is wrapped when a record lacks a configured hash or signature.
	ErrMissing = fmt.Errorf("%w: entry missing", cryptoerr.ErrInvalidArgument)
	// ErrHashMismatch is wrapped when a stored hash differs from the recomputed one.
	ErrHashMismatch = fmt.Errorf("%w: hash mismatch", cryptoerr.ErrInvalidArgument)
	// ErrSignatureRejected is wrapped when a verifier rejects a stored signature.
	ErrSignatureRejected = fmt.Errorf("%w: signature rejected", cryptoerr.ErrInvalidArgument)
)

// Entry names the part of a sealed record an error concerns.
type Entry uint8

const (
	// EntryValue is the marshalled value.
	EntryValue Entry = iota + 1
	// EntryHash is one hash of the record.
	EntryHash
	// EntrySignature is one signature of the record.
	EntrySignature
)

// String returns the lowercase entry name.
func (e Entry) String() string {
	switch e {
	case EntryValue:
		return "value"
	case EntryHash:
		return "hash"
	case EntrySignature:
		return "signature"
	default:
		return "entry(" + strconv.Itoa(int(e)) + ")"
	}
}

// SealError reports a failure on one entry of a sealed record. A validation
// error joins one SealError per failed entry.
type SealError struct {
	Entry Entry
	// Name is the hasher or signer name. It is empty for EntryValue.
	Name string
	// Algorithm is the registry algorithm behind a hash entry, if known.
	Algorithm option.Generic[hasher.Algorithm]

	kind   error
	parent error
}

// Error returns `<entry> "<name>" (<algorithm>): <kind>: <cause>`, omitting
// the parts that are not set.
func (e SealError) Error() string {
	msg := e.Entry.String()

	if e.Name != "" {
		msg += " " + strconv.Quote(e.Name)
	}

	if alg, ok := e.Algorithm.Get(); ok && alg.String() != e.Name {
		msg += " (" + alg.String() + ")"
	}

	for _, err := range e.Unwrap() {
		msg += ": " + err.Error()
	}

	return msg
}

// Unwrap returns the failure kind and its cause.
func (e SealError) Unwrap() []error {
	errs := make([]error, 0, 2) //nolint:mnd

	for _, err := range []error{e.kind, e.parent} {
		if err != nil {
			errs = append(errs, err)
		}
	}

	return errs
}

func algorithmOf(h hasher.Hasher) option.Generic[hasher.Algorithm] {
	if f, ok := h.(hasher.Function); ok {
		return option.Some(f.Algorithm())
	}

	return option.None[hasher.Algorithm]()
}

func errMarshalValue(parent error) error {
	return SealError{
		Entry:     EntryValue,
		Name:      "",
		Algorithm: option.None[hasher.Algorithm](),
		kind:      nil,
		parent:    parent,
	}
}

func errSign(name string, parent error) error {
	return SealError{
		Entry:     EntrySignature,
		Name:      name,
		Algorithm: option.None[hasher.Algorithm](),
		kind:      nil,
		parent:    parent,
	}
}

func errMalformedValue(parent error) error {
	return SealError{
		Entry:     EntryValue,
		Name:      "",
		Algorithm: option.None[hasher.Algorithm](),
		kind:      ErrMalformedValue,
		parent:    parent,
	}
}

func errMissingHash(name string, h hasher.Hasher) error {
	return SealError{
		Entry:     EntryHash,
		Name:      name,
		Algorithm: algorithmOf(h),
		kind:      ErrMissing,
		parent:    nil,
	}
}

func errMissingSignature(name string) error {
	return SealError{
		Entry:     EntrySignature,
		Name:      name,
		Algorithm: option.None[hasher.Algorithm](),
		kind:      ErrMissing,
		parent:    nil,
	}
}

func errHashMismatch(name string, h hasher.Hasher, stored, computed []byte) error {
	return SealError{
		Entry:     EntryHash,
		Name:      name,
		Algorithm: algorithmOf(h),
		kind:      ErrHashMismatch,
		parent:    digestsError{stored: stored, computed: computed},
	}
}

func errSignatureRejected(name string, parent error) error {
	return SealError{
		Entry:     EntrySignature,
		Name:      name,
		Algorithm: option.None[hasher.Algorithm](),
		kind:      ErrSignatureRejected,
		parent:    parent,
	}
}

type digestsError struct {
	stored   []byte
	computed []byte
}

func (d digestsError) Error() string {
	return fmt.Sprintf("stored %s, computed %s", hex.EncodeToString(d.stored), hex.EncodeToString(d.computed))
}
