package rsa

import (
	"errors"

	"github.com/tarantool/go-cryptokit/cryptoerr"
)

// ErrSignatureMismatch is returned by Verify when the signature does not
// recover the digest.
var ErrSignatureMismatch = errors.New("signature mismatch")

func errMissingExponent(op string) error {
	return cryptoerr.UnsupportedOperation(op)
}

func errOversizedBlock() error {
	return cryptoerr.OversizedInput("src")
}

func errShortOutput() error {
	return cryptoerr.OutputTooSmall("dst")
}
