package bbs

import (
	"github.com/tarantool/go-cryptokit/cryptoerr"
)

func errInvalidSeed() error {
	return cryptoerr.InvalidArgument("seed")
}

func errInvalidBits(field string) error {
	return cryptoerr.InvalidArgument(field)
}
