package bbs

import (
	"fmt"
	"io"
	"math/big"

	"github.com/sirupsen/logrus"

	"github.com/tarantool/go-cryptokit/cryptoerr"
	"github.com/tarantool/go-cryptokit/internal/options"
	"github.com/tarantool/go-cryptokit/internal/prime"
)

// MinBits is the smallest modulus GenerateKey accepts.
const MinBits = 16

// minModulus is 3*7, the smallest product of two distinct Blum primes.
const minModulus = 21

// Key is a Blum modulus N = P*Q. P and Q are known only for generated keys.
type Key struct {
	N *big.Int
	P *big.Int
	Q *big.Int
}

// NewKey wraps a modulus whose factors are unknown. N must be at least 21 and
// congruent to 1 mod 4, as every Blum integer is.
func NewKey(n *big.Int) (Key, error) {
	if n == nil || n.Cmp(big.NewInt(minModulus)) < 0 || n.Bit(0) == 0 || n.Bit(1) != 0 {
		return Key{}, cryptoerr.InvalidArgument("n") //nolint:exhaustruct
	}

	return Key{N: n, P: nil, Q: nil}, nil
}

// BitLength returns the bit length of N.
func (k Key) BitLength() int {
	return k.N.BitLen()
}

type generateOptions struct {
	certainty int
	logger    logrus.FieldLogger
}

// Option configures GenerateKey.
type Option = options.Callback[generateOptions]

// WithCertainty sets the primality certainty exponent of P and Q.
func WithCertainty(certainty int) Option {
	return func(o *generateOptions) {
		o.certainty = certainty
	}
}

// WithLogger sets the logger that reports prime search progress.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *generateOptions) {
		o.logger = logger
	}
}

func defaultGenerateOptions() generateOptions {
	return generateOptions{
		certainty: prime.DefaultCertainty,
		logger:    logrus.StandardLogger(),
	}
}

// GenerateKey draws two distinct Blum primes from rnd whose product has exactly
// bits bits. For odd bits P is one bit longer than Q.
func GenerateKey(rnd io.Reader, bits int, opts ...Option) (Key, error) {
	if bits < MinBits {
		return Key{}, errInvalidBits("bits") //nolint:exhaustruct
	}

	o := options.Apply(defaultGenerateOptions, opts)
	pBits, qBits := (bits+1)/2, bits/2
	log := o.logger.WithField("bits", bits)

	p, attempts, err := prime.Blum(rnd, pBits, o.certainty)
	if err != nil {
		return Key{}, fmt.Errorf("failed to find p: %w", err) //nolint:exhaustruct
	}

	log.WithField("attempts", attempts).Debug("found blum prime p")

	for {
		q, attempts, err := prime.Blum(rnd, qBits, o.certainty)
		if err != nil {
			return Key{}, fmt.Errorf("failed to find q: %w", err) //nolint:exhaustruct
		}

		if q.Cmp(p) == 0 {
			log.WithField("reason", "q equals p").Debug("redrawing q")
			continue
		}

		log.WithField("attempts", attempts).Debug("found blum prime q")

		return Key{N: new(big.Int).Mul(p, q), P: p, Q: q}, nil
	}
}
