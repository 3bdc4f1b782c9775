package rsa

import (
	"fmt"
	"io"
	"math/big"

	"github.com/sirupsen/logrus"
	"github.com/tarantool/go-option"

	"github.com/tarantool/go-cryptokit/cryptoerr"
	"github.com/tarantool/go-cryptokit/internal/bigint"
	"github.com/tarantool/go-cryptokit/internal/options"
	"github.com/tarantool/go-cryptokit/internal/prime"
)

// MinBits is the smallest modulus GenerateKey accepts.
const MinBits = 32

// Fixed public exponents accepted by WithExponent.
const (
	Exponent3     = 3
	Exponent17    = 17
	Exponent65537 = 65537
)

// maxExponentAttempts bounds the random exponent search for one (p, q) draw.
const maxExponentAttempts = 64

type generateOptions struct {
	exponent     int
	exponentBits int
	certainty    int
	logger       logrus.FieldLogger
}

// Option configures GenerateKey.
type Option = options.Callback[generateOptions]

// WithExponent selects one of the fixed public exponents 3, 17 or 65537.
func WithExponent(e int) Option {
	return func(o *generateOptions) {
		o.exponent = e
		o.exponentBits = 0
	}
}

// WithRandomExponent requests a random public exponent of the given bit length,
// coprime to p-1 and q-1. A length reaching the modulus bit length minus one is
// clamped to it.
func WithRandomExponent(bits int) Option {
	return func(o *generateOptions) {
		o.exponent = 0
		o.exponentBits = bits
	}
}

// WithCertainty sets the primality certainty exponent of p and q.
func WithCertainty(certainty int) Option {
	return func(o *generateOptions) {
		o.certainty = certainty
	}
}

// WithLogger sets the logger that reports retries.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *generateOptions) {
		o.logger = logger
	}
}

func defaultGenerateOptions() generateOptions {
	return generateOptions{
		exponent:     Exponent65537,
		exponentBits: 0,
		certainty:    prime.DefaultCertainty,
		logger:       logrus.StandardLogger(),
	}
}

func (o generateOptions) validate(bits int) (generateOptions, error) {
	switch {
	case bits < MinBits:
		return o, cryptoerr.InvalidArgument("bits")
	case o.exponentBits == 0:
		switch o.exponent {
		case Exponent3, Exponent17, Exponent65537:
		default:
			return o, cryptoerr.InvalidArgument("exponent")
		}
	case o.exponentBits < 2:
		return o, cryptoerr.InvalidArgument("exponent bits")
	case o.exponentBits >= bits-1:
		o.logger.WithFields(logrus.Fields{
			"bits":          bits,
			"exponent_bits": o.exponentBits,
			"reason":        "exponent not shorter than modulus",
		}).Warn("clamping public exponent length")

		o.exponentBits = bits - 1
	}

	return o, nil
}

// GenerateKey generates a key pair with a modulus of bits bits from rnd.
//
// Both primes are Blum primes of half the length with the two top bits set, so
// the modulus has exactly the requested length. The whole draw is repeated when
// the exponent cannot be inverted or gcd(d, n) != 1.
func GenerateKey(rnd io.Reader, bits int, opts ...Option) (KeyPair, error) {
	o, err := options.Apply(defaultGenerateOptions, opts).validate(bits)
	if err != nil {
		return KeyPair{}, err //nolint:exhaustruct
	}

	pBits := (bits + 1) / 2
	qBits := bits - pBits

	for attempt := 1; ; attempt++ {
		log := o.logger.WithFields(logrus.Fields{"bits": bits, "attempt": attempt})

		p, _, err := prime.Blum(rnd, pBits, o.certainty)
		if err != nil {
			return KeyPair{}, fmt.Errorf("failed to find p: %w", err) //nolint:exhaustruct
		}

		q, _, err := prime.Blum(rnd, qBits, o.certainty)
		if err != nil {
			return KeyPair{}, fmt.Errorf("failed to find q: %w", err) //nolint:exhaustruct
		}

		if p.Cmp(q) == 0 {
			log.WithField("reason", "p equals q").Debug("redrawing primes")
			continue
		}

		pm1 := new(big.Int).Sub(p, bigint.One)
		qm1 := new(big.Int).Sub(q, bigint.One)

		e, err := o.publicExponent(rnd, pm1, qm1)
		switch {
		case err != nil:
			return KeyPair{}, err //nolint:exhaustruct
		case e == nil:
			log.WithField("reason", "no exponent coprime to p-1 and q-1").Debug("redrawing primes")
			continue
		}

		phi := new(big.Int).Mul(pm1, qm1)
		n := new(big.Int).Mul(p, q)

		d := new(big.Int).ModInverse(e, phi)
		if d == nil {
			log.WithField("reason", "exponent not invertible").Debug("redrawing primes")
			continue
		}

		if !bigint.Coprime(d, n) {
			log.WithField("reason", "gcd(d, n) != 1").Debug("redrawing primes")
			continue
		}

		return KeyPair{
			Key: Key{N: n, E: option.Some(e), D: option.Some(d)},
			P:   p,
			Q:   q,
		}, nil
	}
}

// publicExponent returns nil when no suitable exponent exists for this draw.
func (o generateOptions) publicExponent(rnd io.Reader, pm1, qm1 *big.Int) (*big.Int, error) {
	suitable := func(e *big.Int) bool {
		return bigint.Coprime(e, pm1) && bigint.Coprime(e, qm1)
	}

	if o.exponentBits == 0 {
		e := big.NewInt(int64(o.exponent))
		if !suitable(e) {
			return nil, nil //nolint:nilnil
		}

		return e, nil
	}

	for range maxExponentAttempts {
		e, err := prime.Candidate(rnd, o.exponentBits)
		if err != nil {
			return nil, fmt.Errorf("failed to draw exponent: %w", err)
		}

		if suitable(e) {
			return e, nil
		}
	}

	return nil, nil //nolint:nilnil
}
