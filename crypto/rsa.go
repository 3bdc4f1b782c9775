package crypto

import (
	"fmt"

	"github.com/tarantool/go-cryptokit/hasher"
	"github.com/tarantool/go-cryptokit/rsa"
)

// RSASigner signs the digest of data with textbook RSA: the signature is the
// digest deciphered with the private exponent.
type RSASigner struct {
	cipher *rsa.Cipher
	hasher hasher.Hasher
}

var _ SignerVerifier = RSASigner{} //nolint:exhaustruct

// NewRSASigner creates a signer over key. A nil hasher selects SHA-1.
func NewRSASigner(key rsa.Key, h hasher.Hasher) (RSASigner, error) {
	cipher, err := rsa.NewCipher(key)
	if err != nil {
		return RSASigner{}, fmt.Errorf("failed to create cipher: %w", err) //nolint:exhaustruct
	}

	if h == nil {
		h = hasher.NewSHA1Hasher()
	}

	return RSASigner{
		cipher: cipher,
		hasher: h,
	}, nil
}

// Name implements SignerVerifier interface.
func (r RSASigner) Name() string {
	return "rsa-" + r.hasher.Name()
}

// Sign computes the digest of data and signs it.
func (r RSASigner) Sign(data []byte) ([]byte, error) {
	signature, err := r.cipher.Sign(r.hasher.Hash(data))
	if err != nil {
		return nil, fmt.Errorf("failed to sign: %w", err)
	}

	return signature, nil
}

// Verify compares data with signature.
func (r RSASigner) Verify(data []byte, signature []byte) error {
	err := r.cipher.Verify(r.hasher.Hash(data), signature)
	if err != nil {
		return fmt.Errorf("failed to verify: %w", err)
	}

	return nil
}
