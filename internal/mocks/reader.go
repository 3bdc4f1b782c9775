// Package mocks holds test doubles of the capability interfaces and a
// deterministic randomness source for reproducible key generation.
package mocks

import (
	"io"

	"github.com/minio/sha256-simd"
	"golang.org/x/crypto/chacha20"
)

// Reader is a deterministic io.Reader producing a ChaCha20 keystream.
type Reader struct {
	cipher *chacha20.Cipher
}

// NewReader returns a reader whose output depends only on seed.
func NewReader(seed string) *Reader {
	key := sha256.Sum256([]byte(seed))
	nonce := make([]byte, chacha20.NonceSize)

	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce)
	if err != nil {
		// Key and nonce sizes are constant.
		panic(err)
	}

	return &Reader{cipher: c}
}

var _ io.Reader = (*Reader)(nil)

// Read fills p with keystream bytes. It never fails.
func (r *Reader) Read(p []byte) (int, error) {
	clear(p)
	r.cipher.XORKeyStream(p, p)

	return len(p), nil
}
