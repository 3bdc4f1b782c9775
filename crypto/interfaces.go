// Package crypto defines the capability interfaces shared by the ciphers of
// this module and implements digest signing on top of package rsa.
package crypto

//go:generate go tool minimock -i BlockCipher,Pad -o ../internal/mocks -s _mock.go

// Signer implements high-level API for package signing.
type Signer interface {
	// Name returns name of the crypto algorithm, used by signer.
	Name() string
	// Sign returns signature for passed data.
	Sign(data []byte) ([]byte, error)
}

// Verifier is an interface implementing a generic signature
// verification algorithm.
type Verifier interface {
	// Name returns name of the crypto algorithm, used by verifier.
	Name() string
	// Verify checks data and signature mapping.
	Verify(data []byte, signature []byte) error
}

// SignerVerifier common interface.
type SignerVerifier interface {
	Signer
	Verifier
}

// BlockCipher transforms exactly one block per call. Longer messages are
// chunked by the caller.
type BlockCipher interface {
	// EncipherOutputLength returns the output length for an n-byte input, or -1
	// if n exceeds the input limit.
	EncipherOutputLength(n int) int
	// DecipherOutputLength is the decipher counterpart of EncipherOutputLength.
	DecipherOutputLength(n int) int
	// Encipher writes the transformed src into dst and returns the bytes written.
	Encipher(dst, src []byte) (int, error)
	// Decipher inverts Encipher.
	Decipher(dst, src []byte) (int, error)
}

// Pad is a reversible padding transform with a fixed overhead.
type Pad interface {
	BlockCipher

	// HLength returns the overhead in bytes the pad adds to a message.
	HLength() int
}
