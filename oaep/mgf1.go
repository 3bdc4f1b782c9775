package oaep

import (
	"crypto/subtle"
	"encoding/binary"
	"hash"
)

// mgf1XOR masks out in place with MGF1(seed) built on h.
func mgf1XOR(out []byte, h hash.Hash, seed []byte) {
	var (
		ctr   [4]byte
		block []byte
	)

	for i := uint32(0); len(out) > 0; i++ {
		binary.BigEndian.PutUint32(ctr[:], i)

		h.Reset()
		h.Write(seed)
		h.Write(ctr[:])
		block = h.Sum(block[:0])

		out = out[subtle.XORBytes(out, out, block):]
	}
}
