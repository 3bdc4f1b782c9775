package hasher

const (
	djbSeed = 5381
)

func djb32(data []byte) uint32 {
	h := uint32(djbSeed)
	for _, b := range data {
		h = ((h << 5) + h) ^ uint32(b)
	}

	return h
}

func djb64(data []byte) uint64 {
	h := uint64(djbSeed)
	for _, b := range data {
		h = ((h << 5) + h) ^ uint64(b)
	}

	return h
}

func pal32(data []byte) uint32 {
	var h uint32
	for _, b := range data {
		h = uint32(b) + (h << 6) + (h << 16) - h
	}

	return h
}

func pal64(data []byte) uint64 {
	var h uint64
	for _, b := range data {
		h = uint64(b) + (h << 6) + (h << 16) - h
	}

	return h
}

// Xor64Fold folds data into 64 bits: byte i is XORed into lane (len-1-i) mod 8,
// lane 0 being the least significant. An 8-byte input folds to its big-endian value.
func Xor64Fold(data []byte) uint64 {
	var h uint64

	last := len(data) - 1
	for i, b := range data {
		h ^= uint64(b) << (8 * uint((last-i)%8))
	}

	return h
}

// Xor32Fold is the 32-bit analog of Xor64Fold over 4 lanes.
func Xor32Fold(data []byte) uint32 {
	var h uint32

	last := len(data) - 1
	for i, b := range data {
		h ^= uint32(b) << (8 * uint((last-i)%4))
	}

	return h
}

// Hash8 XORs all bytes of data together.
func Hash8(data []byte) byte {
	var h byte
	for _, b := range data {
		h ^= b
	}

	return h
}

// Fold8 XORs the four byte lanes of v.
func Fold8(v uint32) byte {
	return byte(v) ^ byte(v>>8) ^ byte(v>>16) ^ byte(v>>24)
}
