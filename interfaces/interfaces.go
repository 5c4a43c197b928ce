package interfaces

import "sdes/permutations"

type KeyExpander interface {
	ExpandKey(key permutations.Bits) ([]permutations.Bits, error)
}

// BlockCipher encrypts single blocks under an explicit key. Implementations
// hold no per-call state and may be shared between goroutines.
type BlockCipher interface {
	Encrypt(block, key permutations.Bits) (permutations.Bits, error)
	Decrypt(block, key permutations.Bits) (permutations.Bits, error)
	BlockSize() int
	KeySize() int
}

// KeySpace returns the number of distinct keys of c.
func KeySpace(c BlockCipher) int {
	return 1 << c.KeySize()
}
