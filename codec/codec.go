// Package codec encrypts text one 8-bit character at a time.
package codec

import (
	"strings"

	"github.com/pkg/errors"

	"sdes/interfaces"
	"sdes/permutations"
	"sdes/sdes"
)

var ErrUnsupportedCharacter = errors.New("unsupported character")

// Codec maps characters with code points 0..255 to one cipher block each.
type Codec struct {
	cipher interfaces.BlockCipher
}

func New(cipher interfaces.BlockCipher) (*Codec, error) {
	if cipher == nil {
		return nil, errors.New("cipher cannot be nil")
	}
	if cipher.BlockSize() != 8 {
		return nil, errors.Errorf("block size must be 8 bits, got %d", cipher.BlockSize())
	}
	return &Codec{cipher: cipher}, nil
}

// EncryptText returns one ciphertext block per character of text, in order.
func (c *Codec) EncryptText(text string, key string) ([]string, error) {
	k, err := permutations.Parse(key, c.cipher.KeySize())
	if err != nil {
		return nil, errors.Wrap(err, "key")
	}

	blocks := make([]string, 0, len(text))
	pos := 0
	for _, r := range text {
		if r < 0 || r > 0xFF {
			return nil, errors.Wrapf(ErrUnsupportedCharacter, "%q (U+%04X) at position %d", r, r, pos)
		}

		ct, err := c.cipher.Encrypt(permutations.FromUint(uint(r), 8), k)
		if err != nil {
			return nil, errors.Wrapf(err, "character %d", pos)
		}
		blocks = append(blocks, ct.String())
		pos++
	}
	return blocks, nil
}

// DecryptBlocks decrypts each block and reads the result as a character code.
func (c *Codec) DecryptBlocks(blocks []string, key string) (string, error) {
	k, err := permutations.Parse(key, c.cipher.KeySize())
	if err != nil {
		return "", errors.Wrap(err, "key")
	}

	var sb strings.Builder
	for i, block := range blocks {
		b, err := permutations.Parse(block, 8)
		if err != nil {
			return "", errors.Wrapf(err, "block %d", i)
		}

		pt, err := c.cipher.Decrypt(b, k)
		if err != nil {
			return "", errors.Wrapf(err, "block %d", i)
		}
		sb.WriteRune(rune(pt.Uint()))
	}
	return sb.String(), nil
}

var std = &Codec{cipher: sdes.Default()}

func EncryptASCIIToBlocks(text string, key string) ([]string, error) {
	return std.EncryptText(text, key)
}

func DecryptBlocksToASCII(blocks []string, key string) (string, error) {
	return std.DecryptBlocks(blocks, key)
}
