package sdes

import (
	"github.com/pkg/errors"

	"sdes/permutations"
)

// Cipher is the string-level front end used by the classroom driver. It keeps
// the trace of its most recent Encrypt or Decrypt call, so a Cipher must not be
// shared between goroutines; use EncryptTrace/DecryptTrace or one Cipher per
// caller instead.
type Cipher struct {
	log Trace
}

func NewCipher() *Cipher {
	return &Cipher{}
}

func (c *Cipher) Encrypt(plaintext, key string) (string, error) {
	c.log = nil
	out, trace, err := EncryptTrace(plaintext, key)
	c.log = trace
	return out, err
}

func (c *Cipher) Decrypt(ciphertext, key string) (string, error) {
	c.log = nil
	out, trace, err := DecryptTrace(ciphertext, key)
	c.log = trace
	return out, err
}

// Log returns the trace of the most recent call. It is empty when that call failed.
func (c *Cipher) Log() Trace {
	out := make(Trace, len(c.log))
	copy(out, c.log)
	return out
}

// RoundKeys derives K1 and K2 for display.
func (c *Cipher) RoundKeys(key string) (RoundKeys, error) {
	k, err := permutations.Parse(key, KeySize)
	if err != nil {
		return RoundKeys{}, errors.Wrap(err, "key")
	}
	return ExpandKey(k)
}
