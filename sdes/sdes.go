// Package sdes implements Simplified DES: an 8-bit block, 10-bit key, two-round
// Feistel cipher used for teaching.
package sdes

import (
	"github.com/pkg/errors"

	"sdes/feistel"
	"sdes/interfaces"
	"sdes/permutations"
)

var (
	_ interfaces.BlockCipher = (*SDES)(nil)
	_ interfaces.KeyExpander = (*KeySchedule)(nil)
)

// FFunction is the S-DES round function F(R, K): expand R with E/P, mix in the
// round key, substitute through S0 and S1, then permute with P4.
type FFunction struct{}

func NewFFunction() *FFunction {
	return &FFunction{}
}

func (f *FFunction) Apply(rightHalf permutations.Bits, roundKey permutations.Bits) (permutations.Bits, error) {
	if len(rightHalf) != HalfSize {
		return nil, errors.Wrapf(permutations.ErrLengthMismatch, "right half has %d bits, want %d", len(rightHalf), HalfSize)
	}
	if len(roundKey) != BlockSize {
		return nil, errors.Wrapf(permutations.ErrLengthMismatch, "round key has %d bits, want %d", len(roundKey), BlockSize)
	}

	expanded, err := permutations.Permute(rightHalf, ExpansionTable, permutations.FirstBit)
	if err != nil {
		return nil, errors.Wrap(err, "expansion failed")
	}

	mixed, err := permutations.Xor(expanded, roundKey)
	if err != nil {
		return nil, err
	}

	left, right, err := permutations.Split(mixed, HalfSize)
	if err != nil {
		return nil, err
	}

	s0, err := permutations.SBoxLookup(&S0, left)
	if err != nil {
		return nil, errors.Wrap(err, "S0 failed")
	}
	s1, err := permutations.SBoxLookup(&S1, right)
	if err != nil {
		return nil, errors.Wrap(err, "S1 failed")
	}

	result, err := permutations.Permute(permutations.Concat(s0, s1), P4Table, permutations.FirstBit)
	if err != nil {
		return nil, errors.Wrap(err, "P4 failed")
	}

	return result, nil
}

func (f *FFunction) HalfBlockSize() int {
	return HalfSize
}

// SDES is the block engine. It keeps no state between calls.
type SDES struct {
	network     *feistel.Network
	keySchedule *KeySchedule
}

func NewSDES() (*SDES, error) {
	network, err := feistel.NewNetwork(NewFFunction())
	if err != nil {
		return nil, err
	}

	return &SDES{network: network, keySchedule: NewKeySchedule()}, nil
}

func (s *SDES) BlockSize() int {
	return BlockSize
}

func (s *SDES) KeySize() int {
	return KeySize
}

func (s *SDES) Encrypt(block, key permutations.Bits) (permutations.Bits, error) {
	return s.EncryptTrace(block, key, nil)
}

func (s *SDES) Decrypt(block, key permutations.Bits) (permutations.Bits, error) {
	return s.DecryptTrace(block, key, nil)
}

// EncryptTrace encrypts block and appends every intermediate value to trace
// when trace is not nil.
func (s *SDES) EncryptTrace(block, key permutations.Bits, trace *Trace) (permutations.Bits, error) {
	out, err := s.crypt(block, key, false, trace)
	if err != nil {
		return nil, errors.Wrap(err, "encrypt")
	}
	return out, nil
}

// DecryptTrace is EncryptTrace with the round keys applied in reverse order.
func (s *SDES) DecryptTrace(block, key permutations.Bits, trace *Trace) (permutations.Bits, error) {
	out, err := s.crypt(block, key, true, trace)
	if err != nil {
		return nil, errors.Wrap(err, "decrypt")
	}
	return out, nil
}

func (s *SDES) crypt(block, key permutations.Bits, decrypt bool, trace *Trace) (permutations.Bits, error) {
	if len(block) != BlockSize {
		return nil, errors.Wrapf(permutations.ErrLengthMismatch, "block has %d bits, want %d", len(block), BlockSize)
	}

	roundKeys, err := s.keySchedule.ExpandKey(key)
	if err != nil {
		return nil, err
	}
	trace.Record("K1", roundKeys[0])
	trace.Record("K2", roundKeys[1])

	if decrypt {
		roundKeys = []permutations.Bits{roundKeys[1], roundKeys[0]}
	}

	permuted, err := permutations.Permute(block, IPTable, permutations.FirstBit)
	if err != nil {
		return nil, errors.Wrap(err, "IP failed")
	}
	trace.Record("after IP", permuted)

	var rec feistel.Recorder
	if trace != nil {
		rec = trace
	}
	result, err := s.network.Run(permuted, roundKeys, rec)
	if err != nil {
		return nil, errors.Wrap(err, "feistel rounds failed")
	}

	final, err := permutations.Permute(result, FPTable, permutations.FirstBit)
	if err != nil {
		return nil, errors.Wrap(err, "FP failed")
	}
	if decrypt {
		trace.Record("final plaintext", final)
	} else {
		trace.Record("final ciphertext", final)
	}

	return final, nil
}

var std = func() *SDES {
	s, err := NewSDES()
	if err != nil {
		panic(err)
	}
	return s
}()

// Default returns the shared engine used by the package-level functions.
func Default() *SDES {
	return std
}

// EncryptTrace encrypts an 8-bit plaintext string under a 10-bit key string and
// returns the ciphertext together with the trace of that call.
func EncryptTrace(plaintext, key string) (string, Trace, error) {
	return cryptStrings(plaintext, key, false)
}

func DecryptTrace(ciphertext, key string) (string, Trace, error) {
	return cryptStrings(ciphertext, key, true)
}

func Encrypt(plaintext, key string) (string, error) {
	out, _, err := cryptStrings(plaintext, key, false)
	return out, err
}

func Decrypt(ciphertext, key string) (string, error) {
	out, _, err := cryptStrings(ciphertext, key, true)
	return out, err
}

func cryptStrings(block, key string, decrypt bool) (string, Trace, error) {
	b, err := permutations.Parse(block, BlockSize)
	if err != nil {
		return "", nil, errors.Wrap(err, "block")
	}
	k, err := permutations.Parse(key, KeySize)
	if err != nil {
		return "", nil, errors.Wrap(err, "key")
	}

	trace := Trace{}
	var out permutations.Bits
	if decrypt {
		out, err = std.DecryptTrace(b, k, &trace)
	} else {
		out, err = std.EncryptTrace(b, k, &trace)
	}
	if err != nil {
		return "", nil, err
	}
	return out.String(), trace, nil
}
