package sdes

import (
	"github.com/pkg/errors"

	"sdes/permutations"
)

// RoundKeys are the two 8-bit subkeys derived from a 10-bit key.
type RoundKeys struct {
	K1 permutations.Bits
	K2 permutations.Bits
}

type KeySchedule struct{}

func NewKeySchedule() *KeySchedule {
	return &KeySchedule{}
}

func (ks *KeySchedule) NumRounds() int {
	return Rounds
}

// ExpandKey returns the round keys in encryption order.
func (ks *KeySchedule) ExpandKey(key permutations.Bits) ([]permutations.Bits, error) {
	if len(key) != KeySize {
		return nil, errors.Wrapf(permutations.ErrLengthMismatch, "key has %d bits, want %d", len(key), KeySize)
	}

	permutedKey, err := permutations.Permute(key, P10Table, permutations.FirstBit)
	if err != nil {
		return nil, errors.Wrap(err, "P10 failed")
	}

	left, right, err := permutations.Split(permutedKey, KeySize/2)
	if err != nil {
		return nil, err
	}

	roundKeys := make([]permutations.Bits, 0, Rounds)
	for i, shift := range RotationSchedule {
		left, err = permutations.LeftCircularShift(left, shift)
		if err != nil {
			return nil, errors.Wrapf(err, "LS-%d failed", shift)
		}
		right, err = permutations.LeftCircularShift(right, shift)
		if err != nil {
			return nil, errors.Wrapf(err, "LS-%d failed", shift)
		}

		roundKey, err := permutations.Permute(permutations.Concat(left, right), P8Table, permutations.FirstBit)
		if err != nil {
			return nil, errors.Wrapf(err, "P8 failed at round %d", i+1)
		}
		roundKeys = append(roundKeys, roundKey)
	}

	return roundKeys, nil
}

// ExpandKey derives K1 and K2 from a 10-bit key.
func ExpandKey(key permutations.Bits) (RoundKeys, error) {
	keys, err := NewKeySchedule().ExpandKey(key)
	if err != nil {
		return RoundKeys{}, err
	}
	return RoundKeys{K1: keys[0], K2: keys[1]}, nil
}
