package feistel

import (
	"fmt"

	"github.com/pkg/errors"

	"sdes/permutations"
)

type Function interface {
	Apply(rightHalf permutations.Bits, roundKey permutations.Bits) (permutations.Bits, error)
	HalfBlockSize() int
}

// Recorder receives labelled intermediate values. A nil Recorder records nothing.
type Recorder interface {
	Record(label string, value permutations.Bits)
}

// Network is a two-half Feistel structure. Each round maps (L, R) to
// (L xor F(R, K), R); the halves are swapped between rounds but not after the
// last one, so running the same network with the round keys reversed inverts it.
type Network struct {
	fFunction     Function
	halfBlockSize int
}

func NewNetwork(fFunc Function) (*Network, error) {
	if fFunc == nil {
		return nil, errors.New("round function cannot be nil")
	}

	return &Network{
		fFunction:     fFunc,
		halfBlockSize: fFunc.HalfBlockSize(),
	}, nil
}

func (n *Network) BlockSize() int {
	return n.halfBlockSize * 2
}

// Round applies one keyed round (the fk function) to block.
func (n *Network) Round(block permutations.Bits, roundKey permutations.Bits) (permutations.Bits, error) {
	if len(block) != n.BlockSize() {
		return nil, errors.Wrapf(permutations.ErrLengthMismatch, "block has %d bits, want %d", len(block), n.BlockSize())
	}

	left, right, err := permutations.Split(block, n.halfBlockSize)
	if err != nil {
		return nil, err
	}

	fResult, err := n.fFunction.Apply(right, roundKey)
	if err != nil {
		return nil, errors.Wrap(err, "round function failed")
	}

	newLeft, err := permutations.Xor(fResult, left)
	if err != nil {
		return nil, err
	}

	return permutations.Concat(newLeft, right), nil
}

func (n *Network) Swap(block permutations.Bits) (permutations.Bits, error) {
	left, right, err := permutations.Split(block, n.halfBlockSize)
	if err != nil {
		return nil, err
	}
	return permutations.Concat(right, left), nil
}

// Run applies one round per key in order.
func (n *Network) Run(block permutations.Bits, roundKeys []permutations.Bits, rec Recorder) (permutations.Bits, error) {
	if len(roundKeys) == 0 {
		return nil, errors.New("round keys not set")
	}

	result := block
	for i, roundKey := range roundKeys {
		var err error
		result, err = n.Round(result, roundKey)
		if err != nil {
			return nil, errors.Wrapf(err, "round %d", i+1)
		}
		record(rec, fmt.Sprintf("after round %d", i+1), result)

		if i == len(roundKeys)-1 {
			break
		}

		result, err = n.Swap(result)
		if err != nil {
			return nil, err
		}
		record(rec, "after swap", result)
	}
	return result, nil
}

func record(rec Recorder, label string, value permutations.Bits) {
	if rec != nil {
		rec.Record(label, value)
	}
}
