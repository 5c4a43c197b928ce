package feistel

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdes/permutations"
)

// xorFunction is F(R, K) = R xor K over 2-bit halves.
type xorFunction struct{}

func (xorFunction) Apply(right, key permutations.Bits) (permutations.Bits, error) {
	return permutations.Xor(right, key)
}

func (xorFunction) HalfBlockSize() int { return 2 }

type labels []string

func (l *labels) Record(label string, _ permutations.Bits) { *l = append(*l, label) }

func TestNewNetworkNil(t *testing.T) {
	_, err := NewNetwork(nil)
	assert.Error(t, err)
}

func TestRound(t *testing.T) {
	n, err := NewNetwork(xorFunction{})
	require.NoError(t, err)
	assert.Equal(t, 4, n.BlockSize())

	// L=10 R=01 K=11: F = 01^11 = 10, L' = 10^10 = 00.
	out, err := n.Round(permutations.Bits{1, 0, 0, 1}, permutations.Bits{1, 1})
	require.NoError(t, err)
	assert.Equal(t, "0001", out.String())

	_, err = n.Round(permutations.Bits{1, 0, 0}, permutations.Bits{1, 1})
	assert.True(t, errors.Is(err, permutations.ErrLengthMismatch))
}

func TestRunInvertsWithReversedKeys(t *testing.T) {
	n, err := NewNetwork(xorFunction{})
	require.NoError(t, err)

	keys := []permutations.Bits{{1, 0}, {0, 1}, {1, 1}}
	reversed := []permutations.Bits{keys[2], keys[1], keys[0]}

	for v := uint(0); v < 16; v++ {
		block := permutations.FromUint(v, 4)
		enc, err := n.Run(block, keys, nil)
		require.NoError(t, err)
		dec, err := n.Run(enc, reversed, nil)
		require.NoError(t, err)
		assert.Equal(t, block, dec)
	}
}

func TestRunRecordsSteps(t *testing.T) {
	n, err := NewNetwork(xorFunction{})
	require.NoError(t, err)

	var got labels
	_, err = n.Run(permutations.Bits{0, 1, 1, 0}, []permutations.Bits{{1, 0}, {0, 1}}, &got)
	require.NoError(t, err)
	assert.Equal(t, labels{"after round 1", "after swap", "after round 2"}, got)

	_, err = n.Run(permutations.Bits{0, 1, 1, 0}, nil, nil)
	assert.Error(t, err)
}
