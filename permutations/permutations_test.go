package permutations

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) Bits {
	t.Helper()
	b, err := Parse(s, len(s))
	require.NoError(t, err)
	return b
}

func TestParse(t *testing.T) {
	b, err := Parse("10110101", 8)
	require.NoError(t, err)
	assert.Equal(t, Bits{1, 0, 1, 1, 0, 1, 0, 1}, b)
	assert.Equal(t, "10110101", b.String())
	assert.Equal(t, uint(0xB5), b.Uint())

	_, err = Parse("1011010", 8)
	assert.True(t, errors.Is(err, ErrLengthMismatch))

	_, err = Parse("1011010x", 8)
	assert.True(t, errors.Is(err, ErrInvalidBit))
}

func TestFromUint(t *testing.T) {
	assert.Equal(t, "1010000010", FromUint(642, 10).String())
	assert.Equal(t, "0000000000", FromUint(0, 10).String())
	assert.Equal(t, "1111111111", FromUint(1023, 10).String())
	assert.Equal(t, "11", FromUint(7, 2).String())

	for v := uint(0); v < 1024; v++ {
		assert.Equal(t, v, FromUint(v, 10).Uint())
	}
}

func TestPermute(t *testing.T) {
	in := mustParse(t, "10110101")

	out, err := Permute(in, []int{2, 6, 3, 1, 4, 8, 5, 7}, FirstBit)
	require.NoError(t, err)
	assert.Equal(t, "01111100", out.String())

	out, err = Permute(in, []int{1, 5, 2, 0, 3, 7, 4, 6}, ZeroBit)
	require.NoError(t, err)
	assert.Equal(t, "01111100", out.String())

	// Expansion repeats bits: output may be longer than input.
	out, err = Permute(mustParse(t, "1001"), []int{4, 1, 2, 3, 2, 3, 4, 1}, FirstBit)
	require.NoError(t, err)
	assert.Equal(t, "11000011", out.String())

	_, err = Permute(in, []int{9}, FirstBit)
	assert.True(t, errors.Is(err, ErrLengthMismatch))

	_, err = Permute(in, []int{0}, FirstBit)
	assert.True(t, errors.Is(err, ErrLengthMismatch))
}

func TestLeftCircularShift(t *testing.T) {
	in := mustParse(t, "10000")

	out, err := LeftCircularShift(in, 1)
	require.NoError(t, err)
	assert.Equal(t, "00001", out.String())

	out, err = LeftCircularShift(in, 2)
	require.NoError(t, err)
	assert.Equal(t, "00010", out.String())

	out, err = LeftCircularShift(in, 0)
	require.NoError(t, err)
	assert.Equal(t, "10000", out.String())
	assert.Equal(t, "10000", in.String(), "input must not be modified")

	_, err = LeftCircularShift(in, 5)
	assert.True(t, errors.Is(err, ErrInvalidShift))

	_, err = LeftCircularShift(in, -1)
	assert.True(t, errors.Is(err, ErrInvalidShift))
}

func TestSplitConcat(t *testing.T) {
	in := mustParse(t, "10110101")

	l, r, err := Split(in, 4)
	require.NoError(t, err)
	assert.Equal(t, "1011", l.String())
	assert.Equal(t, "0101", r.String())
	assert.Equal(t, in, Concat(l, r))
	assert.Equal(t, "01011011", Concat(r, l).String())

	l, r, err = Split(in, 0)
	require.NoError(t, err)
	assert.Empty(t, l)
	assert.Equal(t, in, r)

	_, _, err = Split(in, 9)
	assert.True(t, errors.Is(err, ErrInvalidSplit))

	_, _, err = Split(in, -1)
	assert.True(t, errors.Is(err, ErrInvalidSplit))
}

func TestXor(t *testing.T) {
	out, err := Xor(mustParse(t, "1100"), mustParse(t, "1010"))
	require.NoError(t, err)
	assert.Equal(t, "0110", out.String())

	_, err = Xor(mustParse(t, "1100"), mustParse(t, "101"))
	assert.True(t, errors.Is(err, ErrLengthMismatch))
}

func TestSBoxLookup(t *testing.T) {
	box := SBox{
		{1, 0, 3, 2},
		{3, 2, 1, 0},
		{0, 2, 1, 3},
		{3, 1, 3, 2},
	}

	tests := []struct {
		in   string
		want string
	}{
		{"0000", "01"}, // row 0, col 0
		{"0001", "11"}, // row 1, col 0
		{"1000", "00"}, // row 2, col 0
		{"1111", "10"}, // row 3, col 3
		{"0110", "10"}, // row 0, col 3
	}

	for _, tt := range tests {
		out, err := SBoxLookup(&box, mustParse(t, tt.in))
		require.NoError(t, err)
		assert.Equal(t, tt.want, out.String(), tt.in)
	}

	_, err := SBoxLookup(&box, mustParse(t, "101"))
	assert.True(t, errors.Is(err, ErrLengthMismatch))
}
