// Package permutations implements the fixed-length bit vector operations the
// cipher is built from: table permutation, circular shift, split, concatenation,
// XOR and S-box lookup.
package permutations

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrLengthMismatch = errors.New("bit length mismatch")
	ErrInvalidShift   = errors.New("invalid shift")
	ErrInvalidSplit   = errors.New("invalid split")
	ErrInvalidBit     = errors.New("invalid bit")
)

type InitialBit int

const (
	ZeroBit InitialBit = iota
	FirstBit
)

// Bits is an ordered bit vector, one element per bit, most significant first.
// Every element is 0 or 1.
type Bits []byte

// Parse reads a string of '0' and '1' characters that must be exactly n long.
func Parse(s string, n int) (Bits, error) {
	if len(s) != n {
		return nil, errors.Wrapf(ErrLengthMismatch, "%q has %d bits, want %d", s, len(s), n)
	}

	bits := make(Bits, n)
	for i := 0; i < n; i++ {
		switch s[i] {
		case '0':
		case '1':
			bits[i] = 1
		default:
			return nil, errors.Wrapf(ErrInvalidBit, "%q at position %d", s[i], i)
		}
	}
	return bits, nil
}

// FromUint returns the n low bits of v, most significant first.
func FromUint(v uint, n int) Bits {
	bits := make(Bits, n)
	for i := n - 1; i >= 0; i-- {
		bits[i] = byte(v & 1)
		v >>= 1
	}
	return bits
}

func (b Bits) Uint() uint {
	var v uint
	for _, bit := range b {
		v = v<<1 | uint(bit)
	}
	return v
}

func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, bit := range b {
		sb.WriteByte('0' + bit)
	}
	return sb.String()
}

func (b Bits) Equal(other Bits) bool {
	if len(b) != len(other) {
		return false
	}
	for i := range b {
		if b[i] != other[i] {
			return false
		}
	}
	return true
}

// Permute builds a vector of len(table) bits where result[i] = input[table[i]].
// Table entries are 1-based when initialBit is FirstBit.
func Permute(input Bits, table []int, initialBit InitialBit) (Bits, error) {
	if len(table) == 0 {
		return nil, errors.New("the problem with the p-block")
	}

	if initialBit != ZeroBit && initialBit != FirstBit {
		return nil, errors.New("initial bit must be 0 or 1")
	}

	result := make(Bits, len(table))
	for index, bit := range table {
		if initialBit == FirstBit {
			bit--
		}

		if bit < 0 || bit >= len(input) {
			return nil, errors.Wrapf(ErrLengthMismatch, "p-block[%d] = %d out of range for %d bits", index, table[index], len(input))
		}

		result[index] = input[bit]
	}

	return result, nil
}

// LeftCircularShift rotates input left by n positions.
func LeftCircularShift(input Bits, n int) (Bits, error) {
	if n < 0 || n >= len(input) {
		return nil, errors.Wrapf(ErrInvalidShift, "shift %d of %d bits", n, len(input))
	}

	result := make(Bits, 0, len(input))
	result = append(result, input[n:]...)
	result = append(result, input[:n]...)
	return result, nil
}

// Split returns copies of input[:at] and input[at:].
func Split(input Bits, at int) (Bits, Bits, error) {
	if at < 0 || at > len(input) {
		return nil, nil, errors.Wrapf(ErrInvalidSplit, "split at %d of %d bits", at, len(input))
	}

	left := make(Bits, at)
	right := make(Bits, len(input)-at)
	copy(left, input[:at])
	copy(right, input[at:])
	return left, right, nil
}

func Concat(parts ...Bits) Bits {
	n := 0
	for _, p := range parts {
		n += len(p)
	}

	result := make(Bits, 0, n)
	for _, p := range parts {
		result = append(result, p...)
	}
	return result
}

func Xor(a, b Bits) (Bits, error) {
	if len(a) != len(b) {
		return nil, errors.Wrapf(ErrLengthMismatch, "xor of %d and %d bits", len(a), len(b))
	}

	result := make(Bits, len(a))
	for i := range a {
		result[i] = a[i] ^ b[i]
	}
	return result, nil
}

// SBox is a 4x4 substitution table of 2-bit values indexed [row][column].
type SBox [4][4]byte

// SBoxLookup addresses box with a 4-bit input: bits 0 and 3 select the row,
// bits 1 and 2 the column. The result is the 2-bit table entry.
func SBoxLookup(box *SBox, fourBits Bits) (Bits, error) {
	if len(fourBits) != 4 {
		return nil, errors.Wrapf(ErrLengthMismatch, "s-box input has %d bits, want 4", len(fourBits))
	}

	row := fourBits[0]<<1 | fourBits[3]
	col := fourBits[1]<<1 | fourBits[2]

	return FromUint(uint(box[row][col]), 2), nil
}
