package sdes

import "sdes/permutations"

const (
	BlockSize = 8
	KeySize   = 10
	HalfSize  = 4
	Rounds    = 2
)

// Permutation tables are 1-based.
var P10Table = []int{3, 5, 2, 7, 4, 10, 1, 9, 8, 6}

var P8Table = []int{6, 3, 7, 4, 8, 5, 10, 9}

var IPTable = []int{2, 6, 3, 1, 4, 8, 5, 7}

// FPTable is the inverse of IPTable.
var FPTable = []int{4, 1, 3, 5, 7, 2, 8, 6}

var ExpansionTable = []int{4, 1, 2, 3, 2, 3, 4, 1}

var P4Table = []int{2, 4, 3, 1}

var S0 = permutations.SBox{
	{1, 0, 3, 2},
	{3, 2, 1, 0},
	{0, 2, 1, 3},
	{3, 1, 3, 2},
}

var S1 = permutations.SBox{
	{0, 1, 2, 3},
	{2, 0, 1, 3},
	{3, 0, 1, 0},
	{2, 1, 0, 3},
}

// RotationSchedule is the left shift applied to both halves of the key before
// each round key is selected with P8. Shifts accumulate across rounds.
var RotationSchedule = []int{1, 2}
