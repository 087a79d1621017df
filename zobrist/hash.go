package zobrist

import (
	"lukechampine.com/frand"
)

const bignum = 1<<63 - 2

// NumCells is the number of cells on a gomoku board.
const NumCells = 15 * 15

// Content selects which of the three keys of a cell is in play.
const (
	KeyEmpty  = 0
	KeyFirst  = 1
	KeySecond = 2
)

// Zobrist holds the per-cell random keys used to fingerprint a gomoku
// position. Every cell has three keys: one for an empty cell and one per
// stone color. The table is filled once by Initialize and never changes
// afterwards; it is a value type so a board that embeds it owns its copy.
// https://en.wikipedia.org/wiki/Zobrist_hashing
type Zobrist struct {
	posTable [NumCells][3]uint64
	emptyKey uint64
}

func (z *Zobrist) Initialize() {
	z.emptyKey = 0
	for i := 0; i < NumCells; i++ {
		for j := 0; j < 3; j++ {
			z.posTable[i][j] = frand.Uint64n(bignum) + 1
		}
		z.emptyKey ^= z.posTable[i][KeyEmpty]
	}
}

// Key returns the key for cell idx holding the given content.
func (z *Zobrist) Key(idx, content int) uint64 {
	return z.posTable[idx][content]
}

// EmptyBoard returns the fingerprint of a board with no stones on it, the
// XOR of all empty keys.
func (z *Zobrist) EmptyBoard() uint64 {
	return z.emptyKey
}

// Hash computes a fingerprint from scratch. contents must hold one of
// KeyEmpty, KeyFirst or KeySecond per cell.
func (z *Zobrist) Hash(contents []int) uint64 {
	key := uint64(0)
	for i, c := range contents {
		key ^= z.posTable[i][c]
	}
	return key
}

// Place toggles the empty key of cell idx out of key and toggles the key of
// the placed stone in.
func (z *Zobrist) Place(key uint64, idx, content int) uint64 {
	key ^= z.posTable[idx][KeyEmpty]
	key ^= z.posTable[idx][content]
	return key
}

// Remove is the inverse of Place.
func (z *Zobrist) Remove(key uint64, idx, content int) uint64 {
	key ^= z.posTable[idx][content]
	key ^= z.posTable[idx][KeyEmpty]
	return key
}
