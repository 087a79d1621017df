package board

import (
	"fmt"
	"iter"

	"github.com/domino14/gomoku/zobrist"
)

const (
	// Dim is the dimension of the board. Only 15x15 is supported.
	Dim      = 15
	NumCells = Dim * Dim
	// MaxRunLength caps RunLengthsFrom. A run of six or more reads as six.
	MaxRunLength = 6
	// WinLength is the number of stones in a row that wins the game.
	WinLength = 5
)

// A Stone is the content of a cell. First and Second are the two colors;
// negating one yields the other.
type Stone int8

const (
	Empty  Stone = 0
	First  Stone = 1
	Second Stone = -1
)

func (s Stone) Opponent() Stone {
	return -s
}

func (s Stone) String() string {
	switch s {
	case First:
		return "first"
	case Second:
		return "second"
	}
	return "empty"
}

// DisplayString is the single character used for s in board diagrams.
func (s Stone) DisplayString() string {
	switch s {
	case First:
		return "X"
	case Second:
		return "O"
	}
	return "."
}

func (s Stone) zobristKey() int {
	switch s {
	case First:
		return zobrist.KeyFirst
	case Second:
		return zobrist.KeySecond
	}
	return zobrist.KeyEmpty
}

// A Board is a 15x15 gomoku board together with the player to move and an
// incrementally maintained position fingerprint.
//
// Searches own the board they are handed and mutate it in place with paired
// Apply and Undo calls; they must hand it back exactly as they received it.
// A Board must not be shared between goroutines without external locking.
type Board struct {
	cells       [NumCells]Stone
	turn        Stone
	fingerprint uint64
	stones      int

	// The key table belongs to this board and is copied with it.
	zobrist zobrist.Zobrist
}

// NewBoard creates an empty board with a freshly generated key table.
// turn is the player that makes the first move.
func NewBoard(turn Stone) *Board {
	b := &Board{turn: turn}
	b.zobrist.Initialize()
	b.fingerprint = b.zobrist.EmptyBoard()
	return b
}

// Clone returns a deep copy of the board, key table included.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// CopyFrom copies the full state of o into b.
func (b *Board) CopyFrom(o *Board) {
	*b = *o
}

// Turn returns the player to move.
func (b *Board) Turn() Stone {
	return b.turn
}

func (b *Board) Fingerprint() uint64 {
	return b.fingerprint
}

// KeysID identifies the key table of the board. Fingerprints taken from
// boards with different KeysID cannot be compared.
func (b *Board) KeysID() uint64 {
	return b.zobrist.EmptyBoard()
}

// ComputeFingerprint recomputes the fingerprint from the cell contents. It
// must always equal Fingerprint.
func (b *Board) ComputeFingerprint() uint64 {
	contents := make([]int, NumCells)
	for i, s := range b.cells {
		contents[i] = s.zobristKey()
	}
	return b.zobrist.Hash(contents)
}

// At returns the content of the cell at m, or Empty if m is off the board.
func (b *Board) At(m Move) Stone {
	if !m.OnBoard() {
		return Empty
	}
	return b.cells[m.idx()]
}

// IsEmpty returns whether no stone has been played yet.
func (b *Board) IsEmpty() bool {
	return b.stones == 0
}

func (b *Board) IsFull() bool {
	return b.stones == NumCells
}

func (b *Board) StonesPlayed() int {
	return b.stones
}

func (b *Board) set(m Move, s Stone) {
	idx := m.idx()
	old := b.cells[idx]
	if old != Empty {
		b.fingerprint = b.zobrist.Remove(b.fingerprint, idx, old.zobristKey())
		b.stones--
	}
	if s != Empty {
		b.fingerprint = b.zobrist.Place(b.fingerprint, idx, s.zobristKey())
		b.stones++
	}
	b.cells[idx] = s
}

// Apply places a stone of the player to move at m and passes the turn. It
// returns false without touching the board if m is occupied or off the
// board.
func (b *Board) Apply(m Move) bool {
	if !m.OnBoard() || b.cells[m.idx()] != Empty {
		return false
	}
	b.set(m, b.turn)
	b.turn = -b.turn
	return true
}

// Undo takes back the stone at m. The stone must belong to the player that
// is to move once the undo is done, i.e. the player that moved last.
// Anything else means applies and undos got out of step, and Undo panics.
func (b *Board) Undo(m Move) {
	if !m.OnBoard() {
		panic(fmt.Sprintf("undo of off-board move %v", m))
	}
	if s := b.cells[m.idx()]; s != -b.turn {
		panic(fmt.Sprintf("undo of %v: cell holds %v, last mover was %v", m, s, -b.turn))
	}
	b.turn = -b.turn
	b.set(m, Empty)
}

// FreePositions yields every empty cell in row-major order. The sequence
// can be ranged over any number of times.
func (b *Board) FreePositions() iter.Seq[Move] {
	return func(yield func(Move) bool) {
		for i := 0; i < NumCells; i++ {
			if b.cells[i] != Empty {
				continue
			}
			if !yield(Move{Row: i / Dim, Col: i % Dim}) {
				return
			}
		}
	}
}

// FirstFree returns the first empty cell in row-major order, or NoMove on a
// full board.
func (b *Board) FirstFree() Move {
	for m := range b.FreePositions() {
		return m
	}
	return NoMove
}

// RunLengthsFrom counts, for each of the 8 directions, the contiguous run
// starting at m, capped at MaxRunLength.
//
// If m holds a stone the run is made of stones of that color and includes m
// itself. If m is empty the run is made of stones of whatever color sits on
// the neighbor in that direction, starting at the neighbor, and is 0 when the
// neighbor is empty or off the board.
func (b *Board) RunLengthsFrom(m Move) [NumDirections]int {
	var result [NumDirections]int
	own := b.At(m)
	for d := Direction(0); d < NumDirections; d++ {
		cur := m.Add(d, 1)
		color := own
		count := 1
		if own == Empty {
			color = b.At(cur)
			if color == Empty {
				continue
			}
			count = 0
		}
		for count < MaxRunLength && cur.OnBoard() && b.cells[cur.idx()] == color {
			count++
			cur = cur.Add(d, 1)
		}
		result[d] = count
	}
	return result
}

// CheckWinFrom returns whether the stone at m is part of a line of five or
// more. Free-style rules apply, so an overline wins too.
func (b *Board) CheckWinFrom(m Move) bool {
	if b.At(m) == Empty {
		return false
	}
	rl := b.RunLengthsFrom(m)
	for d := Direction(0); d < NumDirections/2; d++ {
		if rl[d]+rl[d.Opposite()]-1 >= WinLength {
			return true
		}
	}
	return false
}

// CheckWin scans the whole board. Searches only ever need CheckWinFrom on
// the cell just played.
func (b *Board) CheckWin() bool {
	for i := 0; i < NumCells; i++ {
		if b.CheckWinFrom(Move{Row: i / Dim, Col: i % Dim}) {
			return true
		}
	}
	return false
}

// Alive returns whether m is empty and has a stone within two steps of it
// in one of the 8 directions. Cells that are not alive are never worth
// considering.
func (b *Board) Alive(m Move) bool {
	if !m.OnBoard() || b.cells[m.idx()] != Empty {
		return false
	}
	for d := Direction(0); d < NumDirections; d++ {
		if b.At(m.Add(d, 1)) != Empty || b.At(m.Add(d, 2)) != Empty {
			return true
		}
	}
	return false
}

// AliveCells returns all alive cells in row-major order.
func (b *Board) AliveCells() []Move {
	var cells []Move
	for m := range b.FreePositions() {
		if b.Alive(m) {
			cells = append(cells, m)
		}
	}
	return cells
}
