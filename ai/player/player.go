// Package player defines the contract every gomoku player implements, along
// with the simplest players: one that plays at random and one that relays
// moves from a human.
package player

import (
	"lukechampine.com/frand"

	"github.com/domino14/gomoku/board"
)

// Actor chooses moves. Next is handed a snapshot of the game and must return
// a cell that is empty on it. It may modify the snapshot as long as it
// restores it before returning.
type Actor interface {
	Next(b *board.Board) board.Move
}

// OpeningMove returns the center cell for an empty board. The game always
// opens there, so no search is needed.
func OpeningMove(b *board.Board) (board.Move, bool) {
	if b.IsEmpty() {
		return board.Center, true
	}
	return board.NoMove, false
}

// Fallback returns m if it can be played on b, and the first empty cell
// otherwise. Searches that run out of candidates end up here.
func Fallback(b *board.Board, m board.Move) board.Move {
	if m.OnBoard() && b.At(m) == board.Empty {
		return m
	}
	return b.FirstFree()
}

// Random plays a uniformly random empty cell.
type Random struct{}

func (Random) Next(b *board.Board) board.Move {
	if m, ok := OpeningMove(b); ok {
		return m
	}
	free := board.NumCells - b.StonesPlayed()
	if free == 0 {
		return board.NoMove
	}
	n := frand.Intn(free)
	for m := range b.FreePositions() {
		if n == 0 {
			return m
		}
		n--
	}
	return board.NoMove
}

// Human relays moves from an interactive front end. Next blocks until a
// move that is empty on the snapshot arrives; anything else is dropped. It
// returns board.NoMove once the channel is closed.
type Human struct {
	moves <-chan board.Move
}

func NewHuman(moves <-chan board.Move) *Human {
	return &Human{moves: moves}
}

func (h *Human) Next(b *board.Board) board.Move {
	for m := range h.moves {
		if m.OnBoard() && b.At(m) == board.Empty {
			return m
		}
	}
	return board.NoMove
}
