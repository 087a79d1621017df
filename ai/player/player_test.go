package player

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/gomoku/board"
)

func TestOpeningMove(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard(board.Second)
	m, ok := OpeningMove(b)
	is.True(ok)
	is.Equal(m, board.Center)

	b.Apply(m)
	_, ok = OpeningMove(b)
	is.True(!ok)
}

func TestFallback(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard(board.First)
	b.Apply(board.Cell(0, 0))
	is.Equal(Fallback(b, board.Cell(3, 3)), board.Cell(3, 3))
	is.Equal(Fallback(b, board.Cell(0, 0)), board.Cell(0, 1))
	is.Equal(Fallback(b, board.NoMove), board.Cell(0, 1))
}

func TestRandom(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard(board.First)
	var r Random
	is.Equal(r.Next(b), board.Center)

	for i := 0; i < 100; i++ {
		m := r.Next(b)
		if b.IsEmpty() {
			is.Equal(m, board.Center)
		}
		is.True(b.Apply(m))
	}
	is.Equal(b.StonesPlayed(), 100)

	// Only one cell left.
	full := board.NewBoard(board.First)
	for m := range board.NewBoard(board.First).FreePositions() {
		if m != board.Cell(14, 14) {
			full.Apply(m)
		}
	}
	is.Equal(r.Next(full), board.Cell(14, 14))
	full.Apply(board.Cell(14, 14))
	is.True(full.IsFull())
	is.Equal(r.Next(full), board.NoMove)
}

func TestHuman(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard(board.First)
	b.Apply(board.Center)

	moves := make(chan board.Move, 4)
	h := NewHuman(moves)
	moves <- board.Center
	moves <- board.Cell(20, 1)
	moves <- board.Cell(6, 6)
	is.Equal(h.Next(b), board.Cell(6, 6))

	close(moves)
	is.Equal(h.Next(b), board.NoMove)
}
