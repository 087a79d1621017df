package board

import (
	"testing"

	"github.com/matryer/is"
)

func row(r, from, to int) []Move {
	var ms []Move
	for c := from; c <= to; c++ {
		ms = append(ms, Cell(r, c))
	}
	return ms
}

func place(b *Board, s Stone, ms ...Move) {
	for _, m := range ms {
		b.set(m, s)
	}
}

func TestNewBoard(t *testing.T) {
	is := is.New(t)
	b := NewBoard(First)
	is.True(b.IsEmpty())
	is.Equal(b.Turn(), First)
	is.Equal(b.Fingerprint(), b.ComputeFingerprint())
	n := 0
	for range b.FreePositions() {
		n++
	}
	is.Equal(n, NumCells)
}

func TestFingerprintConsistency(t *testing.T) {
	is := is.New(t)
	b := NewBoard(First)
	start := b.Fingerprint()
	moves := []Move{Center, Cell(7, 8), Cell(6, 6), Cell(0, 0), Cell(14, 14), Cell(3, 9)}
	for _, m := range moves {
		is.True(b.Apply(m))
		is.Equal(b.Fingerprint(), b.ComputeFingerprint())
	}
	for i := len(moves) - 1; i >= 0; i-- {
		b.Undo(moves[i])
		is.Equal(b.Fingerprint(), b.ComputeFingerprint())
	}
	is.Equal(b.Fingerprint(), start)
}

func TestTranspositionsShareFingerprint(t *testing.T) {
	is := is.New(t)
	b := NewBoard(First)
	c := b.Clone()
	for _, m := range []Move{Cell(1, 1), Cell(2, 2), Cell(3, 3)} {
		is.True(b.Apply(m))
	}
	for _, m := range []Move{Cell(3, 3), Cell(2, 2), Cell(1, 1)} {
		is.True(c.Apply(m))
	}
	is.Equal(b.Fingerprint(), c.Fingerprint())
}

func TestApplyUndoInverse(t *testing.T) {
	is := is.New(t)
	b := OpenFour.Board(First)
	before := b.Clone()
	for m := range before.FreePositions() {
		is.True(b.Apply(m))
		is.Equal(b.At(m), First)
		is.Equal(b.Turn(), Second)
		b.Undo(m)
		is.Equal(*b, *before)
	}
}

func TestApplyRejects(t *testing.T) {
	is := is.New(t)
	b := NewBoard(First)
	is.True(b.Apply(Center))
	before := b.Clone()
	is.True(!b.Apply(Center))
	is.True(!b.Apply(Cell(15, 3)))
	is.True(!b.Apply(NoMove))
	is.Equal(*b, *before)
}

func TestUndoMismatchPanics(t *testing.T) {
	b := NewBoard(First)
	b.Apply(Center)
	b.Apply(Cell(0, 0))

	for _, m := range []Move{Center, Cell(3, 3), NoMove} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected undo of %v to panic", m)
				}
			}()
			b.Undo(m)
		}()
	}
}

func TestWinDetection(t *testing.T) {
	is := is.New(t)

	five := NewBoard(First)
	place(five, First, row(4, 2, 6)...)
	for _, m := range row(4, 2, 6) {
		is.True(five.CheckWinFrom(m))
	}
	is.True(five.CheckWin())

	four := NewBoard(First)
	place(four, First, row(4, 2, 5)...)
	for _, m := range row(4, 2, 5) {
		is.True(!four.CheckWinFrom(m))
	}
	is.True(!four.CheckWin())
	// Empty cells never report a win.
	is.True(!four.CheckWinFrom(Cell(4, 6)))

	six := NewBoard(First)
	place(six, Second, row(9, 9, 14)...)
	for _, m := range row(9, 9, 14) {
		is.True(six.CheckWinFrom(m))
	}
}

func TestDiagonalWin(t *testing.T) {
	is := is.New(t)
	b := NewBoard(First)
	for i := 0; i < 5; i++ {
		place(b, Second, Cell(10-i, 2+i))
	}
	is.True(b.CheckWinFrom(Cell(8, 4)))
	is.True(b.CheckWin())
}

func TestRunLengthCap(t *testing.T) {
	is := is.New(t)
	b := NewBoard(First)
	place(b, First, row(0, 2, 8)...)
	for _, m := range row(0, 2, 8) {
		for _, n := range b.RunLengthsFrom(m) {
			is.True(n <= MaxRunLength)
		}
	}
	rl := b.RunLengthsFrom(Cell(0, 2))
	is.Equal(rl[0], MaxRunLength) // E
	is.Equal(rl[4], 1)            // W
	is.Equal(rl[1], 1)            // S
}

func TestRunLengthsFromEmpty(t *testing.T) {
	is := is.New(t)
	b := NewBoard(First)
	place(b, First, Cell(5, 6), Cell(5, 7))
	place(b, Second, Cell(5, 4), Cell(6, 5), Cell(7, 5))

	rl := b.RunLengthsFrom(Cell(5, 5))
	is.Equal(rl, [NumDirections]int{2, 2, 0, 0, 1, 0, 0, 0})

	corner := b.RunLengthsFrom(Cell(0, 0))
	is.Equal(corner, [NumDirections]int{})
}

func TestAlive(t *testing.T) {
	is := is.New(t)
	b := NewBoard(First)
	is.Equal(len(b.AliveCells()), 0)

	b.Apply(Center)
	cells := b.AliveCells()
	// Two rings along the 8 directions.
	is.Equal(len(cells), 16)
	is.True(b.Alive(Cell(5, 5)))
	is.True(b.Alive(Cell(7, 9)))
	is.True(!b.Alive(Cell(6, 5)))
	is.True(!b.Alive(Center))
}

func TestFreePositionsRestartable(t *testing.T) {
	is := is.New(t)
	b := NewBoard(First)
	b.Apply(Cell(0, 0))
	b.Apply(Cell(0, 1))

	collect := func() []Move {
		var ms []Move
		for m := range b.FreePositions() {
			ms = append(ms, m)
		}
		return ms
	}
	first := collect()
	is.Equal(len(first), NumCells-2)
	is.Equal(first[0], Cell(0, 2))
	is.Equal(first, collect())
	is.Equal(b.FirstFree(), Cell(0, 2))
}

func TestMoveStrings(t *testing.T) {
	is := is.New(t)
	is.Equal(Center.String(), "H8")
	is.Equal(Cell(0, 0).String(), "A1")
	is.Equal(Cell(14, 14).String(), "O15")
	is.Equal(NoMove.String(), "-")

	m, err := ParseMove("h8")
	is.NoErr(err)
	is.Equal(m, Center)
	m, err = ParseMove("O15")
	is.NoErr(err)
	is.Equal(m, Cell(14, 14))

	for _, bad := range []string{"", "H", "P3", "A0", "A16", "88"} {
		_, err = ParseMove(bad)
		is.True(err != nil)
	}
}

func TestDirections(t *testing.T) {
	is := is.New(t)
	for d := Direction(0); d < NumDirections; d++ {
		back := Center.Add(d, 3).Add(d.Opposite(), 3)
		is.Equal(back, Center)
	}
}

func TestPlaintextRoundTrip(t *testing.T) {
	is := is.New(t)
	b := DoubleFour.Board(First)
	is.Equal(b.StonesPlayed(), 16)
	is.Equal(b.At(Cell(14, 3)), Second)
	is.Equal(b.At(Center), First)

	c, err := FromPlaintext(b.ToDisplayText(), First)
	is.NoErr(err)
	is.Equal(c.cells, b.cells)

	_, err = FromPlaintext("|X X|", First)
	is.True(err != nil)
}

func TestReaches(t *testing.T) {
	is := is.New(t)
	b := NewBoard(First)
	// X X . X on row 3, with an O closing the right side.
	place(b, First, Cell(3, 1), Cell(3, 2), Cell(3, 4))
	place(b, Second, Cell(3, 5))

	r := b.Reaches(Cell(3, 3))
	is.Equal(r[4], Reach{Stone: First, Front: 2, Back: 1, FrontBlocked: false, BackBlocked: true})
	is.Equal(r[0], Reach{Stone: First, Front: 1, Back: 2, FrontBlocked: true, BackBlocked: false})
	is.Equal(r[0].Len(), 3)
	is.True(!r[0].Open())
	is.Equal(r[1], Reach{})

	// Different colors on each side leave Back at zero.
	r = b.Reaches(Cell(3, 6))
	is.Equal(r[4], Reach{Stone: Second, Front: 1, Back: 0, FrontBlocked: true, BackBlocked: false})
}
