package threats

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/gomoku/board"
)

func TestBoring(t *testing.T) {
	is := is.New(t)
	is.Equal(Classify(board.NewBoard(board.First)).Kind, Boring)
	is.Equal(Classify(board.OpenTwo.Board(board.First)), State{})
	is.Equal(State{}.Cell(), board.NoMove)
}

func TestOneMoveWinBeatsForcedDefense(t *testing.T) {
	is := is.New(t)
	b := board.WinAndDefend.Board(board.First)
	st := Classify(b)
	is.Equal(st.Kind, OneMoveWin)
	is.Equal(st.Cells, []board.Move{board.Cell(10, 2)})

	// With the other player to move the roles swap.
	b = board.WinAndDefend.Board(board.Second)
	st = Classify(b)
	is.Equal(st.Kind, OneMoveWin)
	is.Equal(st.Cell(), board.Cell(3, 4))
}

func TestDoubleFourIsForcedDefense(t *testing.T) {
	is := is.New(t)
	st := Classify(board.DoubleFour.Board(board.First))
	is.Equal(st.Kind, ForcedDefense)
	is.Equal(st.Cells, []board.Move{board.Cell(0, 4), board.Cell(14, 4)})
	is.Equal(st.String(), "ForcedDefense(E1,E15)")
}

func TestSingleForcedDefense(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard(board.First)
	for c := 0; c < 4; c++ {
		is.True(b.Apply(board.Cell(9, 2*c+3)))
		is.True(b.Apply(board.Cell(5, 10-c)))
	}
	// Second has an open four on row 6.
	st := Classify(b)
	is.Equal(st.Kind, OneMoveLoss)
	is.Equal(st.Cell(), board.Cell(5, 6))

	// Close one end; the other end is now a forced reply.
	is.True(b.Apply(board.Cell(5, 11)))
	is.True(b.Apply(board.Cell(0, 0)))
	st = Classify(b)
	is.Equal(st.Kind, ForcedDefense)
	is.Equal(st.Cells, []board.Move{board.Cell(5, 6)})
}

func TestTwoMoveWin(t *testing.T) {
	is := is.New(t)
	st := Classify(board.OpenThree.Board(board.First))
	is.Equal(st.Kind, TwoMoveWin)
	is.Equal(st.Cell(), board.Cell(7, 4))

	// The opponent's open three is not something Classify reports.
	is.Equal(Classify(board.OpenThree.Board(board.Second)).Kind, Boring)
}

func TestOneMoveLoss(t *testing.T) {
	is := is.New(t)
	st := Classify(board.OpenFour.Board(board.Second))
	is.Equal(st.Kind, OneMoveLoss)
	is.Equal(st.Cell(), board.Cell(7, 4))
}

func TestSplitFourCompletes(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard(board.First)
	// X X . X X on column C, First to move.
	for _, r := range []int{2, 3, 5, 6} {
		is.True(b.Apply(board.Cell(r, 2)))
		is.True(b.Apply(board.Cell(r, 12)))
	}
	st := Classify(b)
	is.Equal(st.Kind, OneMoveWin)
	is.Equal(st.Cell(), board.Cell(4, 2))
}

func TestAccumulator(t *testing.T) {
	a := accumulator{}
	m1, m2 := board.Cell(1, 1), board.Cell(2, 2)

	a.add(TwoMoveWin, m1)
	a.add(TwoMoveWin, m2)
	assert.Equal(t, State{Kind: TwoMoveWin, Cells: []board.Move{m1}}, a.state)

	a.add(ForcedDefense, m2)
	a.add(ForcedDefense, m1)
	a.add(ForcedDefense, m2)
	assert.Equal(t, []board.Move{m2, m1}, a.state.Cells)

	a.add(TwoMoveWin, m1)
	assert.Equal(t, ForcedDefense, a.state.Kind)

	a.add(OneMoveLoss, m1)
	assert.Equal(t, State{Kind: OneMoveLoss, Cells: []board.Move{m1}}, a.state)
}

func TestKindStrings(t *testing.T) {
	for k, s := range map[Kind]string{
		Boring: "Boring", TwoMoveWin: "TwoMoveWin", ForcedDefense: "ForcedDefense",
		OneMoveLoss: "OneMoveLoss", OneMoveWin: "OneMoveWin", Kind(1): "Kind(1)",
	} {
		assert.Equal(t, s, k.String())
	}
}
