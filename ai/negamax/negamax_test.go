package negamax

import (
	"os"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/gomoku/board"
	"github.com/domino14/gomoku/eval"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

func newSolver(depth int) *Solver {
	return NewSolver(depth, eval.Pattern{}, NewMemo(0.01))
}

func TestOpening(t *testing.T) {
	is := is.New(t)
	s := newSolver(3)
	is.Equal(s.Next(board.NewBoard(board.First)), board.Center)
	is.Equal(s.Memo().Len(), 0)
}

func TestOpenFourWins(t *testing.T) {
	is := is.New(t)
	for depth, ev := range map[int]eval.Evaluator{3: eval.Pattern{}, 1: eval.Shape{}} {
		b := board.OpenFour.Board(board.First)
		before := b.Clone()
		s := NewSolver(depth, ev, NewMemo(0.01))

		score, m := s.Solve(b)
		is.Equal(score, eval.Win)
		is.True(m == board.Cell(7, 4) || m == board.Cell(7, 9))
		is.Equal(*b, *before)
	}
}

func TestWinBeforeDefense(t *testing.T) {
	is := is.New(t)
	b := board.WinAndDefend.Board(board.First)
	before := b.Clone()
	s := newSolver(2)

	score, m := s.Solve(b)
	is.Equal(score, eval.Win)
	is.Equal(m, board.Cell(10, 2))
	is.Equal(*b, *before)
	is.Equal(s.Next(b), board.Cell(10, 2))
}

func TestLostPosition(t *testing.T) {
	is := is.New(t)
	b := board.OpenFour.Board(board.Second)
	s := newSolver(2)

	score, m := s.Solve(b)
	is.Equal(score, eval.Loss)
	is.True(b.Alive(m))
}

func TestOrderedMoves(t *testing.T) {
	b := board.WinAndDefend.Board(board.First)
	s := newSolver(1)
	cands := s.orderedMoves(b)

	assert.Len(t, cands, len(b.AliveCells()))
	// Only the block and the two winning cells leave the opponent lost.
	// Everything else lets Second complete its four.
	assert.Equal(t, board.Cell(3, 4), cands[0].move)
	assert.Equal(t, board.Cell(10, 2), cands[1].move)
	assert.Equal(t, board.Cell(10, 7), cands[2].move)
	assert.Equal(t, eval.Loss, cands[2].score)
	assert.Equal(t, eval.Win, cands[3].score)
	for i := 1; i < len(cands); i++ {
		assert.LessOrEqual(t, cands[i-1].score, cands[i].score)
	}
}

func TestInteriorMemo(t *testing.T) {
	is := is.New(t)
	b := board.OpenTwo.Board(board.First)

	leafOnly := newSolver(2)
	s1, m1 := leafOnly.Solve(b)

	interior := newSolver(2)
	interior.SetMemoizeInterior(true)
	s2, m2 := interior.Solve(b)

	is.Equal(s1, s2)
	is.Equal(m1, m2)
	is.True(interior.Memo().Len() > leafOnly.Memo().Len())

	// The root itself is now memoized.
	s3, m3 := interior.Solve(b)
	is.Equal(s3, s2)
	is.Equal(m3, m2)
	is.Equal(interior.Nodes(), uint64(0))
}

func TestMemoClearsWhenFull(t *testing.T) {
	is := is.New(t)
	memo := &Memo{table: make(map[memoKey]memoEntry), capacity: 2}
	memo.store(1, 10, 5, board.NoMove)
	memo.store(1, 11, 6, board.NoMove)
	is.Equal(memo.Len(), 2)
	memo.store(1, 12, 7, board.Center)
	is.Equal(memo.Len(), 1)

	e, ok := memo.lookup(1, 12)
	is.True(ok)
	is.Equal(e, memoEntry{7, board.Center})
	_, ok = memo.lookup(1, 10)
	is.True(!ok)
	_, ok = memo.lookup(2, 12)
	is.True(!ok)

	is.Equal(memo.Stats(), MemoStats{Lookups: 3, Hits: 1, Created: 3, Clears: 1})
}

func TestMemoFollowsKeyTable(t *testing.T) {
	is := is.New(t)
	memo := NewMemo(0.01)
	b1 := board.NewBoard(board.First)
	b2 := board.NewBoard(board.First)

	memo.prepare(b1)
	memo.store(0, b1.Fingerprint(), 1, board.NoMove)
	memo.prepare(b1.Clone())
	is.Equal(memo.Len(), 1)

	memo.prepare(b2)
	is.Equal(memo.Len(), 0)
}

func TestPrincipalVariation(t *testing.T) {
	is := is.New(t)
	s := newSolver(2)

	b := board.OpenFour.Board(board.First)
	_, m := s.Solve(b)
	pv := s.PrincipalVariation()
	is.Equal(pv.Moves, []board.Move{m})
	is.Equal(pv.Score, eval.Win)

	// Whatever Second tries, the line ends with First completing five.
	b = board.OpenFour.Board(board.Second)
	score, m := s.Solve(b)
	pv = s.PrincipalVariation()
	is.Equal(pv.Score, score)
	is.Equal(len(pv.Moves), 2)
	is.Equal(pv.PVMove(), m)
	is.True(pv.Moves[1] == board.Cell(7, 4) || pv.Moves[1] == board.Cell(7, 9))
	is.True(strings.HasPrefix(pv.String(), "PV; val -1000000; 1: "))

	is.Equal(PVLine{}.PVMove(), board.NoMove)
}
