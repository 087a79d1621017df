// Package budget is a threat-aware alpha-beta search. Instead of a fixed
// depth it hands each node a share of a compute budget, gives the better
// candidates a larger share and cuts off forcing lines using the threat
// classifier.
package budget

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/gomoku/ai/player"
	"github.com/domino14/gomoku/board"
	"github.com/domino14/gomoku/eval"
	"github.com/domino14/gomoku/threats"
)

// nodeCost is charged for every node entered. A node left with less than
// nothing after paying it is scored statically.
const nodeCost = float64(board.NumCells)

// Reason tells which rule decided a search result.
type Reason uint8

const (
	ReasonStaticEval Reason = iota
	ReasonAllLosingMoves
	ReasonWinningMove
	ReasonOneMoveWin
	ReasonTwoMoveWin
	ReasonOneMoveLoss
	ReasonForcedLoss
	ReasonForcedDefense
)

var reasonNames = map[Reason]string{
	ReasonStaticEval:     "StaticEval",
	ReasonAllLosingMoves: "AllLosingMoves",
	ReasonWinningMove:    "WinningMove",
	ReasonOneMoveWin:     "OneMoveWin",
	ReasonTwoMoveWin:     "TwoMoveWin",
	ReasonOneMoveLoss:    "OneMoveLoss",
	ReasonForcedLoss:     "ForcedLoss",
	ReasonForcedDefense:  "ForcedDefense",
}

func (r Reason) String() string {
	if s, ok := reasonNames[r]; ok {
		return s
	}
	return fmt.Sprintf("Reason(%d)", uint8(r))
}

// Result is the outcome of a search from the point of view of the player to
// move. Move is board.NoMove when no move was chosen.
type Result struct {
	Score  int
	Move   board.Move
	Reason Reason
}

func (r Result) String() string {
	return fmt.Sprintf("%v %d (%v)", r.Move, r.Score, r.Reason)
}

// Searcher holds the search parameters.
type Searcher struct {
	compute    float64
	multiplier float64
	passes     int
	evaluator  eval.Evaluator

	nodes uint64
}

// NewSearcher creates a searcher with a total budget of compute. Each of
// the passes widening passes multiplies the per-candidate budget by
// multiplier, which must be greater than 1.
func NewSearcher(compute, multiplier float64, passes int, ev eval.Evaluator) *Searcher {
	return &Searcher{
		compute:    compute,
		multiplier: multiplier,
		passes:     passes,
		evaluator:  ev,
	}
}

// Nodes is the number of nodes visited by the last search.
func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

func (s *Searcher) Next(b *board.Board) board.Move {
	if m, ok := player.OpeningMove(b); ok {
		return m
	}
	b = b.Clone()
	res := s.Search(b)
	log.Debug().
		Str("move", res.Move.String()).
		Int("score", res.Score).
		Stringer("reason", res.Reason).
		Uint64("nodes", s.nodes).
		Msg("budget-search")
	return player.Fallback(b, res.Move)
}

// Search runs a full search from b. b is restored before Search returns.
func (s *Searcher) Search(b *board.Board) Result {
	s.nodes = 0
	return s.search(b, eval.Loss-1, eval.Win+1, s.compute)
}

type candidate struct {
	move  board.Move
	score int
}

func (s *Searcher) search(b *board.Board, α, β int, comp float64) Result {
	comp -= nodeCost
	s.nodes++

	st := threats.Classify(b)
	switch st.Kind {
	case threats.OneMoveWin:
		return Result{eval.Win, st.Cell(), ReasonOneMoveWin}
	case threats.TwoMoveWin:
		return Result{eval.Win, st.Cell(), ReasonTwoMoveWin}
	case threats.OneMoveLoss:
		return Result{eval.Loss, st.Cell(), ReasonOneMoveLoss}
	case threats.ForcedDefense:
		if len(st.Cells) > 1 {
			return Result{eval.Loss, st.Cell(), ReasonForcedLoss}
		}
		m := st.Cell()
		b.Apply(m)
		res := s.search(b, -β, -α, comp)
		b.Undo(m)
		return Result{-res.Score, m, ReasonForcedDefense}
	}

	cells := b.AliveCells()
	if comp < 0 || len(cells) == 0 {
		return Result{s.evaluator.Evaluate(b), board.NoMove, ReasonStaticEval}
	}

	mp := s.multiplier
	cands := lo.Map(cells, func(m board.Move, _ int) candidate { return candidate{move: m} })
	cur := comp / math.Pow(mp, float64(s.passes+1)) / float64(len(cands))

	for pass := 0; pass < s.passes; pass++ {
		cur *= mp
		if cur < nodeCost/mp {
			continue
		}
		n := len(cands)
		for i := range cands {
			share := cur + (cur*mp-cur)*float64(n-i)/float64(n)
			cands[i].score, _, _ = s.try(b, cands[i].move, α, β, share)
		}
		cands = lo.Filter(cands, func(c candidate, _ int) bool { return c.score != eval.Loss })
		if len(cands) == 0 {
			return Result{eval.Loss, board.NoMove, ReasonAllLosingMoves}
		}
		slices.SortStableFunc(cands, func(x, y candidate) int {
			return cmp.Compare(y.score, x.score)
		})
		if cands[0].score == eval.Win {
			return Result{eval.Win, cands[0].move, ReasonWinningMove}
		}
	}

	// Final pass: plain alpha-beta over the survivors, best first.
	n := len(cands)
	cur = comp / float64(n)
	best := Result{eval.Loss - 1, cands[0].move, ReasonStaticEval}
	for i, c := range cands {
		bonus := (cur*mp - cur) * float64(n-i) / float64(n)
		score, reason, five := s.try(b, c.move, α, β, cur+bonus)
		if five {
			return Result{eval.Win, c.move, ReasonWinningMove}
		}
		if score > best.Score {
			best = Result{score, c.move, reason}
		}
		if score > α {
			α = score
			if α >= β {
				return best
			}
		}
	}
	return best
}

// try plays m and searches the reply with the given budget. The score is
// from the point of view of the player playing m. five reports a move that
// completes a line, which is not searched any further.
func (s *Searcher) try(b *board.Board, m board.Move, α, β int, comp float64) (score int, reason Reason, five bool) {
	b.Apply(m)
	defer b.Undo(m)
	if b.CheckWinFrom(m) {
		return eval.Win, ReasonWinningMove, true
	}
	res := s.search(b, -β, -α, comp)
	return -res.Score, res.Reason, false
}
