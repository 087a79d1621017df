// Package negamax is a depth-limited alpha-beta search that scores its
// leaves with a static evaluator.
package negamax

import (
	"cmp"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/gomoku/ai/player"
	"github.com/domino14/gomoku/board"
	"github.com/domino14/gomoku/eval"
)

// thanks Wikipedia:
/*
function negamax(node, depth, α, β, color) is
    if depth = 0 or node is a terminal node then
        return color × the heuristic value of node

    childNodes := generateMoves(node)
    childNodes := orderMoves(childNodes)
    value := −∞
    foreach child in childNodes do
        value := max(value, −negamax(child, depth − 1, −β, −α, −color))
        α := max(α, value)
        if α ≥ β then
            break (* cut-off *)
    return value
**/

// Solver searches depth plies. The memo is kept between moves.
type Solver struct {
	depth     int
	evaluator eval.Evaluator
	memo      *Memo

	// memoizeInterior also stores interior nodes that finished without a
	// cutoff. Leaves are always stored.
	memoizeInterior bool

	nodes uint64
	pv    PVLine
}

func NewSolver(depth int, ev eval.Evaluator, memo *Memo) *Solver {
	return &Solver{
		depth:     depth,
		evaluator: ev,
		memo:      memo,
	}
}

func (s *Solver) SetMemoizeInterior(b bool) {
	s.memoizeInterior = b
}

func (s *Solver) Memo() *Memo {
	return s.memo
}

// Nodes is the number of positions searched by the last Solve, memo hits
// excluded.
func (s *Solver) Nodes() uint64 {
	return s.nodes
}

func (s *Solver) Next(b *board.Board) board.Move {
	if m, ok := player.OpeningMove(b); ok {
		return m
	}
	b = b.Clone()
	before := s.memo.Stats()
	score, m := s.Solve(b)
	after := s.memo.Stats()

	log.Debug().
		Str("move", m.String()).
		Int("score", score).
		Uint64("nodes", s.nodes).
		Uint64("memo-lookups", after.Lookups-before.Lookups).
		Uint64("memo-hits", after.Hits-before.Hits).
		Uint64("memo-created", after.Created-before.Created).
		Int("memo-size", s.memo.Len()).
		Msg("negamax-stats")

	return player.Fallback(b, m)
}

// Solve returns the score of b for the player to move and the move that
// achieves it. The move is board.NoMove if there is nothing to play. b is
// restored before Solve returns.
func (s *Solver) Solve(b *board.Board) (int, board.Move) {
	s.memo.prepare(b)
	s.nodes = 0
	return s.negamax(0, b, eval.Loss-1, eval.Win+1, &s.pv)
}

// PrincipalVariation is the line of best play found by the last Solve. It
// stops early where the search was cut short by a memo hit.
func (s *Solver) PrincipalVariation() PVLine {
	return PVLine{Moves: append([]board.Move(nil), s.pv.Moves...), Score: s.pv.Score}
}

type candidate struct {
	move  board.Move
	score int
}

// orderedMoves scores every alive cell by playing it and evaluating the
// result. That score is the opponent's, so ascending order puts the moves
// best for the player to move first.
func (s *Solver) orderedMoves(b *board.Board) []candidate {
	cands := lo.Map(b.AliveCells(), func(m board.Move, _ int) candidate {
		b.Apply(m)
		sc := s.evaluator.Evaluate(b)
		b.Undo(m)
		return candidate{m, sc}
	})
	slices.SortStableFunc(cands, func(x, y candidate) int {
		return cmp.Compare(x.score, y.score)
	})
	return cands
}

func (s *Solver) negamax(ply int, b *board.Board, α, β int, pv *PVLine) (int, board.Move) {
	pv.Clear()
	fp := b.Fingerprint()
	if e, ok := s.memo.lookup(ply, fp); ok {
		if e.move.OnBoard() {
			pv.Update(e.move, PVLine{}, int(e.score))
		}
		return int(e.score), e.move
	}
	s.nodes++

	if ply == s.depth {
		score := s.evaluator.Evaluate(b)
		s.memo.store(ply, fp, score, board.NoMove)
		return score, board.NoMove
	}

	cands := s.orderedMoves(b)
	if len(cands) == 0 {
		// Full board.
		return 0, board.NoMove
	}

	var childPV PVLine
	bestScore, bestMove := eval.Loss-1, board.NoMove
	for _, c := range cands {
		b.Apply(c.move)
		if b.CheckWinFrom(c.move) {
			b.Undo(c.move)
			pv.Update(c.move, PVLine{}, eval.Win)
			return eval.Win, c.move
		}
		score, _ := s.negamax(ply+1, b, -β, -α, &childPV)
		score = -score
		b.Undo(c.move)

		if score > bestScore {
			bestScore, bestMove = score, c.move
			pv.Update(c.move, childPV, score)
			if score > α {
				α = score
				if α >= β {
					return bestScore, bestMove
				}
			}
		}
	}
	if s.memoizeInterior {
		s.memo.store(ply, fp, bestScore, bestMove)
	}
	return bestScore, bestMove
}
