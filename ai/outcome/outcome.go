// Package outcome implements a small exhaustive search that only knows
// about won, lost and undecided lines. It has no evaluation function, so it
// is only useful at shallow depths.
package outcome

import (
	"github.com/rs/zerolog/log"

	"github.com/domino14/gomoku/ai/player"
	"github.com/domino14/gomoku/board"
)

type Outcome uint8

const (
	Uncertain Outcome = iota
	Win
	Lose
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Lose:
		return "lose"
	}
	return "uncertain"
}

// Searcher looks depth plies ahead.
type Searcher struct {
	depth int
	nodes int
}

func NewSearcher(depth int) *Searcher {
	return &Searcher{depth: depth}
}

// Nodes is the number of positions visited by the last search.
func (s *Searcher) Nodes() int {
	return s.nodes
}

func (s *Searcher) Next(b *board.Board) board.Move {
	if m, ok := player.OpeningMove(b); ok {
		return m
	}
	b = b.Clone()
	m, o, ok := s.Search(b)
	log.Debug().Str("move", m.String()).Stringer("outcome", o).Bool("found", ok).
		Int("nodes", s.nodes).Msg("outcome-search")
	if !ok {
		return player.Fallback(b, board.NoMove)
	}
	return m
}

// Search returns the best move for the player to move and what is known
// about it. A winning move is preferred, then any undecided one. If every
// move loses, the first one is returned. ok is false when the board has no
// alive cells.
func (s *Searcher) Search(b *board.Board) (board.Move, Outcome, bool) {
	s.nodes = 0
	return s.search(0, b)
}

func (s *Searcher) search(ply int, b *board.Board) (best board.Move, o Outcome, ok bool) {
	best = board.NoMove
	if ply == s.depth {
		return best, Uncertain, false
	}
	for _, m := range b.AliveCells() {
		b.Apply(m)
		s.nodes++
		if b.CheckWinFrom(m) {
			b.Undo(m)
			return m, Win, true
		}
		_, reply, found := s.search(ply+1, b)
		b.Undo(m)

		switch {
		case !found || reply == Uncertain:
			best, o, ok = m, Uncertain, true
		case reply == Lose:
			return m, Win, true
		case reply == Win && !ok:
			best, o, ok = m, Lose, true
		}
	}
	return best, o, ok
}
