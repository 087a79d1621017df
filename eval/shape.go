package eval

import "github.com/domino14/gomoku/board"

// Shape scores the lines each alive cell could extend. It is cheaper than
// Pattern and has no decisive patterns, so it never returns Win or Loss.
type Shape struct{}

// shapeWeights is indexed by [length-2][half-open], each pair being the
// bonus for the mover and the penalty for the opponent.
var shapeWeights = [2][2][2]int{
	{{30, 20}, {10, 8}},
	{{200, 50}, {30, 20}},
}

func (Shape) Evaluate(b *board.Board) int {
	mover := b.Turn()
	score := 0
	for _, m := range b.AliveCells() {
		for _, r := range b.Reaches(m) {
			if r.Stone == board.Empty || r.FrontBlocked {
				continue
			}
			n := r.Len()
			if n != 2 && n != 3 {
				continue
			}
			half := 0
			if r.BackBlocked {
				half = 1
			}
			w := shapeWeights[n-2][half]
			if r.Stone == mover {
				score += w[0]
			} else {
				score -= w[1]
			}
		}
	}
	return score
}
