package eval

import (
	"fmt"
	"strings"

	"github.com/domino14/gomoku/board"
)

// Buckets counts line segments by length and by how many of their ends are
// blocked: Buckets[count][bounded]. Fully blocked segments are never counted.
// A segment of length k is seen from each of its k stones, so it adds k to
// its bucket.
type Buckets [board.WinLength + 1][2]int

// A Tally holds the buckets of the player to move and of the opponent.
type Tally struct {
	Mover    Buckets
	Opponent Buckets
}

func (t *Tally) side(s, mover board.Stone) *Buckets {
	if s == mover {
		return &t.Mover
	}
	return &t.Opponent
}

// Count walks every cell and axis of b.
//
// An occupied cell contributes the run through it on each axis. An empty
// cell with stones of one color on both sides of an axis contributes the
// line that filling it would make, weighted by its length, as long as that
// line would be shorter than five.
func Count(b *board.Board) Tally {
	var t Tally
	mover := b.Turn()
	for i := 0; i < board.NumCells; i++ {
		m := board.Cell(i/board.Dim, i%board.Dim)
		own := b.At(m)
		rl := b.RunLengthsFrom(m)
		for d := board.Direction(0); d < board.NumDirections/2; d++ {
			back := d.Opposite()
			if own == board.Empty {
				s := b.At(m.Add(d, 1))
				if s == board.Empty || b.At(m.Add(back, 1)) != s {
					continue
				}
				count := rl[d] + rl[back]
				bounded := 2
				if open(b, m.Add(d, rl[d]+1)) {
					bounded--
				}
				if open(b, m.Add(back, rl[back]+1)) {
					bounded--
				}
				if bounded == 2 || count >= board.WinLength {
					continue
				}
				t.side(s, mover)[count][bounded] += count
				continue
			}

			count := rl[d] + rl[back] - 1
			bounded := 2
			if open(b, m.Add(d, rl[d])) {
				bounded--
			}
			if open(b, m.Add(back, rl[back])) {
				bounded--
			}
			if bounded == 2 || count > board.WinLength {
				continue
			}
			t.side(own, mover)[count][bounded]++
		}
	}
	return t
}

func open(b *board.Board, m board.Move) bool {
	return m.OnBoard() && b.At(m) == board.Empty
}

func (t Tally) String() string {
	var sb strings.Builder
	sb.WriteString("len  mover(open/half)  opponent(open/half)\n")
	for c := 2; c <= board.WinLength; c++ {
		fmt.Fprintf(&sb, "%3d  %6d/%-6d     %6d/%-6d\n", c,
			t.Mover[c][0], t.Mover[c][1], t.Opponent[c][0], t.Opponent[c][1])
	}
	return sb.String()
}

// Pattern is the main evaluator. It looks for decisive patterns in the
// tally first and falls back to a weighted sum of twos and threes.
type Pattern struct{}

func (Pattern) Evaluate(b *board.Board) int {
	return Count(b).Score()
}

// Score applies the decision cascade and the weights to a tally.
func (t Tally) Score() int {
	f, e := t.Mover, t.Opponent

	switch {
	case f[5][0]+f[5][1] != 0:
		return Win
	case e[5][0]+e[5][1] != 0:
		return Loss
	case f[4][0]+f[4][1] != 0:
		return Win
	case e[4][0] != 0:
		return Loss
	case f[3][0] != 0 && e[4][1] == 0:
		return Win
	// Buckets count every stone, so a four adds 4 and a three adds 3.
	case e[4][1]/4 > 0 && e[4][1]/4+e[3][0]/3 > 1:
		return Loss
	case e[3][0]/3 > 1 && f[3][0]+f[3][1] == 0:
		return Loss
	}

	score := 10*f[2][0] + f[2][1] + 300*f[3][0] + 20*f[3][1]
	score -= 5*e[2][0] + e[2][1] + 70*e[4][1] + 70*e[3][0] + 10*e[3][1]
	return score
}
