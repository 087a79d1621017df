// Package eval contains static evaluators for gomoku positions. Scores are
// from the point of view of the player to move.
package eval

import "github.com/domino14/gomoku/board"

const (
	// Win and Loss bracket every score an evaluator or a search can return.
	Win  = 1_000_000
	Loss = -1_000_000
)

// Evaluator scores a position without searching it.
type Evaluator interface {
	Evaluate(b *board.Board) int
}

// ByName returns the evaluator registered under name, or nil.
func ByName(name string) Evaluator {
	switch name {
	case "pattern":
		return Pattern{}
	case "shape":
		return Shape{}
	}
	return nil
}

// Evaluate scores b with the default Pattern evaluator.
func Evaluate(b *board.Board) int {
	return Pattern{}.Evaluate(b)
}
