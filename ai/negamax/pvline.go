package negamax

import (
	"fmt"
	"strings"

	"github.com/domino14/gomoku/board"
)

// Credit: MIT-licensed https://github.com/algerbrex/blunder/blob/main/engine/search.go
type PVLine struct {
	Moves []board.Move
	Score int
}

// Clear the principal variation line.
func (pvLine *PVLine) Clear() {
	pvLine.Moves = pvLine.Moves[:0]
}

// Update the principal variation line with a new best move,
// and a new line of best play after the best move.
func (pvLine *PVLine) Update(m board.Move, newPVLine PVLine, score int) {
	pvLine.Clear()
	pvLine.Moves = append(pvLine.Moves, m)
	pvLine.Moves = append(pvLine.Moves, newPVLine.Moves...)
	pvLine.Score = score
}

// PVMove is the first move of the line, or board.NoMove.
func (pvLine PVLine) PVMove() board.Move {
	if len(pvLine.Moves) == 0 {
		return board.NoMove
	}
	return pvLine.Moves[0]
}

func (pvLine PVLine) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "PV; val %d;", pvLine.Score)
	for i, m := range pvLine.Moves {
		fmt.Fprintf(&sb, " %d: %v", i+1, m)
	}
	return sb.String()
}
