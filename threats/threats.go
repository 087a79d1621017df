// Package threats finds forcing tactics: wins in one or two moves, fours
// that must be blocked and fours that can no longer be blocked.
package threats

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/domino14/gomoku/board"
)

// Kind is a tactical situation. Larger kinds take priority.
type Kind uint8

const (
	Boring Kind = 0
	// TwoMoveWin: the mover can make an open four at the cell.
	TwoMoveWin Kind = 2
	// ForcedDefense: the opponent completes five at the cell unless the
	// mover plays there. More than one such cell is a lost position.
	ForcedDefense Kind = 3
	// OneMoveLoss: the opponent has a four with both ends open.
	OneMoveLoss Kind = 4
	// OneMoveWin: the mover completes five at the cell.
	OneMoveWin Kind = 5
)

func (k Kind) String() string {
	switch k {
	case Boring:
		return "Boring"
	case TwoMoveWin:
		return "TwoMoveWin"
	case ForcedDefense:
		return "ForcedDefense"
	case OneMoveLoss:
		return "OneMoveLoss"
	case OneMoveWin:
		return "OneMoveWin"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// State is the result of Classify. Cells is empty for Boring, holds one cell
// for most kinds and every distinct cell found for ForcedDefense.
type State struct {
	Kind  Kind
	Cells []board.Move
}

// Cell returns the first cell of the state, or board.NoMove.
func (s State) Cell() board.Move {
	if len(s.Cells) == 0 {
		return board.NoMove
	}
	return s.Cells[0]
}

func (s State) String() string {
	if len(s.Cells) == 0 {
		return s.Kind.String()
	}
	cells := lo.Map(s.Cells, func(m board.Move, _ int) string { return m.String() })
	return s.Kind.String() + "(" + strings.Join(cells, ",") + ")"
}

// accumulator keeps the highest priority finding seen so far.
type accumulator struct {
	state State
}

func (a *accumulator) add(k Kind, m board.Move) {
	switch {
	case k > a.state.Kind:
		a.state = State{Kind: k, Cells: []board.Move{m}}
	case k == a.state.Kind && k == ForcedDefense:
		if !lo.Contains(a.state.Cells, m) {
			a.state.Cells = append(a.state.Cells, m)
		}
	}
}

// Classify scans the alive cells of b in row-major order, looking along all
// 8 directions from each. A OneMoveWin ends the scan.
//
// A line of five or more wins, so any cell that joins runs adding up to four
// counts as a completing cell.
func Classify(b *board.Board) State {
	var acc accumulator
	mover := b.Turn()
	for _, m := range b.AliveCells() {
		for _, r := range b.Reaches(m) {
			if r.Stone == board.Empty {
				continue
			}
			if r.Stone == mover {
				if r.Len() >= board.WinLength-1 {
					acc.add(OneMoveWin, m)
					return acc.state
				}
				if r.Open() && (r.Front == 3 && r.Back == 0 || r.Front == 2 && r.Back == 1) {
					acc.add(TwoMoveWin, m)
				}
				continue
			}
			if r.Front == 4 && r.Back == 0 && !r.FrontBlocked {
				acc.add(OneMoveLoss, m)
				continue
			}
			if r.Len() >= board.WinLength-1 {
				acc.add(ForcedDefense, m)
			}
		}
	}
	return acc.state
}
