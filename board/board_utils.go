package board

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var ErrBadPlaintext = errors.New("malformed plaintext board")

var boardPlaintextRegex = regexp.MustCompile(`\|(.+)\|`)

// ToDisplayText renders the board with column letters across the top and
// row numbers down the side.
func (b *Board) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for i := 0; i < Dim; i++ {
		fmt.Fprintf(&sb, "%c ", 'A'+i)
	}
	sb.WriteString("\n")
	sb.WriteString("   " + strings.Repeat("-", Dim*2) + "\n")
	for i := 0; i < Dim; i++ {
		fmt.Fprintf(&sb, "%2d|", i+1)
		for j := 0; j < Dim; j++ {
			sb.WriteString(b.cells[i*Dim+j].DisplayString())
			if j != Dim-1 {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("   " + strings.Repeat("-", Dim*2) + "\n")
	fmt.Fprintf(&sb, "to move: %s\n", b.turn.DisplayString())
	return "\n" + sb.String()
}

// FromPlaintext builds a board from a diagram such as the one ToDisplayText
// produces. Only the 15 lines of the form `|X . O ...|` are looked at; X is
// First, O is Second and anything else is empty. turn is the player to move.
//
// Stones are placed directly, so the diagram does not need to be reachable
// by alternating play.
func FromPlaintext(text string, turn Stone) (*Board, error) {
	rows := boardPlaintextRegex.FindAllStringSubmatch(text, -1)
	if len(rows) != Dim {
		return nil, fmt.Errorf("%w: found %d rows", ErrBadPlaintext, len(rows))
	}
	b := NewBoard(turn)
	for i := range rows {
		j := -1
		for k, ch := range rows[i][1] {
			if k%2 != 0 {
				continue
			}
			j++
			if j >= Dim {
				return nil, fmt.Errorf("%w: row %d is too long", ErrBadPlaintext, i+1)
			}
			switch ch {
			case 'X', 'x':
				b.set(Cell(i, j), First)
			case 'O', 'o':
				b.set(Cell(i, j), Second)
			}
		}
	}
	return b, nil
}
