package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidCoordinate = errors.New("invalid coordinate")

// A Move is a cell position on the board. Rows are displayed as numbers
// starting at 1 and columns as letters starting at A, so the center cell
// (7, 7) reads as H8.
type Move struct {
	Row int
	Col int
}

var (
	// NoMove marks the absence of a move.
	NoMove = Move{-1, -1}
	// Center is where the first stone of every game goes.
	Center = Move{Dim / 2, Dim / 2}
)

// Cell is a shorthand constructor.
func Cell(row, col int) Move {
	return Move{Row: row, Col: col}
}

func (m Move) OnBoard() bool {
	return m.Row >= 0 && m.Row < Dim && m.Col >= 0 && m.Col < Dim
}

// Add walks n steps from m in direction d. The result may be off the board.
func (m Move) Add(d Direction, n int) Move {
	step := directions[d&7]
	return Move{Row: m.Row + step[0]*n, Col: m.Col + step[1]*n}
}

func (m Move) idx() int {
	return m.Row*Dim + m.Col
}

func (m Move) String() string {
	if !m.OnBoard() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'A'+m.Col, m.Row+1)
}

// ParseMove parses a coordinate such as "H8" or "h8".
func ParseMove(s string) (Move, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return NoMove, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	col := int(s[0]) - 'A'
	row, err := strconv.Atoi(s[1:])
	if err != nil {
		return NoMove, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	m := Move{Row: row - 1, Col: col}
	if !m.OnBoard() {
		return NoMove, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	return m, nil
}

// A Direction is one of the 8 unit steps on the grid. Directions d and d+4
// are opposite; together they make up one of the four axes.
type Direction uint8

const NumDirections = 8

var directions = [NumDirections][2]int{
	{0, 1}, {1, 0}, {1, 1}, {1, -1}, {0, -1}, {-1, 0}, {-1, -1}, {-1, 1},
}

func (d Direction) Opposite() Direction {
	return (d + 4) % NumDirections
}

func (d Direction) String() string {
	return [NumDirections]string{"E", "S", "SE", "SW", "W", "N", "NW", "NE"}[d&7]
}
