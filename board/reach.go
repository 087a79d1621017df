package board

// A Reach describes the line of stones an empty cell touches in one
// direction. Front counts the stones starting at the neighbor in that
// direction. Back counts the stones on the opposite side, but only when they
// are the same color as the front run; otherwise it is 0. A run end is
// blocked when the cell just past it is occupied or off the board.
type Reach struct {
	Stone        Stone
	Front        int
	Back         int
	FrontBlocked bool
	BackBlocked  bool
}

// Len is the length of the line that a stone of r.Stone placed at the cell
// would complete.
func (r Reach) Len() int {
	return r.Front + r.Back
}

func (r Reach) Open() bool {
	return !r.FrontBlocked && !r.BackBlocked
}

// Reaches computes the Reach of m in all 8 directions. Directions whose
// neighbor is empty or off the board have a zero Reach. m is expected to be
// empty.
func (b *Board) Reaches(m Move) [NumDirections]Reach {
	var reaches [NumDirections]Reach
	rl := b.RunLengthsFrom(m)
	for d := Direction(0); d < NumDirections; d++ {
		stone := b.At(m.Add(d, 1))
		if stone == Empty {
			continue
		}
		back := d.Opposite()
		r := Reach{Stone: stone, Front: rl[d]}
		if b.At(m.Add(back, 1)) == stone {
			r.Back = rl[back]
		}
		r.FrontBlocked = b.blocked(m.Add(d, r.Front+1))
		r.BackBlocked = b.blocked(m.Add(back, r.Back+1))
		reaches[d] = r
	}
	return reaches
}

func (b *Board) blocked(m Move) bool {
	return !m.OnBoard() || b.cells[m.idx()] != Empty
}
