package mines

// Tile is a single board cell. Tiles live inline in the board grid and are
// only ever mutated through [Game] operations; callers get value copies.
type Tile struct {
	revealed bool
	flagged  bool
	mine     bool
	adjacent int
}

func (t Tile) Revealed() bool {
	return t.revealed
}

// Flagged reports whether a concealed tile carries a flag marker. A revealed
// tile is never flagged.
func (t Tile) Flagged() bool {
	return t.flagged
}

func (t Tile) HasMine() bool {
	return t.mine
}

// AdjacentMines is meaningful on non-mine tiles once the first reveal has
// placed the mines; until then it is zero everywhere. Mine tiles keep zero.
func (t Tile) AdjacentMines() int {
	return t.adjacent
}
