package mines

import "math/rand/v2"

// Phase is the game state machine value. It only ever moves forward:
// FirstMove -> InProgress -> Won or Lost.
type Phase int8

const (
	FirstMove Phase = iota
	InProgress
	Won
	Lost
)

func (p Phase) String() string {
	switch p {
	case FirstMove:
		return "first-move"
	case InProgress:
		return "in-progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "unknown"
}

// Game owns one board and enforces move legality around it. Mines are not
// placed until the first reveal, which guarantees the first click and its
// whole neighborhood come up empty.
//
// A Game is built once per round and replaced wholesale on reset. It is not
// safe for concurrent use.
type Game struct {
	GameParams
	board     *board
	phase     Phase
	minesLeft int // flag-derived estimate, may go negative
	rnd       *rand.Rand
}

func NewGame(params GameParams, r *rand.Rand) (*Game, error) {
	b, err := newBoard(params.Width, params.Height, params.MineCount)
	if err != nil {
		return nil, err
	}
	return &Game{
		GameParams: params,
		board:      b,
		phase:      FirstMove,
		minesLeft:  params.MineCount,
		rnd:        r,
	}, nil
}

// Reveal opens the tile at p. On the first move of a round it first lays out
// the mines around p. Opening a mine ends the round immediately; opening a
// zero-count tile floods its empty region. Revealed and flagged tiles are
// left alone, as is everything once the round is over.
func (g *Game) Reveal(p Point) error {
	if !g.board.inBounds(p) {
		return &OutOfBoundsError{p, g.Width, g.Height}
	}
	if g.phase == Won || g.phase == Lost {
		return nil
	}

	if g.phase == FirstMove {
		g.board.placeMines(p, g.rnd)
		g.board.computeAdjacency()
		g.phase = InProgress
	}

	t := g.board.tile(p)
	if t.revealed || t.flagged {
		return nil
	}

	if t.mine {
		// expose only the tile that detonated
		t.revealed = true
		g.phase = Lost
		return nil
	}

	g.board.revealCascade(p)
	if g.board.concealed == g.MineCount {
		g.phase = Won
	}
	return nil
}

// Flag toggles the flag marker on a concealed tile and moves the mines-left
// estimate with it. Revealed tiles are left alone. Flagging is deliberately
// not gated on the phase: after the round ends it has no gameplay effect.
func (g *Game) Flag(p Point) error {
	if !g.board.inBounds(p) {
		return &OutOfBoundsError{p, g.Width, g.Height}
	}

	t := g.board.tile(p)
	if t.revealed {
		return nil
	}
	if t.flagged {
		t.flagged = false
		g.minesLeft++
	} else {
		t.flagged = true
		g.minesLeft--
	}
	return nil
}

// Chord opens every unflagged neighbor of a revealed numbered tile, provided
// the player has flagged exactly that tile's count of neighbors. A misplaced
// flag makes this detonate the way a direct reveal would.
func (g *Game) Chord(p Point) error {
	if !g.board.inBounds(p) {
		return &OutOfBoundsError{p, g.Width, g.Height}
	}
	if g.phase != InProgress {
		return nil
	}

	t := g.board.tile(p)
	if !t.revealed || t.adjacent == 0 {
		return nil
	}

	flags := 0
	targets := make([]Point, 0, 8)
	for _, off := range adjacentOffsets {
		adj := p.Add(off)
		if !g.board.inBounds(adj) {
			continue
		}
		at := g.board.tile(adj)
		if at.flagged {
			flags++
		} else if !at.revealed {
			targets = append(targets, adj)
		}
	}
	if flags != t.adjacent {
		return nil
	}

	for _, adj := range targets {
		if err := g.Reveal(adj); err != nil {
			return err
		}
		if g.phase != InProgress {
			break
		}
	}
	return nil
}

// Forfeit concedes an unfinished round.
func (g *Game) Forfeit() {
	if g.phase == FirstMove || g.phase == InProgress {
		g.phase = Lost
	}
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) IsWon() bool {
	return g.phase == Won
}

func (g *Game) IsLost() bool {
	return g.phase == Lost
}

// MinesLeft is the display counter: mine count minus flags placed, clamped at
// zero. It is the player's estimate, never cross-checked against real mine
// positions.
func (g *Game) MinesLeft() int {
	if g.minesLeft < 0 {
		return 0
	}
	return g.minesLeft
}

// TileAt returns a copy of the tile at p.
func (g *Game) TileAt(p Point) (Tile, error) {
	if !g.board.inBounds(p) {
		return Tile{}, &OutOfBoundsError{p, g.Width, g.Height}
	}
	return *g.board.tile(p), nil
}

// Tiles returns a row-major snapshot of the grid, length Width*Height. The
// snapshot is a copy; mutating it does not touch the game.
func (g *Game) Tiles() []Tile {
	tiles := make([]Tile, len(g.board.tiles))
	copy(tiles, g.board.tiles)
	return tiles
}
