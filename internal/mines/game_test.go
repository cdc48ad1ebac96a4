package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fixedGame builds an in-progress game around a hand-picked mine layout.
func fixedGame(t *testing.T, width, height int, mineAt ...Point) *Game {
	t.Helper()
	return &Game{
		GameParams: GameParams{Width: width, Height: height, MineCount: len(mineAt)},
		board:      fixedBoard(t, width, height, mineAt...),
		phase:      InProgress,
		minesLeft:  len(mineAt),
		rnd:        testRand(),
	}
}

func countTiles(g *Game) (revealed, concealed int) {
	for _, tile := range g.Tiles() {
		if tile.Revealed() {
			revealed++
		} else {
			concealed++
		}
	}
	return
}

func TestNewGameStartsAtFirstMove(t *testing.T) {
	g, err := NewGame(GameParams{Width: 8, Height: 8, MineCount: 10}, testRand())
	assert.NoError(t, err)
	assert.Equal(t, FirstMove, g.Phase())
	assert.False(t, g.IsWon())
	assert.False(t, g.IsLost())
	assert.Equal(t, 10, g.MinesLeft())
	assert.Len(t, g.Tiles(), 64)
}

func TestNewGameRejectsOverstuffedBoard(t *testing.T) {
	_, err := NewGame(GameParams{Width: 3, Height: 3, MineCount: 1}, testRand())
	var ipe *InvalidParamsError
	assert.ErrorAs(t, err, &ipe)
}

func TestFirstRevealIsAlwaysSafe(t *testing.T) {
	for _, first := range []Point{{0, 0}, {7, 0}, {3, 4}, {7, 7}} {
		t.Run(first.String(), func(t *testing.T) {
			g, err := NewGame(GameParams{Width: 8, Height: 8, MineCount: 10}, testRand())
			assert.NoError(t, err)
			assert.NoError(t, g.Reveal(first))
			assert.Equal(t, InProgress, g.Phase())

			mines := 0
			for i, tile := range g.Tiles() {
				if tile.HasMine() {
					mines++
				}
				p := PointFromIndex(i, g.Width)
				if abs(p.X-first.X) <= 1 && abs(p.Y-first.Y) <= 1 {
					assert.False(t, tile.HasMine(), "mine next to first click at %s", p)
				}
			}
			assert.Equal(t, 10, mines)

			opened, err := g.TileAt(first)
			assert.NoError(t, err)
			assert.True(t, opened.Revealed())
		})
	}
}

func TestTileCountInvariant(t *testing.T) {
	g, err := NewGame(GameParams{Width: 16, Height: 16, MineCount: 40}, testRand())
	assert.NoError(t, err)
	assert.NoError(t, g.Reveal(Point{8, 8}))

	revealed, concealed := countTiles(g)
	assert.Equal(t, 16*16, revealed+concealed)
	assert.GreaterOrEqual(t, concealed, g.MineCount)
}

func TestWinOnEmptyBoard(t *testing.T) {
	// zero mines: any first reveal cascades across the whole board
	g, err := NewGame(GameParams{Width: 5, Height: 5, MineCount: 0}, testRand())
	assert.NoError(t, err)
	assert.NoError(t, g.Reveal(Point{3, 1}))

	assert.True(t, g.IsWon())
	revealed, concealed := countTiles(g)
	assert.Equal(t, 25, revealed)
	assert.Equal(t, 0, concealed)
}

func TestWinLeavesExactlyMinesConcealed(t *testing.T) {
	g := fixedGame(t, 3, 3, Point{1, 1})
	assert.NoError(t, g.Reveal(Point{0, 0}))
	// every non-mine tile touches the mine; open them one by one
	for y := range 3 {
		for x := range 3 {
			if (Point{x, y} == Point{1, 1}) {
				continue
			}
			assert.NoError(t, g.Reveal(Point{x, y}))
		}
	}

	assert.True(t, g.IsWon())
	_, concealed := countTiles(g)
	assert.Equal(t, g.MineCount, concealed)

	mine, err := g.TileAt(Point{1, 1})
	assert.NoError(t, err)
	assert.False(t, mine.Revealed())
}

func TestCascadeRevealsWholeSafeRegion(t *testing.T) {
	// 3x3, one mine in the far corner: the opposite corner sits in a
	// zero-count region, so one reveal must flood all 8 safe tiles and win
	// the round
	g := fixedGame(t, 3, 3, Point{2, 2})
	assert.NoError(t, g.Reveal(Point{0, 0}))

	assert.True(t, g.IsWon())
	for i, tile := range g.Tiles() {
		p := PointFromIndex(i, g.Width)
		if (p == Point{2, 2}) {
			assert.False(t, tile.Revealed(), "mine tile must stay concealed")
		} else {
			assert.True(t, tile.Revealed(), "safe tile %s left concealed", p)
		}
	}
}

func TestRevealMineLosesImmediately(t *testing.T) {
	g := fixedGame(t, 4, 4, Point{1, 1})
	assert.NoError(t, g.Reveal(Point{1, 1}))

	assert.True(t, g.IsLost())
	revealed, _ := countTiles(g)
	assert.Equal(t, 1, revealed, "loss must not cascade")

	blown, err := g.TileAt(Point{1, 1})
	assert.NoError(t, err)
	assert.True(t, blown.Revealed())
}

func TestRevealIsNoOpAfterGameEnds(t *testing.T) {
	g := fixedGame(t, 4, 4, Point{1, 1})
	assert.NoError(t, g.Reveal(Point{1, 1}))
	assert.True(t, g.IsLost())

	before := g.Tiles()
	assert.NoError(t, g.Reveal(Point{3, 3}))
	assert.Equal(t, before, g.Tiles())
	assert.True(t, g.IsLost())
}

func TestRevealSkipsFlaggedTile(t *testing.T) {
	g := fixedGame(t, 4, 4, Point{1, 1})
	assert.NoError(t, g.Flag(Point{1, 1}))
	assert.NoError(t, g.Reveal(Point{1, 1}))

	assert.Equal(t, InProgress, g.Phase())
	tile, err := g.TileAt(Point{1, 1})
	assert.NoError(t, err)
	assert.False(t, tile.Revealed())
}

func TestFlagToggleIsIdempotent(t *testing.T) {
	g := fixedGame(t, 4, 4, Point{1, 1})
	p := Point{2, 3}

	assert.NoError(t, g.Flag(p))
	tile, _ := g.TileAt(p)
	assert.True(t, tile.Flagged())
	assert.Equal(t, 0, g.MinesLeft())

	assert.NoError(t, g.Flag(p))
	tile, _ = g.TileAt(p)
	assert.False(t, tile.Flagged())
	assert.Equal(t, 1, g.MinesLeft())
}

func TestFlagIgnoresRevealedTile(t *testing.T) {
	g := fixedGame(t, 4, 4, Point{1, 1})
	assert.NoError(t, g.Reveal(Point{3, 3}))
	assert.NoError(t, g.Flag(Point{3, 3}))

	tile, _ := g.TileAt(Point{3, 3})
	assert.False(t, tile.Flagged())
	assert.Equal(t, 1, g.MinesLeft())
}

func TestMinesLeftClampsAtZeroWhenOverFlagged(t *testing.T) {
	g := fixedGame(t, 4, 4, Point{1, 1})
	assert.NoError(t, g.Flag(Point{0, 0}))
	assert.NoError(t, g.Flag(Point{0, 1}))
	assert.NoError(t, g.Flag(Point{0, 2}))

	assert.Equal(t, 0, g.MinesLeft())

	// unflagging walks the estimate back up
	assert.NoError(t, g.Flag(Point{0, 0}))
	assert.NoError(t, g.Flag(Point{0, 1}))
	assert.NoError(t, g.Flag(Point{0, 2}))
	assert.Equal(t, 1, g.MinesLeft())
}

func TestFlagStaysPermittedAfterGameEnds(t *testing.T) {
	g := fixedGame(t, 4, 4, Point{1, 1})
	assert.NoError(t, g.Reveal(Point{1, 1}))
	assert.True(t, g.IsLost())

	assert.NoError(t, g.Flag(Point{3, 3}))
	tile, _ := g.TileAt(Point{3, 3})
	assert.True(t, tile.Flagged())
}

func TestOutOfBoundsMovesAreRejected(t *testing.T) {
	g := fixedGame(t, 4, 4, Point{1, 1})
	var oob *OutOfBoundsError
	for _, p := range []Point{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100}} {
		assert.ErrorAs(t, g.Reveal(p), &oob, "reveal %s", p)
		assert.ErrorAs(t, g.Flag(p), &oob, "flag %s", p)
		assert.ErrorAs(t, g.Chord(p), &oob, "chord %s", p)
		_, err := g.TileAt(p)
		assert.ErrorAs(t, err, &oob, "tile at %s", p)
	}
	assert.Equal(t, InProgress, g.Phase())
}

func TestChordOpensNeighborsWhenFlagsMatch(t *testing.T) {
	// mine at (0,0); (1,1) shows 1
	g := fixedGame(t, 4, 4, Point{0, 0})
	assert.NoError(t, g.Reveal(Point{1, 1}))
	assert.NoError(t, g.Flag(Point{0, 0}))

	assert.NoError(t, g.Chord(Point{1, 1}))

	for _, p := range []Point{{1, 0}, {2, 0}, {0, 1}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
		tile, err := g.TileAt(p)
		assert.NoError(t, err)
		assert.True(t, tile.Revealed(), "chord left %s concealed", p)
	}
	assert.True(t, g.IsWon())
}

func TestChordDetonatesOnWrongFlag(t *testing.T) {
	g := fixedGame(t, 4, 4, Point{0, 0})
	assert.NoError(t, g.Reveal(Point{1, 1}))
	assert.NoError(t, g.Flag(Point{0, 1})) // wrong guess

	assert.NoError(t, g.Chord(Point{1, 1}))
	assert.True(t, g.IsLost())
}

func TestChordRequiresMatchingFlagCount(t *testing.T) {
	g := fixedGame(t, 4, 4, Point{0, 0})
	assert.NoError(t, g.Reveal(Point{1, 1}))

	before := g.Tiles()
	assert.NoError(t, g.Chord(Point{1, 1})) // no flags placed yet
	assert.Equal(t, before, g.Tiles())
}

func TestForfeitLosesUnfinishedRound(t *testing.T) {
	g := fixedGame(t, 4, 4, Point{1, 1})
	g.Forfeit()
	assert.True(t, g.IsLost())

	// forfeiting a won round must not revoke the win; corner mine so the
	// opening reveal floods the whole safe region
	won := fixedGame(t, 3, 3, Point{2, 2})
	assert.NoError(t, won.Reveal(Point{0, 0}))
	assert.True(t, won.IsWon())
	won.Forfeit()
	assert.True(t, won.IsWon())
}

func TestTilesReturnsASnapshot(t *testing.T) {
	g := fixedGame(t, 4, 4, Point{1, 1})
	tiles := g.Tiles()
	tiles[0] = Tile{revealed: true}

	fresh, err := g.TileAt(Point{0, 0})
	assert.NoError(t, err)
	assert.False(t, fresh.Revealed())
}
