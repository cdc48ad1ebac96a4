package main

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avelkov/sweeper/internal/mines"
)

func testGame(t *testing.T) *mines.Game {
	t.Helper()
	game, err := mines.NewGame(
		mines.GameParams{Width: 8, Height: 8, MineCount: 10},
		rand.New(rand.NewPCG(1, 2)),
	)
	assert.NoError(t, err)
	return game
}

func TestRunCommand(t *testing.T) {
	game := testGame(t)

	assert.NoError(t, runCommand(game, "g"))
	assert.Equal(t, mines.FirstMove, game.Phase())

	assert.NoError(t, runCommand(game, "r 3 3"))
	assert.Equal(t, mines.InProgress, game.Phase())

	assert.NoError(t, runCommand(game, "f 0 0"))
	tile, err := game.TileAt(mines.Point{X: 0, Y: 0})
	assert.NoError(t, err)
	if !tile.Revealed() {
		assert.True(t, tile.Flagged())
	}

	assert.NoError(t, runCommand(game, "q"))
	assert.True(t, game.IsLost())
}

func TestRunCommandRejectsMalformedInput(t *testing.T) {
	game := testGame(t)

	for _, command := range []string{
		"",
		"z 1 1",
		"r",
		"r 1",
		"r 1 2 3",
		"r one two",
		"g 1 1",
	} {
		assert.Error(t, runCommand(game, command), "command %q", command)
	}
	assert.Equal(t, mines.FirstMove, game.Phase())
}

func TestRunCommandReportsOutOfBounds(t *testing.T) {
	game := testGame(t)

	var oob *mines.OutOfBoundsError
	assert.ErrorAs(t, runCommand(game, "r 100 100"), &oob)
}
