package mines

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"math/rand/v2"
)

// gameState is the gob image of a Game. Kept separate so the playable types
// stay sealed while sessions can still round-trip through storage.
type gameState struct {
	Params    GameParams
	Phase     Phase
	MinesLeft int
	Concealed int
	Tiles     []tileState
}

type tileState struct {
	Revealed, Flagged, Mine bool
	Adjacent                int
}

// Bytes serializes the full game state for persistence.
func (g *Game) Bytes() ([]byte, error) {
	state := gameState{
		Params:    g.GameParams,
		Phase:     g.phase,
		MinesLeft: g.minesLeft,
		Concealed: g.board.concealed,
		Tiles:     make([]tileState, len(g.board.tiles)),
	}
	for i, t := range g.board.tiles {
		state.Tiles[i] = tileState{t.revealed, t.flagged, t.mine, t.adjacent}
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(state); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeGame is the inverse of [Game.Bytes]. The rand source is only used if
// the restored game is still waiting on its first move.
func DecodeGame(buf []byte, r *rand.Rand) (*Game, error) {
	var state gameState
	if err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&state); err != nil {
		return nil, err
	}
	game, err := NewGame(state.Params, r)
	if err != nil {
		return nil, err
	}
	if len(state.Tiles) != state.Params.Width*state.Params.Height {
		return nil, fmt.Errorf(
			"game state holds %d tiles, params demand %d",
			len(state.Tiles), state.Params.Width*state.Params.Height,
		)
	}
	if state.Concealed < 0 || state.Concealed > len(state.Tiles) {
		return nil, fmt.Errorf("game state concealed count %d out of range", state.Concealed)
	}
	game.phase = state.Phase
	game.minesLeft = state.MinesLeft
	game.board.concealed = state.Concealed
	for i, t := range state.Tiles {
		game.board.tiles[i] = Tile{t.Revealed, t.Flagged, t.Mine, t.Adjacent}
	}
	return game, nil
}
