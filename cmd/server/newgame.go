package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/avelkov/sweeper/internal/handlers"
	"github.com/avelkov/sweeper/internal/mines"
)

func (app *application) handleNewGame(w http.ResponseWriter, r *http.Request) {
	dto, err := decodeNewGame(r.URL.Query())
	if err != nil {
		app.badRequest(w, err)
		return
	}

	params, ok := dto.gameParams()
	if !ok {
		app.badRequest(w, fmt.Errorf("either a preset name or board dimensions are required"))
		return
	}

	game, err := mines.NewGame(params, app.rnd)
	var ipe *mines.InvalidParamsError
	if errors.As(err, &ipe) {
		app.badRequest(w, err)
		return
	}
	if err != nil {
		app.internalError(w, "unable to create a game", err)
		return
	}

	session, err := app.repo.CreateGameSession(r.Context(), game, app.playerID(r))
	if err != nil {
		app.internalError(w, "unable to create game session", err)
		return
	}

	handlers.SendJSONOrLog(w, app.log, newGameSessionDTO(session, game))
}

func (app *application) handleFetchPresets(w http.ResponseWriter, r *http.Request) {
	type presetDTO struct {
		Name          string `json:"name"`
		Width         int    `json:"width"`
		Height        int    `json:"height"`
		MineCount     int    `json:"mine_count"`
		DisplayWidth  int    `json:"display_width"`
		DisplayHeight int    `json:"display_height"`
	}
	presets := make([]presetDTO, 0, 3)
	for _, p := range []mines.Preset{mines.Beginner, mines.Intermediate, mines.Expert} {
		presets = append(presets, presetDTO{
			Name:          p.Name,
			Width:         p.Width,
			Height:        p.Height,
			MineCount:     p.MineCount,
			DisplayWidth:  p.DisplayWidth,
			DisplayHeight: p.DisplayHeight,
		})
	}
	handlers.SendJSONOrLog(w, app.log, presets)
}
