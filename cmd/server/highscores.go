package main

import (
	"net/http"

	"github.com/avelkov/sweeper/internal/handlers"
	"github.com/avelkov/sweeper/internal/mines"
	"github.com/avelkov/sweeper/internal/repository"
)

func (app *application) handleFetchHighscores(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repository.HighscoreFilter{}

	if query.Has("seed") {
		params, err := mines.ParseSeed(query.Get("seed"))
		if err != nil {
			app.badRequest(w, err)
			return
		}
		filter.GameParams = params
	}

	if query.Has("username") {
		username := query.Get("username")
		filter.Username = &username
	}

	highscores, err := app.repo.FetchHighscores(r.Context(), filter)
	if err != nil {
		app.internalError(w, "unable to fetch highscores", err)
		return
	}

	handlers.SendJSONOrLog(w, app.log, highscores)
}
