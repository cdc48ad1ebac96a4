package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/avelkov/sweeper/internal/handlers"
	"github.com/avelkov/sweeper/internal/mines"
	"github.com/avelkov/sweeper/internal/repository"
)

// sessionAccessible is the session privacy rule: a player-owned session takes
// the owner's credentials, anonymous callers included; anonymous sessions stay
// open to anyone holding the id.
func sessionAccessible(owner, requester *int64) bool {
	if owner == nil {
		return true
	}
	return requester != nil && *owner == *requester
}

// fetchSession loads the session in the request path, rejects access to
// someone else's game and decodes the stored engine state. On failure the
// response is already written and ok is false.
func (app *application) fetchSession(
	w http.ResponseWriter, r *http.Request,
) (session *repository.GameSession, game *mines.Game, ok bool) {
	sessionID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		app.notFound(w)
		return nil, nil, false
	}

	session, err = app.repo.FetchGameSession(r.Context(), sessionID)
	if errors.Is(err, pgx.ErrNoRows) {
		app.notFound(w)
		return nil, nil, false
	}
	if err != nil {
		app.internalError(w, "unable to fetch session from db", err)
		return nil, nil, false
	}

	if !sessionAccessible(session.PlayerID, app.playerID(r)) {
		app.unauthorized(w)
		return nil, nil, false
	}

	game, err = mines.DecodeGame(session.State, app.rnd)
	if err != nil {
		app.internalError(w, "db returned invalid game_session.state", err)
		return nil, nil, false
	}

	return session, game, true
}

func (app *application) handleFetchGame(w http.ResponseWriter, r *http.Request) {
	session, game, ok := app.fetchSession(w, r)
	if !ok {
		return
	}
	handlers.SendJSONOrLog(w, app.log, newGameSessionDTO(session, game))
}
