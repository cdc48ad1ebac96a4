package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/avelkov/sweeper/internal/handlers"
	"github.com/avelkov/sweeper/internal/mines"
	"github.com/avelkov/sweeper/internal/repository"
)

// persistSession writes the game back onto its session row, stamping the end
// time the first time the round turns terminal.
func (app *application) persistSession(
	ctx context.Context, session *repository.GameSession, game *mines.Game,
) error {
	state, err := game.Bytes()
	if err != nil {
		return fmt.Errorf("unable to serialize game state: %w", err)
	}

	endedAt := &session.EndedAt.Time
	if !session.EndedAt.Valid {
		endedAt = nil
		if game.IsWon() || game.IsLost() {
			now := time.Now().UTC()
			endedAt = &now
			session.EndedAt.Time = now
			session.EndedAt.Valid = true
		}
	}

	err = app.repo.UpdateGameSession(ctx, repository.UpdateGameSessionParams{
		GameSessionID: session.GameSessionID,
		State:         state,
		Won:           game.IsWon(),
		Lost:          game.IsLost(),
		EndedAt:       endedAt,
	})
	if err != nil {
		return fmt.Errorf("unable to update session in db: %w", err)
	}
	return nil
}

func (app *application) saveSession(
	w http.ResponseWriter, r *http.Request,
	session *repository.GameSession, game *mines.Game,
) bool {
	if err := app.persistSession(r.Context(), session, game); err != nil {
		app.internalError(w, "unable to save session", err)
		return false
	}
	return true
}

func (app *application) handleMove(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	move, err := decodeGameMove(query.Get("move"))
	if err != nil {
		app.badRequest(w, err)
		return
	}

	pos, err := decodePosition(query)
	if err != nil {
		app.badRequest(w, err)
		return
	}

	session, game, ok := app.fetchSession(w, r)
	if !ok {
		return
	}

	err = applyGameMove(game, move, mines.Point{X: pos.X, Y: pos.Y})
	var oob *mines.OutOfBoundsError
	if errors.As(err, &oob) {
		app.badRequest(w, err)
		return
	}
	if err != nil {
		app.internalError(w, "unable to apply move", err)
		return
	}

	if !app.saveSession(w, r, session, game) {
		return
	}

	handlers.SendJSONOrLog(w, app.log, newGameSessionDTO(session, game))
}

func (app *application) handleForfeit(w http.ResponseWriter, r *http.Request) {
	session, game, ok := app.fetchSession(w, r)
	if !ok {
		return
	}

	game.Forfeit()

	if !app.saveSession(w, r, session, game) {
		return
	}

	handlers.SendJSONOrLog(w, app.log, newGameSessionDTO(session, game))
}
