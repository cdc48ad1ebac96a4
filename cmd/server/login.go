package main

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/avelkov/sweeper/internal/config"
	"github.com/avelkov/sweeper/internal/handlers"
)

func (app *application) handleLogin(w http.ResponseWriter, r *http.Request) {
	username, password, err := credentials(r)
	if err != nil {
		app.badRequest(w, err)
		return
	}

	player, err := app.repo.FetchPlayer(r.Context(), username)
	if errors.Is(err, pgx.ErrNoRows) {
		app.log.WithField("username", username).Debug("username not found")
		app.unauthorized(w)
		return
	}
	if err != nil {
		app.internalError(w, "unable to fetch player from db", err)
		return
	}

	err = bcrypt.CompareHashAndPassword(player.PasswordHash, []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		app.log.WithField("username", username).Debug("wrong password")
		app.unauthorized(w)
		return
	}
	if err != nil {
		app.internalError(w, "bcrypt compare error", err)
		return
	}

	claims := config.NewPlayerClaims(player.PlayerID, player.Username)
	if err := app.cookies.Refresh(w, claims); err != nil {
		app.internalError(w, "unable to set auth cookies", err)
		return
	}

	handlers.SendMessageOrLog(w, app.log, "ok")
}

func (app *application) handleLogout(w http.ResponseWriter, r *http.Request) {
	app.cookies.Clear(w)
	handlers.SendMessageOrLog(w, app.log, "ok")
}
