package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/avelkov/sweeper/internal/config"
	"github.com/avelkov/sweeper/internal/handlers"
	"github.com/avelkov/sweeper/internal/repository"
)

var (
	ErrBadAuthBody        = fmt.Errorf("username and password are required")
	ErrBadPasswordTooLong = fmt.Errorf("password must be at most 72 bytes long")
	ErrUsernameTaken      = fmt.Errorf("this username is taken")
)

func credentials(r *http.Request) (username, password string, err error) {
	if err := r.ParseForm(); err != nil {
		return "", "", err
	}
	username = r.FormValue("username")
	password = r.FormValue("password")
	if username == "" || password == "" {
		return "", "", ErrBadAuthBody
	}
	return username, password, nil
}

func (app *application) handleRegister(w http.ResponseWriter, r *http.Request) {
	username, password, err := credentials(r)
	if err != nil {
		app.badRequest(w, err)
		return
	}

	if len([]byte(password)) > 72 {
		app.badRequest(w, ErrBadPasswordTooLong)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		app.internalError(w, "unable to hash password", err)
		return
	}

	player, err := app.repo.CreatePlayer(r.Context(), repository.CreatePlayerParams{
		Username:     username,
		PasswordHash: hash,
	})
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) &&
		pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		w.WriteHeader(http.StatusConflict)
		handlers.SendErrorOrLog(w, app.log, ErrUsernameTaken)
		return
	}
	if err != nil {
		app.internalError(w, "unable to insert player", err)
		return
	}

	claims := config.NewPlayerClaims(player.PlayerID, player.Username)
	if err := app.cookies.Refresh(w, claims); err != nil {
		app.internalError(w, "unable to set auth cookies", err)
		return
	}

	handlers.SendMessageOrLog(w, app.log, "ok")
}
