package main

import (
	"math/rand/v2"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/avelkov/sweeper/internal/config"
	"github.com/avelkov/sweeper/internal/handlers"
	"github.com/avelkov/sweeper/internal/middleware"
	"github.com/avelkov/sweeper/internal/repository"
)

type application struct {
	log     *logrus.Logger
	repo    *repository.Queries
	cookies *config.Cookies
	ws      *config.WebSocket
	rnd     *rand.Rand
}

func (app *application) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /game", app.handleNewGame)
	mux.HandleFunc("GET /game/{id}", app.handleFetchGame)
	mux.HandleFunc("POST /game/{id}/move", app.handleMove)
	mux.HandleFunc("POST /game/{id}/forfeit", app.handleForfeit)
	mux.HandleFunc("GET /game/{id}/connect", app.handleConnectWS)
	mux.HandleFunc("GET /highscores", app.handleFetchHighscores)
	mux.HandleFunc("GET /presets", app.handleFetchPresets)

	mux.HandleFunc("POST /register", app.handleRegister)
	mux.HandleFunc("POST /login", app.handleLogin)
	mux.HandleFunc("POST /logout", app.handleLogout)

	return mux
}

func (app *application) playerID(r *http.Request) *int64 {
	claims, ok := middleware.PlayerClaims(r)
	if !ok {
		return nil
	}
	return &claims.PlayerID
}

func (app *application) badRequest(w http.ResponseWriter, err error) {
	w.WriteHeader(http.StatusBadRequest)
	handlers.SendErrorOrLog(w, app.log, err)
}

func (app *application) notFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
}

func (app *application) unauthorized(w http.ResponseWriter) {
	w.WriteHeader(http.StatusUnauthorized)
}

func (app *application) internalError(w http.ResponseWriter, msg string, err error) {
	w.WriteHeader(http.StatusInternalServerError)
	app.log.WithError(err).Error(msg)
}
