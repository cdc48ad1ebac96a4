package middleware

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/avelkov/sweeper/internal/config"
)

type ctxKey int

const ctxPlayerClaims ctxKey = iota

// Auth resolves the JWT cookie pair into player claims on the request
// context. Requests without valid cookies pass through anonymous; handlers
// that care check [PlayerClaims].
func Auth(log *logrus.Logger, cookies *config.Cookies) Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := cookies.ParsePlayerClaims(r)
			if err != nil {
				h.ServeHTTP(w, r)
				return
			}
			log.WithField("username", claims.Username).Debug("authenticated request")
			ctx := context.WithValue(r.Context(), ctxPlayerClaims, claims)
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PlayerClaims extracts the claims Auth stored, if any.
func PlayerClaims(r *http.Request) (*config.PlayerClaims, bool) {
	claims, ok := r.Context().Value(ctxPlayerClaims).(*config.PlayerClaims)
	return claims, ok
}
