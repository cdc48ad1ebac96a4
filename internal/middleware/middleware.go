package middleware

import "net/http"

type Middleware func(http.Handler) http.Handler

// Wrap applies mws to h innermost-first, so the first middleware listed sees
// the request last.
func Wrap(h http.Handler, mws ...Middleware) http.Handler {
	for _, mw := range mws {
		h = mw(h)
	}
	return h
}
