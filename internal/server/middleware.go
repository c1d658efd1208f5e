package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type ctxKey int

const (
	ctxKeyGame ctxKey = iota
)

// gameMiddleware resolves {gameID} to a live game and stores it in the
// request context. Unknown IDs get a 404 before any handler runs.
func gameMiddleware(games *Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "gameID")
			if id == "" {
				writeError(w, http.StatusNotFound, "game not found")
				return
			}

			g, ok := games.Get(id)
			if !ok {
				writeError(w, http.StatusNotFound, "game not found")
				return
			}
			g.Touch()

			ctx := context.WithValue(r.Context(), ctxKeyGame, g)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func adminAuthMiddleware(admin *adminAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(adminCookieName)
			if err != nil || cookie.Value == "" {
				writeError(w, http.StatusUnauthorized, "not authenticated")
				return
			}
			if !admin.valid(cookie.Value) {
				writeError(w, http.StatusUnauthorized, "not authenticated")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func liveGame(r *http.Request) *LiveGame {
	return r.Context().Value(ctxKeyGame).(*LiveGame)
}
