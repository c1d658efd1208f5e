package server

import (
	"errors"
	"net/http"
	"strings"
)

var errNotHost = errors.New("missing or invalid host token")

// hostAuthorized checks the Bearer token against the game's host token.
// Only the host drives the game; spectators get the read-only endpoints.
func hostAuthorized(r *http.Request, g *LiveGame) error {
	auth := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(auth, "Bearer ")
	if !found || token == "" || token != g.HostToken {
		return errNotHost
	}
	return nil
}
