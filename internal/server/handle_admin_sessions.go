package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// AdminSessionSummary describes one live game for the operator console.
type AdminSessionSummary struct {
	GameID         string    `json:"gameId"`
	Phase          string    `json:"phase"`
	TeamCount      int       `json:"teamCount"`
	QuestionsAsked int       `json:"questionsAsked"`
	QuestionCount  int       `json:"questionCount"`
	CreatedAt      time.Time `json:"createdAt"`
	LastSeen       time.Time `json:"lastSeen"`
}

func handleAdminListSessions(games *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		live := games.List()

		sessions := make([]AdminSessionSummary, len(live))
		for i, g := range live {
			snap := g.Session.Snapshot()
			sessions[i] = AdminSessionSummary{
				GameID:         g.ID,
				Phase:          string(snap.Phase),
				TeamCount:      len(snap.Teams),
				QuestionsAsked: snap.QuestionsAsked,
				QuestionCount:  snap.QuestionCount,
				CreatedAt:      g.CreatedAt,
				LastSeen:       g.LastSeen(),
			}
		}

		writeJSON(w, http.StatusOK, sessions)
	}
}

// handleAdminEndSession force-removes a live game, for abandoned or
// stuck sessions the host never deleted.
func handleAdminEndSession(games *Registry, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "gameID")
		if !games.Delete(id) {
			writeError(w, http.StatusNotFound, "game not found")
			return
		}

		broker.Publish(id, Event{Type: "game_deleted"})
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}
