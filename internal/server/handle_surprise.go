package server

import (
	"errors"
	"net/http"

	"github.com/spinhub/quizwheel/internal/game"
)

// SurpriseAckResponse is the state after the host confirms the surprise
// display has finished and the turn should advance.
type SurpriseAckResponse struct {
	Description string     `json:"description"`
	Teams       []TeamView `json:"teams"`
	GameEnded   bool       `json:"gameEnded"`
	Result      []TeamView `json:"result,omitempty"`
}

func handleSurpriseAck(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g := liveGame(r)
		if err := hostAuthorized(r, g); err != nil {
			writeError(w, http.StatusUnauthorized, "host token required")
			return
		}

		ack, err := g.Session.AcknowledgeSurprise()
		if errors.Is(err, game.ErrGameEnded) {
			writeError(w, http.StatusConflict, "game has ended")
			return
		}
		if errors.Is(err, game.ErrOutOfPhase) {
			writeError(w, http.StatusConflict, "no surprise awaiting acknowledgement")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		snap := g.Session.Snapshot()
		event := Event{
			Type:           "surprise_done",
			Description:    ack.Description,
			QuestionsAsked: snap.QuestionsAsked,
			Teams:          teamViews(ack.Teams),
		}
		if !ack.GameEnded {
			event.ActiveTeamID = snap.ActiveTeam.ID
		}
		broker.Publish(g.ID, event)

		resp := SurpriseAckResponse{
			Description: ack.Description,
			Teams:       teamViews(ack.Teams),
			GameEnded:   ack.GameEnded,
		}
		if ack.GameEnded {
			resp.Result = teamViews(ack.Result)
			broker.Publish(g.ID, Event{Type: "game_ended", Result: resp.Result})
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
