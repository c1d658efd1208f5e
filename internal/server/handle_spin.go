package server

import (
	"errors"
	"net/http"

	"github.com/spinhub/quizwheel/internal/game"
)

// SpinResponse is the outcome of one wheel spin. For point outcomes the
// question is included; for surprise outcomes the roster changes are
// already applied and reflected in Teams.
type SpinResponse struct {
	Outcome  OutcomeView   `json:"outcome"`
	Question *QuestionView `json:"question,omitempty"`
	Surprise *SurpriseView `json:"surprise,omitempty"`
	Teams    []TeamView    `json:"teams"`
}

func handleSpin(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g := liveGame(r)
		if err := hostAuthorized(r, g); err != nil {
			writeError(w, http.StatusUnauthorized, "host token required")
			return
		}

		res, err := g.Session.Spin()
		if errors.Is(err, game.ErrGameEnded) {
			writeError(w, http.StatusConflict, "game has ended")
			return
		}
		if errors.Is(err, game.ErrOutOfPhase) {
			writeError(w, http.StatusConflict, "not in the wheel phase")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		outcome := outcomeView(res.Outcome)
		event := Event{
			Type:    "spin",
			Outcome: &outcome,
			Teams:   teamViews(res.Teams),
		}
		if res.Surprise != nil {
			event.Description = res.Surprise.Description
		}
		broker.Publish(g.ID, event)

		writeJSON(w, http.StatusOK, SpinResponse{
			Outcome:  outcome,
			Question: questionView(res.Question),
			Surprise: surpriseView(res.Surprise),
			Teams:    teamViews(res.Teams),
		})
	}
}
