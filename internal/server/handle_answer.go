package server

import (
	"errors"
	"net/http"

	"github.com/spinhub/quizwheel/internal/game"
)

// AnswerRequest is the request body for POST /api/games/{gameID}/answer.
// SelectedIndex is the chosen option, or -1 when the answer window
// expired without a selection. RemainingSec is the unspent part of the
// window and only affects scoring in the decreasing time mode.
type AnswerRequest struct {
	SelectedIndex *int `json:"selectedIndex"`
	RemainingSec  int  `json:"remainingSec"`
}

type AnswerResponse struct {
	Correct       bool       `json:"correct"`
	CorrectIndex  int        `json:"correctIndex"`
	PointsAwarded int        `json:"pointsAwarded"`
	Teams         []TeamView `json:"teams"`
	GameEnded     bool       `json:"gameEnded"`
	Result        []TeamView `json:"result,omitempty"`
}

func handleAnswer(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g := liveGame(r)
		if err := hostAuthorized(r, g); err != nil {
			writeError(w, http.StatusUnauthorized, "host token required")
			return
		}

		var req AnswerRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.SelectedIndex == nil {
			writeError(w, http.StatusBadRequest, "selectedIndex is required")
			return
		}

		res, err := g.Session.SubmitAnswer(*req.SelectedIndex, req.RemainingSec)
		if errors.Is(err, game.ErrGameEnded) {
			writeError(w, http.StatusConflict, "game has ended")
			return
		}
		if errors.Is(err, game.ErrOutOfPhase) {
			writeError(w, http.StatusConflict, "no question awaiting an answer")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		snap := g.Session.Snapshot()
		event := Event{
			Type:           "answer",
			Correct:        res.Correct,
			PointsAwarded:  res.PointsAwarded,
			QuestionsAsked: snap.QuestionsAsked,
			Teams:          teamViews(res.Teams),
		}
		if !res.GameEnded {
			event.ActiveTeamID = snap.ActiveTeam.ID
		}
		broker.Publish(g.ID, event)

		resp := AnswerResponse{
			Correct:       res.Correct,
			CorrectIndex:  res.CorrectIndex,
			PointsAwarded: res.PointsAwarded,
			Teams:         teamViews(res.Teams),
			GameEnded:     res.GameEnded,
		}
		if res.GameEnded {
			resp.Result = teamViews(res.Result)
			broker.Publish(g.ID, Event{Type: "game_ended", Result: resp.Result})
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
