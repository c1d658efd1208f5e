package server

import (
	"log/slog"
	"net/http"

	"github.com/spinhub/quizwheel/internal/game"
)

// TeamView is the wire form of one team on the scoreboard.
type TeamView struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Logo  string `json:"logo"`
	Score int    `json:"score"`
}

func teamViews(teams []game.Team) []TeamView {
	views := make([]TeamView, len(teams))
	for i, t := range teams {
		views[i] = TeamView{ID: t.ID, Name: t.Name, Color: t.Color, Logo: t.Logo, Score: t.Score}
	}
	return views
}

// QuestionView is the wire form of the current question. The correct
// index is withheld until the answer is scored.
type QuestionView struct {
	ID      int      `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
	Points  int      `json:"points"`
}

func questionView(q *game.Question) *QuestionView {
	if q == nil {
		return nil
	}
	return &QuestionView{ID: q.ID, Text: q.Text, Options: q.Options, Points: q.Points}
}

// SurpriseView is the wire form of an applied surprise.
type SurpriseView struct {
	Key         string `json:"key"`
	Description string `json:"description"`
	Applied     bool   `json:"applied"`
}

func surpriseView(s *game.SurpriseResult) *SurpriseView {
	if s == nil {
		return nil
	}
	return &SurpriseView{Key: string(s.Key), Description: s.Description, Applied: s.Applied}
}

// OutcomeView is the wire form of one wheel outcome.
type OutcomeView struct {
	Kind     string `json:"kind"`
	Points   int    `json:"points,omitempty"`
	Surprise string `json:"surprise,omitempty"`
}

func outcomeView(o game.Outcome) OutcomeView {
	return OutcomeView{Kind: string(o.Kind), Points: o.Points, Surprise: string(o.Surprise)}
}

// CreateGameRequest is the request body for POST /api/games.
type CreateGameRequest struct {
	TeamCount     int             `json:"teamCount"`
	TeamNames     []string        `json:"teamNames,omitempty"`
	QuestionCount int             `json:"questionCount"`
	OptionCount   int             `json:"optionCount"`
	TimeMode      string          `json:"timeMode,omitempty"`
	Surprises     *bool           `json:"surprises,omitempty"`
	SurpriseKeys  map[string]bool `json:"surpriseKeys,omitempty"`
}

// CreateGameResponse returns the new game's ID, the host token that
// authorizes play, and the opening state.
type CreateGameResponse struct {
	GameID    string        `json:"gameId"`
	HostToken string        `json:"hostToken"`
	State     StateResponse `json:"state"`
}

// StateResponse is the full game state between events.
type StateResponse struct {
	GameID         string        `json:"gameId"`
	Phase          string        `json:"phase"`
	Teams          []TeamView    `json:"teams"`
	ActiveTeamID   int           `json:"activeTeamId,omitempty"`
	QuestionsAsked int           `json:"questionsAsked"`
	QuestionCount  int           `json:"questionCount"`
	Question       *QuestionView `json:"question,omitempty"`
	Surprise       *SurpriseView `json:"surprise,omitempty"`
	DoubleArmed    bool          `json:"doubleArmed,omitempty"`
	Result         []TeamView    `json:"result,omitempty"`
}

func stateResponse(gameID string, snap game.Snapshot) StateResponse {
	resp := StateResponse{
		GameID:         gameID,
		Phase:          string(snap.Phase),
		Teams:          teamViews(snap.Teams),
		QuestionsAsked: snap.QuestionsAsked,
		QuestionCount:  snap.QuestionCount,
		Question:       questionView(snap.Current),
		Surprise:       surpriseView(snap.Surprise),
		DoubleArmed:    snap.DoubleArmed,
	}
	if snap.Phase != game.PhaseEnded {
		resp.ActiveTeamID = snap.ActiveTeam.ID
	}
	if snap.Result != nil {
		resp.Result = teamViews(snap.Result)
	}
	return resp
}

func gameConfig(req CreateGameRequest) game.Config {
	cfg := game.Config{
		TeamCount:        req.TeamCount,
		QuestionCount:    req.QuestionCount,
		OptionCount:      req.OptionCount,
		TimeMode:         game.TimeMode(req.TimeMode),
		SurprisesEnabled: true,
	}
	if req.TimeMode == "" {
		cfg.TimeMode = game.TimeUnlimited
	}
	if req.Surprises != nil {
		cfg.SurprisesEnabled = *req.Surprises
	}
	if req.SurpriseKeys != nil {
		cfg.Surprises = make(map[game.SurpriseKey]bool, len(req.SurpriseKeys))
		for key, enabled := range req.SurpriseKeys {
			cfg.Surprises[game.SurpriseKey(key)] = enabled
		}
	}
	return cfg
}

func handleCreateGame(games *Registry, templates *TemplateStore, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateGameRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		// Each game snapshots the pool at creation; an empty or missing
		// pool falls back to the built-in questions.
		bank := game.NewBank(nil)
		if templates != nil {
			pool, err := templates.Templates(r.Context())
			if err != nil {
				logger.Error("loading question templates", "error", err)
			} else if len(pool) > 0 {
				bank = game.NewBank(pool)
			}
		}

		g, err := games.Create(gameConfig(req), bank, req.TeamNames)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		writeJSON(w, http.StatusCreated, CreateGameResponse{
			GameID:    g.ID,
			HostToken: g.HostToken,
			State:     stateResponse(g.ID, g.Session.Snapshot()),
		})
	}
}

func handleGameState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g := liveGame(r)
		writeJSON(w, http.StatusOK, stateResponse(g.ID, g.Session.Snapshot()))
	}
}

func handleDeleteGame(games *Registry, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g := liveGame(r)
		if err := hostAuthorized(r, g); err != nil {
			writeError(w, http.StatusUnauthorized, "host token required")
			return
		}

		games.Delete(g.ID)
		broker.Publish(g.ID, Event{Type: "game_deleted"})

		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}
