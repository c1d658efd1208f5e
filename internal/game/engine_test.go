package game

import (
	"errors"
	"testing"
)

// singleBank returns a bank with one known template so answer indexes are
// predictable.
func singleBank() *QuestionBank {
	return NewBank([]Template{{
		Text:         "Which element has the symbol Au?",
		Options:      []string{"Silver", "Gold", "Aluminium", "Argon"},
		CorrectIndex: 1,
	}})
}

func newTestSession(t *testing.T, cfg Config, rng Rand) *Session {
	t.Helper()
	s, err := NewSession(cfg, singleBank(), rng, nil)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s
}

func TestConfigRejection(t *testing.T) {
	base := allEnabled()
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero teams", func(c *Config) { c.TeamCount = 0 }},
		{"nine teams", func(c *Config) { c.TeamCount = 9 }},
		{"zero questions", func(c *Config) { c.QuestionCount = 0 }},
		{"five options", func(c *Config) { c.OptionCount = 5 }},
		{"bad time mode", func(c *Config) { c.TimeMode = "warp" }},
		{"bad surprise key", func(c *Config) { c.Surprises = map[SurpriseKey]bool{"meteor": true} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			if _, err := NewSession(cfg, nil, nil, nil); err == nil {
				t.Error("expected a config error, got none")
			}
		})
	}
}

func TestSingleQuestionGame(t *testing.T) {
	cfg := allEnabled()
	cfg.QuestionCount = 1
	// Land on the 10-point arc.
	s := newTestSession(t, cfg, &scriptRand{floats: []float64{angleFloat(280)}})

	spin, err := s.Spin()
	if err != nil {
		t.Fatalf("spin: %v", err)
	}
	if spin.Question == nil || spin.Question.Points != 10 {
		t.Fatalf("spin produced %+v, want a 10-point question", spin)
	}

	res, err := s.SubmitAnswer(spin.Question.CorrectIndex, 0)
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if !res.Correct || res.PointsAwarded != 10 {
		t.Errorf("result %+v, want correct with 10 points", res)
	}
	if !res.GameEnded {
		t.Fatal("game should end after the single question")
	}
	if res.Result[0].Score != 10 || res.Result[1].Score != 0 {
		t.Errorf("final scores = %d, %d; want 10, 0", res.Result[0].Score, res.Result[1].Score)
	}
}

func TestDoublePointsConsumedOnce(t *testing.T) {
	cfg := allEnabled()
	cfg.QuestionCount = 6
	cfg.TeamCount = 1
	// Spin 1: surprise arc, draw doublePoints. Spins 2 and 3: 20-point arc.
	rng := &scriptRand{floats: []float64{angleFloat(350), 0, angleFloat(310), angleFloat(310)}}
	s := newTestSession(t, cfg, rng)

	spin, err := s.Spin()
	if err != nil {
		t.Fatalf("spin: %v", err)
	}
	if spin.Surprise == nil || spin.Surprise.Key != SurpriseDoublePoints {
		t.Fatalf("spin produced %+v, want the doublePoints surprise", spin)
	}
	if _, err := s.AcknowledgeSurprise(); err != nil {
		t.Fatalf("ack: %v", err)
	}

	spin, _ = s.Spin()
	res, err := s.SubmitAnswer(spin.Question.CorrectIndex, 0)
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if res.PointsAwarded != 40 {
		t.Errorf("doubled award = %d, want 40", res.PointsAwarded)
	}

	// The flag is consumed: the next correct answer scores normally.
	spin, _ = s.Spin()
	res, _ = s.SubmitAnswer(spin.Question.CorrectIndex, 0)
	if res.PointsAwarded != 20 {
		t.Errorf("award after consumption = %d, want 20", res.PointsAwarded)
	}
}

func TestWrongAnswerScoresNothingAndAdvances(t *testing.T) {
	cfg := allEnabled()
	s := newTestSession(t, cfg, &scriptRand{floats: []float64{angleFloat(140)}})

	spin, _ := s.Spin()
	wrong := (spin.Question.CorrectIndex + 1) % len(spin.Question.Options)
	res, err := s.SubmitAnswer(wrong, 0)
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if res.Correct || res.PointsAwarded != 0 {
		t.Errorf("result %+v, want incorrect with no points", res)
	}

	snap := s.Snapshot()
	if snap.Phase != PhaseWheel {
		t.Errorf("phase = %s, want wheel (turn advanced)", snap.Phase)
	}
	if snap.ActiveTeam.ID != 2 {
		t.Errorf("active team = %d, want 2 (round robin)", snap.ActiveTeam.ID)
	}
	if snap.QuestionsAsked != 1 {
		t.Errorf("questions asked = %d, want 1", snap.QuestionsAsked)
	}
}

func TestTimeoutSentinel(t *testing.T) {
	cfg := allEnabled()
	cfg.TimeMode = TimeFixed
	s := newTestSession(t, cfg, &scriptRand{floats: []float64{angleFloat(280)}})

	s.Spin()
	res, err := s.SubmitAnswer(TimeoutAnswer, 0)
	if err != nil {
		t.Fatalf("timeout submit: %v", err)
	}
	if res.Correct || res.PointsAwarded != 0 {
		t.Errorf("timeout scored: %+v", res)
	}
}

func TestDecreasingModeScalesPoints(t *testing.T) {
	cfg := allEnabled()
	cfg.TimeMode = TimeDecreasing
	cfg.TeamCount = 1
	cfg.QuestionCount = 4

	// All spins land on the 100-point arc.
	s := newTestSession(t, cfg, &scriptRand{floats: []float64{angleFloat(140)}})

	cases := []struct {
		remaining int
		want      int
	}{
		{30, 50},
		{0, 1},   // floor never drops below one point
		{90, 100}, // clamped to the window
	}
	for _, tc := range cases {
		spin, _ := s.Spin()
		res, err := s.SubmitAnswer(spin.Question.CorrectIndex, tc.remaining)
		if err != nil {
			t.Fatalf("answer: %v", err)
		}
		if res.PointsAwarded != tc.want {
			t.Errorf("remaining %d: awarded %d, want %d", tc.remaining, res.PointsAwarded, tc.want)
		}
	}
}

func TestDecreasingModeDoublesAfterScaling(t *testing.T) {
	cfg := allEnabled()
	cfg.TimeMode = TimeDecreasing
	cfg.TeamCount = 1
	cfg.QuestionCount = 4
	rng := &scriptRand{floats: []float64{angleFloat(350), 0, angleFloat(140)}}
	s := newTestSession(t, cfg, rng)

	s.Spin()
	s.AcknowledgeSurprise()

	spin, _ := s.Spin()
	res, _ := s.SubmitAnswer(spin.Question.CorrectIndex, 30)
	if res.PointsAwarded != 100 {
		t.Errorf("awarded %d, want 100 (half of 100, then doubled)", res.PointsAwarded)
	}
}

func TestSurpriseTurnConsumesBudget(t *testing.T) {
	cfg := allEnabled()
	cfg.QuestionCount = 1
	// Surprise arc, draw gold for team 1.
	rng := &scriptRand{floats: []float64{angleFloat(350), 7.0 / 21}}
	s := newTestSession(t, cfg, rng)

	spin, _ := s.Spin()
	if spin.Surprise == nil || spin.Surprise.Key != SurpriseGold {
		t.Fatalf("spin produced %+v, want gold", spin)
	}

	ack, err := s.AcknowledgeSurprise()
	if err != nil {
		t.Fatalf("ack: %v", err)
	}
	if !ack.GameEnded {
		t.Fatal("surprise turn should have consumed the last question slot")
	}
	if ack.Result[0].Score != 100 {
		t.Errorf("winner score = %d, want 100 from gold", ack.Result[0].Score)
	}
}

func TestOutOfPhaseRequestsAreNoops(t *testing.T) {
	cfg := allEnabled()
	s := newTestSession(t, cfg, &scriptRand{floats: []float64{angleFloat(280)}})

	if _, err := s.SubmitAnswer(0, 0); !errors.Is(err, ErrOutOfPhase) {
		t.Errorf("answer in wheel phase: err = %v, want ErrOutOfPhase", err)
	}
	if _, err := s.AcknowledgeSurprise(); !errors.Is(err, ErrOutOfPhase) {
		t.Errorf("ack in wheel phase: err = %v, want ErrOutOfPhase", err)
	}

	spin, _ := s.Spin()
	if _, err := s.Spin(); !errors.Is(err, ErrOutOfPhase) {
		t.Errorf("spin in question phase: err = %v, want ErrOutOfPhase", err)
	}

	// First answer scores; an immediate duplicate is dropped.
	if _, err := s.SubmitAnswer(spin.Question.CorrectIndex, 0); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if _, err := s.SubmitAnswer(spin.Question.CorrectIndex, 0); !errors.Is(err, ErrOutOfPhase) {
		t.Errorf("duplicate answer: err = %v, want ErrOutOfPhase", err)
	}

	team, _ := s.ledger.Team(1)
	if team.Score != 10 {
		t.Errorf("score = %d, want 10 (scored exactly once)", team.Score)
	}
}

func TestTerminalStateIsImmutable(t *testing.T) {
	cfg := allEnabled()
	cfg.QuestionCount = 1
	s := newTestSession(t, cfg, &scriptRand{floats: []float64{angleFloat(280)}})

	spin, _ := s.Spin()
	s.SubmitAnswer(spin.Question.CorrectIndex, 0)

	result, ended := s.Result()
	if !ended {
		t.Fatal("game should have ended")
	}

	if _, err := s.Spin(); !errors.Is(err, ErrGameEnded) {
		t.Errorf("spin after end: err = %v, want ErrGameEnded", err)
	}
	if _, err := s.SubmitAnswer(0, 0); !errors.Is(err, ErrGameEnded) {
		t.Errorf("answer after end: err = %v, want ErrGameEnded", err)
	}
	if _, err := s.AcknowledgeSurprise(); !errors.Is(err, ErrGameEnded) {
		t.Errorf("ack after end: err = %v, want ErrGameEnded", err)
	}

	after, _ := s.Result()
	for i := range result {
		if result[i].Score != after[i].Score {
			t.Errorf("team %d score mutated after game end", i)
		}
	}
}

func TestRoundRobinWrapsAroundRoster(t *testing.T) {
	cfg := allEnabled()
	cfg.TeamCount = 3
	cfg.QuestionCount = 5
	s := newTestSession(t, cfg, &scriptRand{floats: []float64{angleFloat(280)}})

	wantActive := []int{2, 3, 1, 2}
	for _, want := range wantActive {
		spin, err := s.Spin()
		if err != nil {
			t.Fatalf("spin: %v", err)
		}
		if _, err := s.SubmitAnswer(spin.Question.CorrectIndex, 0); err != nil {
			t.Fatalf("answer: %v", err)
		}
		snap := s.Snapshot()
		if snap.ActiveTeam.ID != want {
			t.Fatalf("active team = %d, want %d", snap.ActiveTeam.ID, want)
		}
	}
}
