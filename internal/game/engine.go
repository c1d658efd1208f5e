package game

import (
	"errors"
	"sync"
)

// Phase is the engine's position in one turn.
type Phase string

const (
	// PhaseWheel awaits a spin.
	PhaseWheel Phase = "wheel"
	// PhaseQuestion awaits an answer to the current question.
	PhaseQuestion Phase = "question"
	// PhaseSurprise awaits acknowledgement of an applied surprise.
	PhaseSurprise Phase = "surprise"
	// PhaseEnded is terminal; the roster is frozen.
	PhaseEnded Phase = "ended"
)

// TimeoutAnswer is the sentinel choice submitted when the answer window
// expires without a selection.
const TimeoutAnswer = -1

var (
	// ErrOutOfPhase marks a request that does not match the current
	// phase: a duplicate answer, an acknowledgement with no surprise
	// pending, a spin mid-question. The engine ignores the request
	// without mutating anything; callers may surface or swallow it.
	ErrOutOfPhase = errors.New("request does not match current phase")
	// ErrGameEnded marks any mutation attempted after the terminal state.
	ErrGameEnded = errors.New("game has ended")
)

// Session runs one game's turn state machine: spin, resolve the outcome
// into a question or a surprise, score or apply, advance round-robin, end
// at the question budget. All methods are synchronous and every score
// mutation for a turn completes before the method returns, so callers
// never observe a between-turns partial state. External timing (answer
// windows, display durations) belongs to the caller, which reports it as
// explicit inputs.
type Session struct {
	mu sync.Mutex

	cfg    Config
	wheel  *Wheel
	bank   *QuestionBank
	ledger *Ledger
	rng    Rand

	phase          Phase
	activeIdx      int
	questionsAsked int
	questionSeq    int

	current         *Question
	answered        bool
	pendingSurprise *SurpriseResult
	doublePoints    map[int]bool

	result []Team
}

// Snapshot is a read-only view of the session between events.
type Snapshot struct {
	Phase          Phase
	ActiveTeam     Team
	QuestionsAsked int
	QuestionCount  int
	Teams          []Team
	// Current is set during the question phase.
	Current *Question
	// Surprise is set during the surprise phase.
	Surprise *SurpriseResult
	// Result is the final standings once the game has ended.
	Result []Team
	// DoubleArmed reports whether the active team answers for double.
	DoubleArmed bool
}

// SpinResult is the outcome of one spin together with what it produced.
type SpinResult struct {
	Outcome Outcome
	// Question is set for point outcomes.
	Question *Question
	// Surprise is set for surprise outcomes; its roster changes are
	// already applied when Spin returns.
	Surprise *SurpriseResult
	Teams    []Team
}

// AnswerResult reports scoring for one submitted answer.
type AnswerResult struct {
	Correct       bool
	CorrectIndex  int
	PointsAwarded int
	Teams         []Team
	GameEnded     bool
	// Result is the final standings when GameEnded is true.
	Result []Team
}

// SurpriseAck reports the state after a surprise is acknowledged.
type SurpriseAck struct {
	Description string
	Teams       []Team
	GameEnded   bool
	Result      []Team
}

// NewSession validates the config and creates a game in the wheel phase
// with a fresh roster. teamNames entries override the generated defaults.
func NewSession(cfg Config, bank *QuestionBank, rng Rand, teamNames []string) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if bank == nil {
		bank = NewBank(nil)
	}
	if rng == nil {
		rng = NewRand()
	}
	return &Session{
		cfg:          cfg,
		wheel:        NewWheel(cfg, rng),
		bank:         bank,
		ledger:       NewLedger(cfg.TeamCount, teamNames),
		rng:          rng,
		phase:        PhaseWheel,
		doublePoints: make(map[int]bool),
	}, nil
}

// Config returns the game's immutable configuration.
func (s *Session) Config() Config { return s.cfg }

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		Phase:          s.phase,
		QuestionsAsked: s.questionsAsked,
		QuestionCount:  s.cfg.QuestionCount,
		Teams:          s.ledger.Teams(),
	}
	if s.phase != PhaseEnded {
		snap.ActiveTeam = s.ledger.Teams()[s.activeIdx]
		snap.DoubleArmed = s.doublePoints[snap.ActiveTeam.ID]
	}
	if s.current != nil {
		q := *s.current
		snap.Current = &q
	}
	if s.pendingSurprise != nil {
		r := *s.pendingSurprise
		snap.Surprise = &r
	}
	if s.result != nil {
		snap.Result = append([]Team(nil), s.result...)
	}
	return snap
}

// Spin resolves one wheel outcome. A point outcome generates the turn's
// question; a surprise outcome applies its effect to the roster
// immediately, before any further input, and waits for acknowledgement.
func (s *Session) Spin() (SpinResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhaseEnded {
		return SpinResult{}, ErrGameEnded
	}
	if s.phase != PhaseWheel {
		return SpinResult{}, ErrOutOfPhase
	}

	outcome := s.wheel.Spin()
	res := SpinResult{Outcome: outcome}

	if outcome.Kind == OutcomePoints {
		s.questionSeq++
		q := s.bank.Next(s.rng, outcome.Points, s.cfg.OptionCount)
		q.ID = s.questionSeq
		s.current = &q
		s.answered = false
		s.phase = PhaseQuestion
		qc := q
		res.Question = &qc
	} else {
		activeID := s.ledger.Teams()[s.activeIdx].ID
		applied := applySurprise(outcome.Surprise, s.ledger, activeID, s.rng)
		if applied.DoublePointsFor != 0 {
			s.doublePoints[applied.DoublePointsFor] = true
		}
		s.pendingSurprise = &applied
		s.phase = PhaseSurprise
		ac := applied
		res.Surprise = &ac
	}

	res.Teams = s.ledger.Teams()
	return res, nil
}

// SubmitAnswer scores the active team's answer and advances the turn.
// selected is the chosen option index, or TimeoutAnswer when the window
// expired. remainingSec is the unspent part of the answer window and only
// affects scoring in the decreasing time mode. Duplicate or out-of-phase
// submissions change nothing.
func (s *Session) SubmitAnswer(selected, remainingSec int) (AnswerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhaseEnded {
		return AnswerResult{}, ErrGameEnded
	}
	if s.phase != PhaseQuestion || s.current == nil || s.answered {
		return AnswerResult{}, ErrOutOfPhase
	}

	q := s.current
	s.answered = true

	res := AnswerResult{CorrectIndex: q.CorrectIndex}
	if selected == q.CorrectIndex {
		res.Correct = true

		base := q.Points
		if s.cfg.TimeMode == TimeDecreasing {
			base = scaleForTime(q.Points, remainingSec)
		}

		activeID := s.ledger.Teams()[s.activeIdx].ID
		final := base
		if s.doublePoints[activeID] {
			final = base * 2
			delete(s.doublePoints, activeID)
		}
		s.ledger.Award(activeID, final)
		res.PointsAwarded = final
	}

	s.advanceTurnLocked()
	res.Teams = s.ledger.Teams()
	if s.phase == PhaseEnded {
		res.GameEnded = true
		res.Result = append([]Team(nil), s.result...)
	}
	return res, nil
}

// AcknowledgeSurprise consumes the pending surprise and advances the
// turn. The roster was already updated when the wheel resolved; this is
// the explicit "display finished" event from the collaborator.
func (s *Session) AcknowledgeSurprise() (SurpriseAck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhaseEnded {
		return SurpriseAck{}, ErrGameEnded
	}
	if s.phase != PhaseSurprise || s.pendingSurprise == nil {
		return SurpriseAck{}, ErrOutOfPhase
	}

	ack := SurpriseAck{Description: s.pendingSurprise.Description}
	s.pendingSurprise = nil
	s.advanceTurnLocked()

	ack.Teams = s.ledger.Teams()
	if s.phase == PhaseEnded {
		ack.GameEnded = true
		ack.Result = append([]Team(nil), s.result...)
	}
	return ack, nil
}

// Result returns the final standings and whether the game has ended.
func (s *Session) Result() ([]Team, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return nil, false
	}
	return append([]Team(nil), s.result...), true
}

// advanceTurnLocked consumes one turn from the budget. Every turn counts,
// surprises included, and the game ends exactly when the budget is spent,
// regardless of whether the last answer was correct.
func (s *Session) advanceTurnLocked() {
	s.questionsAsked++
	s.current = nil
	s.answered = false

	if s.questionsAsked >= s.cfg.QuestionCount {
		s.phase = PhaseEnded
		s.result = s.ledger.Standings()
		return
	}
	s.activeIdx = (s.activeIdx + 1) % s.cfg.TeamCount
	s.phase = PhaseWheel
}

// scaleForTime shrinks the point value proportionally to the unspent part
// of the answer window, never below one point. Out-of-range inputs are
// clamped to the window.
func scaleForTime(points, remainingSec int) int {
	if remainingSec < 0 {
		remainingSec = 0
	}
	if remainingSec > QuestionSeconds {
		remainingSec = QuestionSeconds
	}
	scaled := points * remainingSec / QuestionSeconds
	if scaled < 1 {
		scaled = 1
	}
	return scaled
}
