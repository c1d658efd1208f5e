package game

import "fmt"

// TimeMode controls how the answer window affects scoring.
type TimeMode string

const (
	// TimeUnlimited imposes no answer window.
	TimeUnlimited TimeMode = "unlimited"
	// TimeFixed gives a fixed window; points are unaffected by how fast
	// the team answers.
	TimeFixed TimeMode = "fixed"
	// TimeDecreasing gives a fixed window and scales points down with the
	// time already spent.
	TimeDecreasing TimeMode = "decreasing"
)

// QuestionSeconds is the answer window for the timed modes.
const QuestionSeconds = 60

const (
	MinTeams = 1
	MaxTeams = 8
)

// Config is fixed for the duration of one game.
type Config struct {
	TeamCount        int
	QuestionCount    int
	OptionCount      int
	TimeMode         TimeMode
	SurprisesEnabled bool
	// Surprises maps each surprise key to whether it may come up on the
	// wheel. A nil map enables every key.
	Surprises map[SurpriseKey]bool
}

// Validate rejects an invalid configuration outright. Values are never
// clamped; a caller with an out-of-range count gets an error before any
// game state exists.
func (c Config) Validate() error {
	if c.TeamCount < MinTeams || c.TeamCount > MaxTeams {
		return fmt.Errorf("team count must be between %d and %d, got %d", MinTeams, MaxTeams, c.TeamCount)
	}
	if c.QuestionCount < 1 {
		return fmt.Errorf("question count must be at least 1, got %d", c.QuestionCount)
	}
	switch c.OptionCount {
	case 2, 3, 4:
	default:
		return fmt.Errorf("option count must be 2, 3, or 4, got %d", c.OptionCount)
	}
	switch c.TimeMode {
	case TimeUnlimited, TimeFixed, TimeDecreasing:
	default:
		return fmt.Errorf("unknown time mode %q", c.TimeMode)
	}
	for key := range c.Surprises {
		if !key.Known() {
			return fmt.Errorf("unknown surprise key %q", key)
		}
	}
	return nil
}

// surpriseEnabled reports whether a key may come up. With a nil map every
// known key is enabled.
func (c Config) surpriseEnabled(key SurpriseKey) bool {
	if c.Surprises == nil {
		return true
	}
	return c.Surprises[key]
}
