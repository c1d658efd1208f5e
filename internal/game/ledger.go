package game

import (
	"fmt"
	"sort"
)

// Team is one competing side. ID is stable for the game lifetime; Score is
// mutated only through Ledger operations.
type Team struct {
	ID    int
	Name  string
	Color string
	Logo  string
	Score int
}

var teamColors = []string{"#ea580c", "#f97316", "#0ea5e9", "#10b981", "#8b5cf6", "#f59e0b", "#ef4444", "#06b6d4"}

var teamLogos = []string{"🔥", "⚡", "🌟", "💎", "🚀", "⭐", "💫", "🎯"}

// Ledger owns the team roster for one game. All score changes go through
// it so clamping and conservation rules hold no matter which effect asked
// for the change.
type Ledger struct {
	teams []Team
}

// NewLedger creates count teams with zero scores. Names beyond the
// provided slice default to "Team N"; colors and logos cycle through the
// fixed palettes.
func NewLedger(count int, names []string) *Ledger {
	teams := make([]Team, count)
	for i := range teams {
		name := fmt.Sprintf("Team %d", i+1)
		if i < len(names) && names[i] != "" {
			name = names[i]
		}
		teams[i] = Team{
			ID:    i + 1,
			Name:  name,
			Color: teamColors[i%len(teamColors)],
			Logo:  teamLogos[i%len(teamLogos)],
		}
	}
	return &Ledger{teams: teams}
}

// Teams returns a copy of the roster in original order.
func (l *Ledger) Teams() []Team {
	out := make([]Team, len(l.teams))
	copy(out, l.teams)
	return out
}

// Len returns the number of teams.
func (l *Ledger) Len() int { return len(l.teams) }

// Team returns the team with the given ID.
func (l *Ledger) Team(id int) (Team, bool) {
	i := l.indexOf(id)
	if i < 0 {
		return Team{}, false
	}
	return l.teams[i], true
}

// Award adds delta to a team's score, clamping at zero, and returns the
// change actually applied (negative deltas may be cut short by the clamp).
func (l *Ledger) Award(id, delta int) int {
	i := l.indexOf(id)
	if i < 0 {
		return 0
	}
	before := l.teams[i].Score
	after := before + delta
	if after < 0 {
		after = 0
	}
	l.teams[i].Score = after
	return after - before
}

// SetAll sets every team's score to the same value.
func (l *Ledger) SetAll(score int) {
	if score < 0 {
		score = 0
	}
	for i := range l.teams {
		l.teams[i].Score = score
	}
}

// Swap exchanges two teams' scores in one step.
func (l *Ledger) Swap(a, b int) {
	i, j := l.indexOf(a), l.indexOf(b)
	if i < 0 || j < 0 || i == j {
		return
	}
	l.teams[i].Score, l.teams[j].Score = l.teams[j].Score, l.teams[i].Score
}

// Transfer moves up to amount points from one team to another, clamped so
// the source never goes negative. Returns the amount moved. The roster
// total is unchanged.
func (l *Ledger) Transfer(from, to, amount int) int {
	i, j := l.indexOf(from), l.indexOf(to)
	if i < 0 || j < 0 || i == j || amount <= 0 {
		return 0
	}
	if amount > l.teams[i].Score {
		amount = l.teams[i].Score
	}
	l.teams[i].Score -= amount
	l.teams[j].Score += amount
	return amount
}

// Total returns the sum of all scores.
func (l *Ledger) Total() int {
	sum := 0
	for _, t := range l.teams {
		sum += t.Score
	}
	return sum
}

// Lowest returns the team with the lowest score, ties broken by original
// roster position.
func (l *Ledger) Lowest() Team {
	best := l.teams[0]
	for _, t := range l.teams[1:] {
		if t.Score < best.Score {
			best = t
		}
	}
	return best
}

// Highest returns the team with the highest score, ties broken by
// original roster position.
func (l *Ledger) Highest() Team {
	best := l.teams[0]
	for _, t := range l.teams[1:] {
		if t.Score > best.Score {
			best = t
		}
	}
	return best
}

// Standings returns the roster ordered by descending score, ties broken
// by original roster position.
func (l *Ledger) Standings() []Team {
	out := l.Teams()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

func (l *Ledger) indexOf(id int) int {
	for i, t := range l.teams {
		if t.ID == id {
			return i
		}
	}
	return -1
}
