package server

import (
	"sort"
	"sync"
	"time"

	"github.com/spinhub/quizwheel/internal/game"
)

// LiveGame is one running session held in memory, addressed by ID. The
// host token authorizes the mutating endpoints; anyone with the game ID
// can read state and subscribe to events.
type LiveGame struct {
	ID        string
	HostToken string
	CreatedAt time.Time
	Session   *game.Session

	mu       sync.Mutex
	lastSeen time.Time
}

// Touch records activity on the game, postponing idle eviction.
func (g *LiveGame) Touch() {
	g.mu.Lock()
	g.lastSeen = time.Now()
	g.mu.Unlock()
}

// LastSeen returns the time of the game's most recent request.
func (g *LiveGame) LastSeen() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastSeen
}

// Registry holds all live games.
type Registry struct {
	// newRand produces the randomness source for each new session.
	// Tests substitute a deterministic one.
	newRand func() game.Rand

	mu    sync.RWMutex
	games map[string]*LiveGame
}

func NewRegistry() *Registry {
	return &Registry{
		newRand: game.NewRand,
		games:   make(map[string]*LiveGame),
	}
}

// Create validates the config, starts a session, and registers it under
// a fresh ID with a fresh host token.
func (r *Registry) Create(cfg game.Config, bank *game.QuestionBank, teamNames []string) (*LiveGame, error) {
	sess, err := game.NewSession(cfg, bank, r.newRand(), teamNames)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	g := &LiveGame{
		ID:        newID(),
		HostToken: newID(),
		CreatedAt: now,
		Session:   sess,
		lastSeen:  now,
	}

	r.mu.Lock()
	r.games[g.ID] = g
	r.mu.Unlock()
	return g, nil
}

func (r *Registry) Get(id string) (*LiveGame, bool) {
	r.mu.RLock()
	g, ok := r.games[id]
	r.mu.RUnlock()
	return g, ok
}

// Delete removes the game and reports whether it existed.
func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	_, ok := r.games[id]
	delete(r.games, id)
	r.mu.Unlock()
	return ok
}

// List returns all live games, oldest first.
func (r *Registry) List() []*LiveGame {
	r.mu.RLock()
	games := make([]*LiveGame, 0, len(r.games))
	for _, g := range r.games {
		games = append(games, g)
	}
	r.mu.RUnlock()

	sort.Slice(games, func(i, j int) bool {
		return games[i].CreatedAt.Before(games[j].CreatedAt)
	})
	return games
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.games)
}

// Prune evicts games idle for longer than maxIdle and returns how many
// were removed. Ended games linger like any other until they go idle, so
// a final standings screen can keep polling.
func (r *Registry) Prune(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for id, g := range r.games {
		if g.LastSeen().Before(cutoff) {
			delete(r.games, id)
			n++
		}
	}
	return n
}
