package game

import (
	"math/rand/v2"
)

// Rand is the source of randomness for spins, surprise draws, template
// picks, and target-team selection. Everything random in the engine goes
// through it so tests can substitute a scripted sequence and assert exact
// outcomes.
type Rand interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n). Panics if n <= 0.
	IntN(n int) int
}

// NewRand returns a Rand backed by math/rand/v2 with a random seed.
func NewRand() Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
