package game

import "golang.org/x/exp/rand"

// Rand is the single source of randomness for a game session: dice rolls,
// mission draws, and initial troop counts all pass through it. Tests
// substitute a scripted implementation to pin outcomes.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a seeded uniform source.
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewSource(seed))
}
