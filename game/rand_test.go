package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedRand feeds predetermined values, making dice rolls, mission
// draws, and garrison sizes exact. Values cycle when exhausted.
type scriptedRand struct {
	values []int
	next   int
}

func (s *scriptedRand) Intn(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

// die queues a scripted value that makes rollDie produce the given face.
func die(face int) int { return face - DieMin }

// garrison queues a scripted value that makes DistributeTerritories assign
// the given troop count.
func garrison(troops int) int { return troops - initialTroopsMin }

func TestNewRandBounds(t *testing.T) {
	r := NewRand(42)
	for i := 0; i < 100; i++ {
		v := r.Intn(6)
		require.GreaterOrEqual(t, v, 0, "Intn must stay within [0,n)")
		require.Less(t, v, 6, "Intn must stay within [0,n)")
	}
}
