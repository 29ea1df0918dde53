package engine

import (
	"testing"

	"war/game"

	"github.com/stretchr/testify/require"
)

// scriptedRand feeds predetermined values so dice are exact. Values cycle.
type scriptedRand struct {
	values []int
	next   int
}

func (s *scriptedRand) Intn(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

// die converts a die face to the scripted value producing it.
func die(face int) int { return face - game.DieMin }

// stubDriver replays a fixed attack selection for a bounded number of
// rounds.
type stubDriver struct {
	attacker int
	defender int
	rounds   int
	played   int
}

func (d *stubDriver) SelectAttack(*game.GameState) (int, int) {
	return d.attacker, d.defender
}

func (d *stubDriver) Continue(*game.GameState) bool {
	d.played++
	return d.played < d.rounds
}

// twoPlayerState builds five territories split between Alice (Red) and
// Bruno (Blue) in round-robin order, three troops each, stub missions so
// no mission fires by accident.
func twoPlayerState(t *testing.T, r game.Rand) *game.GameState {
	t.Helper()
	gs, err := game.NewGame(5, 2, r)
	require.NoError(t, err)
	require.NoError(t, gs.RegisterPlayer(0, "Alice"))
	require.NoError(t, gs.RegisterPlayer(1, "Bruno"))
	for i := 0; i < 5; i++ {
		color, owner := "Red", "Alice"
		if i%2 == 1 {
			color, owner = "Blue", "Bruno"
		}
		require.NoError(t, gs.SetOwner(i, color, owner))
		require.NoError(t, gs.SetTroops(i, 3))
	}
	gs.Players[0].Mission = game.Liberator
	gs.Players[1].Mission = game.Fortress
	gs.RecomputeStandings()
	return gs
}

func TestPlayRoundRejectionChangesNothing(t *testing.T) {
	gs := twoPlayerState(t, &scriptedRand{values: []int{die(6), die(1)}})
	e := New(gs)
	before := gs.Hash()

	tests := []struct {
		name     string
		attacker int
		defender int
		wantErr  error
	}{
		{"out of range", 7, 1, game.ErrInvalidTerritory},
		{"self target", 2, 2, game.ErrSelfAttack},
		{"friendly fire", 0, 2, game.ErrFriendlyFire},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := e.PlayRound(tt.attacker, tt.defender)

			require.ErrorIs(t, result.Rejected, tt.wantErr)
			require.Equal(t, -1, result.Winner)
			require.Equal(t, 0, e.Turn(), "rejected selections do not consume a turn")
			require.Equal(t, before, gs.Hash())
			require.False(t, e.Done())
		})
	}
}

func TestPlayRoundConquestRecomputesStandings(t *testing.T) {
	gs := twoPlayerState(t, &scriptedRand{values: []int{die(6), die(1)}})
	e := New(gs)

	result := e.PlayRound(0, 1)

	require.NoError(t, result.Rejected)
	require.Equal(t, game.Conquered, result.Outcome)
	require.Equal(t, 1, e.Turn())
	require.Equal(t, 4, gs.Players[0].TerritoriesOwned)
	require.Equal(t, 1, gs.Players[1].TerritoriesOwned)
	require.Empty(t, result.Eliminated)
	require.Equal(t, -1, result.Winner)
	require.False(t, e.Done())
}

func TestPlayRoundAttritionWinner(t *testing.T) {
	gs := twoPlayerState(t, &scriptedRand{values: []int{die(6), die(1)}})
	// Leave Bruno a single territory.
	require.NoError(t, gs.SetOwner(3, "Red", "Alice"))
	gs.RecomputeStandings()
	e := New(gs)

	result := e.PlayRound(0, 1)

	require.NoError(t, result.Rejected)
	require.Equal(t, []int{1}, result.Eliminated)
	require.False(t, gs.Players[1].Active)
	require.Equal(t, 0, result.Winner, "last player standing wins by attrition")
	require.Equal(t, 0, e.Winner())
	require.True(t, e.Done())
}

func TestPlayRoundMissionWinner(t *testing.T) {
	gs := twoPlayerState(t, &scriptedRand{values: []int{die(6), die(1)}})
	// Swap holdings so Alice starts with two territories of five; taking a
	// third gives her a strict majority.
	require.NoError(t, gs.SetOwner(4, "Blue", "Bruno"))
	gs.Players[0].Mission = game.Emperor
	gs.RecomputeStandings()
	e := New(gs)

	result := e.PlayRound(0, 1)

	require.NoError(t, result.Rejected)
	require.Equal(t, 0, result.Winner, "mission completion wins while opponents remain active")
	require.True(t, gs.Players[1].Active)
	require.True(t, e.Done())
}

func TestPlayRoundAfterTerminalIsRejected(t *testing.T) {
	gs := twoPlayerState(t, &scriptedRand{values: []int{die(6), die(1)}})
	require.NoError(t, gs.SetOwner(3, "Red", "Alice"))
	gs.RecomputeStandings()
	e := New(gs)
	e.PlayRound(0, 1)
	require.True(t, e.Done())

	result := e.PlayRound(2, 1)

	require.ErrorIs(t, result.Rejected, game.ErrGameOver)
	require.Equal(t, 0, result.Winner, "the decided winner is preserved")
}

func TestRunStopsWhenDriverDeclines(t *testing.T) {
	gs := twoPlayerState(t, &scriptedRand{values: []int{die(3), die(3)}}) // every battle draws
	e := New(gs)

	winner := e.Run(&stubDriver{attacker: 0, defender: 1, rounds: 2})

	require.Equal(t, -1, winner)
	require.Equal(t, 2, e.Turn())
	require.False(t, e.Done())
}

func TestRunHonorsMaxTurns(t *testing.T) {
	gs := twoPlayerState(t, &scriptedRand{values: []int{die(3), die(3)}})
	e := New(gs)
	e.MaxTurns = 3

	winner := e.Run(&stubDriver{attacker: 0, defender: 1, rounds: 1000})

	require.Equal(t, -1, winner)
	require.Equal(t, 3, e.Turn())
}

func TestRunBreaksOnRepeatedRejections(t *testing.T) {
	gs := twoPlayerState(t, &scriptedRand{values: []int{die(3), die(3)}})
	e := New(gs)

	winner := e.Run(&stubDriver{attacker: 0, defender: 0, rounds: 1000})

	require.Equal(t, -1, winner)
	require.Equal(t, 0, e.Turn(), "a driver that only misfires never advances the game")
}
