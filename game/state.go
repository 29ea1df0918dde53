package game

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/google/uuid"
)

// Bounds for game construction.
const (
	MinTerritories = 5
	MaxTerritories = 20
	MinPlayers     = 2
	MaxPlayers     = 6
)

// Initial garrison range assigned during distribution.
const (
	initialTroopsMin = 2
	initialTroopsMax = 6
)

// GameState is the single mutable aggregate for one session: every
// territory and player, plus the random source feeding dice, mission draws
// and initial garrisons. All operations mutate it in place; no other
// component keeps an independent copy. Players and territories are created
// once at setup and never added or removed, only their fields change.
type GameState struct {
	ID          string
	Territories []Territory
	Players     []Player
	LastBattle  Battle

	rand             Rand
	missionsAssigned bool
	distributed      bool
}

// StateHash is a digest of the mutable game state, for change detection.
type StateHash uint64

// NewGame allocates the fixed-size territory and player collections.
// Bounds violations are construction errors: territories 5 to 20, players
// 2 to 6, and at least one territory per player.
func NewGame(numTerritories, numPlayers int, r Rand) (*GameState, error) {
	switch {
	case numTerritories < MinTerritories:
		return nil, ErrTooFewTerritories
	case numTerritories > MaxTerritories:
		return nil, ErrTooManyTerritories
	case numPlayers < MinPlayers:
		return nil, ErrTooFewPlayers
	case numPlayers > MaxPlayers:
		return nil, ErrTooManyPlayers
	case numTerritories < numPlayers:
		return nil, ErrTerritoryShortage
	}

	return &GameState{
		ID:          uuid.New().String(),
		Territories: make([]Territory, numTerritories),
		Players:     make([]Player, numPlayers),
		rand:        r,
	}, nil
}

// AssignMissions draws one mission per player, uniformly with repeats.
// Setup-only: a second call is rejected.
func (gs *GameState) AssignMissions() error {
	if gs.missionsAssigned {
		return ErrSetupComplete
	}
	for i := range gs.Players {
		gs.Players[i].Mission = RandomMission(gs.rand)
	}
	gs.missionsAssigned = true
	return nil
}

// DistributeTerritories hands territories out round-robin, so player i%n
// owns territory i, and garrisons each with a troop count in [2,6].
// Setup-only: a second call is rejected.
func (gs *GameState) DistributeTerritories() error {
	if gs.distributed {
		return ErrSetupComplete
	}
	n := len(gs.Players)
	for i := range gs.Territories {
		p := &gs.Players[i%n]
		t := &gs.Territories[i]
		t.Color = p.Color
		t.Owner = p.Name
		t.Troops = gs.rand.Intn(initialTroopsMax-initialTroopsMin+1) + initialTroopsMin
	}
	gs.distributed = true
	gs.RecomputeStandings()
	return nil
}

// CheckWinner returns the index of the first active player, in roster
// order, whose mission is satisfied, or -1 when no one has won yet.
// Eliminated players are excluded.
func (gs *GameState) CheckWinner() int {
	for i := range gs.Players {
		p := &gs.Players[i]
		if p.Active && EvaluateMission(p.Mission, p.Color, gs.Territories) {
			return i
		}
	}
	return -1
}

// Copy returns a deep copy of the game state, sharing only the random
// source.
func (gs *GameState) Copy() *GameState {
	territoriesCopy := make([]Territory, len(gs.Territories))
	copy(territoriesCopy, gs.Territories)

	playersCopy := make([]Player, len(gs.Players))
	copy(playersCopy, gs.Players)

	return &GameState{
		ID:               gs.ID,
		Territories:      territoriesCopy,
		Players:          playersCopy,
		LastBattle:       gs.LastBattle,
		rand:             gs.rand,
		missionsAssigned: gs.missionsAssigned,
		distributed:      gs.distributed,
	}
}

// Hash digests territory ownership and troops plus player status. The
// battle record is excluded: a drawn battle must leave the hash unchanged.
func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	for i := range gs.Territories {
		t := &gs.Territories[i]
		hasher.Write([]byte(t.Color))
		hasher.Write([]byte(t.Owner))
		binary.Write(hasher, binary.LittleEndian, int64(t.Troops))
	}

	for i := range gs.Players {
		p := &gs.Players[i]
		active := int64(0)
		if p.Active {
			active = 1
		}
		binary.Write(hasher, binary.LittleEndian, active)
		binary.Write(hasher, binary.LittleEndian, int64(p.Mission))
		binary.Write(hasher, binary.LittleEndian, int64(p.TerritoriesOwned))
	}

	return StateHash(hasher.Sum64())
}

// MapStats is an aggregate summary of the map.
type MapStats struct {
	TotalTroops   int
	AverageTroops float64
	StrongestIdx  int
	Strongest     Territory
}

// MapStats summarizes the map: total and average troops plus the single
// strongest territory (first wins ties).
func (gs *GameState) MapStats() MapStats {
	stats := MapStats{StrongestIdx: -1}
	for i, t := range gs.Territories {
		stats.TotalTroops += t.Troops
		if stats.StrongestIdx < 0 || t.Troops > stats.Strongest.Troops {
			stats.StrongestIdx = i
			stats.Strongest = t
		}
	}
	if len(gs.Territories) > 0 {
		stats.AverageTroops = float64(stats.TotalTroops) / float64(len(gs.Territories))
	}
	return stats
}
