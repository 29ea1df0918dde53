package game

// MissionID identifies one of the eight fixed victory conditions.
type MissionID int

const (
	Conqueror MissionID = iota
	TotalDomination
	Strategist
	Expansionist
	SupremeGeneral
	Liberator
	Fortress
	Emperor
)

// NumMissions is the size of the mission catalog.
const NumMissions = 8

// missionStats aggregates one faction's position on the map.
type missionStats struct {
	territories int
	troops      int
	fortified   int // territories holding more than 5 troops
}

type missionSpec struct {
	name        string
	description string
	implemented bool
	predicate   func(s missionStats, totalTerritories int) bool
}

// The catalog. Strategist drops the "for 2 turns" persistence and
// Expansionist the no-loss streak: both evaluate as point-in-time
// thresholds. TotalDomination, Liberator and Fortress need per-turn combat
// history that the simulation does not track, so they never complete.
var missionTable = [NumMissions]missionSpec{
	Conqueror: {
		name:        "Conqueror",
		description: "Control at least 5 territories at the same time",
		implemented: true,
		predicate: func(s missionStats, _ int) bool {
			return s.territories >= 5
		},
	},
	TotalDomination: {
		name:        "Total Domination",
		description: "Eliminate one player completely by capturing all of their territories",
		predicate:   never,
	},
	Strategist: {
		name:        "Strategist",
		description: "Hold 3 territories with more than 5 troops each for 2 turns",
		implemented: true,
		predicate: func(s missionStats, _ int) bool {
			return s.fortified >= 3
		},
	},
	Expansionist: {
		name:        "Expansionist",
		description: "Conquer 4 territories in a row without losing any",
		implemented: true,
		predicate: func(s missionStats, _ int) bool {
			return s.territories >= 4
		},
	},
	SupremeGeneral: {
		name:        "Supreme General",
		description: "Amass more than 30 troops across your territories",
		implemented: true,
		predicate: func(s missionStats, _ int) bool {
			return s.troops > 30
		},
	},
	Liberator: {
		name:        "Liberator",
		description: "Conquer territories from at least 3 different players",
		predicate:   never,
	},
	Fortress: {
		name:        "Fortress",
		description: "Defend 5 consecutive attacks without losing a territory",
		predicate:   never,
	},
	Emperor: {
		name:        "Emperor",
		description: "Control more than half of all territories on the map",
		implemented: true,
		predicate: func(s missionStats, totalTerritories int) bool {
			return s.territories > totalTerritories/2
		},
	},
}

func never(missionStats, int) bool { return false }

func (id MissionID) valid() bool {
	return id >= 0 && id < NumMissions
}

func (id MissionID) String() string {
	if !id.valid() {
		return "Unknown"
	}
	return missionTable[id].name
}

// Description returns the mission text shown to the player.
func (id MissionID) Description() string {
	if !id.valid() {
		return ""
	}
	return missionTable[id].description
}

// Implemented reports whether the mission's predicate is real or a stub
// that always evaluates false. Callers should flag stub missions instead
// of treating them as silently incompletable.
func (id MissionID) Implemented() bool {
	return id.valid() && missionTable[id].implemented
}

// RandomMission draws one mission uniformly. Repeats across players are
// allowed.
func RandomMission(r Rand) MissionID {
	return MissionID(r.Intn(NumMissions))
}

// EvaluateMission reports whether the mission is satisfied by the faction's
// current holdings. Predicates are pure: no mutation, no memory of past
// turns. Unimplemented missions always evaluate false.
func EvaluateMission(id MissionID, color string, territories []Territory) bool {
	if !id.valid() {
		return false
	}
	var s missionStats
	for _, t := range territories {
		if t.Color != color {
			continue
		}
		s.territories++
		s.troops += t.Troops
		if t.Troops > 5 {
			s.fortified++
		}
	}
	return missionTable[id].predicate(s, len(territories))
}
