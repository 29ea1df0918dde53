package game

// Player is a participant: a faction color, a secret mission, and an
// activity flag that flips once the player holds no ground. TerritoriesOwned
// is recomputed each round and is never authoritative in between.
type Player struct {
	Name             string
	Color            string
	Mission          MissionID
	Active           bool
	TerritoriesOwned int
}

// Colors is the fixed faction palette, assigned round-robin at registration.
var Colors = []string{"Red", "Blue", "Green", "Yellow", "Purple", "Orange"}

// RegisterPlayer fills in the player at index with a truncated name, the
// next palette color, and active status.
func (gs *GameState) RegisterPlayer(index int, name string) error {
	if index < 0 || index >= len(gs.Players) {
		return ErrInvalidPlayer
	}
	gs.Players[index] = Player{
		Name:   truncate(name, MaxNameLen),
		Color:  Colors[index%len(Colors)],
		Active: true,
	}
	return nil
}

// RecomputeStandings recounts TerritoriesOwned for every player from the
// territory list, then eliminates any active player left with none.
// Elimination is purely a side effect of this recount. Returns the indices
// of players eliminated by this pass.
func (gs *GameState) RecomputeStandings() []int {
	for i := range gs.Players {
		gs.Players[i].TerritoriesOwned = 0
	}
	for _, t := range gs.Territories {
		for j := range gs.Players {
			if gs.Players[j].Color == t.Color {
				gs.Players[j].TerritoriesOwned++
				break
			}
		}
	}
	var eliminated []int
	for i := range gs.Players {
		p := &gs.Players[i]
		if p.Active && p.TerritoriesOwned == 0 {
			p.Active = false
			eliminated = append(eliminated, i)
		}
	}
	return eliminated
}

// ActiveCount returns the number of players still in the game.
func (gs *GameState) ActiveCount() int {
	count := 0
	for i := range gs.Players {
		if gs.Players[i].Active {
			count++
		}
	}
	return count
}

// SoleSurvivor returns the index of the only active player, or -1 if zero
// or more than one remain.
func (gs *GameState) SoleSurvivor() int {
	survivor := -1
	for i := range gs.Players {
		if gs.Players[i].Active {
			if survivor >= 0 {
				return -1
			}
			survivor = i
		}
	}
	return survivor
}
