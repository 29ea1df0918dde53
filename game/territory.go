package game

import "strings"

// Field length caps, matching the fixed-size registration buffers of the
// console front end.
const (
	MaxNameLen  = 29
	MaxColorLen = 9
)

// Territory is a unit of owned ground: a name, the player holding it, the
// faction color it flies, and the troops stationed on it. Troops never go
// negative; exactly one color owns a territory at any time.
type Territory struct {
	Name   string
	Owner  string
	Color  string
	Troops int
}

// NormalizeColor caps a faction color at MaxColorLen and upper-cases its
// first letter, so color comparisons are stable across registrations.
func NormalizeColor(color string) string {
	color = truncate(color, MaxColorLen)
	if color == "" {
		return color
	}
	return strings.ToUpper(color[:1]) + color[1:]
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

// Territory returns a copy of the territory at index.
func (gs *GameState) Territory(index int) (Territory, error) {
	if index < 0 || index >= len(gs.Territories) {
		return Territory{}, ErrInvalidTerritory
	}
	return gs.Territories[index], nil
}

// NameTerritory sets the display name of a territory during setup.
func (gs *GameState) NameTerritory(index int, name string) error {
	if index < 0 || index >= len(gs.Territories) {
		return ErrInvalidTerritory
	}
	gs.Territories[index].Name = truncate(name, MaxNameLen)
	return nil
}

// SetOwner hands a territory to a new faction. The color is normalized and
// the owner name truncated before the write.
func (gs *GameState) SetOwner(index int, color, owner string) error {
	if index < 0 || index >= len(gs.Territories) {
		return ErrInvalidTerritory
	}
	t := &gs.Territories[index]
	t.Color = NormalizeColor(color)
	t.Owner = truncate(owner, MaxNameLen)
	return nil
}

// SetTroops replaces a territory's troop count. A negative count is a
// caller error and leaves the territory untouched.
func (gs *GameState) SetTroops(index, n int) error {
	if index < 0 || index >= len(gs.Territories) {
		return ErrInvalidTerritory
	}
	if n < 0 {
		return ErrNegativeTroops
	}
	gs.Territories[index].Troops = n
	return nil
}
