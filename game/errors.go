package game

import "errors"

// Validation failures are synchronous rejections: the offending call leaves
// all game state untouched.
var (
	ErrInvalidTerritory   = errors.New("invalid territory index")
	ErrInvalidPlayer      = errors.New("invalid player index")
	ErrSelfAttack         = errors.New("a territory cannot attack itself")
	ErrFriendlyFire       = errors.New("cannot attack a territory of the same color")
	ErrNotEnoughTroops    = errors.New("attacker needs more than one troop")
	ErrNegativeTroops     = errors.New("troop count cannot be negative")
	ErrTooFewTerritories  = errors.New("too few territories")
	ErrTooManyTerritories = errors.New("too many territories")
	ErrTooFewPlayers      = errors.New("too few players")
	ErrTooManyPlayers     = errors.New("too many players")
	ErrTerritoryShortage  = errors.New("need at least one territory per player")
	ErrSetupComplete      = errors.New("setup step already completed")
	ErrGameOver           = errors.New("game is over")
)
