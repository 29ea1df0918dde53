package game

// Outcome is the result of one resolved attack.
type Outcome int

const (
	Conquered Outcome = iota
	Repelled
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Conquered:
		return "conquered"
	case Repelled:
		return "repelled"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// Battle dice are standard six-sided.
const (
	DieMin = 1
	DieMax = 6
)

// Battle records the dice and outcome of the most recent attack.
type Battle struct {
	Attacker  int
	Defender  int
	AttackDie int
	DefendDie int
	Outcome   Outcome
}

func (gs *GameState) rollDie() int {
	return gs.rand.Intn(DieMax) + DieMin
}

// ValidateAttack checks the combat preconditions without mutating anything:
// distinct valid indices, enemy colors, and more than one attacking troop.
func (gs *GameState) ValidateAttack(attacker, defender int) error {
	if attacker < 0 || attacker >= len(gs.Territories) {
		return ErrInvalidTerritory
	}
	if defender < 0 || defender >= len(gs.Territories) {
		return ErrInvalidTerritory
	}
	if attacker == defender {
		return ErrSelfAttack
	}
	if gs.Territories[attacker].Color == gs.Territories[defender].Color {
		return ErrFriendlyFire
	}
	if gs.Territories[attacker].Troops <= 1 {
		return ErrNotEnoughTroops
	}
	return nil
}

// Attack resolves one battle between two territories. Each side rolls one
// die; the higher roll wins. A conquest hands the defender the attacker's
// color, owner, and half the attacker's troops (at least one); a repelled
// attack costs the attacker a single troop; equal dice change nothing.
// A precondition failure rejects the call before any field is written.
func (gs *GameState) Attack(attacker, defender int) (Outcome, error) {
	if err := gs.ValidateAttack(attacker, defender); err != nil {
		return 0, err
	}

	a := &gs.Territories[attacker]
	d := &gs.Territories[defender]

	attackDie := gs.rollDie()
	defendDie := gs.rollDie()

	battle := Battle{
		Attacker:  attacker,
		Defender:  defender,
		AttackDie: attackDie,
		DefendDie: defendDie,
	}

	switch {
	case attackDie > defendDie:
		transferred := a.Troops / 2
		if transferred == 0 {
			transferred = 1
		}
		d.Color = a.Color
		d.Owner = a.Owner
		d.Troops = transferred
		a.Troops -= transferred
		battle.Outcome = Conquered
	case defendDie > attackDie:
		// Safe: the precondition guarantees at least two troops.
		a.Troops--
		battle.Outcome = Repelled
	default:
		battle.Outcome = Draw
	}

	gs.LastBattle = battle
	return battle.Outcome, nil
}
