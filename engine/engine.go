package engine

import (
	"war/game"

	"github.com/rs/zerolog/log"
)

// DefaultMaxTurns caps a session that never reaches a terminal state.
const DefaultMaxTurns = 500

// maxRejections guards the run loop against a driver that keeps producing
// invalid selections while the game cannot progress.
const maxRejections = 1000

// Driver supplies attack selections and the continue/stop decision. The
// console front end implements it with already-validated input; the
// experiment harness implements it with a uniform-random picker.
type Driver interface {
	// SelectAttack returns the attacker and defender territory indices for
	// the next round.
	SelectAttack(gs *game.GameState) (attacker, defender int)
	// Continue reports whether the session should advance to another round
	// when no terminal condition has been reached. Stopping early is the
	// driver's decision, not the engine's.
	Continue(gs *game.GameState) bool
}

// RoundResult reports what one round did.
type RoundResult struct {
	Outcome    game.Outcome
	Rejected   error // non-nil when the selection was refused; nothing changed
	Eliminated []int // players eliminated by this round's recount
	Winner     int   // winning player index, -1 while the game runs
}

// Engine is the turn controller for a single game session: it validates
// attack selections, delegates to the combat resolver, recomputes
// standings, and checks the mission and attrition terminal conditions.
type Engine struct {
	State    *game.GameState
	MaxTurns int

	turn   int
	winner int
	done   bool
}

// New wraps an already set-up game state. Winner queries return -1 until a
// terminal state is reached.
func New(state *game.GameState) *Engine {
	return &Engine{
		State:    state,
		MaxTurns: DefaultMaxTurns,
		winner:   -1,
	}
}

// Turn returns the number of resolved rounds so far. Rejected selections do
// not consume a turn.
func (e *Engine) Turn() int { return e.turn }

// Done reports whether the session reached a terminal state.
func (e *Engine) Done() bool { return e.done }

// Winner returns the winning player index, or -1.
func (e *Engine) Winner() int { return e.winner }

// PlayRound validates and resolves one attack, then recomputes standings
// and checks the terminal conditions. A rejected attack changes nothing and
// reports its reason in the result.
func (e *Engine) PlayRound(attacker, defender int) RoundResult {
	if e.done {
		return RoundResult{Rejected: game.ErrGameOver, Winner: e.winner}
	}

	outcome, err := e.State.Attack(attacker, defender)
	if err != nil {
		log.Debug().
			Str("game", e.State.ID).
			Int("attacker", attacker).
			Int("defender", defender).
			Err(err).
			Msg("attack rejected")
		return RoundResult{Rejected: err, Winner: -1}
	}
	e.turn++

	battle := e.State.LastBattle
	log.Info().
		Str("game", e.State.ID).
		Int("turn", e.turn).
		Int("attacker", attacker).
		Int("defender", defender).
		Int("attack_die", battle.AttackDie).
		Int("defend_die", battle.DefendDie).
		Stringer("outcome", outcome).
		Msg("battle resolved")

	eliminated := e.State.RecomputeStandings()
	for _, idx := range eliminated {
		log.Info().
			Str("game", e.State.ID).
			Int("turn", e.turn).
			Str("player", e.State.Players[idx].Name).
			Str("color", e.State.Players[idx].Color).
			Msg("player eliminated")
	}

	winner := e.State.CheckWinner()
	if winner < 0 && e.State.ActiveCount() <= 1 {
		// Attrition: the last player standing wins, or nobody does.
		winner = e.State.SoleSurvivor()
		e.done = true
	}
	if winner >= 0 {
		e.winner = winner
		e.done = true
		p := e.State.Players[winner]
		log.Info().
			Str("game", e.State.ID).
			Int("turn", e.turn).
			Str("player", p.Name).
			Stringer("mission", p.Mission).
			Msg("game won")
	}

	return RoundResult{Outcome: outcome, Eliminated: eliminated, Winner: e.winner}
}

// Run drives rounds from the driver until the session reaches a terminal
// state, the driver declines to continue, or the turn cap is hit. It
// returns the winning player index, or -1 when the session ends without a
// winner.
func (e *Engine) Run(d Driver) int {
	log.Info().
		Str("game", e.State.ID).
		Int("players", len(e.State.Players)).
		Int("territories", len(e.State.Territories)).
		Msg("game started")

	rejections := 0
	for !e.done && e.turn < e.MaxTurns {
		attacker, defender := d.SelectAttack(e.State)
		result := e.PlayRound(attacker, defender)
		if result.Rejected != nil {
			rejections++
			if rejections >= maxRejections {
				log.Warn().
					Str("game", e.State.ID).
					Int("turn", e.turn).
					Msg("stopping after repeated invalid selections")
				break
			}
			continue
		}
		rejections = 0
		if e.done {
			break
		}
		if !d.Continue(e.State) {
			break
		}
	}

	if !e.done {
		log.Info().
			Str("game", e.State.ID).
			Int("turn", e.turn).
			Msg("game stopped without a winner")
	}
	return e.winner
}
