package experiments

import (
	"fmt"

	"war/engine"
	"war/experiments/metrics"
	"war/game"

	"github.com/rs/zerolog/log"
)

// Config sizes one experiment batch.
type Config struct {
	Games       int
	Players     int
	Territories int
	Seed        uint64 // base seed; game i plays with Seed+i
	MaxTurns    int
	ResultsDir  string
}

// randomDriver picks attacker and defender territories uniformly at random
// and always plays on. The engine rejects invalid picks, so the driver can
// stay dumb; it is a load generator, not an opponent.
type randomDriver struct {
	r game.Rand
}

func (d randomDriver) SelectAttack(gs *game.GameState) (int, int) {
	return d.r.Intn(len(gs.Territories)), d.r.Intn(len(gs.Territories))
}

func (d randomDriver) Continue(*game.GameState) bool {
	return true
}

// RunBalance plays a batch of randomly driven games and writes per-game
// records plus a mission win-count summary, for eyeballing mission balance
// and typical game length.
func RunBalance(cfg Config) error {
	writer, err := metrics.NewWriter(cfg.ResultsDir)
	if err != nil {
		return fmt.Errorf("set up results writer: %w", err)
	}

	log.Info().
		Int("games", cfg.Games).
		Int("players", cfg.Players).
		Int("territories", cfg.Territories).
		Uint64("seed", cfg.Seed).
		Msg("running balance experiment")

	records := make([]metrics.GameRecord, 0, cfg.Games)
	missionWins := map[game.MissionID]int{}

	for i := 0; i < cfg.Games; i++ {
		seed := cfg.Seed + uint64(i)
		record, winningMission, err := playGame(i, seed, cfg)
		if err != nil {
			return fmt.Errorf("game %d: %w", i, err)
		}
		records = append(records, record)
		if record.Winner != "" {
			missionWins[winningMission]++
		}
	}

	if err := writer.WriteGameRecords(records); err != nil {
		return err
	}

	summaries := make([]metrics.MissionSummary, 0, game.NumMissions)
	for id := game.MissionID(0); id < game.NumMissions; id++ {
		summaries = append(summaries, metrics.MissionSummary{
			Mission: id.String(),
			Wins:    missionWins[id],
			Stub:    !id.Implemented(),
		})
	}
	if err := writer.WriteMissionSummary(summaries); err != nil {
		return err
	}

	log.Info().Str("dir", writer.Dir()).Msg("experiment results written")
	return nil
}

func playGame(id int, seed uint64, cfg Config) (metrics.GameRecord, game.MissionID, error) {
	r := game.NewRand(seed)
	gs, err := game.NewGame(cfg.Territories, cfg.Players, r)
	if err != nil {
		return metrics.GameRecord{}, 0, err
	}
	for i := range gs.Players {
		if err := gs.RegisterPlayer(i, fmt.Sprintf("Player%d", i+1)); err != nil {
			return metrics.GameRecord{}, 0, err
		}
	}
	for i := range gs.Territories {
		if err := gs.NameTerritory(i, fmt.Sprintf("Territory%d", i+1)); err != nil {
			return metrics.GameRecord{}, 0, err
		}
	}
	if err := gs.AssignMissions(); err != nil {
		return metrics.GameRecord{}, 0, err
	}
	if err := gs.DistributeTerritories(); err != nil {
		return metrics.GameRecord{}, 0, err
	}

	collector := metrics.NewCollector(id, seed, cfg.Players, cfg.Territories)

	e := engine.New(gs)
	if cfg.MaxTurns > 0 {
		e.MaxTurns = cfg.MaxTurns
	}
	winner := e.Run(randomDriver{r: r})

	var name, color, missionName string
	var mission game.MissionID
	stub := false
	if winner >= 0 {
		p := gs.Players[winner]
		name, color = p.Name, p.Color
		mission = p.Mission
		missionName = mission.String()
		stub = !mission.Implemented()
	}
	record := collector.Complete(e.Turn(), countEliminated(gs), name, color, missionName, stub)
	return record, mission, nil
}

func countEliminated(gs *game.GameState) int {
	n := 0
	for i := range gs.Players {
		if !gs.Players[i].Active {
			n++
		}
	}
	return n
}
