package metrics

import "time"

// GameRecord is the per-game row written to the results CSV.
type GameRecord struct {
	ID           int
	Seed         uint64
	Players      int
	Territories  int
	Turns        int
	Winner       string // winning player's name, "" when the game stalled
	WinnerColor  string
	Mission      string // winning mission name, "" without a winner
	MissionStub  bool   // winner held an unimplemented (stub) mission
	Eliminations int
	Duration     time.Duration
}

// Collector accumulates one game's record as rounds resolve.
type Collector struct {
	record    GameRecord
	startTime time.Time
}

// NewCollector starts timing a game.
func NewCollector(id int, seed uint64, players, territories int) *Collector {
	return &Collector{
		record: GameRecord{
			ID:          id,
			Seed:        seed,
			Players:     players,
			Territories: territories,
		},
		startTime: time.Now(),
	}
}

// Complete finalizes the record. Winner fields stay empty when the game
// stalled without a winner.
func (c *Collector) Complete(turns, eliminations int, winner, winnerColor, mission string, missionStub bool) GameRecord {
	c.record.Turns = turns
	c.record.Eliminations = eliminations
	c.record.Winner = winner
	c.record.WinnerColor = winnerColor
	c.record.Mission = mission
	c.record.MissionStub = missionStub
	c.record.Duration = time.Since(c.startTime)
	return c.record
}
