package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"war/config"
	"war/engine"
	"war/experiments"
	"war/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	experiment := flag.Bool("experiment", false, "run the mission balance experiment instead of an interactive game")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	if *experiment {
		err := experiments.RunBalance(experiments.Config{
			Games:       cfg.ExperimentGames,
			Players:     cfg.Players,
			Territories: cfg.Territories,
			Seed:        seed,
			MaxTurns:    cfg.MaxTurns,
			ResultsDir:  cfg.ResultsDir,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		return
	}

	if err := runInteractive(cfg, seed); err != nil {
		log.Fatal().Err(err).Msg("game failed")
	}
}

// consoleDriver collects attack selections from stdin. All parsing and
// range validation happens here; the engine only ever sees integers.
type consoleDriver struct {
	in *bufio.Scanner
}

func (d *consoleDriver) SelectAttack(gs *game.GameState) (int, int) {
	printMap(gs)
	attacker := d.promptIndex("Attacker territory", len(gs.Territories))
	defender := d.promptIndex("Defender territory", len(gs.Territories))
	return attacker, defender
}

func (d *consoleDriver) Continue(gs *game.GameState) bool {
	printStandings(gs)
	fmt.Print("Another round? (y/N): ")
	if !d.in.Scan() {
		return false
	}
	answer := strings.TrimSpace(strings.ToLower(d.in.Text()))
	return answer == "y" || answer == "yes"
}

func (d *consoleDriver) promptIndex(label string, total int) int {
	for {
		fmt.Printf("%s (1-%d): ", label, total)
		if !d.in.Scan() {
			return 0
		}
		n, err := strconv.Atoi(strings.TrimSpace(d.in.Text()))
		if err != nil || n < 1 || n > total {
			fmt.Printf("Enter a number between 1 and %d.\n", total)
			continue
		}
		return n - 1
	}
}

func (d *consoleDriver) promptLine(label, fallback string) string {
	fmt.Printf("%s: ", label)
	if !d.in.Scan() {
		return fallback
	}
	line := strings.TrimSpace(d.in.Text())
	if line == "" {
		return fallback
	}
	return line
}

func runInteractive(cfg config.Config, seed uint64) error {
	gs, err := game.NewGame(cfg.Territories, cfg.Players, game.NewRand(seed))
	if err != nil {
		return err
	}

	driver := &consoleDriver{in: bufio.NewScanner(os.Stdin)}

	for i := range gs.Players {
		name := driver.promptLine(fmt.Sprintf("Player %d name", i+1), fmt.Sprintf("Player%d", i+1))
		if err := gs.RegisterPlayer(i, name); err != nil {
			return err
		}
	}
	for i := range gs.Territories {
		name := driver.promptLine(fmt.Sprintf("Territory %d name", i+1), fmt.Sprintf("Territory%d", i+1))
		if err := gs.NameTerritory(i, name); err != nil {
			return err
		}
	}

	if err := gs.AssignMissions(); err != nil {
		return err
	}
	if err := gs.DistributeTerritories(); err != nil {
		return err
	}

	for i := range gs.Players {
		p := gs.Players[i]
		note := ""
		if !p.Mission.Implemented() {
			note = " [not tracked in this version]"
		}
		fmt.Printf("%s (%s) - mission: %s%s\n", p.Name, p.Color, p.Mission.Description(), note)
	}

	e := engine.New(gs)
	e.MaxTurns = cfg.MaxTurns
	winner := e.Run(driver)

	printReport(gs, e.Turn())
	if winner >= 0 {
		p := gs.Players[winner]
		fmt.Printf("\n%s (%s) wins: %s\n", p.Name, p.Color, p.Mission.Description())
	} else {
		fmt.Println("\nNo winner this time.")
	}
	return nil
}

func printMap(gs *game.GameState) {
	fmt.Println("\nTerritories:")
	for i, t := range gs.Territories {
		fmt.Printf("  [%d] %-29s %-9s %s - %d troops\n", i+1, t.Name, t.Color, t.Owner, t.Troops)
	}
}

func printStandings(gs *game.GameState) {
	fmt.Println("\nStandings:")
	for i := range gs.Players {
		p := gs.Players[i]
		status := "active"
		if !p.Active {
			status = "eliminated"
		}
		fmt.Printf("  %s (%s): %d territories, %s\n", p.Name, p.Color, p.TerritoriesOwned, status)
	}
}

func printReport(gs *game.GameState, turns int) {
	stats := gs.MapStats()
	fmt.Printf("\nGame over after %d turns.\n", turns)
	fmt.Printf("Troops on the map: %d (avg %.1f per territory)\n", stats.TotalTroops, stats.AverageTroops)
	if stats.StrongestIdx >= 0 {
		fmt.Printf("Strongest territory: %s (%s) with %d troops\n",
			stats.Strongest.Name, stats.Strongest.Owner, stats.Strongest.Troops)
	}
	printStandings(gs)
}
