package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config carries the runtime knobs for the console driver and the
// experiment harness. Values come from the environment; a zero seed means
// "seed from the clock".
type Config struct {
	Seed            uint64 `env:"WAR_SEED"`
	LogLevel        string `env:"WAR_LOG_LEVEL" envDefault:"info"`
	Territories     int    `env:"WAR_TERRITORIES" envDefault:"10"`
	Players         int    `env:"WAR_PLAYERS" envDefault:"4"`
	MaxTurns        int    `env:"WAR_MAX_TURNS" envDefault:"500"`
	ExperimentGames int    `env:"WAR_EXPERIMENT_GAMES" envDefault:"30"`
	ResultsDir      string `env:"WAR_RESULTS_DIR" envDefault:"results"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
