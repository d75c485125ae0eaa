// Package config loads game settings from a YAML file with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"

	"warzone/meta"
	"warzone/strategy"
	"warzone/utils"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type PlayerConfig struct {
	Name     string `yaml:"name"`
	Strategy string `yaml:"strategy"`
}

// Settings are the scalar options that environment variables may override.
type Settings struct {
	Map            string `yaml:"map" env:"WARZONE_MAP"`
	Seed           uint64 `yaml:"seed" env:"WARZONE_SEED"`
	MaxRounds      int    `yaml:"max_rounds" env:"WARZONE_MAX_ROUNDS"`
	StartingArmies int    `yaml:"starting_armies" env:"WARZONE_STARTING_ARMIES"`
	Cards          bool   `yaml:"cards" env:"WARZONE_CARDS"`
	LogLevel       string `yaml:"log_level" env:"LOG_LEVEL"`
}

type Config struct {
	Settings `yaml:",inline"`
	Players  []PlayerConfig `yaml:"players"`
}

// Default returns a runnable two-player game on an embedded map.
func Default() Config {
	return Config{
		Settings: Settings{
			Map:            "compass",
			Seed:           1,
			MaxRounds:      meta.MAX_ROUNDS,
			StartingArmies: meta.STARTING_ARMIES,
			Cards:          true,
			LogLevel:       "info",
		},
		Players: []PlayerConfig{
			{Name: "Aggressor", Strategy: "aggressive"},
			{Name: "Pacifist", Strategy: "benevolent"},
		},
	}
}

// Load reads the YAML file at path over the defaults, then applies environment overrides.
// An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}
	}
	if err := env.Parse(&cfg.Settings); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks the player list and numeric limits.
func (c Config) Validate() error {
	if c.Map == "" {
		return fmt.Errorf("%w: no map", ErrInvalidConfig)
	}
	if len(c.Players) < 2 {
		return fmt.Errorf("%w: need at least two players, got %d", ErrInvalidConfig, len(c.Players))
	}
	if c.MaxRounds <= 0 {
		return fmt.Errorf("%w: max_rounds must be positive", ErrInvalidConfig)
	}
	if c.StartingArmies < 0 {
		return fmt.Errorf("%w: starting_armies must not be negative", ErrInvalidConfig)
	}
	for _, p := range c.Players {
		if !utils.Contains(strategy.Names, p.Strategy) {
			return fmt.Errorf("%w: player %s: %w", ErrInvalidConfig, p.Name, strategy.ErrUnknownStrategy)
		}
	}
	return nil
}
