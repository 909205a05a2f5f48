package main

import (
	"github.com/vovakirdan/tui-snake/internal/config"
)

// loadConfig loads the config file and applies command line overrides.
func loadConfig(difficulty string, tileSize int) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	if err := config.ApplyDifficultyPreset(&cfg, difficulty); err != nil {
		return config.Config{}, err
	}
	if tileSize != 0 {
		cfg.TileSize = tileSize
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
