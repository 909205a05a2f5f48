package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the hardcoded default configuration.
// It mirrors defaults/snake.yaml and is used if the embedded file cannot be parsed.
func Default() Config {
	return Config{
		TileSize:          2,
		DefaultDifficulty: "normal",
		Difficulties: []Difficulty{
			{Name: "easy", IntervalMS: 150},
			{Name: "normal", IntervalMS: 100},
			{Name: "hard", IntervalMS: 60},
		},
		Palette: Palette{
			Background: "#1f2937",
			Body:       "#10B981",
			Head:       "#34D399",
			Food:       "#EF4444",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
