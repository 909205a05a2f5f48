// Package config provides YAML/TOML configuration loading for the game:
// tile size, difficulty presets and the color palette.
package config

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// MinTileSize is the smallest tile that leaves a visible square.
const MinTileSize = 2

// Config is the complete game configuration.
type Config struct {
	TileSize          int          `yaml:"tile_size" toml:"tile_size"`
	DefaultDifficulty string       `yaml:"default_difficulty" toml:"default_difficulty"`
	Difficulties      []Difficulty `yaml:"difficulties" toml:"difficulties"`
	Palette           Palette      `yaml:"palette" toml:"palette"`
}

// Palette holds hex colors for the board. Empty entries fall back to defaults.
type Palette struct {
	Background string `yaml:"background" toml:"background"`
	Body       string `yaml:"body" toml:"body"`
	Head       string `yaml:"head" toml:"head"`
	Food       string `yaml:"food" toml:"food"`
}

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	// Squares are drawn tile-1 pixels wide, so a tile of 1 draws nothing.
	if c.TileSize < MinTileSize {
		return fmt.Errorf("%w: tile_size must be >= %d, got %d", ErrInvalidConfig, MinTileSize, c.TileSize)
	}
	if len(c.Difficulties) == 0 {
		return fmt.Errorf("%w: at least one difficulty is required", ErrInvalidConfig)
	}

	seen := make(map[string]bool, len(c.Difficulties))
	for i, d := range c.Difficulties {
		if d.Name == "" {
			return fmt.Errorf("%w: difficulty #%d has no name", ErrInvalidConfig, i+1)
		}
		if seen[d.Name] {
			return fmt.Errorf("%w: duplicate difficulty %q", ErrInvalidConfig, d.Name)
		}
		seen[d.Name] = true
		if d.IntervalMS <= 0 {
			return fmt.Errorf("%w: difficulty %q interval_ms must be positive, got %d", ErrInvalidConfig, d.Name, d.IntervalMS)
		}
	}

	if c.DefaultDifficulty != "" && !seen[c.DefaultDifficulty] {
		return fmt.Errorf("%w: default_difficulty %q is not defined", ErrInvalidConfig, c.DefaultDifficulty)
	}

	for name, v := range map[string]string{
		"background": c.Palette.Background,
		"body":       c.Palette.Body,
		"head":       c.Palette.Head,
		"food":       c.Palette.Food,
	} {
		if v != "" && !hexColor.MatchString(v) {
			return fmt.Errorf("%w: palette.%s %q is not a hex color", ErrInvalidConfig, name, v)
		}
	}
	return nil
}

// withDefaults fills optional fields that a partial file may leave empty.
func (c Config) withDefaults() Config {
	def := Default()
	if c.TileSize == 0 {
		c.TileSize = def.TileSize
	}
	if len(c.Difficulties) == 0 {
		c.Difficulties = def.Difficulties
	}
	if c.DefaultDifficulty == "" {
		c.DefaultDifficulty = c.Difficulties[0].Name
		for _, d := range c.Difficulties {
			if d.Name == def.DefaultDifficulty {
				c.DefaultDifficulty = d.Name
				break
			}
		}
	}
	if c.Palette.Background == "" {
		c.Palette.Background = def.Palette.Background
	}
	if c.Palette.Body == "" {
		c.Palette.Body = def.Palette.Body
	}
	if c.Palette.Head == "" {
		c.Palette.Head = def.Palette.Head
	}
	if c.Palette.Food == "" {
		c.Palette.Food = def.Palette.Food
	}
	return c
}
