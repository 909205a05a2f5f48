package config

import (
	"fmt"
	"time"
)

// Difficulty is a named tick interval.
type Difficulty struct {
	Name       string `yaml:"name" toml:"name"`
	IntervalMS int    `yaml:"interval_ms" toml:"interval_ms"`
}

// Interval returns the tick interval as a duration.
func (d Difficulty) Interval() time.Duration {
	return time.Duration(d.IntervalMS) * time.Millisecond
}

func (d Difficulty) String() string {
	return fmt.Sprintf("%s (%dms)", d.Name, d.IntervalMS)
}

// Difficulty looks up a difficulty by name.
func (c Config) Difficulty(name string) (Difficulty, bool) {
	for _, d := range c.Difficulties {
		if d.Name == name {
			return d, true
		}
	}
	return Difficulty{}, false
}

// DifficultyIndex returns the position of the named difficulty, or -1.
func (c Config) DifficultyIndex(name string) int {
	for i, d := range c.Difficulties {
		if d.Name == name {
			return i
		}
	}
	return -1
}

// ApplyDifficultyPreset makes name the default selection.
func ApplyDifficultyPreset(cfg *Config, name string) error {
	if name == "" {
		return nil
	}
	if _, ok := cfg.Difficulty(name); !ok {
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, name)
	}
	cfg.DefaultDifficulty = name
	return nil
}
