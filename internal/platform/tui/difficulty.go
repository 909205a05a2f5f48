package tui

import (
	"errors"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// ErrDifficultyLocked is returned when the difficulty is changed during a run.
var ErrDifficultyLocked = errors.New("tui: difficulty is locked while running")

// DifficultySelector is the difficulty control. It implements
// snake.DifficultySource and is locked by the presenter while a run is active.
type DifficultySelector struct {
	levels []config.Difficulty
	index  int
	locked bool
}

// NewDifficultySelector selects the config's default difficulty.
func NewDifficultySelector(cfg config.Config) *DifficultySelector {
	s := &DifficultySelector{levels: cfg.Difficulties}
	if i := cfg.DifficultyIndex(cfg.DefaultDifficulty); i >= 0 {
		s.index = i
	}
	return s
}

// TickInterval returns the selected interval.
func (s *DifficultySelector) TickInterval() time.Duration {
	if len(s.levels) == 0 {
		return 0
	}
	return s.levels[s.index].Interval()
}

// Current returns the selected difficulty.
func (s *DifficultySelector) Current() config.Difficulty {
	if len(s.levels) == 0 {
		return config.Difficulty{}
	}
	return s.levels[s.index]
}

// Next selects the following difficulty, wrapping around.
func (s *DifficultySelector) Next() error {
	return s.step(1)
}

// Prev selects the preceding difficulty, wrapping around.
func (s *DifficultySelector) Prev() error {
	return s.step(-1)
}

func (s *DifficultySelector) step(delta int) error {
	if s.locked {
		return ErrDifficultyLocked
	}
	if n := len(s.levels); n > 0 {
		s.index = (s.index + delta + n) % n
	}
	return nil
}

// SetLocked enables or disables changes.
func (s *DifficultySelector) SetLocked(locked bool) {
	s.locked = locked
}

// Locked reports whether changes are refused.
func (s *DifficultySelector) Locked() bool {
	return s.locked
}
