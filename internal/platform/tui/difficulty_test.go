package tui

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func TestDifficultySelector(t *testing.T) {
	s := NewDifficultySelector(config.Default())

	if s.Current().Name != "normal" {
		t.Fatalf("Current() = %q, expected normal", s.Current().Name)
	}
	if s.TickInterval() != 100*time.Millisecond {
		t.Errorf("TickInterval() = %v, expected 100ms", s.TickInterval())
	}

	if err := s.Next(); err != nil {
		t.Fatalf("Next() failed: %v", err)
	}
	if s.Current().Name != "hard" {
		t.Errorf("After Next: %q, expected hard", s.Current().Name)
	}
	if err := s.Next(); err != nil || s.Current().Name != "easy" {
		t.Errorf("Next should wrap to easy, got %q (%v)", s.Current().Name, err)
	}
	if err := s.Prev(); err != nil || s.Current().Name != "hard" {
		t.Errorf("Prev should wrap to hard, got %q (%v)", s.Current().Name, err)
	}
}

func TestDifficultySelectorLocked(t *testing.T) {
	s := NewDifficultySelector(config.Default())
	p := NewPresenter(s)

	p.SetDifficultyLocked(true)
	if err := s.Next(); !errors.Is(err, ErrDifficultyLocked) {
		t.Errorf("Next() while locked = %v, expected ErrDifficultyLocked", err)
	}
	if s.Current().Name != "normal" {
		t.Errorf("Locked selector changed to %q", s.Current().Name)
	}

	p.SetDifficultyLocked(false)
	if err := s.Prev(); err != nil || s.Current().Name != "easy" {
		t.Errorf("Prev() after unlock = %q (%v), expected easy", s.Current().Name, err)
	}
}

func TestPresenterDefaults(t *testing.T) {
	p := NewPresenter(nil)
	if p.Overlay() != snake.OverlayStart || p.StartLabel() != snake.LabelStart || p.Score() != 0 {
		t.Errorf("NewPresenter() = %+v, expected start overlay and label", p)
	}
	p.SetDifficultyLocked(true) // no selector attached
}
