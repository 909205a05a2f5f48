package tui

import (
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Presenter records the presentation intents of the controller for View.
// It implements snake.Presenter.
type Presenter struct {
	overlay    snake.Overlay
	score      int
	startLabel string
	difficulty *DifficultySelector
}

// NewPresenter creates a presenter that locks the given selector.
func NewPresenter(difficulty *DifficultySelector) *Presenter {
	return &Presenter{
		overlay:    snake.OverlayStart,
		startLabel: snake.LabelStart,
		difficulty: difficulty,
	}
}

// ShowOverlay implements snake.Presenter.
func (p *Presenter) ShowOverlay(kind snake.Overlay) {
	p.overlay = kind
}

// SetScore implements snake.Presenter.
func (p *Presenter) SetScore(score int) {
	p.score = score
}

// SetDifficultyLocked implements snake.Presenter.
func (p *Presenter) SetDifficultyLocked(locked bool) {
	if p.difficulty != nil {
		p.difficulty.SetLocked(locked)
	}
}

// SetStartLabel implements snake.Presenter.
func (p *Presenter) SetStartLabel(label string) {
	p.startLabel = label
}

// Overlay returns the overlay to draw over the board.
func (p *Presenter) Overlay() snake.Overlay {
	return p.overlay
}

// Score returns the score readout.
func (p *Presenter) Score() int {
	return p.score
}

// StartLabel returns the caption of the start/restart button.
func (p *Presenter) StartLabel() string {
	return p.startLabel
}
