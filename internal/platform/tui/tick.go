// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and the collaborators the
// session controller drives: timer, presenter and difficulty selector.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the timer run that scheduled it.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick after interval.
func tickCmd(interval time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// Timer implements snake.Timer on top of tea.Tick.
//
// Bubble Tea has no cancellable timers, so each run gets a generation number
// and ticks from older generations are dropped. Start and the tick handler
// queue the next tea.Cmd; the model drains it with Cmd after every update.
type Timer struct {
	gen      uint64
	active   bool
	interval time.Duration
	pending  tea.Cmd
}

// Start begins a new run, invalidating any in-flight tick.
func (t *Timer) Start(interval time.Duration) {
	t.gen++
	t.active = true
	t.interval = interval
	t.pending = tickCmd(interval, t.gen)
}

// Stop marks the timer inactive. Calling it when not running is a no-op.
func (t *Timer) Stop() {
	t.active = false
	t.pending = nil
}

// Accept reports whether msg belongs to the current run. When it does the
// next tick is queued before the caller advances the game, so a Stop during
// that tick cancels it again.
func (t *Timer) Accept(msg TickMsg) bool {
	if !t.active || msg.Gen != t.gen {
		return false
	}
	t.pending = tickCmd(t.interval, t.gen)
	return true
}

// Cmd returns and clears the queued command.
func (t *Timer) Cmd() tea.Cmd {
	cmd := t.pending
	t.pending = nil
	return cmd
}

// Active reports whether a run is in progress.
func (t *Timer) Active() bool {
	return t.active
}
