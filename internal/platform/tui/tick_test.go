package tui

import (
	"testing"
	"time"
)

func TestTimerStartQueuesTick(t *testing.T) {
	var tm Timer
	tm.Start(50 * time.Millisecond)

	if !tm.Active() {
		t.Error("Timer should be active after Start")
	}
	if tm.Cmd() == nil {
		t.Error("Start should queue a tick command")
	}
	if tm.Cmd() != nil {
		t.Error("Cmd should clear the queued command")
	}
}

func TestTimerAcceptsOnlyCurrentGeneration(t *testing.T) {
	var tm Timer
	tm.Start(50 * time.Millisecond)
	first := tm.gen
	tm.Cmd()

	if !tm.Accept(TickMsg{Gen: first}) {
		t.Fatal("Tick of the current run should be accepted")
	}
	if tm.Cmd() == nil {
		t.Error("Accept should queue the next tick")
	}

	tm.Start(50 * time.Millisecond)
	if tm.Accept(TickMsg{Gen: first}) {
		t.Error("Tick of a previous run should be dropped")
	}
	if !tm.Accept(TickMsg{Gen: tm.gen}) {
		t.Error("Tick of the restarted run should be accepted")
	}
}

func TestTimerStopIsIdempotent(t *testing.T) {
	var tm Timer
	tm.Stop() // never started
	if tm.Active() {
		t.Error("Timer should not be active")
	}

	tm.Start(10 * time.Millisecond)
	gen := tm.gen
	tm.Stop()
	tm.Stop()

	if tm.Active() {
		t.Error("Timer should be inactive after Stop")
	}
	if tm.Cmd() != nil {
		t.Error("Stop should drop the queued tick")
	}
	if tm.Accept(TickMsg{Gen: gen}) {
		t.Error("In-flight tick should be dropped after Stop")
	}
}

func TestTimerStopDuringTickCancelsNext(t *testing.T) {
	var tm Timer
	tm.Start(10 * time.Millisecond)
	tm.Cmd()

	if !tm.Accept(TickMsg{Gen: tm.gen}) {
		t.Fatal("Tick should be accepted")
	}
	// The game ends inside this tick.
	tm.Stop()

	if tm.Cmd() != nil {
		t.Error("No tick should be scheduled after the run stopped")
	}
}
