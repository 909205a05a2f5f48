package snake

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultTickInterval is used when no difficulty source is configured.
const DefaultTickInterval = 100 * time.Millisecond

var (
	// ErrNoBoard is returned by Start when the last resize produced no board.
	ErrNoBoard = errors.New("snake: no board, surface too small")
	// ErrInvalidInterval is returned by Start for a non-positive tick interval.
	ErrInvalidInterval = errors.New("snake: tick interval must be positive")
)

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseIdle     Phase = iota // Before start or after a reset
	PhaseRunning               // Timer active
	PhaseGameOver              // Timer stopped, final frame frozen
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Overlay selects which message the presentation layer shows over the board.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayStart
	OverlayGameOver
)

// Start/restart control labels.
const (
	LabelStart   = "Start Game"
	LabelRestart = "Restart Game"
)

// Timer is the interval timer owned by the controller. While started, the
// platform calls Controller.Tick roughly every interval. Stop must be safe to
// call when the timer is not running.
type Timer interface {
	Start(interval time.Duration)
	Stop()
}

// Presenter receives presentation intents on phase transitions.
type Presenter interface {
	ShowOverlay(kind Overlay)
	SetScore(score int)
	SetDifficultyLocked(locked bool)
	SetStartLabel(label string)
}

// DifficultySource exposes the currently selected tick interval.
type DifficultySource interface {
	TickInterval() time.Duration
}

// FixedInterval is a DifficultySource that never changes.
type FixedInterval time.Duration

// TickInterval implements DifficultySource.
func (f FixedInterval) TickInterval() time.Duration {
	return time.Duration(f)
}

// Options configures a Controller. Nil collaborators are replaced by no-ops.
type Options struct {
	TileSize   int
	Seed       int64
	Timer      Timer
	Presenter  Presenter
	Difficulty DifficultySource
	Surface    Surface
	Logger     *log.Logger
}

// Controller owns the session: entity state, phase, score and the timer.
// It is not safe for concurrent use; the platform serializes all calls.
type Controller struct {
	tileSize   int
	rng        *rand.Rand
	timer      Timer
	view       Presenter
	difficulty DifficultySource
	surface    Surface
	log        *log.Logger

	grid     Grid
	hasBoard bool
	state    State
	phase    Phase
	interval time.Duration
	ticks    uint64
}

// NewController creates a controller with no board. Call Resize once the
// surface size is known.
func NewController(opts Options) *Controller {
	c := &Controller{
		tileSize:   opts.TileSize,
		rng:        rand.New(rand.NewSource(opts.Seed)),
		timer:      opts.Timer,
		view:       opts.Presenter,
		difficulty: opts.Difficulty,
		surface:    opts.Surface,
		log:        opts.Logger,
	}
	if c.timer == nil {
		c.timer = nopTimer{}
	}
	if c.view == nil {
		c.view = nopPresenter{}
	}
	if c.difficulty == nil {
		c.difficulty = FixedInterval(DefaultTickInterval)
	}
	if c.log == nil {
		c.log = log.New(io.Discard)
	}
	return c
}

// Resize recomputes the grid for a new surface width and resets the session.
// Any run in progress is discarded. When the surface cannot hold a tile the
// board is dropped and the error is returned; Start then fails with ErrNoBoard.
func (c *Controller) Resize(surfaceWidth int) error {
	c.timer.Stop()

	g, err := ComputeGrid(surfaceWidth, c.tileSize)
	if err != nil {
		c.hasBoard = false
		c.grid = Grid{}
		c.state = State{}
		c.phase = PhaseIdle
		if c.surface != nil {
			c.surface.Resize(0, 0)
		}
		c.log.Warn("board unavailable", "width", surfaceWidth, "tile", c.tileSize, "error", err)
		return fmt.Errorf("resize: %w", err)
	}

	c.grid = g
	c.hasBoard = true
	if c.surface != nil {
		c.surface.Resize(g.CanvasSize, g.CanvasSize)
	}
	c.log.Debug("board resized", "tiles", g.TileCount, "canvas", g.CanvasSize)
	c.reset()
	return nil
}

// reset puts a fresh snake, food and score on the board and returns to Idle.
func (c *Controller) reset() {
	c.timer.Stop()
	c.interval = c.difficulty.TickInterval()
	c.state = NewState(c.grid)
	c.state.Food = PlaceFood(c.rng, c.grid.TileCount, c.state.Snake)
	c.phase = PhaseIdle
	c.ticks = 0

	c.view.SetScore(0)
	c.view.ShowOverlay(OverlayStart)
	c.view.SetStartLabel(LabelStart)
	c.view.SetDifficultyLocked(false)
	c.render()
}

// Start begins a run. From GameOver it resets first, so restart is a single
// action. Calling Start while running does nothing.
func (c *Controller) Start() error {
	if !c.hasBoard {
		return ErrNoBoard
	}
	switch c.phase {
	case PhaseRunning:
		return nil
	case PhaseGameOver:
		c.reset()
	}

	interval := c.difficulty.TickInterval()
	if interval <= 0 {
		return fmt.Errorf("%w: got %s", ErrInvalidInterval, interval)
	}
	c.interval = interval
	c.phase = PhaseRunning

	c.view.ShowOverlay(OverlayNone)
	c.view.SetDifficultyLocked(true)
	c.timer.Start(interval)
	c.log.Debug("run started", "interval", interval, "tiles", c.grid.TileCount)
	return nil
}

// Tick advances the run by one step. Ticks outside Running are ignored and
// reported with ok == false.
func (c *Controller) Tick() (res TickResult, ok bool) {
	if c.phase != PhaseRunning {
		return TickResult{}, false
	}

	c.ticks++
	res = c.state.Tick(c.grid, c.rng)
	if res.Outcome.Fatal() {
		c.gameOver(res)
		return res, true
	}

	if res.Outcome == OutcomeAte {
		c.view.SetScore(c.state.Score)
		if c.state.Food == NoCell {
			c.log.Info("board full", "score", c.state.Score, "cells", c.grid.Area())
		}
	}
	c.render()
	return res, true
}

func (c *Controller) gameOver(res TickResult) {
	c.phase = PhaseGameOver
	c.timer.Stop()

	c.view.ShowOverlay(OverlayGameOver)
	c.view.SetStartLabel(LabelRestart)
	c.view.SetDifficultyLocked(false)
	c.log.Info("game over",
		"cause", res.Outcome,
		"at", res.Head,
		"score", c.state.Score,
		"length", len(c.state.Snake),
		"ticks", c.ticks,
	)
}

// RequestDirection sets the heading for the next tick. Requests during
// GameOver and exact reversals of the current heading are rejected.
func (c *Controller) RequestDirection(d Direction) bool {
	if c.phase == PhaseGameOver || !c.hasBoard {
		return false
	}
	if d == c.state.Heading.Opposite() {
		return false
	}
	c.state.Pending = d
	return true
}

func (c *Controller) render() {
	if c.surface == nil || !c.hasBoard {
		return
	}
	Render(c.surface, &c.state, c.grid.TileSize)
}

// Phase returns the current lifecycle state.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Score returns the food eaten since the last reset.
func (c *Controller) Score() int {
	return c.state.Score
}

// Grid returns the current board and whether one exists.
func (c *Controller) Grid() (Grid, bool) {
	return c.grid, c.hasBoard
}

// Interval returns the tick interval of the current or last run.
func (c *Controller) Interval() time.Duration {
	return c.interval
}

// State returns a copy of the entity state.
func (c *Controller) State() State {
	return c.state.Clone()
}

type nopTimer struct{}

func (nopTimer) Start(time.Duration) {}
func (nopTimer) Stop()               {}

type nopPresenter struct{}

func (nopPresenter) ShowOverlay(Overlay)      {}
func (nopPresenter) SetScore(int)             {}
func (nopPresenter) SetDifficultyLocked(bool) {}
func (nopPresenter) SetStartLabel(string)     {}
