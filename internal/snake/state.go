// Package snake implements the Snake game: grid model, entity state, the
// per-tick update engine, food placement, rendering onto a pixel surface,
// input routing and the session state machine.
//
// The package has no dependency on the terminal. Timing, presentation and
// the drawing surface are supplied by the platform through small interfaces.
package snake

import (
	"fmt"
	"slices"
	"strings"
)

// Cell is an integer grid coordinate.
type Cell struct {
	X, Y int
}

// NoCell marks the absence of food when the snake covers the whole board.
var NoCell = Cell{X: -1, Y: -1}

// Step returns the neighbouring cell in the given direction.
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the unit offset of one move. Y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts a direction name ("up", "down", "left", "right").
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	default:
		return DirRight, fmt.Errorf("snake: unknown direction %q", s)
	}
}

// State is the mutable entity state advanced by Tick.
type State struct {
	Snake   []Cell    // Head at index 0
	Food    Cell      // NoCell when the board is full
	Heading Direction // Direction applied by the last successful move
	Pending Direction // Requested direction for the next move
	Score   int
}

// NewState places a one-cell snake at the board center heading right.
// Food is left unset; the caller places it.
func NewState(g Grid) State {
	center := g.TileCount / 2
	return State{
		Snake:   []Cell{{X: center, Y: center}},
		Food:    NoCell,
		Heading: DirRight,
		Pending: DirRight,
	}
}

// Head returns the first snake cell.
func (s State) Head() Cell {
	return s.Snake[0]
}

// Occupies reports whether any snake segment is on c.
func (s State) Occupies(c Cell) bool {
	return slices.Contains(s.Snake, c)
}

// Clone returns a deep copy so callers can inspect state without aliasing.
func (s State) Clone() State {
	s.Snake = slices.Clone(s.Snake)
	return s
}
