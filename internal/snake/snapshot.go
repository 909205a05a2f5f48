package snake

import (
	"fmt"
	"strings"
	"time"
)

// Snapshot captures the session state for tests, logging and debugging.
type Snapshot struct {
	Ticks     uint64
	Phase     Phase
	Score     int
	SnakeLen  int
	HeadX     int
	HeadY     int
	Dir       Direction
	FoodX     int
	FoodY     int
	TileCount int
	Interval  time.Duration
}

// Snapshot returns the current session snapshot.
func (c *Controller) Snapshot() Snapshot {
	headX, headY := 0, 0
	if len(c.state.Snake) > 0 {
		headX = c.state.Snake[0].X
		headY = c.state.Snake[0].Y
	}

	return Snapshot{
		Ticks:     c.ticks,
		Phase:     c.phase,
		Score:     c.state.Score,
		SnakeLen:  len(c.state.Snake),
		HeadX:     headX,
		HeadY:     headY,
		Dir:       c.state.Heading,
		FoodX:     c.state.Food.X,
		FoodY:     c.state.Food.Y,
		TileCount: c.grid.TileCount,
		Interval:  c.interval,
	}
}

// DebugState returns a string representation of the session.
func (c *Controller) DebugState() string {
	s := c.Snapshot()
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, Phase: %s, Score: %d\n", s.Ticks, s.Phase, s.Score))
	b.WriteString(fmt.Sprintf("Snake len: %d, Direction: %s, Interval: %s\n", s.SnakeLen, s.Dir, s.Interval))
	b.WriteString(fmt.Sprintf("Head: (%d, %d), Food: (%d, %d), Tiles: %d\n", s.HeadX, s.HeadY, s.FoodX, s.FoodY, s.TileCount))
	return b.String()
}
