package snake

import (
	"math/rand"
	"slices"
)

// PlaceFood samples uniformly random cells until one is free of the snake.
// Each axis is drawn independently. Returns NoCell when the snake already
// covers every cell, since no amount of retrying could succeed.
func PlaceFood(rng *rand.Rand, tileCount int, snake []Cell) Cell {
	if tileCount <= 0 || len(snake) >= tileCount*tileCount {
		return NoCell
	}
	for {
		c := Cell{X: rng.Intn(tileCount), Y: rng.Intn(tileCount)}
		if !slices.Contains(snake, c) {
			return c
		}
	}
}
