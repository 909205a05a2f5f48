package snake

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTileSize is returned when the tile edge is not positive.
	ErrInvalidTileSize = errors.New("snake: tile size must be positive")
	// ErrBoardTooSmall is returned when the surface cannot hold a single tile.
	ErrBoardTooSmall = errors.New("snake: surface too small for one tile")
)

// Grid is the discrete coordinate space derived from the surface size.
type Grid struct {
	TileSize   int // Tile edge in pixels
	TileCount  int // Tiles per side; the board is square
	CanvasSize int // Canvas edge in pixels, a multiple of TileSize
}

// ComputeGrid derives the board from the surface width.
// CanvasSize is the largest multiple of tileSize not exceeding the width.
func ComputeGrid(surfaceWidth, tileSize int) (Grid, error) {
	if tileSize <= 0 {
		return Grid{}, fmt.Errorf("%w: got %d", ErrInvalidTileSize, tileSize)
	}
	tiles := surfaceWidth / tileSize
	if surfaceWidth < 0 || tiles < 1 {
		return Grid{}, fmt.Errorf("%w: width %d, tile %d", ErrBoardTooSmall, surfaceWidth, tileSize)
	}
	return Grid{
		TileSize:   tileSize,
		TileCount:  tiles,
		CanvasSize: tiles * tileSize,
	}, nil
}

// Contains reports whether c lies on the board.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.TileCount && c.Y >= 0 && c.Y < g.TileCount
}

// Area returns the number of cells on the board.
func (g Grid) Area() int {
	return g.TileCount * g.TileCount
}
