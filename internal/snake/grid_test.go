package snake

import (
	"errors"
	"testing"
)

func TestComputeGrid(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		tile       int
		canvasSize int
		tileCount  int
	}{
		{"exact multiple", 400, 20, 400, 20},
		{"rounds down", 419, 20, 400, 20},
		{"terminal default", 40, 2, 40, 20},
		{"odd width", 41, 2, 40, 20},
		{"single tile", 3, 2, 2, 1},
		{"tile size one", 7, 1, 7, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := ComputeGrid(tc.width, tc.tile)
			if err != nil {
				t.Fatalf("ComputeGrid(%d, %d) failed: %v", tc.width, tc.tile, err)
			}
			if g.CanvasSize != tc.canvasSize {
				t.Errorf("CanvasSize = %d, expected %d", g.CanvasSize, tc.canvasSize)
			}
			if g.TileCount != tc.tileCount {
				t.Errorf("TileCount = %d, expected %d", g.TileCount, tc.tileCount)
			}
			if g.CanvasSize%tc.tile != 0 || g.CanvasSize > tc.width {
				t.Errorf("CanvasSize %d must be a multiple of %d and <= %d", g.CanvasSize, tc.tile, tc.width)
			}
			if g.TileSize != tc.tile {
				t.Errorf("TileSize = %d, expected %d", g.TileSize, tc.tile)
			}
		})
	}
}

func TestComputeGridErrors(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		tile   int
		target error
	}{
		{"zero tile", 100, 0, ErrInvalidTileSize},
		{"negative tile", 100, -4, ErrInvalidTileSize},
		{"narrower than a tile", 19, 20, ErrBoardTooSmall},
		{"zero width", 0, 2, ErrBoardTooSmall},
		{"negative width", -10, 2, ErrBoardTooSmall},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComputeGrid(tc.width, tc.tile)
			if !errors.Is(err, tc.target) {
				t.Errorf("ComputeGrid(%d, %d) error = %v, expected %v", tc.width, tc.tile, err, tc.target)
			}
		})
	}
}

func TestGridContains(t *testing.T) {
	g := Grid{TileSize: 2, TileCount: 20, CanvasSize: 40}

	tests := []struct {
		cell     Cell
		expected bool
	}{
		{Cell{0, 0}, true},
		{Cell{19, 19}, true},
		{Cell{20, 5}, false},
		{Cell{5, 20}, false},
		{Cell{-1, 5}, false},
		{Cell{5, -1}, false},
	}

	for _, tc := range tests {
		if got := g.Contains(tc.cell); got != tc.expected {
			t.Errorf("Contains(%v) = %v, expected %v", tc.cell, got, tc.expected)
		}
	}
}
