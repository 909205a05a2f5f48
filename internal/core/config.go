package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The platform uses it to size the board and seed the RNG.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TileSize int   // Tile edge in canvas pixels
	Seed     int64 // RNG seed (0 = time based, chosen by the platform)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TileSize: 2,
		Seed:     0,
	}
}
