package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagDifficulty string
	flagTileSize   int
	flagRemote     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Snake in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Arrows/WASD        - Steer
  Mouse drag         - Swipe to steer
  Enter/Space        - Start / restart
  Tab/Shift+Tab      - Change difficulty (before a run)
  ?                  - Toggle help
  Q/Ctrl+C           - Quit

The on-screen buttons below the board can be clicked as well.

With --remote, a WebSocket endpoint is opened at <addr>/input so a phone or
browser can send swipes and button taps to the game.

Examples:
  snake play
  snake play --difficulty easy
  snake play --tile 4
  snake play --remote :8090
  snake play --config ./my-snake.toml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Initial difficulty (see 'snake difficulties')")
	playCmd.Flags().IntVar(&flagTileSize, "tile", 0, "Tile size in canvas pixels (overrides config)")
	playCmd.Flags().StringVar(&flagRemote, "remote", "", "Address for the remote input bridge (e.g. :8090)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(flagDifficulty, flagTileSize)
	if err != nil {
		return err
	}

	// The alternate screen owns stdout, so logs are discarded unless --log-file is set.
	logger, closeLog, err := newLogger("snake", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	rt := core.DefaultConfig()
	rt.TileSize = cfg.TileSize
	rt.Seed = flagSeed

	// Get terminal size early so the first frame has a board
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	logger.Info("starting game",
		"difficulty", cfg.DefaultDifficulty,
		"tile", rt.TileSize,
		"size", [2]int{rt.ScreenW, rt.ScreenH},
	)

	return tui.Run(tui.Options{
		Config:     cfg,
		Runtime:    rt,
		Logger:     logger,
		RemoteAddr: flagRemote,
	})
}
