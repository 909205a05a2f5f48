package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Surface is the immediate-mode drawing target used by Render.
// core.Canvas implements it.
type Surface interface {
	Width() int
	Height() int
	Resize(width, height int)
	SetFill(c core.Color)
	FillRect(x, y, w, h int)
}

// Render paints background, snake and food. The head is painted again after
// the body so it stands out. Squares are tileSize-1 wide, leaving a one
// pixel gap between tiles.
func Render(dst Surface, st *State, tileSize int) {
	dst.SetFill(core.ColorBackground)
	dst.FillRect(0, 0, dst.Width(), dst.Height())

	if len(st.Snake) > 0 {
		dst.SetFill(core.ColorBody)
		for _, seg := range st.Snake {
			fillTile(dst, seg, tileSize)
		}
		dst.SetFill(core.ColorHead)
		fillTile(dst, st.Snake[0], tileSize)
	}

	if st.Food != NoCell {
		dst.SetFill(core.ColorFood)
		fillTile(dst, st.Food, tileSize)
	}
}

func fillTile(dst Surface, c Cell, tileSize int) {
	dst.FillRect(c.X*tileSize, c.Y*tileSize, tileSize-1, tileSize-1)
}
