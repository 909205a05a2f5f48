package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// upperHalf paints the top pixel with the foreground and the bottom pixel
// with the background, so one terminal cell shows two vertical pixels.
// lowerHalf is used when only the bottom pixel has a color.
const (
	upperHalf = "▀"
	lowerHalf = "▄"
)

// Palette maps canvas colors to terminal colors.
type Palette struct {
	colors map[core.Color]lipgloss.TerminalColor
}

// NewPalette builds a palette from configured hex colors.
func NewPalette(p config.Palette) Palette {
	return Palette{colors: map[core.Color]lipgloss.TerminalColor{
		core.ColorDefault:    lipgloss.NoColor{},
		core.ColorBackground: lipgloss.Color(p.Background),
		core.ColorBody:       lipgloss.Color(p.Body),
		core.ColorHead:       lipgloss.Color(p.Head),
		core.ColorFood:       lipgloss.Color(p.Food),
	}}
}

// Color returns the terminal color for a canvas color.
func (p Palette) Color(c core.Color) lipgloss.TerminalColor {
	if tc, ok := p.colors[c]; ok {
		return tc
	}
	return lipgloss.NoColor{}
}

// style returns the style for a cell showing top over bottom.
func (p Palette) style(top, bottom core.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(p.Color(top)).
		Background(p.Color(bottom))
}

// CanvasRows returns the number of terminal rows needed for the canvas.
func CanvasRows(c *core.Canvas) int {
	return (c.Height() + 1) / 2
}

// RenderCanvas converts a canvas to a styled string, one terminal row per
// two pixel rows.
func RenderCanvas(c *core.Canvas, p Palette) string {
	rows := CanvasRows(c)
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(c.Width()*rows*4 + rows)

	for row := range rows {
		if row > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(renderRow(c, p, row, 0, c.Width()))
	}
	return sb.String()
}

// renderRow renders terminal row `row` for pixel columns [x0, x1).
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func renderRow(c *core.Canvas, p Palette, row, x0, x1 int) string {
	x0 = core.Clamp(x0, 0, c.Width())
	x1 = core.Clamp(x1, x0, c.Width())

	var sb strings.Builder
	topY, bottomY := row*2, row*2+1

	x := x0
	for x < x1 {
		top, bottom := c.Get(x, topY), c.Get(x, bottomY)

		// Collect consecutive cells with the same pair
		n := 0
		for x < x1 && c.Get(x, topY) == top && c.Get(x, bottomY) == bottom {
			n++
			x++
		}

		switch {
		case top == core.ColorDefault && bottom == core.ColorDefault:
			sb.WriteString(strings.Repeat(" ", n))
		case top == core.ColorDefault:
			sb.WriteString(p.style(bottom, top).Render(strings.Repeat(lowerHalf, n)))
		default:
			sb.WriteString(p.style(top, bottom).Render(strings.Repeat(upperHalf, n)))
		}
	}
	return sb.String()
}

// overlayCanvas renders the canvas with box drawn centered on top of it.
// The board stays visible around the box. If the box does not fit it is
// placed over a blank area of the canvas size instead.
func overlayCanvas(c *core.Canvas, p Palette, box string) string {
	rows := CanvasRows(c)
	boxLines := strings.Split(box, "\n")
	boxW, boxH := lipgloss.Width(box), len(boxLines)

	if boxW > c.Width() || boxH > rows {
		return lipgloss.Place(c.Width(), rows, lipgloss.Center, lipgloss.Center, box)
	}

	left := (c.Width() - boxW) / 2
	top := (rows - boxH) / 2

	var sb strings.Builder
	for row := range rows {
		if row > 0 {
			sb.WriteRune('\n')
		}
		if row < top || row >= top+boxH {
			sb.WriteString(renderRow(c, p, row, 0, c.Width()))
			continue
		}
		line := boxLines[row-top]
		sb.WriteString(renderRow(c, p, row, 0, left))
		sb.WriteString(line)
		// Pad short box lines so the right side stays aligned.
		if pad := boxW - lipgloss.Width(line); pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
		sb.WriteString(renderRow(c, p, row, left+boxW, c.Width()))
	}
	return sb.String()
}
