package core

import (
	"strings"
)

// Canvas is a 2D pixel buffer with an immediate-mode fill API.
// It decouples game rendering from the terminal: the game paints colored
// rectangles and the platform decides how pixels become characters.
type Canvas struct {
	width  int
	height int
	fill   Color
	pixels [][]Color
}

// NewCanvas creates a new canvas with the given dimensions in pixels.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// allocate creates the underlying pixel storage.
func (c *Canvas) allocate() {
	c.pixels = make([][]Color, c.height)
	for y := range c.pixels {
		c.pixels[y] = make([]Color, c.width)
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Bounds returns the canvas area as a rectangle anchored at the origin.
func (c *Canvas) Bounds() Rect {
	return NewRect(0, 0, c.width, c.height)
}

// Resize changes the canvas dimensions. Like a browser canvas, resizing
// discards the current content and resets the fill color.
func (c *Canvas) Resize(width, height int) {
	c.width = max(width, 0)
	c.height = max(height, 0)
	c.fill = ColorDefault
	c.allocate()
}

// SetFill selects the color used by subsequent FillRect calls.
func (c *Canvas) SetFill(color Color) {
	c.fill = color
}

// FillRect paints a rectangle with the current fill color.
// Parts outside the canvas are clipped; non-positive sizes paint nothing.
func (c *Canvas) FillRect(x, y, w, h int) {
	r := NewRect(x, y, w, h).Intersect(c.Bounds())
	for py := r.Y; py < r.Bottom(); py++ {
		row := c.pixels[py]
		for px := r.X; px < r.Right(); px++ {
			row[px] = c.fill
		}
	}
}

// Clear resets every pixel to ColorDefault.
func (c *Canvas) Clear() {
	for y := range c.pixels {
		for x := range c.pixels[y] {
			c.pixels[y][x] = ColorDefault
		}
	}
}

// Get returns the color at the given position.
// Returns ColorDefault for out-of-bounds coordinates.
func (c *Canvas) Get(x, y int) Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return ColorDefault
	}
	return c.pixels[y][x]
}

// asciiGlyphs is the debug representation used by String and Row.
var asciiGlyphs = map[Color]rune{
	ColorDefault:    ' ',
	ColorBackground: '.',
	ColorBody:       'o',
	ColorHead:       'O',
	ColorFood:       '*',
}

// Row returns the given pixel row as ASCII glyphs.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return strings.Repeat(" ", c.width)
	}
	var sb strings.Builder
	sb.Grow(c.width)
	for _, px := range c.pixels[y] {
		g, ok := asciiGlyphs[px]
		if !ok {
			g = '?'
		}
		sb.WriteRune(g)
	}
	return sb.String()
}

// String renders the canvas as ASCII, one line per pixel row.
// Used for debugging and tests.
func (c *Canvas) String() string {
	rows := make([]string, c.height)
	for y := range c.height {
		rows[y] = c.Row(y)
	}
	return strings.Join(rows, "\n")
}
