package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Fixed screen rows around the board: header above, button bar below.
// The help block under the button bar varies with ShowAll.
const (
	headerRows = 1
	buttonRows = 1
)

// BoardPixels returns the square surface edge, in canvas pixels, available
// for a terminal of the given size when chrome rows are taken by header and
// footer. Each cell is one pixel wide and two tall.
func BoardPixels(width, height, chrome int) int {
	return max(min(width, (height-chrome)*2), 0)
}

// footerRows is the height below the board: button bar plus help.
func (m Model) footerRows() int {
	return buttonRows + lipgloss.Height(m.help.View(m.keys))
}

// chromeRows is every row that is not board.
func (m Model) chromeRows() int {
	return headerRows + m.footerRows()
}

type buttonKind int

const (
	buttonDirection buttonKind = iota
	buttonStart
)

// button is a clickable control in the button bar.
type button struct {
	label string
	kind  buttonKind
	dir   snake.Direction
	rect  core.Rect // in terminal cells
}

// boardRect returns the board area in terminal cells.
func (m Model) boardRect() core.Rect {
	if _, ok := m.ctrl.Grid(); !ok {
		return core.Rect{}
	}
	w := m.canvas.Width()
	x := max((m.width-w)/2, 0)
	return core.NewRect(x, headerRows, w, CanvasRows(m.canvas))
}

// buttonBar lays out the on-screen controls below the board, centered.
func (m Model) buttonBar() []button {
	buttons := []button{
		{label: "←", kind: buttonDirection, dir: snake.DirLeft},
		{label: "↑", kind: buttonDirection, dir: snake.DirUp},
		{label: "↓", kind: buttonDirection, dir: snake.DirDown},
		{label: "→", kind: buttonDirection, dir: snake.DirRight},
		{label: m.view.StartLabel(), kind: buttonStart},
	}

	total := 0
	for i := range buttons {
		w := lipgloss.Width(m.styles.button.Render(buttons[i].label))
		buttons[i].rect = core.NewRect(0, 0, w, 1)
		total += w
	}
	total += len(buttons) - 1

	y := headerRows + CanvasRows(m.canvas)
	if _, ok := m.ctrl.Grid(); !ok {
		y = max(m.height-m.footerRows(), headerRows)
	}

	x := max((m.width-total)/2, 0)
	for i := range buttons {
		buttons[i].rect.X = x
		buttons[i].rect.Y = y
		x += buttons[i].rect.W + 1
	}
	return buttons
}

// buttonAt returns the button under the given cell.
func (m Model) buttonAt(x, y int) (button, bool) {
	for _, b := range m.buttonBar() {
		if b.rect.Contains(x, y) {
			return b, true
		}
	}
	return button{}, false
}
