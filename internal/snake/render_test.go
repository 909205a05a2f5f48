package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRender(t *testing.T) {
	canvas := core.NewCanvas(6, 6)
	st := State{
		Snake: []Cell{{1, 1}, {0, 1}},
		Food:  Cell{2, 2},
	}

	Render(canvas, &st, 2)

	expected := strings.Join([]string{
		"......",
		"......",
		"o.O...",
		"......",
		"....*.",
		"......",
	}, "\n")
	if canvas.String() != expected {
		t.Errorf("Render() =\n%s\nexpected\n%s", canvas.String(), expected)
	}
}

func TestRenderLargeTiles(t *testing.T) {
	canvas := core.NewCanvas(8, 8)
	st := State{
		Snake: []Cell{{0, 0}},
		Food:  Cell{1, 1},
	}

	Render(canvas, &st, 4)

	expected := strings.Join([]string{
		"OOO.....",
		"OOO.....",
		"OOO.....",
		"........",
		"....***.",
		"....***.",
		"....***.",
		"........",
	}, "\n")
	if canvas.String() != expected {
		t.Errorf("Render() =\n%s\nexpected\n%s", canvas.String(), expected)
	}
}

func TestRenderSkipsMissingFood(t *testing.T) {
	canvas := core.NewCanvas(4, 4)
	st := State{
		Snake: []Cell{{1, 1}},
		Food:  NoCell,
	}

	Render(canvas, &st, 2)

	if strings.ContainsRune(canvas.String(), '*') {
		t.Errorf("NoCell food should not be drawn:\n%s", canvas.String())
	}
}

func TestRenderOverwritesPreviousFrame(t *testing.T) {
	canvas := core.NewCanvas(4, 4)
	st := State{Snake: []Cell{{0, 0}}, Food: Cell{1, 1}}
	Render(canvas, &st, 2)

	st.Snake = []Cell{{1, 0}}
	st.Food = Cell{0, 1}
	Render(canvas, &st, 2)

	expected := "..O.\n....\n*...\n...."
	if canvas.String() != expected {
		t.Errorf("Render() =\n%s\nexpected\n%s", canvas.String(), expected)
	}
}
