package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
)

type styles struct {
	title    lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	locked   lipgloss.Style
	button   lipgloss.Style
	start    lipgloss.Style
	box      lipgloss.Style
	gameOver lipgloss.Style
	notice   lipgloss.Style
}

func newStyles(p config.Palette) styles {
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Head)),
		label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		value: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")),
		locked: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		button: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("238")),
		start: lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color(p.Body)),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Body)).
			Padding(0, 2).
			Align(lipgloss.Center),
		gameOver: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Food)),
		notice: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")),
	}
}
