package lyricsview

import "github.com/charmbracelet/lipgloss"

// Palette for the viewer.
var (
	colorPrimary = lipgloss.Color("#a78bfa")
	colorAccent  = lipgloss.Color("#f1a208")
	colorBase    = lipgloss.Color("#c0c0c0")
	colorSubtle  = lipgloss.Color("#585858")
	colorError   = lipgloss.Color("#ff5555")
)

type styles struct {
	title   lipgloss.Style
	line    lipgloss.Style
	current lipgloss.Style
	match   lipgloss.Style
	footer  lipgloss.Style
	warning lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Foreground(colorBase).Bold(true),
		line:    lipgloss.NewStyle().Foreground(colorSubtle),
		current: lipgloss.NewStyle().Foreground(colorPrimary).Bold(true),
		match:   lipgloss.NewStyle().Foreground(colorAccent).Underline(true),
		footer:  lipgloss.NewStyle().Foreground(colorSubtle),
		warning: lipgloss.NewStyle().Foreground(colorError),
	}
}
