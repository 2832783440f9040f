package lyricsview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/lrctoolbox/internal/keymap"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render(runewidth.Truncate(m.title, m.width, "...")))
	b.WriteString("\n\n")
	if m.showHelp {
		b.WriteString(m.renderHelp())
	} else {
		b.WriteString(m.renderLines())
	}
	b.WriteString("\n\n")
	if m.searching {
		b.WriteString(m.input.View())
	} else {
		footer := runewidth.Truncate(m.buildFooter(), m.width, "...")
		if m.lyrics.Len() > 0 && !m.lyrics.IsSynced() {
			b.WriteString(m.styles.warning.Render(footer))
		} else {
			b.WriteString(m.styles.footer.Render(footer))
		}
	}
	return b.String()
}

func (m *Model) renderLines() string {
	if m.lyrics.Len() == 0 {
		return m.styles.line.Render("No lyrics")
	}

	start := min(m.scrollOffset, m.lyrics.Len())
	end := min(start+m.visibleHeight(), m.lyrics.Len())
	textWidth := max(m.width-2, 1)

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		text := runewidth.Truncate(m.lyrics.Line(i).Text, textWidth, "...")
		switch {
		case i == m.currentLine:
			lines = append(lines, m.styles.current.Render("▶ "+text))
		case i == m.match:
			lines = append(lines, "  "+m.styles.match.Render(text))
		default:
			lines = append(lines, m.styles.line.Render("  "+text))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) renderHelp() string {
	lines := keymap.Help()
	lines = lines[:min(len(lines), m.visibleHeight())]
	for i, l := range lines {
		lines[i] = runewidth.Truncate(l, m.width, "...")
	}
	return m.styles.line.Render(strings.Join(lines, "\n"))
}

func (m *Model) buildFooter() string {
	var parts []string

	if m.lyrics.IsSynced() {
		parts = append(parts, fmt.Sprintf("%s / %s", formatDuration(m.position), formatDuration(m.end())))
		if m.playing {
			parts = append(parts, "playing")
		} else {
			parts = append(parts, "synced")
		}
		if !m.autoScroll {
			parts = append(parts, "c follow")
		}
		parts = append(parts, "space play")
	} else if m.lyrics.Len() > 0 {
		parts = append(parts, "unsynced")
	}

	if m.query != "" {
		if m.match < 0 {
			parts = append(parts, fmt.Sprintf("no match for %q", m.query))
		} else {
			parts = append(parts, "n/N next/prev")
		}
	}
	if m.maxScroll() > 0 {
		parts = append(parts, "j/k scroll")
	}
	parts = append(parts, "/ search", "? help", "q quit")

	return strings.Join(parts, " · ")
}

// formatDuration formats a duration as m:ss.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	m := d / time.Minute
	s := (d % time.Minute) / time.Second
	return fmt.Sprintf("%d:%02d", m, s)
}
