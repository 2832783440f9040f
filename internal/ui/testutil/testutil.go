// Package testutil provides helpers for driving bubbletea models in tests.
package testutil

import (
	"regexp"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes ANSI escape codes from a string for easier testing.
func StripANSI(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}

// Harness wraps a model, simulating user input and collecting commands.
type Harness struct {
	model tea.Model
	cmds  []tea.Cmd
}

// NewHarness initializes m and captures its init command.
func NewHarness(m tea.Model) *Harness {
	h := &Harness{model: m}
	if cmd := m.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

// Model returns the current model for type assertion.
func (h *Harness) Model() tea.Model {
	return h.model
}

// SendMsg sends any message to the model and returns the resulting command.
func (h *Harness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey simulates typing key as runes.
func (h *Harness) SendKey(key string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey sends a special key (enter, escape, arrows, ...).
func (h *Harness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

// Type sends each rune of s as its own key press.
func (h *Harness) Type(s string) {
	for _, r := range s {
		h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// SetSize sends a window size message.
func (h *Harness) SetSize(width, height int) {
	h.SendMsg(tea.WindowSizeMsg{Width: width, Height: height})
}

// LastCommand returns the most recent command, or nil if none.
func (h *Harness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// ClearCommands clears the collected commands.
func (h *Harness) ClearCommands() {
	h.cmds = nil
}

// View returns the model's view without styling.
func (h *Harness) View() string {
	return StripANSI(h.model.View())
}

// ViewContains checks if the stripped view contains substr.
func (h *Harness) ViewContains(substr string) bool {
	return strings.Contains(h.View(), substr)
}

// FindLine returns the first view line containing substr, or "".
func (h *Harness) FindLine(substr string) string {
	for line := range strings.SplitSeq(h.View(), "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// IsQuit reports whether cmd produces tea.QuitMsg.
func IsQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}
