package keymap

import "strings"

// Binding contexts, in help order.
const (
	ContextGeneral = "general"
	ContextScroll  = "scroll"
	ContextPreview = "preview"
	ContextSearch  = "search"
)

// Binding maps keys to an action.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}

// All contains all key bindings of the viewer.
var All = []Binding{
	{ActionQuit, []string{"q", "esc", "ctrl+c"}, "Quit", ContextGeneral},
	{ActionHelp, []string{"?"}, "Toggle help", ContextGeneral},

	{ActionScrollDown, []string{"j", "down"}, "Scroll down", ContextScroll},
	{ActionScrollUp, []string{"k", "up"}, "Scroll up", ContextScroll},
	{ActionPageDown, []string{"ctrl+d", "pgdown"}, "Half page down", ContextScroll},
	{ActionPageUp, []string{"ctrl+u", "pgup"}, "Half page up", ContextScroll},
	{ActionJumpStart, []string{"g", "home"}, "First line", ContextScroll},
	{ActionJumpEnd, []string{"G", "end"}, "Last line", ContextScroll},
	{ActionFollow, []string{"c"}, "Follow the current line", ContextScroll},

	{ActionPlayPause, []string{" "}, "Start/pause the preview clock", ContextPreview},
	{ActionSeekForward, []string{"l", "right"}, "Seek +5s", ContextPreview},
	{ActionSeekBack, []string{"h", "left"}, "Seek -5s", ContextPreview},
	{ActionRewind, []string{"0"}, "Back to the start", ContextPreview},

	{ActionSearch, []string{"/"}, "Search", ContextSearch},
	{ActionNextMatch, []string{"n"}, "Next match", ContextSearch},
	{ActionPrevMatch, []string{"N"}, "Previous match", ContextSearch},
}

// Contexts lists the binding contexts in help order.
var Contexts = []string{ContextGeneral, ContextScroll, ContextPreview, ContextSearch}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// KeyLabel renders keys for display, e.g. "j/down".
func KeyLabel(keys []string) string {
	labels := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		labels[i] = k
	}
	return strings.Join(labels, "/")
}

// Help renders every binding as "keys  description" lines grouped by
// context, keys padded to a common width.
func Help() []string {
	width := 0
	for _, b := range All {
		width = max(width, len(KeyLabel(b.Keys)))
	}

	var lines []string
	for i, ctx := range Contexts {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, strings.ToUpper(ctx[:1])+ctx[1:])
		for _, b := range ByContext(ctx) {
			label := KeyLabel(b.Keys)
			lines = append(lines, "  "+label+strings.Repeat(" ", width-len(label)+2)+b.Description)
		}
	}
	return lines
}
