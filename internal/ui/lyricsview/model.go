// Package lyricsview is a terminal viewer for LRC documents. Synced lyrics
// can be previewed with a clock that highlights lines as it runs.
package lyricsview

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/lrctoolbox/internal/keymap"
	"github.com/llehouerou/lrctoolbox/internal/lyrics"
)

const (
	// tickInterval is how often the preview clock advances.
	tickInterval = 100 * time.Millisecond
	// seekStep is the jump applied by left/right.
	seekStep = 5 * time.Second
	// tailDuration keeps the clock running after the last line.
	tailDuration = 5 * time.Second
	// chromeHeight is the title, footer and the blank lines around them.
	chromeHeight = 4
)

// TickMsg advances the preview clock.
type TickMsg struct{}

// Model displays one lyrics document.
type Model struct {
	lyrics *lyrics.Lyrics
	title  string
	styles styles
	keys   *keymap.Resolver

	width, height int

	// Preview clock, synced documents only
	position    time.Duration
	playing     bool
	currentLine int

	scrollOffset int
	autoScroll   bool

	showHelp bool

	searching bool
	input     textinput.Model
	query     string
	match     int
}

// New creates a viewer for l. An empty title is derived from the metadata.
func New(l *lyrics.Lyrics, title string) *Model {
	if l == nil {
		l = lyrics.New()
	}
	if title == "" {
		title = defaultTitle(l)
	}

	input := textinput.New()
	input.Prompt = "/"
	input.Placeholder = "search"

	return &Model{
		lyrics:      l,
		title:       title,
		styles:      newStyles(),
		keys:        keymap.Default(),
		currentLine: -1,
		autoScroll:  true,
		input:       input,
		match:       -1,
	}
}

func defaultTitle(l *lyrics.Lyrics) string {
	switch {
	case l.Artist != "" && l.Title != "":
		return l.Artist + " - " + l.Title
	case l.Title != "":
		return l.Title
	default:
		return "Lyrics"
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.scrollOffset = min(m.scrollOffset, m.maxScroll())
		return m, nil
	case TickMsg:
		return m, m.handleTick()
	case tea.KeyMsg:
		if m.searching {
			return m, m.handleSearchKey(msg)
		}
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	action := m.keys.Resolve(msg.String())
	if m.showHelp && action != keymap.ActionQuit {
		m.showHelp = false
		return nil
	}

	switch action {
	case keymap.ActionQuit:
		return tea.Quit
	case keymap.ActionHelp:
		m.showHelp = true
	case keymap.ActionScrollDown:
		m.scroll(1)
	case keymap.ActionScrollUp:
		m.scroll(-1)
	case keymap.ActionPageDown:
		m.scroll(m.visibleHeight() / 2)
	case keymap.ActionPageUp:
		m.scroll(-m.visibleHeight() / 2)
	case keymap.ActionJumpStart:
		m.autoScroll = false
		m.scrollOffset = 0
	case keymap.ActionJumpEnd:
		m.autoScroll = false
		m.scrollOffset = m.maxScroll()
	case keymap.ActionFollow:
		m.autoScroll = true
		m.centerOn(m.currentLine)
	case keymap.ActionPlayPause:
		return m.togglePlaying()
	case keymap.ActionSeekForward:
		m.seek(m.position + seekStep)
	case keymap.ActionSeekBack:
		m.seek(m.position - seekStep)
	case keymap.ActionRewind:
		m.seek(0)
	case keymap.ActionSearch:
		m.searching = true
		m.input.SetValue("")
		return m.input.Focus()
	case keymap.ActionNextMatch:
		m.findNext(m.match+1, 1)
	case keymap.ActionPrevMatch:
		m.findNext(m.match-1, -1)
	}
	return nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		m.searching = false
		m.input.Blur()
		return nil
	case tea.KeyEnter:
		m.searching = false
		m.input.Blur()
		m.query = strings.TrimSpace(m.input.Value())
		m.match = -1
		m.findNext(max(m.scrollOffset, 0), 1)
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) scroll(delta int) {
	m.autoScroll = false
	m.scrollOffset = max(0, min(m.scrollOffset+delta, m.maxScroll()))
}

// togglePlaying starts or pauses the preview clock.
func (m *Model) togglePlaying() tea.Cmd {
	if !m.lyrics.IsSynced() {
		return nil
	}
	m.playing = !m.playing
	if !m.playing {
		return nil
	}
	if m.position >= m.end() {
		m.seek(0)
	}
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg { return TickMsg{} })
}

func (m *Model) handleTick() tea.Cmd {
	if !m.playing {
		return nil
	}
	m.seek(m.position + tickInterval)
	if m.position >= m.end() {
		m.playing = false
		return nil
	}
	return tick()
}

// seek moves the preview clock and follows the current line.
func (m *Model) seek(pos time.Duration) {
	if !m.lyrics.IsSynced() {
		return
	}
	m.position = max(0, min(pos, m.end()))
	line := m.lyrics.LineAt(m.position)
	if line != m.currentLine {
		m.currentLine = line
		if m.autoScroll {
			m.centerOn(line)
		}
	}
}

// end is where the preview clock stops.
func (m *Model) end() time.Duration {
	n := m.lyrics.Len()
	if n == 0 {
		return 0
	}
	return m.lyrics.Line(n-1).Timestamp.Duration() + tailDuration
}

// findNext moves the match to the next line containing the query, starting
// at from and wrapping around in direction dir.
func (m *Model) findNext(from, dir int) {
	n := m.lyrics.Len()
	if m.query == "" || n == 0 {
		return
	}
	needle := strings.ToLower(m.query)
	for i := range n {
		idx := ((from+dir*i)%n + n) % n
		if strings.Contains(strings.ToLower(m.lyrics.Line(idx).Text), needle) {
			m.match = idx
			m.autoScroll = false
			m.centerOn(idx)
			return
		}
	}
	m.match = -1
}

func (m *Model) centerOn(line int) {
	if line < 0 {
		return
	}
	m.scrollOffset = max(0, min(line-m.visibleHeight()/2, m.maxScroll()))
}

func (m *Model) visibleHeight() int {
	return max(m.height-chromeHeight, 1)
}

func (m *Model) maxScroll() int {
	return max(m.lyrics.Len()-m.visibleHeight(), 0)
}

// Position returns the preview clock.
func (m *Model) Position() time.Duration {
	return m.position
}

// CurrentLine returns the line highlighted by the clock, -1 if none.
func (m *Model) CurrentLine() int {
	return m.currentLine
}

// Match returns the line of the last search hit, -1 if none.
func (m *Model) Match() int {
	return m.match
}

// ScrollOffset returns the first visible line.
func (m *Model) ScrollOffset() int {
	return m.scrollOffset
}

// Playing reports whether the preview clock runs.
func (m *Model) Playing() bool {
	return m.playing
}

// Run shows l full screen until the user quits.
func Run(l *lyrics.Lyrics, title string) error {
	_, err := tea.NewProgram(New(l, title), tea.WithAltScreen()).Run()
	return err
}
