package lyricsview

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/lrctoolbox/internal/lyrics"
	"github.com/llehouerou/lrctoolbox/internal/ui/testutil"
)

func syncedLyrics(t *testing.T) *lyrics.Lyrics {
	t.Helper()
	l, err := lyrics.LoadLines([]string{
		"[ar:Adele]",
		"[ti:Hello]",
		"[00:00.00]Hello, it's me",
		"[00:05.00]I was wondering",
		"[00:10.00]If after all these years",
		"[00:15.00]You'd like to meet",
	})
	if err != nil {
		t.Fatalf("LoadLines: %v", err)
	}
	return l
}

func newHarness(t *testing.T, l *lyrics.Lyrics) (*testutil.Harness, *Model) {
	t.Helper()
	m := New(l, "")
	h := testutil.NewHarness(m)
	h.SetSize(100, 20)
	return h, m
}

func TestNew_Title(t *testing.T) {
	tests := []struct {
		name  string
		meta  map[string]string
		title string
		want  string
	}{
		{"artist and title", map[string]string{"ar": "Adele", "ti": "Hello"}, "", "Adele - Hello"},
		{"title only", map[string]string{"ti": "Hello"}, "", "Hello"},
		{"nothing", nil, "", "Lyrics"},
		{"explicit", map[string]string{"ti": "Hello"}, "song.lrc", "song.lrc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := lyrics.New().UpdateMetadata(tt.meta)
			m := New(l, tt.title)
			if m.title != tt.want {
				t.Errorf("title = %q, want %q", m.title, tt.want)
			}
		})
	}
}

func TestView_EmptyBeforeSize(t *testing.T) {
	m := New(syncedLyrics(t), "")
	if got := m.View(); got != "" {
		t.Errorf("View() before size = %q, want empty", got)
	}
}

func TestView_ShowsLinesAndFooter(t *testing.T) {
	h, _ := newHarness(t, syncedLyrics(t))

	for _, want := range []string{"Adele - Hello", "Hello, it's me", "You'd like to meet", "synced", "q quit"} {
		if !h.ViewContains(want) {
			t.Errorf("view missing %q:\n%s", want, h.View())
		}
	}
}

func TestView_Unsynced(t *testing.T) {
	l, err := lyrics.LoadLines([]string{"First line", "Second line"})
	if err != nil {
		t.Fatal(err)
	}
	h, m := newHarness(t, l)

	if !h.ViewContains("unsynced") {
		t.Errorf("view missing unsynced marker:\n%s", h.View())
	}

	h.SendKey(" ")
	if m.Playing() {
		t.Error("unsynced lyrics should not start the clock")
	}
	h.SendKey("l")
	if m.Position() != 0 {
		t.Errorf("Position() = %v, want 0", m.Position())
	}
}

func TestView_NoLyrics(t *testing.T) {
	h, _ := newHarness(t, lyrics.New())
	if !h.ViewContains("No lyrics") {
		t.Errorf("view = %q", h.View())
	}
}

func TestUpdate_Quit(t *testing.T) {
	for _, key := range []string{"q", "esc"} {
		t.Run(key, func(t *testing.T) {
			h, _ := newHarness(t, syncedLyrics(t))
			var cmd tea.Cmd
			if key == "esc" {
				cmd = h.SendSpecialKey(tea.KeyEsc)
			} else {
				cmd = h.SendKey(key)
			}
			if !testutil.IsQuit(cmd) {
				t.Errorf("%s should quit", key)
			}
		})
	}
}

func TestUpdate_SeekHighlightsLine(t *testing.T) {
	h, m := newHarness(t, syncedLyrics(t))

	if m.CurrentLine() != -1 {
		t.Fatalf("CurrentLine() = %d, want -1 before seeking", m.CurrentLine())
	}

	h.SendKey("l")
	h.SendKey("l")
	if m.Position() != 10*time.Second {
		t.Errorf("Position() = %v, want 10s", m.Position())
	}
	if m.CurrentLine() != 2 {
		t.Errorf("CurrentLine() = %d, want 2", m.CurrentLine())
	}
	if line := h.FindLine("If after all"); !strings.Contains(line, "▶") {
		t.Errorf("current line not marked: %q", line)
	}

	h.SendKey("h")
	if m.CurrentLine() != 1 {
		t.Errorf("CurrentLine() after seek back = %d, want 1", m.CurrentLine())
	}

	for range 10 {
		h.SendKey("h")
	}
	if m.Position() != 0 {
		t.Errorf("Position() = %v, want clamped to 0", m.Position())
	}
}

func TestUpdate_PlayAndTick(t *testing.T) {
	h, m := newHarness(t, syncedLyrics(t))

	if cmd := h.SendKey(" "); cmd == nil {
		t.Fatal("space should schedule a tick")
	}
	if !m.Playing() {
		t.Fatal("expected playing")
	}

	h.SendMsg(TickMsg{})
	if m.Position() != tickInterval {
		t.Errorf("Position() = %v, want %v", m.Position(), tickInterval)
	}
	if m.CurrentLine() != 0 {
		t.Errorf("CurrentLine() = %d, want 0", m.CurrentLine())
	}

	h.SendKey(" ")
	if m.Playing() {
		t.Error("space should pause")
	}
	if cmd := h.SendMsg(TickMsg{}); cmd != nil {
		t.Error("tick while paused should not reschedule")
	}
	if m.Position() != tickInterval {
		t.Errorf("paused clock moved to %v", m.Position())
	}
}

func TestUpdate_ClockStopsAtEnd(t *testing.T) {
	h, m := newHarness(t, syncedLyrics(t))

	for range 3 {
		h.SendKey("l")
	}
	h.SendKey(" ")
	for range 60 {
		h.SendMsg(TickMsg{})
	}

	if m.Playing() {
		t.Error("clock should stop at the end")
	}
	if m.CurrentLine() != 3 {
		t.Errorf("CurrentLine() = %d, want 3", m.CurrentLine())
	}

	h.SendKey(" ")
	if m.Position() != 0 {
		t.Errorf("restart from end should rewind, got %v", m.Position())
	}
}

func TestUpdate_Scroll(t *testing.T) {
	var lines []string
	for i := range 40 {
		lines = append(lines, lyrics.NewLine("line", lyrics.NewTimestamp(i*1000)).FormattedLyric())
	}
	l, err := lyrics.LoadLines(lines)
	if err != nil {
		t.Fatal(err)
	}
	h, m := newHarness(t, l)
	maxScroll := 40 - (20 - chromeHeight)

	h.SendKey("j")
	h.SendKey("j")
	if m.ScrollOffset() != 2 {
		t.Errorf("ScrollOffset() = %d, want 2", m.ScrollOffset())
	}
	h.SendKey("k")
	if m.ScrollOffset() != 1 {
		t.Errorf("ScrollOffset() = %d, want 1", m.ScrollOffset())
	}
	h.SendKey("G")
	if m.ScrollOffset() != maxScroll {
		t.Errorf("ScrollOffset() = %d, want %d", m.ScrollOffset(), maxScroll)
	}
	h.SendKey("j")
	if m.ScrollOffset() != maxScroll {
		t.Errorf("scrolled past end: %d", m.ScrollOffset())
	}
	h.SendKey("g")
	if m.ScrollOffset() != 0 {
		t.Errorf("ScrollOffset() = %d, want 0", m.ScrollOffset())
	}
	if !h.ViewContains("c follow") {
		t.Error("manual scroll should offer to follow again")
	}

	// Seeking does not move the view while not following.
	for range 5 {
		h.SendKey("l")
	}
	if m.ScrollOffset() != 0 {
		t.Errorf("ScrollOffset() = %d while not following", m.ScrollOffset())
	}

	h.SendKey("c")
	want := m.CurrentLine() - (20-chromeHeight)/2
	if m.ScrollOffset() != want {
		t.Errorf("ScrollOffset() after recenter = %d, want %d", m.ScrollOffset(), want)
	}
}

func TestUpdate_Search(t *testing.T) {
	h, m := newHarness(t, syncedLyrics(t))

	h.SendKey("/")
	h.Type("WONDER")
	if !h.ViewContains("/WONDER") {
		t.Errorf("search prompt not shown:\n%s", h.View())
	}
	h.SendSpecialKey(tea.KeyEnter)

	if m.Match() != 1 {
		t.Errorf("Match() = %d, want 1", m.Match())
	}
	if !h.ViewContains("n/N") {
		t.Error("footer should offer next/prev")
	}
}

func TestUpdate_SearchNextWraps(t *testing.T) {
	h, m := newHarness(t, syncedLyrics(t))

	h.SendKey("/")
	h.Type("e")
	h.SendSpecialKey(tea.KeyEnter)
	first := m.Match()
	if first != 0 {
		t.Fatalf("Match() = %d, want 0", first)
	}

	h.SendKey("n")
	if m.Match() != 1 {
		t.Errorf("Match() after n = %d, want 1", m.Match())
	}
	h.SendKey("N")
	h.SendKey("N")
	if m.Match() != 3 {
		t.Errorf("Match() after wrapping back = %d, want 3", m.Match())
	}
}

func TestUpdate_SearchNoMatchAndCancel(t *testing.T) {
	h, m := newHarness(t, syncedLyrics(t))

	h.SendKey("/")
	h.Type("zzz")
	h.SendSpecialKey(tea.KeyEnter)
	if m.Match() != -1 {
		t.Errorf("Match() = %d, want -1", m.Match())
	}
	if !h.ViewContains(`no match for "zzz"`) {
		t.Errorf("view missing no match notice:\n%s", h.View())
	}

	h.SendKey("/")
	h.Type("hello")
	if cmd := h.SendSpecialKey(tea.KeyEsc); testutil.IsQuit(cmd) {
		t.Error("esc in search should cancel, not quit")
	}
	if m.searching {
		t.Error("esc should leave search mode")
	}
	if m.query != "zzz" {
		t.Errorf("cancelled search changed query to %q", m.query)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{5 * time.Second, "0:05"},
		{65 * time.Second, "1:05"},
		{10*time.Minute + 1500*time.Millisecond, "10:02"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestUpdate_Help(t *testing.T) {
	h, m := newHarness(t, syncedLyrics(t))
	h.SetSize(100, 40)

	h.SendKey("?")
	if !h.ViewContains("Seek +5s") {
		t.Errorf("help not shown:\n%s", h.View())
	}
	if h.ViewContains("Hello, it's me") {
		t.Error("help should replace the lyrics")
	}

	// Any key closes help without acting.
	h.SendKey("l")
	if m.showHelp {
		t.Error("help still shown")
	}
	if m.Position() != 0 {
		t.Errorf("closing help seeked to %v", m.Position())
	}
	if !h.ViewContains("Hello, it's me") {
		t.Error("lyrics not shown after help")
	}
}
