package lyrics

import (
	"errors"
	"testing"
	"time"
)

func sampleLines() []Line {
	return []Line{
		{Text: "Foo bar", Timestamp: NewTimestamp(0)},
		{Text: "Baz qux", Timestamp: NewTimestamp(5000)},
		{Text: "Quux quuz", Timestamp: NewTimestamp(10000)},
	}
}

func TestLine_FormattedLyric(t *testing.T) {
	tests := []struct {
		line Line
		want string
	}{
		{Line{Text: "Hello"}, "Hello"},
		{Line{Text: "Hello", Timestamp: NewTimestamp(1000)}, "[00:01.00]Hello"},
		{Line{Text: "Hello", Timestamp: NewTimestamp(200001)}, "[03:20.00]Hello"},
		{Line{Text: "Hello", Timestamp: NewTimestamp(200111)}, "[03:20.11]Hello"},
	}
	for _, tt := range tests {
		if got := tt.line.FormattedLyric(); got != tt.want {
			t.Errorf("FormattedLyric(%+v) = %q, want %q", tt.line, got, tt.want)
		}
		if got := tt.line.String(); got != tt.want {
			t.Errorf("String(%+v) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestNewLine_TrimsText(t *testing.T) {
	if got := NewLine("  spaced \t", NoTimestamp); got.Text != "spaced" {
		t.Errorf("Text = %q, want %q", got.Text, "spaced")
	}
}

func TestLyrics_SetLinesAndLyrics(t *testing.T) {
	l := New()
	lines := sampleLines()
	l.SetLines(lines)

	assertStrings(t, l.Lyrics(), []string{
		"[00:00.00]Foo bar",
		"[00:05.00]Baz qux",
		"[00:10.00]Quux quuz",
	})

	// The document keeps its own copy
	lines[0].Text = "changed"
	if l.Line(0).Text != "Foo bar" {
		t.Error("SetLines must copy its input")
	}
	got := l.Lines()
	got[1].Text = "changed"
	if l.Line(1).Text != "Baz qux" {
		t.Error("Lines must return a copy")
	}
}

func TestLyrics_SetLinesFromText(t *testing.T) {
	l := New()
	l.Artist = "Kept"
	err := l.SetLinesFromText([]string{
		"[ar:Ignored]",
		"[00:00.00]Foo bar",
		"[00:05.00]Baz qux",
		"[00:10.00]Quux quuz",
	})
	if err != nil {
		t.Fatalf("SetLinesFromText error: %v", err)
	}
	if l.Artist != "Kept" {
		t.Errorf("Artist = %q, want Kept", l.Artist)
	}
	want := sampleLines()
	for i := range want {
		if l.Line(i) != want[i] {
			t.Errorf("Line(%d) = %+v, want %+v", i, l.Line(i), want[i])
		}
	}

	if err := l.SetLinesFromText(nil); err != nil {
		t.Fatalf("SetLinesFromText(nil) error: %v", err)
	}
	if l.Len() != 0 || len(l.Lyrics()) != 0 {
		t.Errorf("Len() = %d after clearing, want 0", l.Len())
	}
}

func TestLyrics_SetLyrics(t *testing.T) {
	text := []any{"[00:00.00]Foo bar", "[00:05.00]Baz qux", "[00:10.00]Quux quuz"}
	structured := make([]any, 0, 3)
	for _, line := range sampleLines() {
		structured = append(structured, line)
	}

	for _, items := range [][]any{text, structured} {
		l := New()
		if err := l.SetLyrics(items); err != nil {
			t.Fatalf("SetLyrics error: %v", err)
		}
		assertStrings(t, l.Lyrics(), []string{
			"[00:00.00]Foo bar",
			"[00:05.00]Baz qux",
			"[00:10.00]Quux quuz",
		})
	}

	l := New()
	l.SetLines(sampleLines())
	if err := l.SetLyrics(nil); err != nil || l.Len() != 0 {
		t.Errorf("SetLyrics(nil) = %v, Len() = %d", err, l.Len())
	}
}

func TestLyrics_SetLyricsMixed(t *testing.T) {
	tests := []struct {
		name      string
		items     []any
		wantIndex int
	}{
		{"path among strings", []any{"[00:00.00]Foo bar", "[00:05.00]Baz qux", Path("test.lrc")}, 2},
		{"string among lines", []any{Line{Text: "a"}, "b"}, 1},
		{"unsupported first", []any{42, "b"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New()
			l.SetLines(sampleLines())

			err := l.SetLyrics(tt.items)
			var typeErr *TypeError
			if !errors.As(err, &typeErr) {
				t.Fatalf("err = %v, want *TypeError", err)
			}
			if !errors.Is(err, ErrInvalidLines) {
				t.Error("TypeError should match ErrInvalidLines")
			}
			if typeErr.Index != tt.wantIndex {
				t.Errorf("Index = %d, want %d", typeErr.Index, tt.wantIndex)
			}
			if l.Len() != 3 {
				t.Error("failed SetLyrics must leave lines untouched")
			}
		})
	}
}

func TestLyrics_TimestampProperties(t *testing.T) {
	l := New()
	if l.HasTimestampsInAscendingOrder() || l.HasTimestampsAllEqual() || l.IsMissingAnyTimestamp() || l.IsSynced() {
		t.Fatal("empty document must report false for every predicate")
	}

	lines := sampleLines()
	l.SetLines(lines)
	if l.IsMissingAnyTimestamp() {
		t.Error("IsMissingAnyTimestamp() = true, want false")
	}
	if !l.HasTimestampsInAscendingOrder() || !l.IsSynced() {
		t.Error("[0 5000 10000] should be ascending and synced")
	}

	lines[0].Timestamp = NoTimestamp
	l.SetLines(lines)
	if !l.IsMissingAnyTimestamp() {
		t.Error("IsMissingAnyTimestamp() = false, want true")
	}
	if l.HasTimestampsInAscendingOrder() {
		t.Error("a missing timestamp is never ascending")
	}

	lines[0].Timestamp = NewTimestamp(0)
	lines[2].Timestamp = NewTimestamp(2500)
	l.SetLines(lines)
	if l.HasTimestampsInAscendingOrder() {
		t.Error("[0 5000 2500] is not ascending")
	}
	if l.HasTimestampsAllEqual() {
		t.Error("[0 5000 2500] is not all equal")
	}

	lines[1].Timestamp = NewTimestamp(0)
	lines[2].Timestamp = NewTimestamp(0)
	l.SetLines(lines)
	if !l.HasTimestampsAllEqual() {
		t.Error("[0 0 0] should be all equal")
	}
	if !l.HasTimestampsInAscendingOrder() {
		t.Error("[0 0 0] is non-decreasing")
	}
	if l.IsSynced() {
		t.Error("[0 0 0] must not be synced")
	}
}

func TestLyrics_SingleLinePredicates(t *testing.T) {
	l := New()
	l.SetLines([]Line{{Text: "Only", Timestamp: NewTimestamp(1000)}})
	if l.HasTimestampsInAscendingOrder() {
		t.Error("single line: ascending should be false")
	}
	if l.HasTimestampsAllEqual() {
		t.Error("single line: all equal should be false")
	}
	if l.IsSynced() {
		t.Error("single line: synced should be false")
	}
	assertStrings(t, l.Lyrics(), []string{"Only"})
}

func TestLyrics_UpdateMetadata(t *testing.T) {
	l := New()
	l.UpdateMetadata(map[string]string{"artist": "Artist", "album": "Album", "title": "Title"})
	l.UpdateMetadata(map[string]string{"artist": "New Artist", "al": "New Album", "custom": "x"})

	if l.Artist != "New Artist" {
		t.Errorf("Artist = %q, want New Artist", l.Artist)
	}
	if l.Title != "Title" {
		t.Errorf("Title = %q, want Title", l.Title)
	}
	if l.Album != "New Album" {
		t.Errorf("Album = %q, want New Album", l.Album)
	}
	if l.Extra["custom"] != "x" {
		t.Errorf("Extra[custom] = %q, want x", l.Extra["custom"])
	}
}

func TestLyrics_CloneAndEqual(t *testing.T) {
	l := New()
	l.SetLines(sampleLines())
	l.Artist = "Artist"
	l.Set("custom", "x")

	c := l.Clone()
	if !c.Equal(l) || !l.Equal(c) {
		t.Fatal("clone should equal original")
	}

	c.Set("custom", "y")
	if l.Extra["custom"] != "x" {
		t.Error("clone shares the extra map")
	}
	if c.Equal(l) {
		t.Error("different extra tags should not be equal")
	}

	c = l.Clone()
	c.SetLines(c.Lines()[:2])
	if c.Equal(l) {
		t.Error("different lines should not be equal")
	}

	c = l.Clone()
	c.Title = "Title"
	if c.Equal(l) {
		t.Error("different metadata should not be equal")
	}

	var nilLyrics *Lyrics
	if l.Equal(nil) || !nilLyrics.Equal(nil) {
		t.Error("nil comparison mismatch")
	}
}

func TestLyrics_String(t *testing.T) {
	l := New()
	l.SetLines(sampleLines())
	want := "[00:00.00]Foo bar\n[00:05.00]Baz qux\n[00:10.00]Quux quuz"
	if got := l.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestLyrics_LineAt(t *testing.T) {
	l := New()
	l.SetLines([]Line{
		{Text: "First", Timestamp: NewTimestamp(10000)},
		{Text: "Second", Timestamp: NewTimestamp(20000)},
		{Text: "Third", Timestamp: NewTimestamp(30000)},
	})

	tests := []struct {
		pos  time.Duration
		want int
	}{
		{0, -1},               // Before any line
		{5 * time.Second, -1}, // Still before first line
		{10 * time.Second, 0}, // Exactly at first line
		{15 * time.Second, 0}, // Between first and second
		{20 * time.Second, 1}, // Exactly at second line
		{25 * time.Second, 1}, // Between second and third
		{30 * time.Second, 2}, // Exactly at third line
		{60 * time.Second, 2}, // After all lines
	}

	for _, tt := range tests {
		got := l.LineAt(tt.pos)
		if got != tt.want {
			t.Errorf("LineAt(%v) = %d, want %d", tt.pos, got, tt.want)
		}
	}
}

func TestLyrics_LineAt_Unsynced(t *testing.T) {
	if got := New().LineAt(10 * time.Second); got != -1 {
		t.Errorf("LineAt on empty lyrics = %d, want -1", got)
	}

	l := New()
	l.SetLines([]Line{{Text: "a"}, {Text: "b"}})
	if got := l.LineAt(10 * time.Second); got != -1 {
		t.Errorf("LineAt on unsynced lyrics = %d, want -1", got)
	}
}
