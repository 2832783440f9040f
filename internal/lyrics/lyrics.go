package lyrics

import (
	"maps"
	"slices"
	"strings"
	"time"
)

// Lyrics is an LRC document: an ordered list of lines plus metadata.
// It owns its lines; setters copy in and Lines copies out.
type Lyrics struct {
	Metadata
	lines []Line
}

// New returns an empty document.
func New() *Lyrics {
	return &Lyrics{}
}

// Lines returns a copy of the lines in display order.
func (l *Lyrics) Lines() []Line {
	return slices.Clone(l.lines)
}

// Len returns the number of lines.
func (l *Lyrics) Len() int {
	return len(l.lines)
}

// Line returns the line at index i.
func (l *Lyrics) Line(i int) Line {
	return l.lines[i]
}

// SetLines replaces the lines with a copy of lines.
func (l *Lyrics) SetLines(lines []Line) {
	l.lines = slices.Clone(lines)
}

// SetLinesFromText parses raw LRC lines and replaces the document's lines
// with the result. Metadata found in text is ignored; the document keeps its own.
// An empty slice clears the lines.
func (l *Lyrics) SetLinesFromText(text []string) error {
	if len(text) == 0 {
		l.lines = nil
		return nil
	}
	parsed, err := LoadLines(text)
	if err != nil {
		return err
	}
	l.lines = parsed.lines
	return nil
}

// SetLyrics accepts either raw strings or Line values and dispatches to
// SetLinesFromText or SetLines. Mixing both kinds is an error.
func (l *Lyrics) SetLyrics(items []any) error {
	if len(items) == 0 {
		l.lines = nil
		return nil
	}

	switch items[0].(type) {
	case string:
		text := make([]string, len(items))
		for i, item := range items {
			s, ok := item.(string)
			if !ok {
				return &TypeError{Index: i, Value: item, Msg: "lyrics must all be strings or all be lines"}
			}
			text[i] = s
		}
		return l.SetLinesFromText(text)
	case Line:
		lines := make([]Line, len(items))
		for i, item := range items {
			line, ok := item.(Line)
			if !ok {
				return &TypeError{Index: i, Value: item, Msg: "lyrics must all be strings or all be lines"}
			}
			lines[i] = line
		}
		l.lines = lines
		return nil
	default:
		return &TypeError{Index: 0, Value: items[0], Msg: "lyrics must all be strings or all be lines"}
	}
}

// Lyrics returns the lines as text. Timestamps are included only when the
// document is synced.
func (l *Lyrics) Lyrics() []string {
	synced := l.IsSynced()
	out := make([]string, len(l.lines))
	for i, line := range l.lines {
		if synced {
			out[i] = line.FormattedLyric()
		} else {
			out[i] = line.Text
		}
	}
	return out
}

func (l *Lyrics) String() string {
	return strings.Join(l.Lyrics(), "\n")
}

// IsSynced reports whether the lyrics are usable for synchronized display:
// not empty, timestamps in ascending order and not all the same.
func (l *Lyrics) IsSynced() bool {
	return len(l.lines) > 0 &&
		l.HasTimestampsInAscendingOrder() &&
		!l.HasTimestampsAllEqual()
}

// HasTimestampsInAscendingOrder reports whether every line is timestamped and
// timestamps never decrease. Needs at least two lines.
func (l *Lyrics) HasTimestampsInAscendingOrder() bool {
	if len(l.lines) < 2 || l.IsMissingAnyTimestamp() {
		return false
	}
	for i := 1; i < len(l.lines); i++ {
		if l.lines[i-1].Timestamp.Millis() > l.lines[i].Timestamp.Millis() {
			return false
		}
	}
	return true
}

// HasTimestampsAllEqual reports whether all adjacent timestamps are equal,
// absent ones included. Needs at least two lines.
func (l *Lyrics) HasTimestampsAllEqual() bool {
	if len(l.lines) < 2 {
		return false
	}
	for i := 1; i < len(l.lines); i++ {
		if l.lines[i-1].Timestamp != l.lines[i].Timestamp {
			return false
		}
	}
	return true
}

// IsMissingAnyTimestamp reports whether any line has no timestamp.
func (l *Lyrics) IsMissingAnyTimestamp() bool {
	for _, line := range l.lines {
		if !line.HasTimestamp() {
			return true
		}
	}
	return false
}

// LineAt returns the index of the lyric line at the given playback position.
// Returns -1 if no line is active yet or if lyrics are unsynced.
func (l *Lyrics) LineAt(pos time.Duration) int {
	if len(l.lines) == 0 || !l.IsSynced() {
		return -1
	}

	// Find the last line that starts at or before pos
	idx := -1
	for i, line := range l.lines {
		if line.Timestamp.Duration() <= pos {
			idx = i
		} else {
			break
		}
	}
	return idx
}

// UpdateMetadata sets every key of metadata, accepting LRC tags or canonical
// field names. Keys are applied in sorted order.
func (l *Lyrics) UpdateMetadata(metadata map[string]string) *Lyrics {
	for _, k := range slices.Sorted(maps.Keys(metadata)) {
		l.Set(k, metadata[k])
	}
	return l
}

// Clone returns a deep copy sharing nothing with l.
func (l *Lyrics) Clone() *Lyrics {
	return &Lyrics{
		Metadata: l.Metadata.clone(),
		lines:    slices.Clone(l.lines),
	}
}

// Equal reports whether both documents have the same lines and metadata.
func (l *Lyrics) Equal(other *Lyrics) bool {
	if l == nil || other == nil {
		return l == other
	}
	return slices.Equal(l.lines, other.lines) && l.Metadata.equal(&other.Metadata)
}

// neutralizeTimestamps turns a degenerate file where every line has the same
// timestamp into an unsynced one, and sorts lines that are out of order.
func (l *Lyrics) neutralizeTimestamps() {
	if l.HasTimestampsAllEqual() {
		lines := make([]Line, len(l.lines))
		for i, line := range l.lines {
			lines[i] = Line{Text: line.Text}
		}
		l.lines = lines
		return
	}
	if !l.HasTimestampsInAscendingOrder() {
		sortLines(l.lines)
	}
}
