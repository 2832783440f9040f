package lyrics

import "strings"

// Line represents a single lyric line with an optional timestamp.
// Lines are plain values: two lines are equal iff text and timestamp match.
type Line struct {
	Text      string
	Timestamp Timestamp
}

// NewLine creates a line with trimmed text.
func NewLine(text string, ts Timestamp) Line {
	return Line{Text: strings.TrimSpace(text), Timestamp: ts}
}

// HasTimestamp reports whether the line is timestamped.
func (l Line) HasTimestamp() bool {
	return l.Timestamp.Valid()
}

// FormattedLyric returns the line as it appears in an LRC file:
// the timestamp token followed by the text, or the bare text when unsynced.
func (l Line) FormattedLyric() string {
	if !l.Timestamp.Valid() {
		return l.Text
	}
	return FormatTimestamp(l.Timestamp.Millis()) + l.Text
}

func (l Line) String() string {
	return l.FormattedLyric()
}
