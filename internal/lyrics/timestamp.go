package lyrics

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Matches a single timestamp token like [00:12.34], [00:12.345] or [00:12:34].
// Minutes and seconds are capped at 7 digits so decoding cannot overflow.
var timestampRe = regexp.MustCompile(`\[(\d{1,7}):(\d{1,7})[.:](\d+)\]`)

// Timestamp is the optional start time of a lyric line, in milliseconds.
// The zero value means the line has no timestamp.
type Timestamp struct {
	ms    int
	valid bool
}

// NoTimestamp is the absent timestamp.
var NoTimestamp Timestamp

// NewTimestamp returns a present timestamp. Negative values are clamped to 0.
func NewTimestamp(ms int) Timestamp {
	return Timestamp{ms: max(ms, 0), valid: true}
}

// Valid reports whether the timestamp is present.
func (t Timestamp) Valid() bool {
	return t.valid
}

// Millis returns the timestamp in milliseconds, 0 when absent.
func (t Timestamp) Millis() int {
	return t.ms
}

// Duration returns the timestamp as a time.Duration, 0 when absent.
func (t Timestamp) Duration() time.Duration {
	return time.Duration(t.ms) * time.Millisecond
}

// String returns the [MM:SS.CC] token, or "" when absent.
func (t Timestamp) String() string {
	if !t.valid {
		return ""
	}
	return FormatTimestamp(t.ms)
}

// ParseTimestamp decodes a [MM:SS.CC] token into milliseconds.
//
// The fraction is normalized to three digits: "5" is 500ms, "34" is 340ms and
// "565" is 565ms. Digits past the third are dropped. Tokens that do not match
// decode to 0; the classifier only hands over validated tokens.
func ParseTimestamp(token string) int {
	m := timestampRe.FindStringSubmatch(token)
	if m == nil {
		return 0
	}
	return timestampMillis(m[1], m[2], m[3])
}

// ParseTimestamps decodes every token of a timestamp block, in order.
func ParseTimestamps(block string) []int {
	matches := timestampRe.FindAllStringSubmatch(block, -1)
	out := make([]int, 0, len(matches))
	for _, m := range matches {
		out = append(out, timestampMillis(m[1], m[2], m[3]))
	}
	return out
}

func timestampMillis(mm, ss, frac string) int {
	minutes, _ := strconv.Atoi(mm)
	seconds, _ := strconv.Atoi(ss)

	if len(frac) > 3 {
		frac = frac[:3]
	}
	fraction, _ := strconv.Atoi(frac)
	for i := len(frac); i < 3; i++ {
		fraction *= 10
	}

	return minutes*60_000 + seconds*1000 + fraction
}

// FormatTimestamp encodes milliseconds as [MM:SS.CC].
// Sub-centisecond precision is truncated, never rounded.
func FormatTimestamp(ms int) string {
	ms = max(ms, 0)
	return fmt.Sprintf("[%02d:%02d.%02d]", ms/60_000, ms/1000%60, ms%1000/10)
}
