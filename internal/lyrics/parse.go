package lyrics

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/llehouerou/lrctoolbox/internal/logger"
)

// Regular expressions for classifying LRC lines
var (
	// Matches "Lyricist: name" anywhere in the line, including after a timestamp
	lyricistRe = regexp.MustCompile(`(?i)lyricist:\s*(.*)`)

	// Matches one or more contiguous timestamps at the start of a line: [00:12.34][00:45.67]Text
	syncedRe = regexp.MustCompile(`^\s*((?:\[\d{1,7}:\d{1,7}[.:]\d+\])+)(.*)$`)

	// Matches a whole-line metadata tag like [ar:Artist Name]
	metadataRe = regexp.MustCompile(`^\s*\[(\w+):\s?(.*)\]\s*$`)
)

// Kind tells which case of Parsed is populated.
type Kind int

const (
	// KindLine is a single lyric line, timestamped or not.
	KindLine Kind = iota
	// KindLines is an enhanced line: one Line per timestamp, sharing the text.
	KindLines
	// KindMetadata is a key/value metadata pair.
	KindMetadata
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindLines:
		return "lines"
	case KindMetadata:
		return "metadata"
	default:
		return "unknown"
	}
}

// Parsed is the result of classifying one raw line.
type Parsed struct {
	Kind Kind

	Line  Line   // KindLine
	Lines []Line // KindLines

	Key   string // KindMetadata, canonical when known
	Value string // KindMetadata
}

// ParseLine classifies a raw LRC line. In order of precedence it is a
// lyricist credit, a timestamped lyric, a metadata tag, or plain text.
func ParseLine(raw string) Parsed {
	if loc := lyricistRe.FindStringSubmatchIndex(raw); loc != nil {
		logger.Debug("lyricist found", zap.String("line", raw))
		value := strings.TrimSpace(raw[loc[2]:loc[3]])
		if insideBracket(raw[:loc[0]]) {
			value = strings.TrimSpace(strings.TrimSuffix(value, "]"))
		}
		return Parsed{Kind: KindMetadata, Key: "lyricist", Value: value}
	}

	if m := syncedRe.FindStringSubmatch(raw); m != nil {
		logger.Debug("synced lyric found", zap.String("line", raw))
		timestamps := ParseTimestamps(m[1])
		if len(timestamps) == 1 {
			return Parsed{Kind: KindLine, Line: NewLine(m[2], NewTimestamp(timestamps[0]))}
		}
		lines := make([]Line, 0, len(timestamps))
		for _, ts := range timestamps {
			lines = append(lines, NewLine(m[2], NewTimestamp(ts)))
		}
		return Parsed{Kind: KindLines, Lines: lines}
	}

	if m := metadataRe.FindStringSubmatch(raw); m != nil {
		logger.Debug("metadata found", zap.String("line", raw))
		return Parsed{Kind: KindMetadata, Key: CanonicalKey(m[1]), Value: strings.TrimSpace(m[2])}
	}

	logger.Debug("line not matched", zap.String("line", raw))
	return Parsed{Kind: KindLine, Line: NewLine(raw, NoTimestamp)}
}

// insideBracket reports whether prefix leaves a [ open.
func insideBracket(prefix string) bool {
	return strings.LastIndex(prefix, "[") > strings.LastIndex(prefix, "]")
}
