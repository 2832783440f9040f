// Package lyrics provides LRC lyrics parsing, serialization and sourcing.
package lyrics

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Path marks a string as a filesystem path for Load.
type Path string

// ParseLRC parses LRC format lyrics from a reader.
func ParseLRC(r io.Reader) (*Lyrics, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return LoadLines(lines)
}

// LoadLines builds a document from raw LRC lines.
//
// Trailing blank lines are dropped. Lines are classified one by one; lyric
// lines are kept in order and metadata is merged, last value winning. If every
// line carries the same timestamp the timestamps are cleared, otherwise lines
// out of order are sorted by timestamp.
func LoadLines(lines []string) (*Lyrics, error) {
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	if end == 0 {
		return nil, &TypeError{Index: -1, Value: lines, Msg: "lines must be a non-empty list of strings"}
	}

	l := New()
	for _, raw := range lines[:end] {
		p := ParseLine(raw)
		switch p.Kind {
		case KindLine:
			l.lines = append(l.lines, p.Line)
		case KindLines:
			l.lines = append(l.lines, p.Lines...)
		case KindMetadata:
			l.Set(p.Key, p.Value)
		}
	}

	l.neutralizeTimestamps()
	return l, nil
}

// Load builds a document from whatever src is:
//   - []string, []*string or []any: raw lines (nil entries are blank lines)
//   - Path: a file, see LoadFile
//   - string: a file if it names an existing path, inline LRC text otherwise
//   - io.Reader: see ParseLRC
func Load(src any) (*Lyrics, error) {
	switch v := src.(type) {
	case []string:
		return LoadLines(v)
	case []*string:
		lines := make([]string, len(v))
		for i, s := range v {
			if s != nil {
				lines[i] = *s
			}
		}
		return LoadLines(lines)
	case []any:
		lines, err := textLines(v)
		if err != nil {
			return nil, err
		}
		return LoadLines(lines)
	case Path:
		return LoadFile(string(v))
	case string:
		if pathExists(v) {
			return LoadFile(v)
		}
		return LoadLines(splitLines(v))
	case io.Reader:
		return ParseLRC(v)
	default:
		return nil, &TypeError{Index: -1, Value: src, Msg: fmt.Sprintf("cannot load lyrics from %T", src)}
	}
}

func textLines(items []any) ([]string, error) {
	lines := make([]string, len(items))
	for i, item := range items {
		switch v := item.(type) {
		case nil:
		case string:
			lines[i] = v
		case *string:
			if v != nil {
				lines[i] = *v
			}
		default:
			return nil, &TypeError{Index: i, Value: item, Msg: "lines must be strings"}
		}
	}
	return lines, nil
}

func pathExists(s string) bool {
	if s == "" || strings.ContainsAny(s, "\r\n") {
		return false
	}
	_, err := os.Stat(s)
	return err == nil
}

// splitLines splits text on \n, \r\n or \r.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}

// sortLines orders lines by timestamp, keeping the relative order of equal
// keys. Lines without a timestamp sort as 0.
func sortLines(lines []Line) {
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Timestamp.Millis() < lines[j].Timestamp.Millis()
	})
}
