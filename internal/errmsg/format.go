// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"errors"
	"fmt"

	"github.com/llehouerou/lrctoolbox/internal/lrclib"
	"github.com/llehouerou/lrctoolbox/internal/lyrics"
	"github.com/llehouerou/lrctoolbox/internal/tags"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Lyrics files
	OpLyricsLoad    Op = "load lyrics"
	OpLyricsSave    Op = "save lyrics"
	OpLyricsConvert Op = "convert lyrics"

	// Fetching
	OpLyricsFetch Op = "fetch lyrics"
	OpCacheOpen   Op = "open lyrics cache"
	OpCacheList   Op = "list cached lyrics"
	OpCacheRead   Op = "read cached lyrics"
	OpCacheDelete Op = "remove cached lyrics"
	OpCacheClear  Op = "clear lyrics cache"

	// Audio files
	OpTagsRead      Op = "read file tags"
	OpLyricsExtract Op = "extract lyrics"
	OpLyricsEmbed   Op = "embed lyrics"

	// Viewer
	OpView Op = "display lyrics"

	// Initialization
	OpConfigLoad Op = "load configuration"
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	msg := fmt.Sprintf("Failed to %s: %v", op, err)
	if hint := Hint(err); hint != "" {
		msg += " (" + hint + ")"
	}
	return msg
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	msg := fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
	if hint := Hint(err); hint != "" {
		msg += " (" + hint + ")"
	}
	return msg
}

// Hint suggests how to get past a known error, or returns "".
func Hint(err error) string {
	switch {
	case errors.Is(err, lyrics.ErrAlreadyExists):
		return "use --overwrite to replace it"
	case errors.Is(err, lyrics.ErrUnsupportedFormat):
		return "lyrics files must end in .lrc or .txt"
	case errors.Is(err, lrclib.ErrNotFound):
		return "try without --album or --duration"
	case errors.Is(err, tags.ErrUnsupported):
		return "supported audio: mp3, flac, opus, ogg, m4a"
	}
	return ""
}
