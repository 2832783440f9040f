package tags

import (
	"fmt"
	"os"
)

// lyricsLanguage is the ISO 639-2 code written in ID3 lyrics frames.
const lyricsLanguage = "eng"

// EmbedLyrics stores text as the file's embedded lyrics, replacing any
// existing ones. Other tags are left untouched.
func EmbedLyrics(path, text string) error {
	if !IsMusicFile(path) {
		return fmt.Errorf("%s: %w", path, ErrUnsupported)
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("file not found: %w", err)
	}

	switch ext(path) {
	case ExtMP3:
		return embedMP3Lyrics(path, text)
	case ExtFLAC:
		return embedFLACLyrics(path, text)
	case ExtM4A, ExtMP4:
		return embedM4ALyrics(path, text)
	default:
		return embedTaglibLyrics(path, text)
	}
}
