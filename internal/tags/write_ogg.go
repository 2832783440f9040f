package tags

import (
	"fmt"

	"go.senan.xyz/taglib"
)

// embedTaglibLyrics writes the LYRICS property of an Ogg file. Properties
// not in the map are kept.
func embedTaglibLyrics(path, text string) error {
	if err := taglib.WriteTags(path, map[string][]string{lyricsKey: {text}}, 0); err != nil {
		return fmt.Errorf("write tags: %w", err)
	}
	return nil
}
