package tags

import (
	"fmt"

	"github.com/Sorrow446/go-mp4tag"
)

func embedM4ALyrics(path, text string) error {
	mp4, err := mp4tag.Open(path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer mp4.Close()

	if err := mp4.Write(&mp4tag.MP4Tags{Lyrics: text}, nil); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
