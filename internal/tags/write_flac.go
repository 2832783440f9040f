package tags

import (
	"fmt"
	"strings"

	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"
)

// embedFLACLyrics rewrites the Vorbis comment block with a new LYRICS entry.
func embedFLACLyrics(path, text string) error {
	f, err := flac.ParseFile(path)
	if err != nil {
		return fmt.Errorf("parse file: %w", err)
	}

	old, idx := vorbisComments(f)
	cmts := flacvorbis.New()
	if old != nil {
		cmts.Vendor = old.Vendor
		for _, c := range old.Comments {
			key, _, _ := strings.Cut(c, "=")
			if strings.EqualFold(key, lyricsKey) {
				continue
			}
			cmts.Comments = append(cmts.Comments, c)
		}
	}
	if err := cmts.Add(lyricsKey, text); err != nil {
		return fmt.Errorf("add lyrics: %w", err)
	}

	block := cmts.Marshal()
	if idx >= 0 {
		f.Meta[idx] = &block
	} else {
		f.Meta = append(f.Meta, &block)
	}

	if err := f.Save(path); err != nil {
		return fmt.Errorf("save file: %w", err)
	}
	return nil
}
