package tags

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
	"go.uber.org/zap"

	"github.com/llehouerou/lrctoolbox/internal/logger"
)

// Read reads track information, embedded lyrics and duration from a music file.
// A missing duration is not an error.
func Read(path string) (*Tag, error) {
	if !IsMusicFile(path) {
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupported)
	}

	t, err := readTags(path)
	if err != nil {
		return nil, err
	}
	if t.Title == "" {
		t.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if t.AlbumArtist == "" {
		t.AlbumArtist = t.Artist
	}

	if d, err := Duration(path); err == nil {
		t.Duration = d
	} else {
		logger.Debug("no duration", zap.String("path", path), zap.Error(err))
	}
	return t, nil
}

func readTags(path string) (*Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		logger.Debug("tag reader failed, using fallback", zap.String("path", path), zap.Error(err))
		switch ext(path) {
		case ExtMP3:
			// dhowden/tag has issues with some UTF-16 encoded ID3 tags
			return readMP3WithID3v2(path)
		case ExtFLAC:
			return readFLACComments(path)
		default:
			return readWithTaglib(path)
		}
	}

	t := &Tag{
		Path:        path,
		Title:       m.Title(),
		Artist:      m.Artist(),
		AlbumArtist: m.AlbumArtist(),
		Album:       m.Album(),
		Lyrics:      m.Lyrics(),
	}

	// Vorbis comments are not surfaced by Lyrics()
	if t.Lyrics == "" {
		t.Lyrics = rawLyrics(m.Raw())
	}
	if t.Lyrics == "" && ext(path) == ExtMP3 {
		t.Lyrics = readMP3Lyrics(path)
	}
	return t, nil
}

func rawLyrics(raw map[string]any) string {
	for _, k := range []string{"lyrics", "LYRICS", "unsyncedlyrics", "UNSYNCEDLYRICS"} {
		if s, ok := raw[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
