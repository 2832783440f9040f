// Package tags reads track information and embedded lyrics from music
// files, and embeds lyrics back into them.
// It covers MP3, FLAC, Ogg (Opus/Vorbis), and M4A files.
package tags

import (
	"errors"
	"path/filepath"
	"strings"
	"time"
)

// File extensions supported by the tags package.
const (
	ExtMP3  = ".mp3"
	ExtFLAC = ".flac"
	ExtOPUS = ".opus"
	ExtOGG  = ".ogg"
	ExtOGA  = ".oga"
	ExtM4A  = ".m4a"
	ExtMP4  = ".mp4"
)

// id3Magic is the magic bytes for ID3v2 header detection.
const id3Magic = "ID3"

// lyricsKey is the Vorbis comment and TagLib property holding lyrics.
const lyricsKey = "LYRICS"

// ErrUnsupported is returned for files that are not a known music format.
var ErrUnsupported = errors.New("unsupported music file")

// Tag is the track information needed to look lyrics up or save them.
type Tag struct {
	Path        string
	Title       string
	Artist      string
	AlbumArtist string
	Album       string

	// Lyrics holds the embedded lyrics text, LRC or plain.
	Lyrics string

	// Duration is zero when the stream length could not be read.
	Duration time.Duration
}

// HasTrackInfo reports whether the tag has enough to query a lyrics service.
func (t *Tag) HasTrackInfo() bool {
	return t.Artist != "" && t.Title != ""
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// IsMusicFile returns true if the path has a supported music file extension.
func IsMusicFile(path string) bool {
	switch ext(path) {
	case ExtMP3, ExtFLAC, ExtOPUS, ExtOGG, ExtOGA, ExtM4A, ExtMP4:
		return true
	}
	return false
}
