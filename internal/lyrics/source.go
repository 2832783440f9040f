package lyrics

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/llehouerou/lrctoolbox/internal/logger"
	"github.com/llehouerou/lrctoolbox/internal/lrclib"
)

// Fetch result sources.
const (
	SourceLocal    = "local"
	SourceCache    = "cache"
	SourceAPI      = "api"
	SourceNotFound = "not_found"
)

// Cache stores raw LRC text fetched from the API.
type Cache interface {
	Lookup(artist, title string) (lrc string, ok bool, err error)
	Store(artist, title, album, lrc string) error
}

// Remote looks lyrics up on a lyrics service.
type Remote interface {
	Get(ctx context.Context, q lrclib.Query) (*lrclib.LyricsResult, error)
}

// Source provides lyrics from local files, cache, or the lrclib API.
type Source struct {
	remote Remote
	cache  Cache
}

// NewSource creates a new lyrics source. cache may be nil.
func NewSource(remote Remote, cache Cache) *Source {
	return &Source{remote: remote, cache: cache}
}

// TrackInfo contains the information needed to fetch lyrics.
type TrackInfo struct {
	FilePath string // Path to audio file (for local .lrc lookup)
	Artist   string
	Title    string
	Album    string
	Duration time.Duration
}

// FetchResult contains the result of a lyrics fetch.
type FetchResult struct {
	Lyrics *Lyrics
	Source string // one of the Source* constants
	Err    error
}

// Fetch retrieves lyrics for a track using the priority order:
// 1. Local .lrc file (same directory as audio file)
// 2. Cached lyrics
// 3. lrclib API (and cache the result)
func (s *Source) Fetch(ctx context.Context, track TrackInfo) FetchResult {
	if track.FilePath != "" {
		if l := loadLocal(LrcPathForAudio(track.FilePath)); l != nil {
			return FetchResult{Lyrics: l, Source: SourceLocal}
		}
	}

	// Need artist and title for cache/API lookup
	if track.Artist == "" || track.Title == "" {
		return FetchResult{Source: SourceNotFound}
	}

	if l := s.fromCache(track); l != nil {
		return FetchResult{Lyrics: l, Source: SourceCache}
	}

	return s.fetchFromAPI(ctx, track)
}

// loadLocal returns nil when path is missing or unreadable.
func loadLocal(path string) *Lyrics {
	if _, err := os.Stat(path); err != nil {
		logger.Debug("no local lyrics file", zap.String("path", path))
		return nil
	}
	l, err := LoadFile(path)
	if err != nil {
		logger.Debug("local lyrics file unusable", zap.String("path", path), zap.Error(err))
		return nil
	}
	return l
}

func (s *Source) fromCache(track TrackInfo) *Lyrics {
	if s.cache == nil {
		return nil
	}
	text, ok, err := s.cache.Lookup(track.Artist, track.Title)
	if err != nil {
		logger.Warn("lyrics cache lookup failed", zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}
	l, err := LoadLines(splitLines(text))
	if err != nil {
		return nil
	}
	return l
}

// fetchFromAPI fetches lyrics from the lrclib API.
func (s *Source) fetchFromAPI(ctx context.Context, track TrackInfo) FetchResult {
	if s.remote == nil {
		return FetchResult{Source: SourceNotFound}
	}
	result, err := s.remote.Get(ctx, lrclib.Query{
		Artist:   track.Artist,
		Title:    track.Title,
		Album:    track.Album,
		Duration: track.Duration,
	})
	if err != nil {
		// ErrNotFound is not a real error, just means no lyrics available
		if errors.Is(err, lrclib.ErrNotFound) {
			return FetchResult{Source: SourceNotFound}
		}
		return FetchResult{Source: SourceNotFound, Err: err}
	}

	l := lyricsFromResult(result)
	if l == nil || l.Len() == 0 {
		return FetchResult{Source: SourceNotFound}
	}

	if result.HasSyncedLyrics() && s.cache != nil {
		if err := s.cache.Store(track.Artist, track.Title, track.Album, result.SyncedLyrics); err != nil {
			logger.Warn("lyrics cache store failed", zap.Error(err))
		}
	}

	return FetchResult{Lyrics: l, Source: SourceAPI}
}

// lyricsFromResult parses an API result, preferring synced lyrics, and
// fills missing metadata from the result.
func lyricsFromResult(result *lrclib.LyricsResult) *Lyrics {
	var text string
	switch {
	case result.HasSyncedLyrics():
		text = result.SyncedLyrics
	case result.HasPlainLyrics():
		text = result.PlainLyrics
	default:
		return nil
	}

	l, err := LoadLines(splitLines(text))
	if err != nil {
		return nil
	}

	if l.Artist == "" {
		l.Artist = result.ArtistName
	}
	if l.Title == "" {
		l.Title = result.TrackName
	}
	if l.Album == "" {
		l.Album = result.AlbumName
	}
	if l.Length == "" {
		l.Length = result.Length()
	}
	return l
}

// LrcPathForAudio returns the expected .lrc file path for an audio file.
func LrcPathForAudio(audioPath string) string {
	ext := filepath.Ext(audioPath)
	return audioPath[:len(audioPath)-len(ext)] + ".lrc"
}
