package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/llehouerou/lrctoolbox/internal/errmsg"
	"github.com/llehouerou/lrctoolbox/internal/logger"
	"github.com/llehouerou/lrctoolbox/internal/lrclib"
	"github.com/llehouerou/lrctoolbox/internal/lyrics"
	"github.com/llehouerou/lrctoolbox/internal/tags"
)

var errMissingTrackInfo = errors.New("artist and title are required, give them as flags or through --audio")

func (a *app) fetchCommand() *cobra.Command {
	var (
		track     lyrics.TrackInfo
		audio     string
		output    string
		printOnly bool
		noCache   bool
		sf        saveFlags
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Find lyrics for a track and save them as LRC",
		Long: `Find lyrics for a track: first an .lrc file next to the audio file, then
the local cache, then lrclib.net. Synced results from lrclib.net are cached.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if audio != "" {
				tag, err := tags.Read(audio)
				if err != nil {
					return failWith(errmsg.OpTagsRead, audio, err)
				}
				track.FilePath = audio
				track.Artist = firstNonEmpty(track.Artist, tag.Artist)
				track.Title = firstNonEmpty(track.Title, tag.Title)
				track.Album = firstNonEmpty(track.Album, tag.Album)
				if track.Duration == 0 {
					track.Duration = tag.Duration
				}
			}
			if track.FilePath == "" && (track.Artist == "" || track.Title == "") {
				return fail(errmsg.OpLyricsFetch, errMissingTrackInfo)
			}

			var cache lyrics.Cache
			if a.cfg.CacheEnabled() && !noCache {
				c, err := a.openCache()
				if err != nil {
					logger.Warn("lyrics cache unavailable", zap.Error(err))
				} else {
					defer c.Close()
					cache = c
				}
			}
			source := lyrics.NewSource(lrclib.New(a.cfg.LrclibURL(), a.cfg.LrclibTimeout()), cache)

			res := source.Fetch(cmd.Context(), track)
			if res.Err != nil {
				return failWith(errmsg.OpLyricsFetch, trackName(track), res.Err)
			}
			if res.Lyrics == nil {
				return failWith(errmsg.OpLyricsFetch, trackName(track), lrclib.ErrNotFound)
			}
			logger.Info("lyrics found",
				zap.String("track", trackName(track)),
				zap.String("source", res.Source),
				zap.Bool("synced", res.Lyrics.IsSynced()))

			opts := sf.options(cmd, a.cfg)
			out := cmd.OutOrStdout()
			if printOnly {
				writeLines(out, res.Lyrics.Format(opts))
				return nil
			}

			target := output
			switch {
			case target != "":
			case res.Source == lyrics.SourceLocal:
				fmt.Fprintf(out, "Lyrics already saved at %s\n", lyrics.LrcPathForAudio(track.FilePath))
				return nil
			case track.FilePath != "":
				target = lyrics.LrcPathForAudio(track.FilePath)
			default:
				target = safeFileName(track.Artist+" - "+track.Title) + ".lrc"
			}

			if err := res.Lyrics.SaveFile(target, opts); err != nil {
				return failWith(errmsg.OpLyricsSave, target, err)
			}
			fmt.Fprintf(out, "Saved %s lyrics from %s to %s\n", syncLabel(res.Lyrics), res.Source, target)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&track.Artist, "artist", "", "track artist")
	flags.StringVar(&track.Title, "title", "", "track title")
	flags.StringVar(&track.Album, "album", "", "album, narrows the lrclib.net match")
	flags.DurationVar(&track.Duration, "duration", 0, "track length, narrows the lrclib.net match (e.g. 3m25s)")
	flags.StringVar(&audio, "audio", "", "audio file to read the track information from")
	flags.StringVarP(&output, "output", "o", "", "target file (default: next to --audio, else \"<artist> - <title>.lrc\")")
	flags.BoolVar(&printOnly, "print", false, "print the lyrics instead of saving them")
	flags.BoolVar(&noCache, "no-cache", false, "bypass the local lyrics cache")
	flags.BoolVar(&sf.overwrite, "overwrite", false, "replace an existing target file")
	flags.BoolVar(&sf.noMetadata, "no-metadata", false, "write the lyrics without metadata tags")
	flags.BoolVar(&sf.collapse, "collapse", false, "fold repeated lines into one multi-timestamp line")
	return cmd
}

// firstNonEmpty returns the first non-empty value.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func trackName(t lyrics.TrackInfo) string {
	switch {
	case t.Artist != "" && t.Title != "":
		return t.Artist + " - " + t.Title
	case t.FilePath != "":
		return filepath.Base(t.FilePath)
	default:
		return t.Title
	}
}

func syncLabel(l *lyrics.Lyrics) string {
	if l.IsSynced() {
		return "synced"
	}
	return "plain"
}

// safeFileName replaces characters that are not allowed in file names.
func safeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
}
