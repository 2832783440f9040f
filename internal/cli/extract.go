package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/llehouerou/lrctoolbox/internal/errmsg"
	"github.com/llehouerou/lrctoolbox/internal/lyrics"
	"github.com/llehouerou/lrctoolbox/internal/tags"
)

var errNoEmbeddedLyrics = errors.New("no embedded lyrics")

func (a *app) extractCommand() *cobra.Command {
	var (
		sf        saveFlags
		printOnly bool
	)

	cmd := &cobra.Command{
		Use:   "extract <audio> [target]",
		Short: "Save the lyrics embedded in an audio file as LRC",
		Long: `Read the lyrics embedded in an audio file (ID3 USLT frame, Vorbis LYRICS
comment or MP4 lyrics atom) and save them. The target defaults to the audio
file name with the .lrc extension. Missing metadata is taken from the tags.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			audio := args[0]
			tag, err := tags.Read(audio)
			if err != nil {
				return failWith(errmsg.OpTagsRead, audio, err)
			}
			if strings.TrimSpace(tag.Lyrics) == "" {
				return failWith(errmsg.OpLyricsExtract, audio, errNoEmbeddedLyrics)
			}

			l, err := lyrics.ParseLRC(strings.NewReader(tag.Lyrics))
			if err != nil {
				return failWith(errmsg.OpLyricsExtract, audio, err)
			}
			fillFromTag(l, tag)

			opts := sf.options(cmd, a.cfg)
			if printOnly {
				writeLines(cmd.OutOrStdout(), l.Format(opts))
				return nil
			}

			target := lyrics.LrcPathForAudio(audio)
			if len(args) == 2 {
				target = args[1]
			}
			if err := l.SaveFile(target, opts); err != nil {
				return failWith(errmsg.OpLyricsSave, target, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Extracted %s lyrics to %s\n", syncLabel(l), target)
			return nil
		},
	}

	sf.register(cmd)
	cmd.Flags().BoolVar(&printOnly, "print", false, "print the lyrics instead of saving them")
	return cmd
}

// fillFromTag sets the metadata the document lacks from the audio tags.
func fillFromTag(l *lyrics.Lyrics, tag *tags.Tag) {
	if l.Artist == "" {
		l.Artist = tag.Artist
	}
	if l.Title == "" {
		l.Title = tag.Title
	}
	if l.Album == "" {
		l.Album = tag.Album
	}
	if l.Length == "" && tag.Duration > 0 {
		l.Length = formatLength(tag.Duration)
	}
}

// formatLength renders a track length as m:ss.
func formatLength(d time.Duration) string {
	secs := int64(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
