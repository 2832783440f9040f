package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/llehouerou/lrctoolbox/internal/errmsg"
	"github.com/llehouerou/lrctoolbox/internal/lyrics"
	"github.com/llehouerou/lrctoolbox/internal/tags"
)

func (a *app) embedCommand() *cobra.Command {
	var withMetadata bool

	cmd := &cobra.Command{
		Use:   "embed <audio> [source]",
		Short: "Store lyrics inside an audio file",
		Long: `Store lyrics inside an audio file, replacing the lyrics it already has.
The source defaults to the .lrc file next to the audio file.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			audio := args[0]
			src := lyrics.LrcPathForAudio(audio)
			if len(args) == 2 {
				src = args[1]
			}

			l, err := loadSource(src, cmd.InOrStdin())
			if err != nil {
				return failWith(errmsg.OpLyricsLoad, sourceName(src), err)
			}

			opts := a.cfg.SaveOptions()
			opts.WriteMetadata = withMetadata
			text := strings.Join(l.Format(opts), "\n")
			if err := tags.EmbedLyrics(audio, text); err != nil {
				return failWith(errmsg.OpLyricsEmbed, audio, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Embedded %d lines into %s\n", l.Len(), audio)
			return nil
		},
	}

	cmd.Flags().BoolVar(&withMetadata, "metadata", false, "embed the metadata tags along with the lyrics")
	return cmd
}
