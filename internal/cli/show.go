package cli

import (
	"github.com/spf13/cobra"

	"github.com/llehouerou/lrctoolbox/internal/errmsg"
)

func (a *app) showCommand() *cobra.Command {
	var noMetadata bool

	cmd := &cobra.Command{
		Use:   "show <source>",
		Short: "Print the metadata and lyrics of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := loadSource(args[0], cmd.InOrStdin())
			if err != nil {
				return failWith(errmsg.OpLyricsLoad, sourceName(args[0]), err)
			}

			out := cmd.OutOrStdout()
			if !noMetadata {
				writeLines(out, l.FormattedLines())
			}
			writeLines(out, l.Lyrics())
			return nil
		},
	}

	cmd.Flags().BoolVar(&noMetadata, "no-metadata", false, "print the lyrics only")
	return cmd
}
