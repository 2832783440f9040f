package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/llehouerou/lrctoolbox/internal/errmsg"
	"github.com/llehouerou/lrctoolbox/internal/keymap"
	"github.com/llehouerou/lrctoolbox/internal/ui/lyricsview"
)

func (a *app) viewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view <source>",
		Short: "Browse lyrics in the terminal and preview their timing",
		Long: "Browse lyrics in the terminal and preview their timing.\n\nKeys:\n\n" +
			strings.Join(keymap.Help(), "\n"),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := args[0]
			l, err := loadSource(src, cmd.InOrStdin())
			if err != nil {
				return failWith(errmsg.OpLyricsLoad, sourceName(src), err)
			}

			title := ""
			if l.Title == "" {
				title = sourceName(src)
			}
			return fail(errmsg.OpView, lyricsview.Run(l, title))
		},
	}
}
