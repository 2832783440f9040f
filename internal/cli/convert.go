package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/llehouerou/lrctoolbox/internal/errmsg"
)

func (a *app) convertCommand() *cobra.Command {
	var sf saveFlags

	cmd := &cobra.Command{
		Use:   "convert <source> <target>",
		Short: "Load lyrics and save them as a normalized LRC or text file",
		Long: `Load lyrics and save them again.

Loading clears timestamps shared by every line and sorts lines out of order.
Saving adds the metadata tags unless --no-metadata is given.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, target := args[0], args[1]
			l, err := loadSource(src, cmd.InOrStdin())
			if err != nil {
				return failWith(errmsg.OpLyricsLoad, sourceName(src), err)
			}

			if err := l.SaveFile(target, sf.options(cmd, a.cfg)); err != nil {
				return failWith(errmsg.OpLyricsSave, target, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %d lines to %s\n", l.Len(), target)
			return nil
		},
	}

	sf.register(cmd)
	return cmd
}
