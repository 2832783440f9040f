package cli

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llehouerou/lrctoolbox/internal/errmsg"
	"github.com/llehouerou/lrctoolbox/internal/lyrics"
)

func (a *app) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <source>",
		Short: "Describe a lyrics file: size, line count, sync state and metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := args[0]
			l, err := loadSource(src, cmd.InOrStdin())
			if err != nil {
				return failWith(errmsg.OpLyricsLoad, sourceName(src), err)
			}

			out := cmd.OutOrStdout()
			if src != stdinSource {
				if path, err := lyrics.ResolvePath(src); err == nil {
					if st, err := os.Stat(path); err == nil {
						fmt.Fprintf(out, "File:               %s (%s)\n", path, humanize.Bytes(uint64(st.Size())))
					}
				}
			}
			fmt.Fprintf(out, "Lines:              %d\n", l.Len())
			fmt.Fprintf(out, "Synced:             %s\n", yesNo(l.IsSynced()))
			fmt.Fprintf(out, "Ascending:          %s\n", yesNo(l.HasTimestampsInAscendingOrder()))
			fmt.Fprintf(out, "All equal:          %s\n", yesNo(l.HasTimestampsAllEqual()))
			fmt.Fprintf(out, "Missing timestamps: %s\n", yesNo(l.IsMissingAnyTimestamp()))

			fields := l.Fields()
			if len(fields) == 0 {
				fmt.Fprintln(out, "Metadata:           none")
				return nil
			}
			fmt.Fprintln(out, "Metadata:")
			for _, k := range slices.Sorted(maps.Keys(fields)) {
				fmt.Fprintf(out, "  %s: %s\n", k, fields[k])
			}
			return nil
		},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
