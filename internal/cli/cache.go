package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llehouerou/lrctoolbox/internal/errmsg"
	"github.com/llehouerou/lrctoolbox/internal/state"
)

func (a *app) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the cache of fetched lyrics",
	}
	cmd.AddCommand(
		a.cacheListCommand(),
		a.cacheShowCommand(),
		a.cacheDeleteCommand(),
		a.cacheClearCommand(),
	)
	return cmd
}

// withCache opens the cache for the duration of fn.
func (a *app) withCache(op errmsg.Op, fn func(*state.Cache) error) error {
	c, err := a.openCache()
	if err != nil {
		return fail(errmsg.OpCacheOpen, err)
	}
	defer c.Close()
	return fail(op, fn(c))
}

func (a *app) cacheListCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cached lyrics, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withCache(errmsg.OpCacheList, func(c *state.Cache) error {
				entries, err := c.List(limit)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintln(out, "Cache is empty")
					return nil
				}
				for _, e := range entries {
					name := e.Artist + " - " + e.Title
					if e.Album != "" {
						name += " (" + e.Album + ")"
					}
					fmt.Fprintf(out, "%s\t%s\n", name, humanize.Time(e.FetchedAt))
				}
				total, err := c.Count()
				if err != nil {
					return err
				}
				if total > len(entries) {
					fmt.Fprintf(out, "... %d more\n", total-len(entries))
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "entries to show, 0 for all")
	return cmd
}

func (a *app) cacheShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <artist> <title>",
		Short: "Print the cached LRC text of a track",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withCache(errmsg.OpCacheRead, func(c *state.Cache) error {
				e, err := c.Get(args[0], args[1])
				if err != nil {
					return err
				}
				if e == nil {
					return fmt.Errorf("%s - %s is not cached", args[0], args[1])
				}
				fmt.Fprintln(cmd.OutOrStdout(), e.LRC)
				return nil
			})
		},
	}
}

func (a *app) cacheDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <artist> <title>",
		Short: "Remove one track from the cache",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withCache(errmsg.OpCacheDelete, func(c *state.Cache) error {
				deleted, err := c.Delete(args[0], args[1])
				if err != nil {
					return err
				}
				if !deleted {
					return fmt.Errorf("%s - %s is not cached", args[0], args[1])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s - %s\n", args[0], args[1])
				return nil
			})
		},
	}
}

func (a *app) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached track",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withCache(errmsg.OpCacheClear, func(c *state.Cache) error {
				n, err := c.Clear()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d cached %s\n", n, plural(n, "track", "tracks"))
				return nil
			})
		},
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
