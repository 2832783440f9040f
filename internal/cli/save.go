package cli

import (
	"github.com/spf13/cobra"

	"github.com/llehouerou/lrctoolbox/internal/config"
	"github.com/llehouerou/lrctoolbox/internal/lyrics"
)

// saveFlags are the options of every command that writes an LRC file.
// Unset flags keep the configured defaults.
type saveFlags struct {
	overwrite  bool
	noMetadata bool
	collapse   bool
	meta       lyrics.Metadata
}

func (f *saveFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.BoolVar(&f.overwrite, "overwrite", false, "replace an existing target file")
	flags.BoolVar(&f.noMetadata, "no-metadata", false, "write the lyrics without metadata tags")
	flags.BoolVar(&f.collapse, "collapse", false, "fold repeated lines into one multi-timestamp line")
	flags.StringVar(&f.meta.Artist, "artist", "", "artist tag to write")
	flags.StringVar(&f.meta.Title, "title", "", "title tag to write")
	flags.StringVar(&f.meta.Album, "album", "", "album tag to write")
	flags.StringVar(&f.meta.Author, "author", "", "LRC author tag to write")
}

func (f *saveFlags) options(cmd *cobra.Command, cfg *config.Config) lyrics.SaveOptions {
	opts := cfg.SaveOptions()
	flags := cmd.Flags()
	if flags.Changed("overwrite") {
		opts.Overwrite = f.overwrite
	}
	if flags.Changed("no-metadata") {
		opts.WriteMetadata = !f.noMetadata
	}
	if flags.Changed("collapse") {
		opts.CollapseRepeats = f.collapse
	}
	if !f.meta.IsEmpty() {
		additional := lyrics.DefaultMetadata()
		if opts.AdditionalMetadata != nil {
			additional = *opts.AdditionalMetadata
		}
		additional.Merge(f.meta)
		opts.AdditionalMetadata = &additional
	}
	return opts
}
