package lyrics

import "slices"

// SaveOptions controls how a document is serialized.
type SaveOptions struct {
	// Overwrite allows replacing an existing file.
	Overwrite bool
	// WriteMetadata emits the metadata tags before the lyrics.
	WriteMetadata bool
	// AdditionalMetadata is merged into the written tags. Nil means DefaultMetadata.
	AdditionalMetadata *Metadata
	// CollapseRepeats folds consecutive lines with the same text into one
	// enhanced line carrying every timestamp.
	CollapseRepeats bool
}

// DefaultSaveOptions writes metadata and never overwrites.
func DefaultSaveOptions() SaveOptions {
	return SaveOptions{WriteMetadata: true}
}

// CollapseRepeatingLines folds runs of lines with identical text into a
// single line whose text is prefixed with the later timestamps, so it renders
// as [t1][t2]...text. The input must be synced for the result to be meaningful.
func CollapseRepeatingLines(lines []Line) []Line {
	var (
		seen      string
		seenAny   bool
		collapsed = make([]Line, 0, len(lines))
	)
	for i := len(lines) - 1; i >= 0; i-- {
		line := lines[i]
		if seenAny && line.Text == seen {
			last := collapsed[len(collapsed)-1]
			collapsed[len(collapsed)-1] = Line{
				Text:      last.FormattedLyric(),
				Timestamp: line.Timestamp,
			}
			continue
		}
		collapsed = append(collapsed, line)
		seen = line.Text
		seenAny = true
	}
	slices.Reverse(collapsed)
	return collapsed
}

// Prepare returns the copy of l that Format serializes: repeats collapsed and
// metadata merged as requested by opts. l itself is never modified.
func (l *Lyrics) Prepare(opts SaveOptions) *Lyrics {
	c := l.Clone()

	if opts.CollapseRepeats && c.IsSynced() {
		c.lines = CollapseRepeatingLines(c.lines)
	}

	if opts.WriteMetadata {
		defaults := DefaultMetadata()
		additional := defaults
		if opts.AdditionalMetadata != nil {
			additional = *opts.AdditionalMetadata
		}
		c.Merge(additional)
		if c.ReName == "" {
			c.ReName = defaults.ReName
		}
		if c.Version == "" {
			c.Version = defaults.Version
		}
	}
	return c
}

// Format serializes the document to LRC lines according to opts.
func (l *Lyrics) Format(opts SaveOptions) []string {
	c := l.Prepare(opts)

	var out []string
	if opts.WriteMetadata {
		out = c.FormattedLines()
	}
	for _, line := range c.lines {
		out = append(out, line.FormattedLyric())
	}
	return out
}

// SaveFile writes the document to path. See WriteLines for the checks made
// before anything is written.
func (l *Lyrics) SaveFile(path string, opts SaveOptions) error {
	return WriteLines(path, l.Format(opts), opts.Overwrite)
}
