package lyrics

import (
	"maps"
	"slices"
	"strings"
)

// Module identity written into saved files when the caller supplies no metadata.
const (
	ModuleName = "lrctoolbox"
	Version    = "0.4.0"
)

// Metadata holds the document-level LRC tags. Empty fields are absent.
type Metadata struct {
	Artist   string // [ar:]
	Title    string // [ti:]
	Album    string // [al:]
	Lyricist string // [au:]
	Author   string // [by:] creator of the LRC file
	ReName   string // [re:] program that created the file
	Version  string // [ve:] version of that program
	URI      string // [uri:]
	Length   string // [length:]
	Language string // [language:]
	MBID     string // [mbid:]

	// Extra keeps tags without a dedicated field, keyed as written.
	Extra map[string]string
}

type metadataField struct {
	name string
	tag  string
	ptr  func(*Metadata) *string
}

// metadataFields lists the known fields in serialization order:
// track information first, then the file's own provenance.
var metadataFields = []metadataField{
	{"artist", "ar", func(m *Metadata) *string { return &m.Artist }},
	{"title", "ti", func(m *Metadata) *string { return &m.Title }},
	{"album", "al", func(m *Metadata) *string { return &m.Album }},
	{"lyricist", "au", func(m *Metadata) *string { return &m.Lyricist }},
	{"uri", "uri", func(m *Metadata) *string { return &m.URI }},
	{"mbid", "mbid", func(m *Metadata) *string { return &m.MBID }},
	{"length", "length", func(m *Metadata) *string { return &m.Length }},
	{"language", "language", func(m *Metadata) *string { return &m.Language }},
	{"re_name", "re", func(m *Metadata) *string { return &m.ReName }},
	{"version", "ve", func(m *Metadata) *string { return &m.Version }},
	{"author", "by", func(m *Metadata) *string { return &m.Author }},
}

// fieldsByKey indexes metadataFields by both canonical name and LRC tag.
var fieldsByKey = func() map[string]metadataField {
	idx := make(map[string]metadataField, 2*len(metadataFields))
	for _, f := range metadataFields {
		idx[f.name] = f
		idx[f.tag] = f
	}
	return idx
}()

func lookupField(key string) (metadataField, bool) {
	f, ok := fieldsByKey[strings.ToLower(strings.TrimSpace(key))]
	return f, ok
}

// CanonicalKey maps an LRC tag ("ar") or field name ("artist") to the
// canonical field name. Unknown keys are returned unchanged.
func CanonicalKey(key string) string {
	if f, ok := lookupField(key); ok {
		return f.name
	}
	return key
}

// TagFor returns the LRC tag written for key. Unknown keys are their own tag.
func TagFor(key string) string {
	if f, ok := lookupField(key); ok {
		return f.tag
	}
	return key
}

// DefaultMetadata returns the module identity record.
func DefaultMetadata() Metadata {
	return Metadata{ReName: ModuleName, Version: Version}
}

// Set stores value under key. Known tags and field names fill their field,
// anything else goes to Extra.
func (m *Metadata) Set(key, value string) {
	if f, ok := lookupField(key); ok {
		*f.ptr(m) = value
		return
	}
	if m.Extra == nil {
		m.Extra = make(map[string]string)
	}
	m.Extra[key] = value
}

// Get returns the value stored under key, "" when absent.
func (m *Metadata) Get(key string) string {
	if f, ok := lookupField(key); ok {
		return *f.ptr(m)
	}
	return m.Extra[key]
}

// Merge overwrites m with every present field and extra tag of other.
func (m *Metadata) Merge(other Metadata) {
	for _, f := range metadataFields {
		if v := *f.ptr(&other); v != "" {
			*f.ptr(m) = v
		}
	}
	for k, v := range other.Extra {
		if v != "" {
			m.Set(k, v)
		}
	}
}

// IsEmpty reports whether no field or extra tag is set.
func (m *Metadata) IsEmpty() bool {
	return len(m.FormattedLines()) == 0
}

// FormattedLines renders the present tags as [tag:value] lines.
// Extra tags follow the known ones, sorted by key.
func (m *Metadata) FormattedLines() []string {
	var lines []string
	for _, f := range metadataFields {
		if v := *f.ptr(m); v != "" {
			lines = append(lines, "["+f.tag+":"+v+"]")
		}
	}
	for _, k := range slices.Sorted(maps.Keys(m.Extra)) {
		if v := m.Extra[k]; v != "" {
			lines = append(lines, "["+k+":"+v+"]")
		}
	}
	return lines
}

// Fields returns the present tags as canonical name -> value.
func (m *Metadata) Fields() map[string]string {
	out := make(map[string]string)
	for _, f := range metadataFields {
		if v := *f.ptr(m); v != "" {
			out[f.name] = v
		}
	}
	for k, v := range m.Extra {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

func (m *Metadata) clone() Metadata {
	c := *m
	c.Extra = maps.Clone(m.Extra)
	return c
}

func (m *Metadata) equal(other *Metadata) bool {
	for _, f := range metadataFields {
		if *f.ptr(m) != *f.ptr(other) {
			return false
		}
	}
	return maps.Equal(m.Extra, other.Extra)
}
