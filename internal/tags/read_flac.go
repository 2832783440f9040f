package tags

import (
	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"
)

// readFLACComments reads a FLAC file's Vorbis comment block.
func readFLACComments(path string) (*Tag, error) {
	f, err := flac.ParseFile(path)
	if err != nil {
		return nil, err
	}

	t := &Tag{Path: path}
	cmts, _ := vorbisComments(f)
	if cmts == nil {
		return t, nil
	}

	first := func(key string) string {
		values, err := cmts.Get(key)
		if err != nil || len(values) == 0 {
			return ""
		}
		return values[0]
	}
	t.Title = first(flacvorbis.FIELD_TITLE)
	t.Artist = first(flacvorbis.FIELD_ARTIST)
	t.Album = first(flacvorbis.FIELD_ALBUM)
	t.AlbumArtist = first("ALBUMARTIST")
	t.Lyrics = first(lyricsKey)
	if t.Lyrics == "" {
		t.Lyrics = first("UNSYNCEDLYRICS")
	}
	return t, nil
}

// vorbisComments returns the comment block and its index, or nil and -1.
func vorbisComments(f *flac.File) (*flacvorbis.MetaDataBlockVorbisComment, int) {
	for i, meta := range f.Meta {
		if meta.Type != flac.VorbisComment {
			continue
		}
		cmts, err := flacvorbis.ParseFromMetaDataBlock(*meta)
		if err != nil {
			return nil, -1
		}
		return cmts, i
	}
	return nil, -1
}
