package tags

import (
	"github.com/bogem/id3v2/v2"
)

// readMP3WithID3v2 reads MP3 tags with the id3v2 library only.
func readMP3WithID3v2(path string) (*Tag, error) {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, err
	}
	defer id3tag.Close()

	return &Tag{
		Path:        path,
		Title:       id3tag.Title(),
		Artist:      id3tag.Artist(),
		AlbumArtist: getID3TextFrame(id3tag, "TPE2"),
		Album:       id3tag.Album(),
		Lyrics:      getUSLT(id3tag),
	}, nil
}

// readMP3Lyrics returns the first USLT frame of an MP3 file.
func readMP3Lyrics(path string) string {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true, ParseFrames: []string{"Unsynchronised lyrics/text transcription"}})
	if err != nil {
		return ""
	}
	defer id3tag.Close()
	return getUSLT(id3tag)
}

func getUSLT(id3tag *id3v2.Tag) string {
	for _, frame := range id3tag.GetFrames(id3tag.CommonID("Unsynchronised lyrics/text transcription")) {
		if uslt, ok := frame.(id3v2.UnsynchronisedLyricsFrame); ok && uslt.Lyrics != "" {
			return uslt.Lyrics
		}
	}
	return ""
}

// getID3TextFrame reads a text frame value from an ID3v2 tag.
func getID3TextFrame(id3tag *id3v2.Tag, frameID string) string {
	frames := id3tag.GetFrames(frameID)
	if len(frames) == 0 {
		return ""
	}
	if tf, ok := frames[0].(id3v2.TextFrame); ok {
		return tf.Text
	}
	return ""
}
