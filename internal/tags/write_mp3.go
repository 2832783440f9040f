package tags

import (
	"fmt"

	"github.com/bogem/id3v2/v2"
)

func embedMP3Lyrics(path, text string) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer tag.Close()

	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	tag.DeleteFrames(tag.CommonID("Unsynchronised lyrics/text transcription"))
	tag.AddUnsynchronisedLyricsFrame(id3v2.UnsynchronisedLyricsFrame{
		Encoding: id3v2.EncodingUTF8,
		Language: lyricsLanguage,
		Lyrics:   text,
	})

	if err := tag.Save(); err != nil {
		return fmt.Errorf("save tags: %w", err)
	}
	return nil
}
