package tags

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	goflac "github.com/go-flac/go-flac"
	"github.com/gopxl/beep/v2/flac"
	"github.com/llehouerou/go-m4a"
	"github.com/llehouerou/go-mp3"
)

// opusSampleRate is the granule rate of every Ogg Opus stream.
const opusSampleRate = 48000

// Duration returns the stream length of a music file without decoding it
// where the container allows.
func Duration(path string) (time.Duration, error) {
	if !IsMusicFile(path) {
		return 0, fmt.Errorf("%s: %w", path, ErrUnsupported)
	}

	if ext(path) == ExtFLAC {
		return flacDuration(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	switch ext(path) {
	case ExtMP3:
		return mp3Duration(f)
	case ExtM4A, ExtMP4:
		return m4aDuration(f)
	default:
		return oggDuration(f)
	}
}

func samples(n int64, rate int) time.Duration {
	if rate <= 0 {
		return 0
	}
	return time.Duration(float64(n) / float64(rate) * float64(time.Second))
}

func mp3Duration(f *os.File) (time.Duration, error) {
	decoder, err := mp3.NewDecoder(f)
	if err != nil {
		return 0, err
	}
	if decoder.SampleRate() == 0 {
		return 0, errors.New("mp3: invalid sample rate")
	}
	return samples(int64(max(decoder.SampleCount(), 0)), decoder.SampleRate()), nil
}

// flacDuration reads the STREAMINFO block, falling back to a decoder for
// files go-flac cannot parse, such as ones with a leading ID3 tag.
func flacDuration(path string) (time.Duration, error) {
	file, err := goflac.ParseFile(path)
	if err != nil {
		return flacDurationWithBeep(path)
	}

	for _, meta := range file.Meta {
		if meta.Type != goflac.StreamInfo || len(meta.Data) < 18 {
			continue
		}
		data := meta.Data
		// 20 bits of sample rate at byte 10, 36 bits of sample count at byte 13
		rate := int(data[10])<<12 | int(data[11])<<4 | int(data[12])>>4
		total := int64(data[13]&0x0F)<<32 | int64(data[14])<<24 | int64(data[15])<<16 | int64(data[16])<<8 | int64(data[17])
		return samples(total, rate), nil
	}
	return flacDurationWithBeep(path)
}

func flacDurationWithBeep(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	if err := skipID3v2(f); err != nil {
		return 0, err
	}

	streamer, format, err := flac.Decode(f)
	if err != nil {
		return 0, err
	}
	defer streamer.Close()
	return format.SampleRate.D(streamer.Len()), nil
}

func m4aDuration(f *os.File) (time.Duration, error) {
	container, err := m4a.Open(f)
	if err != nil {
		return 0, err
	}
	return container.Duration(), nil
}

// oggDuration reads the granule position of the last Ogg page. Vorbis
// streams are assumed to run at 48kHz like Opus.
func oggDuration(f *os.File) (time.Duration, error) {
	fi, err := f.Stat()
	if err != nil {
		return 0, err
	}

	tail := min(int64(64*1024), fi.Size())
	if _, err := f.Seek(-tail, io.SeekEnd); err != nil {
		return 0, err
	}
	buf := make([]byte, tail)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return 0, err
	}
	buf = buf[:n]

	for i := len(buf) - 27; i >= 0; i-- {
		if string(buf[i:i+4]) != "OggS" {
			continue
		}
		var granule int64
		for b := 7; b >= 0; b-- {
			granule = granule<<8 | int64(buf[i+6+b])
		}
		if granule > 0 {
			return samples(granule, opusSampleRate), nil
		}
		break
	}
	return 0, errors.New("could not determine Ogg duration")
}

// skipID3v2 skips an ID3v2 tag if present at the beginning of the file.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return err
	}
	if n < 10 || string(header[:3]) != id3Magic {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}

	// Syncsafe size in bytes 6-9
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])
	_, err = r.Seek(10+size, io.SeekStart)
	return err
}
