package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/go-mp3"
)

// MP3Decoder decodes MPEG-1/2 layer III files. go-mp3 always yields
// 16-bit little-endian stereo.
type MP3Decoder struct{}

func (MP3Decoder) SupportedFormats() []string { return []string{"mp3"} }

func (MP3Decoder) Decode(path string) (*Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mp3: %w", err)
	}
	defer f.Close()

	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, fmt.Errorf("parse mp3 %s: %w", path, err)
	}

	pcm, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("decode mp3 %s: %w", path, err)
	}

	nsamples := len(pcm) / 2
	samples := make([]float32, 0, nsamples)
	for i := 0; i+1 < len(pcm); i += 2 {
		s := int16(binary.LittleEndian.Uint16(pcm[i:]))
		samples = append(samples, float32(s)/32768)
	}
	// A trailing half frame can appear on truncated files.
	if len(samples)%2 == 1 {
		samples = samples[:len(samples)-1]
	}

	return &Track{
		Name:       trackName(path),
		SampleRate: dec.SampleRate(),
		Samples:    samples,
	}, nil
}
