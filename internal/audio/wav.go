package audio

import (
	"fmt"
	"os"

	"github.com/go-audio/wav"
)

type WAVDecoder struct{}

func (WAVDecoder) SupportedFormats() []string { return []string{"wav", "wave"} }

func (WAVDecoder) Decode(path string) (*Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open wav: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("invalid wav file: %s", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decode wav %s: %w", path, err)
	}

	channels := int(dec.NumChans)
	if buf.Format != nil && buf.Format.NumChannels > 0 {
		channels = buf.Format.NumChannels
	}
	if channels <= 0 {
		return nil, fmt.Errorf("decode wav %s: no channels", path)
	}
	bitDepth := int(dec.BitDepth)
	maxVal := pcmScale(bitDepth)
	// 8-bit wav is unsigned around 128.
	offset := 0
	if bitDepth == 8 {
		offset = 128
	}

	frames := len(buf.Data) / channels
	samples := make([]float32, 0, frames*2)
	frame := make([]float64, channels)
	for i := 0; i < frames; i++ {
		for ch := 0; ch < channels; ch++ {
			frame[ch] = float64(buf.Data[i*channels+ch]-offset) / maxVal
		}
		samples = appendFrame(samples, frame)
	}

	return &Track{
		Name:       trackName(path),
		SampleRate: int(dec.SampleRate),
		Samples:    samples,
	}, nil
}
