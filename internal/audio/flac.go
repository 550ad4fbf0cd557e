package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/mewkiz/flac"
)

type FLACDecoder struct{}

func (FLACDecoder) SupportedFormats() []string { return []string{"flac"} }

func (FLACDecoder) Decode(path string) (*Track, error) {
	stream, err := flac.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open flac: %w", err)
	}
	defer stream.Close()

	info := stream.Info
	if info == nil {
		return nil, fmt.Errorf("flac %s: missing stream info", path)
	}
	channels := int(info.NChannels)
	maxVal := pcmScale(int(info.BitsPerSample))

	samples := make([]float32, 0, int(info.NSamples)*2)
	frame := make([]float64, channels)
	for {
		f, err := stream.ParseNext()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode flac %s: %w", path, err)
		}
		if channels == 0 || len(f.Subframes) < channels {
			return nil, fmt.Errorf("decode flac %s: %d subframes for %d channels", path, len(f.Subframes), channels)
		}
		for i := 0; i < len(f.Subframes[0].Samples); i++ {
			for ch := 0; ch < channels; ch++ {
				frame[ch] = float64(f.Subframes[ch].Samples[i]) / maxVal
			}
			samples = appendFrame(samples, frame)
		}
	}

	return &Track{
		Name:       trackName(path),
		SampleRate: int(info.SampleRate),
		Samples:    samples,
	}, nil
}
