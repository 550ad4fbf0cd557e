package audio

import (
	"fmt"

	"github.com/dh1tw/gosamplerate"
)

// Resample converts track to rate. A track already at rate is returned as is.
func Resample(track *Track, rate int) (*Track, error) {
	if track.SampleRate == rate || len(track.Samples) == 0 {
		return track, nil
	}
	ratio := float64(rate) / float64(track.SampleRate)
	out, err := gosamplerate.Simple(track.Samples, ratio, 2, gosamplerate.SRC_SINC_MEDIUM_QUALITY)
	if err != nil {
		return nil, fmt.Errorf("resample %s %d->%d: %w", track.Name, track.SampleRate, rate, err)
	}
	if len(out)%2 == 1 {
		out = out[:len(out)-1]
	}
	return &Track{Name: track.Name, SampleRate: rate, Samples: out}, nil
}
