package audio

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/hajimehoshi/oto/v2"
	"github.com/schollz/progressbar/v3"
)

// Device format.
const (
	SampleRate   = 44100
	ChannelCount = 2
)

// TapSize is the mono history each channel keeps for analysis. It must be
// at least twice the analyzer bin count.
const TapSize = 8192

// PlayerBufferFrames caps how far each player reads ahead of the speaker.
// The tap keeps this much extra history so Latest can skip unplayed frames.
const PlayerBufferFrames = 2048

// System owns the playback device and turns track files into channels.
type System struct {
	ctx      *oto.Context
	registry *Registry
	log      *slog.Logger
	progress io.Writer
}

// NewSystem opens the playback device and waits until it is ready or ctx ends.
func NewSystem(ctx context.Context, log *slog.Logger, progress io.Writer) (*System, error) {
	otoCtx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("audio context: %w", err)
	}
	select {
	case <-ready:
	case <-ctx.Done():
		return nil, fmt.Errorf("audio context: %w", ctx.Err())
	}
	return &System{
		ctx:      otoCtx,
		registry: NewRegistry(),
		log:      log,
		progress: progress,
	}, nil
}

// Open decodes one file per channel name and binds each to a paused player.
func (s *System) Open(paths map[string]string) (*ChannelSet, error) {
	bar := progressbar.NewOptions(len(Names),
		progressbar.OptionSetDescription("decoding tracks"),
		progressbar.OptionSetWriter(s.progress),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionClearOnFinish(),
	)

	channels := make([]*Channel, 0, len(Names))
	for _, name := range Names {
		path, ok := paths[name]
		if !ok {
			closeAll(channels)
			return nil, fmt.Errorf("no track for channel %q", name)
		}
		track, err := s.registry.DecodeFile(path)
		if err != nil {
			closeAll(channels)
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
		if track.SampleRate != SampleRate {
			s.log.Debug("resampling track", "channel", name, "from", track.SampleRate, "to", SampleRate)
		}
		track, err = Resample(track, SampleRate)
		if err != nil {
			closeAll(channels)
			return nil, fmt.Errorf("load %s: %w", name, err)
		}

		tap := NewTap(track, TapSize+PlayerBufferFrames)
		player := s.ctx.NewPlayer(tap)
		if bs, ok := player.(oto.BufferSizeSetter); ok {
			bs.SetBufferSize(PlayerBufferFrames * bytesPerFrame)
		}
		channels = append(channels, NewChannel(name, player, tap, SampleRate))
		s.log.Debug("track loaded", "channel", name, "path", path, "frames", track.Frames())
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	return NewChannelSet(channels...), nil
}

func closeAll(channels []*Channel) {
	_ = NewChannelSet(channels...).Close()
}
