package audio

import "io"

// Channel names, in load order.
const (
	Music  = "music"
	Vocals = "vocals"
	Bass   = "bass"
	Drums  = "drums"
)

var Names = []string{Music, Vocals, Bass, Drums}

// Player is the playback handle for one channel. oto.Player satisfies it.
type Player interface {
	Play()
	Pause()
	IsPlaying() bool
	Close() error
}

// Channel is one named track bound to a player. A channel without a player
// is permanently silent.
type Channel struct {
	name       string
	player     Player
	tap        *Tap
	sampleRate int
}

func NewChannel(name string, player Player, tap *Tap, sampleRate int) *Channel {
	return &Channel{name: name, player: player, tap: tap, sampleRate: sampleRate}
}

// SilentChannel returns a channel that never plays.
func SilentChannel(name string) *Channel {
	return &Channel{name: name, sampleRate: SampleRate}
}

func (c *Channel) Name() string    { return c.name }
func (c *Channel) SampleRate() int { return c.sampleRate }
func (c *Channel) IsPlaying() bool { return c.player != nil && c.player.IsPlaying() }

// Ended reports whether the whole track has been handed to the device.
func (c *Channel) Ended() bool { return c.tap != nil && c.tap.Done() }

// Samples fills dst with the latest mono samples the device has played. A
// channel that is not playing reports silence.
func (c *Channel) Samples(dst []float64) {
	if c.tap == nil || !c.IsPlaying() {
		clear(dst)
		return
	}
	c.tap.Latest(dst, c.unplayedFrames())
}

// unplayedFrames is how far the player's own buffer runs ahead of the speaker.
func (c *Channel) unplayedFrames() int {
	if b, ok := c.player.(interface{ UnplayedBufferSize() int }); ok {
		return b.UnplayedBufferSize() / bytesPerFrame
	}
	return 0
}

// play starts the player, from the top if the track already ran out.
func (c *Channel) play() {
	if c.player == nil {
		return
	}
	if c.Ended() && !c.player.IsPlaying() {
		c.rewind()
	}
	c.player.Play()
}

func (c *Channel) rewind() {
	if s, ok := c.player.(io.Seeker); ok {
		_, _ = s.Seek(0, io.SeekStart)
		return
	}
	_, _ = c.tap.Seek(0, io.SeekStart)
}

func (c *Channel) pause() {
	if c.player != nil {
		c.player.Pause()
	}
}

// ChannelSet drives the four channels as a group. Playback state only
// changes for all members at once.
type ChannelSet struct {
	channels []*Channel
	byName   map[string]*Channel
}

func NewChannelSet(channels ...*Channel) *ChannelSet {
	s := &ChannelSet{byName: make(map[string]*Channel, len(channels))}
	for _, c := range channels {
		s.channels = append(s.channels, c)
		s.byName[c.name] = c
	}
	return s
}

// SilentSet is a full set of silent channels, used when audio is unavailable.
func SilentSet() *ChannelSet {
	chs := make([]*Channel, 0, len(Names))
	for _, name := range Names {
		chs = append(chs, SilentChannel(name))
	}
	return NewChannelSet(chs...)
}

// Channel returns the named channel, or a silent stand-in if unknown.
func (s *ChannelSet) Channel(name string) *Channel {
	if c, ok := s.byName[name]; ok {
		return c
	}
	return SilentChannel(name)
}

func (s *ChannelSet) Play() {
	for _, c := range s.channels {
		c.play()
	}
}

func (s *ChannelSet) Pause() {
	for _, c := range s.channels {
		c.pause()
	}
}

func (s *ChannelSet) IsPlaying(name string) bool {
	return s.Channel(name).IsPlaying()
}

func (s *ChannelSet) AnyPlaying() bool {
	for _, c := range s.channels {
		if c.IsPlaying() {
			return true
		}
	}
	return false
}

// Toggle pauses everything if any channel is playing, otherwise starts
// everything. It returns true when the set was started.
func (s *ChannelSet) Toggle() bool {
	if s.AnyPlaying() {
		s.Pause()
		return false
	}
	s.Play()
	return true
}

// Close releases every player and returns the first error.
func (s *ChannelSet) Close() error {
	var first error
	for _, c := range s.channels {
		if c.player == nil {
			continue
		}
		if err := c.player.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
