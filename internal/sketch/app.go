package sketch

import (
	"log/slog"

	"avsketch/internal/audio"
	"avsketch/internal/visual"
)

// Channels is the playback group seen by the frame driver.
type Channels interface {
	Toggle() bool
	AnyPlaying() bool
	IsPlaying(name string) bool
}

// Spectrum is one analyzer bound to one channel.
type Spectrum interface {
	Analyze()
	Energy(lowHz, highHz float64) float64
	Waveform() []float64
}

// App owns everything a frame touches. It is built once at startup and
// driven from the render loop only.
type App struct {
	log      *slog.Logger
	channels Channels
	vocals   Spectrum
	bass     Spectrum
	drums    Spectrum

	sine       *visual.SineWave
	persistent []*visual.Circle
	prev       visual.Input
}

// New binds the generators to the given analyzers.
func New(cfg Config, log *slog.Logger, channels Channels, vocals, bass, drums Spectrum) *App {
	a := &App{
		log:      log,
		channels: channels,
		vocals:   vocals,
		bass:     bass,
		drums:    drums,
		sine:     visual.NewSineWave(),
	}
	if cfg.PersistentCircles {
		for _, r := range CircleRadii {
			a.persistent = append(a.persistent, visual.NewCircle(r[0], r[1]))
		}
	}
	return a
}

// NewFromChannels builds the vocals, bass and drums analyzers over set.
func NewFromChannels(cfg Config, log *slog.Logger, set *audio.ChannelSet) *App {
	return New(cfg, log, set,
		audio.NewAnalyzer(set.Channel(audio.Vocals), cfg.Bins),
		audio.NewAnalyzer(set.Channel(audio.Bass), cfg.Bins),
		audio.NewAnalyzer(set.Channel(audio.Drums), cfg.Bins),
	)
}

// Sine exposes the mesh state.
func (a *App) Sine() *visual.SineWave { return a.sine }

// DrumColors maps drum energy to the background and its inverted stroke.
// Out-of-range energy extrapolates; the surface clamps.
func DrumColors(drumsAmp float64) (background, stroke visual.Color) {
	redStrobe := visual.MapLinear(drumsAmp, DrumFloor, DrumCeiling, 0, 255)
	invert := visual.MapLinear(drumsAmp, DrumFloor, DrumCeiling, 255, 0)
	return visual.Red(redStrobe), visual.Red(invert)
}

// Frame draws one display refresh.
func (a *App) Frame(s visual.Surface, in visual.Input, frameIndex int) {
	a.logKeys(in)

	a.drums.Analyze()
	bg, stroke := DrumColors(a.drums.Energy(DrumsLowHz, DrumsHighHz))
	s.Background(bg)
	s.Stroke(stroke)

	a.sine.Update(in)
	a.vocals.Analyze()
	a.sine.Render(s, a.vocals.Energy(VocalsLowHz, VocalsHighHz), frameIndex)

	if !a.channels.IsPlaying(audio.Bass) {
		return
	}
	a.bass.Analyze()
	wave := a.bass.Waveform()
	for _, c := range a.circles() {
		c.Update(in)
		c.Render(s, wave)
	}
}

// circles returns this frame's circle instances.
func (a *App) circles() []*visual.Circle {
	if a.persistent != nil {
		return a.persistent
	}
	fresh := make([]*visual.Circle, 0, len(CircleRadii))
	for _, r := range CircleRadii {
		fresh = append(fresh, visual.NewCircle(r[0], r[1]))
	}
	return fresh
}

// TogglePlayback pauses all channels if any is playing, otherwise starts them.
func (a *App) TogglePlayback() {
	if a.channels.Toggle() {
		a.log.Info("playback started")
	} else {
		a.log.Info("playback paused")
	}
}

func (a *App) logKeys(in visual.Input) {
	if in.IncreaseResolution && !a.prev.IncreaseResolution {
		a.log.Debug("right")
	} else if in.DecreaseResolution && !a.prev.DecreaseResolution {
		a.log.Debug("left")
	}
	if in.RotatePositive && !a.prev.RotatePositive {
		a.log.Debug("up")
	} else if in.RotateNegative && !a.prev.RotateNegative {
		a.log.Debug("down")
	}
	if in.ToggleVisibility && !a.prev.ToggleVisibility {
		a.log.Debug("space")
	}
	a.prev = in
}
