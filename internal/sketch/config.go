package sketch

import (
	"path/filepath"

	"avsketch/internal/audio"
)

// Analysis bands (Hz).
const (
	VocalsLowHz  = 1.0
	VocalsHighHz = 700.0
	DrumsLowHz   = 150.0
	DrumsHighHz  = 200.0
)

// Drum energy range mapped onto the red strobe.
const (
	DrumFloor   = 50.0
	DrumCeiling = 255.0
)

// CircleRadii are the (min, max) radius pairs of the three bass traces.
var CircleRadii = [][2]float64{
	{150, 250},
	{150, 265},
	{150, 280},
}

// Window defaults.
const (
	WindowWidth  = 1280
	WindowHeight = 720
)

// TrackPrefix names the stems shipped with the piece.
const TrackPrefix = "allmyfriends"

// Config is the runtime configuration assembled by the command.
type Config struct {
	Tracks     map[string]string
	Bins       int
	Width      int
	Height     int
	Fullscreen bool

	// PersistentCircles keeps one circle per radius pair across frames so
	// the space toggle sticks. Off by default: every frame builds fresh
	// circles and the toggle only hides them while held.
	PersistentCircles bool
}

// DefaultConfig loads the default stems from dir.
func DefaultConfig(dir string) Config {
	return Config{
		Tracks: DefaultTrackPaths(dir),
		Bins:   audio.DefaultBins,
		Width:  WindowWidth,
		Height: WindowHeight,
	}
}

// DefaultTrackPaths returns "<dir>/allmyfriends [<name>].mp3" per channel.
func DefaultTrackPaths(dir string) map[string]string {
	paths := make(map[string]string, len(audio.Names))
	for _, name := range audio.Names {
		paths[name] = filepath.Join(dir, TrackPrefix+" ["+name+"].mp3")
	}
	return paths
}
