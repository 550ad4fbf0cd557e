package audio

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Track is a fully decoded audio file as interleaved stereo float32 PCM.
type Track struct {
	Name       string
	SampleRate int
	Samples    []float32
}

// Frames is the number of stereo frames in the track.
func (t *Track) Frames() int { return len(t.Samples) / 2 }

// Decoder turns a file into a Track.
type Decoder interface {
	Decode(path string) (*Track, error)
	SupportedFormats() []string
}

// Registry picks a decoder by file extension.
type Registry struct {
	decoders map[string]Decoder
}

// NewRegistry returns a registry with the mp3, wav and flac decoders.
func NewRegistry() *Registry {
	r := &Registry{decoders: make(map[string]Decoder)}
	r.Register(MP3Decoder{})
	r.Register(WAVDecoder{})
	r.Register(FLACDecoder{})
	return r
}

func (r *Registry) Register(d Decoder) {
	for _, format := range d.SupportedFormats() {
		r.decoders[strings.ToLower(format)] = d
	}
}

func (r *Registry) Lookup(path string) (Decoder, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return nil, fmt.Errorf("unknown audio format: %s", path)
	}
	d, ok := r.decoders[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported audio format %q: %s", ext, path)
	}
	return d, nil
}

func (r *Registry) DecodeFile(path string) (*Track, error) {
	d, err := r.Lookup(path)
	if err != nil {
		return nil, err
	}
	track, err := d.Decode(path)
	if err != nil {
		return nil, err
	}
	if track.SampleRate <= 0 {
		return nil, fmt.Errorf("decode %s: invalid sample rate %d", path, track.SampleRate)
	}
	return track, nil
}

// pcmScale is the full-scale magnitude of a signed integer sample. Unknown
// depths are treated as 16-bit.
func pcmScale(bitDepth int) float64 {
	if bitDepth <= 0 {
		bitDepth = 16
	}
	return float64(int64(1) << uint(bitDepth-1))
}

// appendFrame appends one stereo frame. Mono sources are duplicated and
// anything past the first two channels is dropped.
func appendFrame(dst []float32, channels []float64) []float32 {
	switch len(channels) {
	case 0:
		return append(dst, 0, 0)
	case 1:
		v := float32(channels[0])
		return append(dst, v, v)
	default:
		return append(dst, float32(channels[0]), float32(channels[1]))
	}
}

func trackName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
