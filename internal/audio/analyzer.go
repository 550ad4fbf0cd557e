package audio

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// DefaultBins matches the usual analyser resolution: 1024 frequency bins
// over a 2048-sample window.
const DefaultBins = 1024

// Byte-scale spectrum range.
const (
	minDecibels = -100.0
	maxDecibels = -30.0
)

// Source supplies the most recent mono samples of a signal.
type Source interface {
	Samples(dst []float64)
	SampleRate() int
}

// Analyzer turns a Source into a per-frame spectrum and waveform. Readings
// carry no history: every Analyze starts from scratch.
type Analyzer struct {
	src      Source
	bins     int
	input    []float64
	windowed []float64
	coeffs   []float64 // Blackman window
	spectrum []float64
	wave     []float64
}

func NewAnalyzer(src Source, bins int) *Analyzer {
	if bins <= 0 {
		bins = DefaultBins
	}
	size := bins * 2
	coeffs := make([]float64, size)
	for i := range coeffs {
		x := 2 * math.Pi * float64(i) / float64(size)
		coeffs[i] = 0.42 - 0.5*math.Cos(x) + 0.08*math.Cos(2*x)
	}
	return &Analyzer{
		src:      src,
		bins:     bins,
		input:    make([]float64, size),
		windowed: make([]float64, size),
		coeffs:   coeffs,
		spectrum: make([]float64, bins),
		wave:     make([]float64, bins),
	}
}

func (a *Analyzer) Bins() int { return a.bins }

// Analyze refreshes spectrum and waveform from the source.
func (a *Analyzer) Analyze() {
	if a.src == nil {
		clear(a.input)
	} else {
		a.src.Samples(a.input)
	}
	copy(a.wave, a.input[len(a.input)-a.bins:])

	if isSilent(a.input) {
		clear(a.spectrum)
		return
	}

	for i, v := range a.input {
		a.windowed[i] = v * a.coeffs[i]
	}
	out := fft.FFTReal(a.windowed)
	n := float64(len(a.windowed))
	for k := 0; k < a.bins; k++ {
		a.spectrum[k] = byteScale(cmplx.Abs(out[k]) / n)
	}
}

// Spectrum returns the last per-bin readings on a 0..255 scale.
func (a *Analyzer) Spectrum() []float64 { return a.spectrum }

// Waveform returns the last bins time-domain samples in [-1, 1]. The slice
// is reused by the next Analyze.
func (a *Analyzer) Waveform() []float64 { return a.wave }

// Energy is the mean byte-scale reading over the closed band [lowHz, highHz].
// A silent or rate-less source reads as 0.
func (a *Analyzer) Energy(lowHz, highHz float64) float64 {
	if lowHz > highHz {
		lowHz, highHz = highHz, lowHz
	}
	rate := 0
	if a.src != nil {
		rate = a.src.SampleRate()
	}
	if rate <= 0 {
		return 0
	}
	nyquist := float64(rate) / 2
	lo := a.binIndex(lowHz, nyquist)
	hi := a.binIndex(highHz, nyquist)

	total := 0.0
	for i := lo; i <= hi; i++ {
		total += a.spectrum[i]
	}
	return total / float64(hi-lo+1)
}

func (a *Analyzer) binIndex(hz, nyquist float64) int {
	idx := int(math.Round(hz / nyquist * float64(a.bins)))
	if idx < 0 {
		return 0
	}
	if idx >= a.bins {
		return a.bins - 1
	}
	return idx
}

func byteScale(mag float64) float64 {
	if mag <= 0 {
		return 0
	}
	db := 20 * math.Log10(mag)
	v := math.Floor(255 * (db - minDecibels) / (maxDecibels - minDecibels))
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func isSilent(samples []float64) bool {
	for _, v := range samples {
		if v != 0 {
			return false
		}
	}
	return true
}
