package visual

import "math"

// circleSteps is the last sample index of each mirrored half (inclusive).
const circleSteps = 180

// Circle traces the bass waveform around a mirrored pair of half circles.
type Circle struct {
	RadiusMin float64
	RadiusMax float64
	Visible   bool
}

func NewCircle(radiusMin, radiusMax float64) *Circle {
	return &Circle{RadiusMin: radiusMin, RadiusMax: radiusMax, Visible: true}
}

// Update flips visibility while the toggle key is held.
func (c *Circle) Update(in Input) {
	if in.ToggleVisibility {
		c.Visible = !c.Visible
	}
}

// Radius maps a waveform sample in [-1, 1] to [RadiusMin, RadiusMax].
func (c *Circle) Radius(sample float64) float64 {
	return MapLinear(sample, -1, 1, c.RadiusMin, c.RadiusMax)
}

// Render emits two open polylines, one per side. An empty waveform is
// traced as silence.
func (c *Circle) Render(s Surface, wave []float64) {
	if !c.Visible {
		return
	}
	for side := -1.0; side <= 1; side += 2 {
		s.BeginShape()
		for i := 0; i <= circleSteps; i++ {
			r := c.Radius(sampleAt(wave, i))
			deg := float64(i)
			s.Vertex(r*sinDeg(deg)*side, r*cosDeg(deg), 0)
		}
		s.EndShape(Open)
	}
}

// sampleAt spreads step i of 0..180 across the whole buffer.
func sampleAt(wave []float64, i int) float64 {
	if len(wave) == 0 {
		return 0
	}
	idx := int(math.Floor(MapLinear(float64(i), 0, circleSteps, 0, float64(len(wave)-1))))
	if idx < 0 || idx >= len(wave) {
		return 0
	}
	return wave[idx]
}
