package visual

import "math"

// Sine-wave mesh parameters.
const (
	SineLayers         = 18
	ShapeChangeMin     = 10.0
	ShapeChangeMax     = 180.0
	ShapeChangeStep    = 0.5
	DefaultShapeChange = 10.0
	DefaultAngle       = 60.0
	RotationSpeed      = 1.0

	sineRadiusDivisor = 20.0
	sineLayerPhase    = 10.0 // degrees of phase offset between layers
	sineFramePhase    = 2.0  // degrees of phase advance per frame
	sineZAmplitude    = 50.0
)

// SineWave draws 18 concentric closed rings whose radius follows the vocal
// energy and whose depth oscillates with the frame index.
type SineWave struct {
	ShapeChange   float64 // angular step in degrees, kept in [10, 180]
	Angle         float64 // rotation about X in degrees
	RotationSpeed float64
}

func NewSineWave() *SineWave {
	return &SineWave{
		ShapeChange:   DefaultShapeChange,
		Angle:         DefaultAngle,
		RotationSpeed: RotationSpeed,
	}
}

// Update applies held keys. Increase wins over decrease and positive
// rotation wins over negative when both are held.
func (w *SineWave) Update(in Input) {
	if in.IncreaseResolution {
		w.ShapeChange = clampF(w.ShapeChange+ShapeChangeStep, ShapeChangeMin, ShapeChangeMax)
	} else if in.DecreaseResolution {
		w.ShapeChange = clampF(w.ShapeChange-ShapeChangeStep, ShapeChangeMin, ShapeChangeMax)
	}
	if in.RotatePositive {
		w.Angle += w.RotationSpeed
	} else if in.RotateNegative {
		w.Angle -= w.RotationSpeed
	}
}

// StepsPerLayer is the number of vertices emitted for each ring.
func (w *SineWave) StepsPerLayer() int {
	return int(math.Ceil(360 / w.ShapeChange))
}

// Render draws the mesh inside its own rotation scope.
func (w *SineWave) Render(s Surface, vocalsAmp float64, frameIndex int) {
	Scoped(s, func() {
		s.RotateX(w.Angle)
		for i := 0; i < SineLayers; i++ {
			radius := float64(i) * vocalsAmp / sineRadiusDivisor
			z := sinDeg(float64(frameIndex)*sineFramePhase+float64(i)*sineLayerPhase) * sineZAmplitude
			s.BeginShape()
			for j := 0.0; j < 360; j += w.ShapeChange {
				s.Vertex(radius*cosDeg(j), radius*sinDeg(j), z)
			}
			s.EndShape(Close)
		}
	})
}
