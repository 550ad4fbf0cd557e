package visual

import (
	"math"
	"testing"
)

func TestSineWaveDefaults(t *testing.T) {
	w := NewSineWave()
	if w.ShapeChange != 10 || w.Angle != 60 || w.RotationSpeed != 1 {
		t.Errorf("Expected defaults (10, 60, 1), got (%v, %v, %v)", w.ShapeChange, w.Angle, w.RotationSpeed)
	}
}

func TestSineWaveShapeChangeClamp(t *testing.T) {
	w := NewSineWave()
	for i := 0; i < 10000; i++ {
		w.Update(Input{IncreaseResolution: true})
		if w.ShapeChange < ShapeChangeMin || w.ShapeChange > ShapeChangeMax {
			t.Fatalf("Expected shapeChange in [10,180], got %v", w.ShapeChange)
		}
	}
	if w.ShapeChange != ShapeChangeMax {
		t.Errorf("Expected shapeChange to saturate at 180, got %v", w.ShapeChange)
	}

	for i := 0; i < 10000; i++ {
		w.Update(Input{DecreaseResolution: true})
		if w.ShapeChange < ShapeChangeMin || w.ShapeChange > ShapeChangeMax {
			t.Fatalf("Expected shapeChange in [10,180], got %v", w.ShapeChange)
		}
	}
	if w.ShapeChange != ShapeChangeMin {
		t.Errorf("Expected shapeChange to saturate at 10, got %v", w.ShapeChange)
	}
}

func TestSineWaveUpdatePrecedence(t *testing.T) {
	tests := []struct {
		name        string
		in          Input
		shapeChange float64
		angle       float64
	}{
		{"no keys", Input{}, 20, 60},
		{"increase", Input{IncreaseResolution: true}, 20.5, 60},
		{"decrease", Input{DecreaseResolution: true}, 19.5, 60},
		{"increase wins", Input{IncreaseResolution: true, DecreaseResolution: true}, 20.5, 60},
		{"rotate positive", Input{RotatePositive: true}, 20, 61},
		{"rotate negative", Input{RotateNegative: true}, 20, 59},
		{"positive wins", Input{RotatePositive: true, RotateNegative: true}, 20, 61},
		{"independent axes", Input{DecreaseResolution: true, RotateNegative: true}, 19.5, 59},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewSineWave()
			w.ShapeChange = 20
			w.Update(tt.in)
			if w.ShapeChange != tt.shapeChange {
				t.Errorf("Expected shapeChange %v, got %v", tt.shapeChange, w.ShapeChange)
			}
			if w.Angle != tt.angle {
				t.Errorf("Expected angle %v, got %v", tt.angle, w.Angle)
			}
		})
	}
}

func TestSineWaveAngleUnbounded(t *testing.T) {
	w := NewSineWave()
	for i := 0; i < 1000; i++ {
		w.Update(Input{RotatePositive: true})
	}
	if w.Angle != 1060 {
		t.Errorf("Expected angle 1060, got %v", w.Angle)
	}
}

func TestSineWaveLayerAndVertexCounts(t *testing.T) {
	tests := []struct {
		shapeChange float64
		perLayer    int
	}{
		{10, 36},
		{10.5, 35},
		{45, 8},
		{100, 4},
		{179.5, 3},
		{180, 2},
	}

	for _, tt := range tests {
		w := NewSineWave()
		w.ShapeChange = tt.shapeChange
		if got := w.StepsPerLayer(); got != tt.perLayer {
			t.Errorf("shapeChange %v: expected %d steps, got %d", tt.shapeChange, tt.perLayer, got)
		}

		rec := NewRecorder()
		w.Render(rec, 128, 1)
		if len(rec.Shapes) != SineLayers {
			t.Fatalf("shapeChange %v: expected %d layers, got %d", tt.shapeChange, SineLayers, len(rec.Shapes))
		}
		for i, s := range rec.Shapes {
			if s.Mode != Close {
				t.Errorf("layer %d: expected closed polyline", i)
			}
			if len(s.Vertices) != tt.perLayer {
				t.Errorf("shapeChange %v layer %d: expected %d vertices, got %d", tt.shapeChange, i, tt.perLayer, len(s.Vertices))
			}
		}
	}
}

func TestSineWaveGeometry(t *testing.T) {
	w := NewSineWave()
	w.Angle = 0
	rec := NewRecorder()
	w.Render(rec, 200, 0)

	for i, s := range rec.Shapes {
		first := s.Vertices[0]
		wantR := float64(i) * 200 / 20
		wantZ := math.Sin(float64(i)*10*math.Pi/180) * 50
		if !approxEqual(float64(first.X), wantR, 1e-3) || !approxEqual(float64(first.Y), 0, 1e-3) {
			t.Errorf("layer %d: expected first vertex (%v, 0), got (%v, %v)", i, wantR, first.X, first.Y)
		}
		if !approxEqual(float64(first.Z), wantZ, 1e-3) {
			t.Errorf("layer %d: expected z %v, got %v", i, wantZ, first.Z)
		}
	}

	// Inner layers are never wider than outer ones.
	for i := 1; i < len(rec.Shapes); i++ {
		if rec.Shapes[i].Vertices[0].X < rec.Shapes[i-1].Vertices[0].X {
			t.Errorf("layer %d narrower than layer %d", i, i-1)
		}
	}
}

func TestSineWaveRotationScope(t *testing.T) {
	w := NewSineWave()
	w.Angle = 90
	rec := NewRecorder()
	w.Render(rec, 20, 0)

	if rec.Depth() != 0 {
		t.Errorf("Expected transform scope to be closed, depth %d", rec.Depth())
	}

	// Layer 1 starts at (1, 0, z); a quarter turn about X moves z onto -y.
	z := math.Sin(10*math.Pi/180) * 50
	v := rec.Shapes[1].Vertices[0]
	if !approxEqual(float64(v.X), 1, 1e-3) || !approxEqual(float64(v.Y), -z, 1e-3) || !approxEqual(float64(v.Z), 0, 1e-3) {
		t.Errorf("Expected rotated vertex (1, %v, 0), got (%v, %v, %v)", -z, v.X, v.Y, v.Z)
	}
}

func TestSineWaveSilenceCollapsesRings(t *testing.T) {
	w := NewSineWave()
	rec := NewRecorder()
	w.Render(rec, 0, 7)
	if len(rec.Shapes) != SineLayers {
		t.Fatalf("Expected %d layers on silence, got %d", SineLayers, len(rec.Shapes))
	}
	for _, s := range rec.Shapes {
		for _, v := range s.Vertices {
			if math.Abs(float64(v.X)) > 1e-4 {
				t.Fatalf("Expected x=0 on silence, got %v", v.X)
			}
		}
	}
}
