package visual

import "math"

// MapLinear re-maps v from [inLo, inHi] onto [outLo, outHi].
// Values outside the input range extrapolate; nothing is clamped.
func MapLinear(v, inLo, inHi, outLo, outHi float64) float64 {
	if inHi == inLo {
		return outLo
	}
	return outLo + (v-inLo)*(outHi-outLo)/(inHi-inLo)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func sinDeg(deg float64) float64 { return math.Sin(deg * math.Pi / 180) }
func cosDeg(deg float64) float64 { return math.Cos(deg * math.Pi / 180) }
