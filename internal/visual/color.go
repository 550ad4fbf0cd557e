package visual

import "math"

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Color holds unclamped channel intensities on a 0..255 scale.
// Linear mappings may push a channel outside that range; the surface clamps.
type Color struct {
	R, G, B float64
}

// Red returns (r, 0, 0).
func Red(r float64) Color { return Color{R: r} }

// RGB clamps every channel to 0..255 and rounds to the nearest integer.
// NaN channels collapse to 0.
func (c Color) RGB() RGB {
	return RGB{R: channelU8(c.R), G: channelU8(c.G), B: channelU8(c.B)}
}

// Floats returns the clamped colour as 0..1 floats for GL.
func (c Color) Floats() (r, g, b float32) {
	rgb := c.RGB()
	return float32(rgb.R) / 255.0, float32(rgb.G) / 255.0, float32(rgb.B) / 255.0
}

func channelU8(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.Round(clampF(v, 0, 255)))
}
