package visual

// ShapeMode selects how EndShape finishes a polyline.
type ShapeMode int

const (
	// Open leaves the last vertex unconnected.
	Open ShapeMode = iota
	// Close connects the last vertex back to the first.
	Close
)

func (m ShapeMode) String() string {
	if m == Close {
		return "close"
	}
	return "open"
}

// Surface is the drawing target the generators emit into.
type Surface interface {
	Background(c Color)
	Stroke(c Color)
	BeginShape()
	Vertex(x, y, z float64)
	EndShape(mode ShapeMode)
	Push()
	Pop()
	RotateX(deg float64)
}

// Scoped runs fn inside its own transform scope. The previous transform
// is restored when fn returns, even if it panics.
func Scoped(s Surface, fn func()) {
	s.Push()
	defer s.Pop()
	fn()
}
