package visual

// Vertex is a point after the surface transform was applied.
type Vertex struct {
	X, Y, Z float32
}

// Shape is one finished polyline.
type Shape struct {
	Mode     ShapeMode
	Stroke   Color
	Vertices []Vertex
}

// Recorder is a Surface that keeps everything drawn into it. It backs the
// headless dry run and the tests.
type Recorder struct {
	Backgrounds []Color
	Shapes      []Shape

	stroke    Color
	open      *Shape
	transform *TransformStack
}

func NewRecorder() *Recorder {
	return &Recorder{transform: NewTransformStack()}
}

// Reset discards recorded output but keeps the current stroke.
func (r *Recorder) Reset() {
	r.Backgrounds = r.Backgrounds[:0]
	r.Shapes = r.Shapes[:0]
	r.open = nil
	r.transform.Reset()
}

// StrokeColor is the stroke that the next shape will use.
func (r *Recorder) StrokeColor() Color { return r.stroke }

// Depth reports open transform scopes.
func (r *Recorder) Depth() int { return r.transform.Depth() }

func (r *Recorder) Background(c Color) { r.Backgrounds = append(r.Backgrounds, c) }
func (r *Recorder) Stroke(c Color)     { r.stroke = c }

func (r *Recorder) BeginShape() {
	r.open = &Shape{Stroke: r.stroke}
}

func (r *Recorder) Vertex(x, y, z float64) {
	if r.open == nil {
		return
	}
	tx, ty, tz := r.transform.Apply(x, y, z)
	r.open.Vertices = append(r.open.Vertices, Vertex{X: tx, Y: ty, Z: tz})
}

func (r *Recorder) EndShape(mode ShapeMode) {
	if r.open == nil {
		return
	}
	r.open.Mode = mode
	r.Shapes = append(r.Shapes, *r.open)
	r.open = nil
}

func (r *Recorder) Push()               { r.transform.Push() }
func (r *Recorder) Pop()                { r.transform.Pop() }
func (r *Recorder) RotateX(deg float64) { r.transform.RotateX(deg) }

// CountMode returns how many recorded shapes used mode.
func (r *Recorder) CountMode(mode ShapeMode) int {
	n := 0
	for _, s := range r.Shapes {
		if s.Mode == mode {
			n++
		}
	}
	return n
}
