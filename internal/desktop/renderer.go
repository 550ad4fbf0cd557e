package desktop

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"avsketch/internal/visual"
)

const (
	floatsPerVertex = 6 // x, y, z, r, g, b
	maxLineVertices = 4096
	cameraFovY      = math.Pi / 3
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer is a visual.Surface that draws polylines with OpenGL. Vertices
// are transformed on the CPU; the shader only applies the camera.
type Renderer struct {
	prog      uint32
	vao       uint32
	vbo       uint32
	uViewProj int32

	transform *visual.TransformStack
	stroke    visual.Color
	verts     []float32
	shaping   bool
}

func NewRenderer() (*Renderer, error) {
	prog, err := linkProgram(lineVertSrc, lineFragSrc)
	if err != nil {
		return nil, fmt.Errorf("line program: %w", err)
	}
	r := &Renderer{
		prog:      prog,
		transform: visual.NewTransformStack(),
		verts:     make([]float32, 0, maxLineVertices*floatsPerVertex),
	}

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(floatsPerVertex * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxLineVertices*int(stride), nil, gl.STREAM_DRAW)
	// aPos (vec3)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	// aColor (vec3)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, glOffset(3*4))
	r.vao = vao
	r.vbo = vbo

	gl.UseProgram(prog)
	r.uViewProj = gl.GetUniformLocation(prog, gl.Str("uViewProj\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
}

// BeginFrame resets the transform and installs a camera with the origin at
// the centre of the screen and y pointing down.
func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	r.transform.Reset()
	r.shaping = false

	viewProj := ViewProjection(fbW, fbH)
	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)
	gl.UniformMatrix4fv(r.uViewProj, 1, false, &viewProj[0])
}

// ViewProjection places the eye so that one world unit at z=0 is one pixel.
func ViewProjection(fbW, fbH int) mgl32.Mat4 {
	w, h := float64(fbW), float64(fbH)
	eyeZ := (h / 2) / math.Tan(cameraFovY/2)
	proj := mgl32.Perspective(float32(cameraFovY), float32(w/h), float32(eyeZ/10), float32(eyeZ*10))
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, float32(eyeZ)}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	flipY := mgl32.Scale3D(1, -1, 1)
	return proj.Mul4(view).Mul4(flipY)
}

func (r *Renderer) Background(c visual.Color) {
	cr, cg, cb := c.Floats()
	gl.ClearColor(cr, cg, cb, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (r *Renderer) Stroke(c visual.Color) { r.stroke = c }

func (r *Renderer) BeginShape() {
	r.verts = r.verts[:0]
	r.shaping = true
}

func (r *Renderer) Vertex(x, y, z float64) {
	if !r.shaping || len(r.verts) >= maxLineVertices*floatsPerVertex {
		return
	}
	tx, ty, tz := r.transform.Apply(x, y, z)
	cr, cg, cb := r.stroke.Floats()
	r.verts = append(r.verts, tx, ty, tz, cr, cg, cb)
}

func (r *Renderer) EndShape(mode visual.ShapeMode) {
	if !r.shaping {
		return
	}
	r.shaping = false
	count := len(r.verts) / floatsPerVertex
	if count == 0 {
		return
	}
	prim := uint32(gl.LINE_STRIP)
	if mode == visual.Close {
		prim = gl.LINE_LOOP
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(r.verts)*4, gl.Ptr(&r.verts[0]))
	gl.DrawArrays(prim, 0, int32(count))
}

func (r *Renderer) Push()               { r.transform.Push() }
func (r *Renderer) Pop()                { r.transform.Pop() }
func (r *Renderer) RotateX(deg float64) { r.transform.RotateX(deg) }
