package visual

import "github.com/go-gl/mathgl/mgl32"

// TransformStack tracks the model transform for a surface.
// The base (identity) entry can never be popped.
type TransformStack struct {
	stack []mgl32.Mat4
}

func NewTransformStack() *TransformStack {
	return &TransformStack{stack: []mgl32.Mat4{mgl32.Ident4()}}
}

// Top returns the current transform.
func (t *TransformStack) Top() mgl32.Mat4 {
	return t.stack[len(t.stack)-1]
}

// Depth is the number of pushed scopes above the base.
func (t *TransformStack) Depth() int {
	return len(t.stack) - 1
}

func (t *TransformStack) Push() {
	t.stack = append(t.stack, t.Top())
}

func (t *TransformStack) Pop() {
	if len(t.stack) > 1 {
		t.stack = t.stack[:len(t.stack)-1]
	}
}

// Reset drops every pushed scope.
func (t *TransformStack) Reset() {
	t.stack = t.stack[:1]
}

// RotateX post-multiplies a rotation of deg degrees about the X axis.
func (t *TransformStack) RotateX(deg float64) {
	i := len(t.stack) - 1
	t.stack[i] = t.stack[i].Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(float32(deg))))
}

// Apply transforms a point by the current transform.
func (t *TransformStack) Apply(x, y, z float64) (float32, float32, float32) {
	v := t.Top().Mul4x1(mgl32.Vec4{float32(x), float32(y), float32(z), 1})
	return v[0], v[1], v[2]
}
