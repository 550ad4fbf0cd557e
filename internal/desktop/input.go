package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"avsketch/internal/visual"
)

// Key bindings.
const (
	keyIncreaseResolution = glfw.KeyRight
	keyDecreaseResolution = glfw.KeyLeft
	keyRotatePositive     = glfw.KeyUp
	keyRotateNegative     = glfw.KeyDown
	keyToggleVisibility   = glfw.KeySpace
	buttonPlayPause       = glfw.MouseButtonLeft
)

type Input struct {
	prevMouse map[glfw.MouseButton]bool
	prevKeys  map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevMouse: make(map[glfw.MouseButton]bool),
		prevKeys:  make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func (in *Input) JustClicked(window *glfw.Window, btn glfw.MouseButton) bool {
	down := window.GetMouseButton(btn) == glfw.Press
	jp := down && !in.prevMouse[btn]
	in.prevMouse[btn] = down
	return jp
}

// Snapshot samples the held state of every sketch key.
func Snapshot(window *glfw.Window) visual.Input {
	held := func(k glfw.Key) bool { return window.GetKey(k) == glfw.Press }
	return visual.Input{
		IncreaseResolution: held(keyIncreaseResolution),
		DecreaseResolution: held(keyDecreaseResolution),
		RotatePositive:     held(keyRotatePositive),
		RotateNegative:     held(keyRotateNegative),
		ToggleVisibility:   held(keyToggleVisibility),
	}
}
