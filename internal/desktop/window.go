package desktop

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"avsketch/internal/sketch"
)

const windowTitle = "All My Friends"

func initWindow(cfg sketch.Config) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)

	width, height := cfg.Width, cfg.Height
	if width <= 0 || height <= 0 {
		width, height = sketch.WindowWidth, sketch.WindowHeight
	}
	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		if monitor != nil {
			mode := monitor.GetVideoMode()
			width, height = mode.Width, mode.Height
			glfw.WindowHint(glfw.RefreshRate, mode.RefreshRate)
		}
	}

	window, err := glfw.CreateWindow(width, height, windowTitle, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	return window, nil
}
