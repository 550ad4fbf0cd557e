// Package desktop runs the sketch in a glfw window with an OpenGL line renderer.
package desktop

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"avsketch/internal/sketch"
)

// minimizedWait is the event wait, in seconds, while the window has no framebuffer.
const minimizedWait = 0.1

func drawable(fbW, fbH int) bool { return fbW > 0 && fbH > 0 }

// Run drives app once per display refresh until the window closes, Escape
// is pressed or ctx is cancelled.
func Run(ctx context.Context, cfg sketch.Config, app *sketch.App, log *slog.Logger) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	window, err := initWindow(cfg)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Debug("gl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.MULTISAMPLE)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	input := NewInput()
	frame := 0
	for !window.ShouldClose() {
		if ctx.Err() != nil {
			log.Info("shutting down", "reason", ctx.Err())
			return nil
		}

		glfw.PollEvents()
		if input.JustPressed(window, glfw.KeyEscape) {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if !drawable(fbW, fbH) {
			// Minimised: nothing is swapped, so block on events instead of spinning.
			glfw.WaitEventsTimeout(minimizedWait)
			continue
		}

		if input.JustClicked(window, buttonPlayPause) {
			app.TogglePlayback()
		}

		frame++
		rend.BeginFrame(fbW, fbH)
		app.Frame(rend, Snapshot(window), frame)
		window.SwapBuffers()
	}
	return nil
}
