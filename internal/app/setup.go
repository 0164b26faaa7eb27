package app

import (
	"igloo/internal/config"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// SetupWindow opens a window with a compatibility GL 2.1 context, which is
// what the fixed-function pipeline needs, and makes it current.
func SetupWindow(cfg config.Window) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	// Disable V-Sync; we'll use our own FPS limiter
	glfw.SwapInterval(0)

	return window, nil
}
