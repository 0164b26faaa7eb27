package renderer

import (
	"igloo/internal/graphics"
	"igloo/internal/graphics/gfx"
)

// FrameParams is the view state for one frame. Draw takes it by value so a
// frame never observes a half-applied input update.
type FrameParams struct {
	// RotationX and RotationY are degrees applied to the whole scene.
	RotationX float32
	RotationY float32
	// SceneDistance pushes the scene away from the camera.
	SceneDistance float32
}

// DefaultFrameParams returns the initial view.
func DefaultFrameParams() FrameParams {
	return FrameParams{SceneDistance: 10}
}

// Renderable is a self-contained decorative draw unit. Record must balance
// its matrix pushes and leave the model-view matrix selected.
type Renderable interface {
	Name() string
	Init(ctx gfx.Context) error
	Record(cmds gfx.Commands, rc graphics.RenderContext)
	Dispose(ctx gfx.Context)
}
