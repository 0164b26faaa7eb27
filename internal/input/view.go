package input

import (
	"math"

	"igloo/internal/graphics/renderer"
)

// Limits applied by ViewController.
const (
	MaxTilt     = 90
	MinDistance = 1
	MaxDistance = 100
)

// ViewController is the only writer of the view state. The frame loop calls
// Update once per frame and hands Params to the renderer.
type ViewController struct {
	params       renderer.FrameParams
	rotationStep float32
	distanceStep float32
}

// NewViewController starts at the given distance. Non-positive steps fall
// back to 5 degrees and 1 unit.
func NewViewController(distance, rotationStep, distanceStep float32) *ViewController {
	if rotationStep <= 0 {
		rotationStep = 5
	}
	if distanceStep <= 0 {
		distanceStep = 1
	}
	vc := &ViewController{
		params:       renderer.DefaultFrameParams(),
		rotationStep: rotationStep,
		distanceStep: distanceStep,
	}
	vc.params.SceneDistance = clamp(distance, MinDistance, MaxDistance)
	return vc
}

// Params returns a snapshot of the current view.
func (vc *ViewController) Params() renderer.FrameParams { return vc.params }

// Update applies every key press recorded by im since the last call and
// reports whether quit was pressed this frame.
func (vc *ViewController) Update(im *InputManager) (quit bool) {
	up := im.TakePresses(ActionRotateUp) - im.TakePresses(ActionRotateDown)
	right := im.TakePresses(ActionRotateRight) - im.TakePresses(ActionRotateLeft)
	zoom := im.TakePresses(ActionZoomOut) - im.TakePresses(ActionZoomIn)

	vc.Rotate(float32(up)*vc.rotationStep, float32(right)*vc.rotationStep)
	vc.Zoom(float32(zoom) * vc.distanceStep)

	return im.JustPressed(ActionQuit)
}

// Rotate subtracts dx degrees from RotationX, so a positive dx from the up
// arrow lowers the tilt, and adds dy degrees to RotationY. X is clamped to
// [-MaxTilt, MaxTilt]; Y wraps into [0, 360).
func (vc *ViewController) Rotate(dx, dy float32) {
	vc.params.RotationX = clamp(vc.params.RotationX-dx, -MaxTilt, MaxTilt)
	vc.params.RotationY = wrapDegrees(vc.params.RotationY + dy)
}

// Zoom moves the scene by d, positive is farther away.
func (vc *ViewController) Zoom(d float32) {
	vc.params.SceneDistance = clamp(vc.params.SceneDistance+d, MinDistance, MaxDistance)
}

func wrapDegrees(a float32) float32 {
	if math.IsNaN(float64(a)) || math.IsInf(float64(a), 0) {
		return 0
	}
	w := math.Mod(float64(a), 360)
	if w < 0 {
		w += 360
	}
	// -1e-9 mod 360 rounds to 360 in float32.
	if r := float32(w); r < 360 {
		return r
	}
	return 0
}

func clamp(v, lo, hi float32) float32 {
	return max(lo, min(v, hi))
}
