package graphics

import (
	"igloo/internal/graphics/gfx"

	"github.com/go-gl/mathgl/mgl32"
)

// Projection constants shared by the camera and the per-frame projection reset.
const (
	FOV       = 50.0
	NearPlane = 0.5
	FarPlane  = 50000.0
)

// Camera is a look-at camera. The target is always Position+Direction.
type Camera struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Up        mgl32.Vec3

	FOV       float32
	NearPlane float32
	FarPlane  float32
}

func NewCamera() *Camera {
	return &Camera{
		Position:  mgl32.Vec3{0, 0, 5},
		Direction: mgl32.Vec3{0.75, 0, -5},
		Up:        mgl32.Vec3{0, 100, 0},
		FOV:       FOV,
		NearPlane: NearPlane,
		FarPlane:  FarPlane,
	}
}

// Target returns the point the camera looks at.
func (c *Camera) Target() mgl32.Vec3 {
	return c.Position.Add(c.Direction)
}

// GetProjectionMatrix returns perspective*lookAt for the given aspect ratio,
// i.e. the matrix Project leaves on the projection stack.
func (c *Camera) GetProjectionMatrix(aspect float32) mgl32.Mat4 {
	p := mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.NearPlane, c.FarPlane)
	return p.Mul4(mgl32.LookAtV(c.Position, c.Target(), c.Up))
}

// Project loads the camera into the projection stack and leaves the
// model-view matrix selected and reset to identity.
func (c *Camera) Project(cmds gfx.Commands, aspect float32) {
	cmds.MatrixMode(gfx.Projection)
	cmds.LoadIdentity()
	cmds.Perspective(c.FOV, aspect, c.NearPlane, c.FarPlane)
	cmds.LookAt(c.Position, c.Target(), c.Up)
	cmds.MatrixMode(gfx.ModelView)
	cmds.LoadIdentity()
}

// Viewport is the size of the drawable area in pixels.
type Viewport struct {
	Width  int
	Height int
}

// Aspect returns Width/Height, or 1 for a degenerate viewport.
func (v Viewport) Aspect() float32 {
	if v.Width <= 0 || v.Height <= 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// Valid reports whether both dimensions are positive.
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}
