// Package gfx describes the fixed-function graphics surface the renderer talks
// to, and a command list that records calls against it for later replay.
package gfx

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// MatrixMode selects which matrix stack subsequent transform calls modify.
type MatrixMode int

const (
	ModelView MatrixMode = iota
	Projection
	Texture
)

func (m MatrixMode) String() string {
	switch m {
	case ModelView:
		return "modelview"
	case Projection:
		return "projection"
	case Texture:
		return "texture"
	}
	return "unknown"
}

// Capability is a server-side switch toggled with Enable/Disable.
type Capability int

const (
	DepthTest Capability = iota
	CullFace
	ColorMaterial
	Texture2D
	Lighting
	Light0
	Light1
	Normalize
	TextureGenS
	TextureGenT
	Blend
)

// TexEnvMode combines the fragment color with the sampled texel.
type TexEnvMode int

const (
	EnvModulate TexEnvMode = iota
	EnvAdd
	EnvReplace
)

// ClearMask selects buffers for Clear.
type ClearMask int

const (
	ColorBuffer ClearMask = 1 << iota
	DepthBuffer
)

// Primitive is the topology submitted between Begin and End.
type Primitive int

const (
	Triangles Primitive = iota
	Quads
)

// TexParam names a texture parameter.
type TexParam int

const (
	MinFilter TexParam = iota
	MagFilter
	WrapS
	WrapT
)

// TexValue is a value for a TexParam.
type TexValue int

const (
	Linear TexValue = iota
	Nearest
	Repeat
	ClampToEdge
)

// Light holds the parameters of one positional light.
type Light struct {
	Position   [4]float32
	Ambient    [4]float32
	Diffuse    [4]float32
	SpotCutoff float32
	// SpotDirection is only sent when HasSpotDirection is set.
	SpotDirection    [3]float32
	HasSpotDirection bool
}

// Commands is the part of the graphics surface that can be recorded and
// replayed: state changes, transforms and immediate-mode submission.
type Commands interface {
	ClearColor(r, g, b, a float32)
	Clear(mask ClearMask)
	Color(r, g, b float32)
	Color4(r, g, b, a float32)
	Enable(c Capability)
	Disable(c Capability)
	ColorMaterialAmbientDiffuse()
	TexEnv(mode TexEnvMode)
	Light(index int, l Light)

	MatrixMode(m MatrixMode)
	LoadIdentity()
	PushMatrix()
	PopMatrix()
	Translate(x, y, z float32)
	Rotate(angle, x, y, z float32)
	Scale(x, y, z float32)
	Perspective(fovy, aspect, near, far float32)
	Ortho(left, right, bottom, top, near, far float32)
	LookAt(eye, center, up mgl32.Vec3)
	Viewport(x, y, width, height int32)

	BindTexture(tex uint32)
	TexParameter(p TexParam, v TexValue)

	Begin(p Primitive)
	End()
	Normal(x, y, z float32)
	TexCoord(s, t float32)
	Vertex(x, y, z float32)

	RasterPos(x, y float32)
	DrawPixels(img *image.RGBA)

	Flush()
}

// Context is a live graphics context. It adds the calls that create or
// destroy server objects and therefore cannot be deferred into a List.
type Context interface {
	Commands

	GenTexture() uint32
	// Build2DMipmaps uploads img to the bound texture as RGBA8 and builds
	// its mipmap chain.
	Build2DMipmaps(img *image.RGBA)
	DeleteTextures(tex ...uint32)
}
