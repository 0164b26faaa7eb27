// Package opengl implements gfx.Context on the OpenGL 2.1 compatibility
// profile. All calls must be made on the thread that owns the GL context.
package opengl

import (
	"fmt"
	"image"

	"igloo/internal/graphics/gfx"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Context issues fixed-function GL calls.
type Context struct{}

var _ gfx.Context = (*Context)(nil)

// New loads the GL entry points for the current context and sets the blend
// function used by the text overlay.
func New() (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init gl: %w", err)
	}
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	return &Context{}, nil
}

// Version returns the GL_VERSION string of the bound context.
func (c *Context) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func capability(cp gfx.Capability) uint32 {
	switch cp {
	case gfx.DepthTest:
		return gl.DEPTH_TEST
	case gfx.CullFace:
		return gl.CULL_FACE
	case gfx.ColorMaterial:
		return gl.COLOR_MATERIAL
	case gfx.Texture2D:
		return gl.TEXTURE_2D
	case gfx.Lighting:
		return gl.LIGHTING
	case gfx.Light0:
		return gl.LIGHT0
	case gfx.Light1:
		return gl.LIGHT1
	case gfx.Normalize:
		return gl.NORMALIZE
	case gfx.TextureGenS:
		return gl.TEXTURE_GEN_S
	case gfx.TextureGenT:
		return gl.TEXTURE_GEN_T
	case gfx.Blend:
		return gl.BLEND
	}
	panic(fmt.Sprintf("opengl: unknown capability %d", cp))
}

func (c *Context) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (c *Context) Clear(mask gfx.ClearMask) {
	var bits uint32
	if mask&gfx.ColorBuffer != 0 {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if mask&gfx.DepthBuffer != 0 {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(bits)
}

func (c *Context) Color(r, g, b float32)     { gl.Color3f(r, g, b) }
func (c *Context) Color4(r, g, b, a float32) { gl.Color4f(r, g, b, a) }
func (c *Context) Enable(cp gfx.Capability)  { gl.Enable(capability(cp)) }
func (c *Context) Disable(cp gfx.Capability) { gl.Disable(capability(cp)) }

func (c *Context) ColorMaterialAmbientDiffuse() {
	gl.ColorMaterial(gl.FRONT, gl.AMBIENT_AND_DIFFUSE)
}

func (c *Context) TexEnv(mode gfx.TexEnvMode) {
	var m int32
	switch mode {
	case gfx.EnvAdd:
		m = gl.ADD
	case gfx.EnvReplace:
		m = gl.REPLACE
	default:
		m = gl.MODULATE
	}
	gl.TexEnvi(gl.TEXTURE_ENV, gl.TEXTURE_ENV_MODE, m)
}

func (c *Context) Light(index int, l gfx.Light) {
	id := uint32(gl.LIGHT0 + index)
	gl.Lightf(id, gl.SPOT_CUTOFF, l.SpotCutoff)
	gl.Lightfv(id, gl.POSITION, &l.Position[0])
	gl.Lightfv(id, gl.AMBIENT, &l.Ambient[0])
	gl.Lightfv(id, gl.DIFFUSE, &l.Diffuse[0])
	if l.HasSpotDirection {
		gl.Lightfv(id, gl.SPOT_DIRECTION, &l.SpotDirection[0])
	}
}

func (c *Context) MatrixMode(m gfx.MatrixMode) {
	switch m {
	case gfx.Projection:
		gl.MatrixMode(gl.PROJECTION)
	case gfx.Texture:
		gl.MatrixMode(gl.TEXTURE)
	default:
		gl.MatrixMode(gl.MODELVIEW)
	}
}

func (c *Context) LoadIdentity()                 { gl.LoadIdentity() }
func (c *Context) PushMatrix()                   { gl.PushMatrix() }
func (c *Context) PopMatrix()                    { gl.PopMatrix() }
func (c *Context) Translate(x, y, z float32)     { gl.Translatef(x, y, z) }
func (c *Context) Rotate(angle, x, y, z float32) { gl.Rotatef(angle, x, y, z) }
func (c *Context) Scale(x, y, z float32)         { gl.Scalef(x, y, z) }

// Perspective multiplies the current matrix by a gluPerspective equivalent.
func (c *Context) Perspective(fovy, aspect, near, far float32) {
	m := mgl32.Perspective(mgl32.DegToRad(fovy), aspect, near, far)
	gl.MultMatrixf(&m[0])
}

func (c *Context) Ortho(left, right, bottom, top, near, far float32) {
	gl.Ortho(float64(left), float64(right), float64(bottom), float64(top), float64(near), float64(far))
}

// LookAt multiplies the current matrix by a gluLookAt equivalent.
func (c *Context) LookAt(eye, center, up mgl32.Vec3) {
	m := mgl32.LookAtV(eye, center, up)
	gl.MultMatrixf(&m[0])
}

func (c *Context) Viewport(x, y, w, h int32) { gl.Viewport(x, y, w, h) }

func (c *Context) GenTexture() uint32 {
	var t uint32
	gl.GenTextures(1, &t)
	return t
}

func (c *Context) BindTexture(tex uint32) { gl.BindTexture(gl.TEXTURE_2D, tex) }

// Build2DMipmaps relies on GL_GENERATE_MIPMAP (core since 1.4) in place of
// gluBuild2DMipmaps.
func (c *Context) Build2DMipmaps(img *image.RGBA) {
	gl.TexParameteri(gl.TEXTURE_2D, gl.GENERATE_MIPMAP, gl.TRUE)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA8,
		int32(img.Rect.Dx()),
		int32(img.Rect.Dy()),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)
}

func (c *Context) TexParameter(p gfx.TexParam, v gfx.TexValue) {
	var name uint32
	switch p {
	case gfx.MinFilter:
		name = gl.TEXTURE_MIN_FILTER
	case gfx.MagFilter:
		name = gl.TEXTURE_MAG_FILTER
	case gfx.WrapS:
		name = gl.TEXTURE_WRAP_S
	case gfx.WrapT:
		name = gl.TEXTURE_WRAP_T
	}
	var val int32
	switch v {
	case gfx.Linear:
		val = gl.LINEAR
	case gfx.Nearest:
		val = gl.NEAREST
	case gfx.Repeat:
		val = gl.REPEAT
	case gfx.ClampToEdge:
		val = gl.CLAMP_TO_EDGE
	}
	gl.TexParameteri(gl.TEXTURE_2D, name, val)
}

func (c *Context) DeleteTextures(tex ...uint32) {
	if len(tex) == 0 {
		return
	}
	gl.DeleteTextures(int32(len(tex)), &tex[0])
}

func (c *Context) Begin(p gfx.Primitive) {
	if p == gfx.Quads {
		gl.Begin(gl.QUADS)
		return
	}
	gl.Begin(gl.TRIANGLES)
}

func (c *Context) End()                   { gl.End() }
func (c *Context) Normal(x, y, z float32) { gl.Normal3f(x, y, z) }
func (c *Context) TexCoord(s, t float32)  { gl.TexCoord2f(s, t) }
func (c *Context) Vertex(x, y, z float32) { gl.Vertex3f(x, y, z) }
func (c *Context) RasterPos(x, y float32) { gl.RasterPos2f(x, y) }

// DrawPixels writes img at the current raster position. Rows are expected
// bottom-up.
func (c *Context) DrawPixels(img *image.RGBA) {
	if img == nil || img.Rect.Empty() {
		return
	}
	gl.DrawPixels(int32(img.Rect.Dx()), int32(img.Rect.Dy()), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
}

func (c *Context) Flush() { gl.Flush() }
