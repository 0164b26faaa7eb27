// Package gfxtest provides a recording gfx.Context for tests. It keeps real
// matrix stacks so tests can assert on the transforms in effect at any call.
package gfxtest

import (
	"fmt"
	"image"

	"igloo/internal/graphics/gfx"

	"github.com/go-gl/mathgl/mgl32"
)

// Call is one recorded invocation.
type Call struct {
	Name string
	Args []any
	// Mode is the matrix mode active when the call was made.
	Mode gfx.MatrixMode
	// Matrix is the top of the active stack after the call was applied.
	Matrix mgl32.Mat4
}

// Recorder implements gfx.Context without a GPU.
type Recorder struct {
	Calls []Call

	mode    gfx.MatrixMode
	stacks  map[gfx.MatrixMode][]mgl32.Mat4
	enabled map[gfx.Capability]bool
	inBegin bool
	nextTex uint32
	live    map[uint32]bool
	bound   uint32
	errs    []error
}

var _ gfx.Context = (*Recorder)(nil)

// New returns a recorder with identity matrices on every stack.
func New() *Recorder {
	r := &Recorder{
		stacks:  make(map[gfx.MatrixMode][]mgl32.Mat4),
		enabled: make(map[gfx.Capability]bool),
		live:    make(map[uint32]bool),
		nextTex: 1,
	}
	for _, m := range []gfx.MatrixMode{gfx.ModelView, gfx.Projection, gfx.Texture} {
		r.stacks[m] = []mgl32.Mat4{mgl32.Ident4()}
	}
	return r
}

// Errs returns misuse detected so far: stack underflow, nested Begin,
// binding unknown textures.
func (r *Recorder) Errs() []error { return r.errs }

// Depth returns the number of entries on the stack for m (1 when balanced).
func (r *Recorder) Depth(m gfx.MatrixMode) int { return len(r.stacks[m]) }

// Top returns the current matrix of stack m.
func (r *Recorder) Top(m gfx.MatrixMode) mgl32.Mat4 {
	s := r.stacks[m]
	return s[len(s)-1]
}

// Mode returns the active matrix mode.
func (r *Recorder) Mode() gfx.MatrixMode { return r.mode }

// Enabled reports whether c is currently enabled.
func (r *Recorder) Enabled(c gfx.Capability) bool { return r.enabled[c] }

// Named returns every recorded call with the given name, in order.
func (r *Recorder) Named(name string) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Count returns how many calls with the given name were recorded.
func (r *Recorder) Count(name string) int { return len(r.Named(name)) }

// Names returns the call names in order.
func (r *Recorder) Names() []string {
	out := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		out[i] = c.Name
	}
	return out
}

// Live returns the texture handles generated and not yet deleted.
func (r *Recorder) Live() []uint32 {
	var out []uint32
	for t := uint32(1); t < r.nextTex; t++ {
		if r.live[t] {
			out = append(out, t)
		}
	}
	return out
}

// Reset forgets recorded calls but keeps matrix, capability and texture state.
func (r *Recorder) Reset() { r.Calls = nil }

func (r *Recorder) fail(format string, args ...any) {
	r.errs = append(r.errs, fmt.Errorf(format, args...))
}

func (r *Recorder) record(name string, args ...any) {
	r.Calls = append(r.Calls, Call{Name: name, Args: args, Mode: r.mode, Matrix: r.Top(r.mode)})
}

func (r *Recorder) apply(m mgl32.Mat4) {
	s := r.stacks[r.mode]
	s[len(s)-1] = s[len(s)-1].Mul4(m)
}

func (r *Recorder) ClearColor(cr, g, b, a float32) { r.record("ClearColor", cr, g, b, a) }
func (r *Recorder) Clear(mask gfx.ClearMask)       { r.record("Clear", mask) }
func (r *Recorder) Color(cr, g, b float32)         { r.record("Color", cr, g, b) }
func (r *Recorder) Color4(cr, g, b, a float32)     { r.record("Color4", cr, g, b, a) }

func (r *Recorder) Enable(c gfx.Capability) {
	r.enabled[c] = true
	r.record("Enable", c)
}

func (r *Recorder) Disable(c gfx.Capability) {
	r.enabled[c] = false
	r.record("Disable", c)
}

func (r *Recorder) ColorMaterialAmbientDiffuse() { r.record("ColorMaterial") }
func (r *Recorder) TexEnv(mode gfx.TexEnvMode)   { r.record("TexEnv", mode) }
func (r *Recorder) Light(index int, l gfx.Light) { r.record("Light", index, l) }

func (r *Recorder) MatrixMode(m gfx.MatrixMode) {
	r.mode = m
	r.record("MatrixMode", m)
}

func (r *Recorder) LoadIdentity() {
	s := r.stacks[r.mode]
	s[len(s)-1] = mgl32.Ident4()
	r.record("LoadIdentity")
}

func (r *Recorder) PushMatrix() {
	s := r.stacks[r.mode]
	r.stacks[r.mode] = append(s, s[len(s)-1])
	r.record("PushMatrix")
}

func (r *Recorder) PopMatrix() {
	s := r.stacks[r.mode]
	if len(s) == 1 {
		r.fail("pop on empty %s stack", r.mode)
	} else {
		r.stacks[r.mode] = s[:len(s)-1]
	}
	r.record("PopMatrix")
}

func (r *Recorder) Translate(x, y, z float32) {
	r.apply(mgl32.Translate3D(x, y, z))
	r.record("Translate", x, y, z)
}

func (r *Recorder) Rotate(angle, x, y, z float32) {
	axis := mgl32.Vec3{x, y, z}
	if axis.Len() > 0 {
		r.apply(mgl32.HomogRotate3D(mgl32.DegToRad(angle), axis.Normalize()))
	}
	r.record("Rotate", angle, x, y, z)
}

func (r *Recorder) Scale(x, y, z float32) {
	r.apply(mgl32.Scale3D(x, y, z))
	r.record("Scale", x, y, z)
}

func (r *Recorder) Perspective(fovy, aspect, near, far float32) {
	r.apply(mgl32.Perspective(mgl32.DegToRad(fovy), aspect, near, far))
	r.record("Perspective", fovy, aspect, near, far)
}

func (r *Recorder) Ortho(left, right, bottom, top, near, far float32) {
	r.apply(mgl32.Ortho(left, right, bottom, top, near, far))
	r.record("Ortho", left, right, bottom, top, near, far)
}

func (r *Recorder) LookAt(eye, center, up mgl32.Vec3) {
	r.apply(mgl32.LookAtV(eye, center, up))
	r.record("LookAt", eye, center, up)
}

func (r *Recorder) Viewport(x, y, w, h int32) { r.record("Viewport", x, y, w, h) }

func (r *Recorder) GenTexture() uint32 {
	t := r.nextTex
	r.nextTex++
	r.live[t] = true
	r.record("GenTexture", t)
	return t
}

func (r *Recorder) BindTexture(tex uint32) {
	if tex != 0 && !r.live[tex] {
		r.fail("bind of unknown texture %d", tex)
	}
	r.bound = tex
	r.record("BindTexture", tex)
}

func (r *Recorder) Build2DMipmaps(img *image.RGBA) {
	if r.bound == 0 {
		r.fail("mipmap upload with no texture bound")
	}
	r.record("Build2DMipmaps", r.bound, img.Rect.Dx(), img.Rect.Dy())
}

func (r *Recorder) TexParameter(p gfx.TexParam, v gfx.TexValue) {
	r.record("TexParameter", p, v)
}

func (r *Recorder) DeleteTextures(tex ...uint32) {
	for _, t := range tex {
		if !r.live[t] {
			r.fail("delete of unknown texture %d", t)
		}
		delete(r.live, t)
	}
	r.record("DeleteTextures", append([]uint32(nil), tex...))
}

func (r *Recorder) Begin(p gfx.Primitive) {
	if r.inBegin {
		r.fail("nested Begin")
	}
	r.inBegin = true
	r.record("Begin", p)
}

func (r *Recorder) End() {
	if !r.inBegin {
		r.fail("End without Begin")
	}
	r.inBegin = false
	r.record("End")
}

func (r *Recorder) Normal(x, y, z float32)   { r.record("Normal", x, y, z) }
func (r *Recorder) TexCoord(s, t float32)    { r.record("TexCoord", s, t) }
func (r *Recorder) Vertex(x, y, z float32)   { r.record("Vertex", x, y, z) }
func (r *Recorder) RasterPos(x, y float32)   { r.record("RasterPos", x, y) }
func (r *Recorder) DrawPixels(i *image.RGBA) { r.record("DrawPixels", i) }
func (r *Recorder) Flush()                   { r.record("Flush") }
