// Package surface draws flat textured quads: the ice shelf and the water in
// front of it.
package surface

import (
	"igloo/internal/graphics"
	"igloo/internal/graphics/gfx"

	"github.com/go-gl/mathgl/mgl32"
)

// Quad corners are listed in submission order; texture coordinates map
// (0,0),(1,0),(1,1),(0,1) onto them.
type Quad [4]mgl32.Vec3

var quadUV = [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// Base colours added to the texture under EnvAdd. Black leaves the texel
// as is; the ice top gets a faint tint so lighting still shades it.
var (
	IceTopColor = mgl32.Vec3{0.2, 0.2, 0.25}
	EdgeColor   = mgl32.Vec3{0, 0, 0}
	WaterColor  = mgl32.Vec3{0, 0, 0}
)

// Surface is a set of up-facing quads sharing one texture. colors holds the
// base colour of each quad.
type Surface struct {
	name   string
	slot   graphics.TextureSlot
	quads  []Quad
	colors []mgl32.Vec3
}

// NewIce returns the ice shelf: the top face at y=-5 and its front edge
// dropping to the water line at z=20.
func NewIce() *Surface {
	return &Surface{
		name: "ice",
		slot: graphics.Ice,
		quads: []Quad{
			{{40, -5, -50}, {-40, -5, -50}, {-40, -5, 20}, {40, -5, 20}},
			{{40, -5, 20}, {-40, -5, 20}, {-40, -6.5, 20}, {40, -6.5, 20}},
		},
		colors: []mgl32.Vec3{IceTopColor, EdgeColor},
	}
}

// NewWater returns the water plane in front of the ice.
func NewWater() *Surface {
	return &Surface{
		name: "water",
		slot: graphics.Water,
		quads: []Quad{
			{{40, -6.5, 20}, {-40, -6.5, 20}, {-40, -6.5, 50}, {40, -6.5, 50}},
		},
		colors: []mgl32.Vec3{WaterColor},
	}
}

func (s *Surface) Name() string { return s.name }

// Quads returns the geometry submitted by Record.
func (s *Surface) Quads() []Quad { return s.quads }

// Color returns the base colour of quad i.
func (s *Surface) Color(i int) mgl32.Vec3 { return s.colors[i] }

func (s *Surface) Init(gfx.Context) error { return nil }

// Record draws the quads with additive texturing. Every quad sets its own
// base colour so nothing leaks in from the scene's last material. The
// push/pop pair lives on the texture stack; model-view is reselected
// afterwards.
func (s *Surface) Record(cmds gfx.Commands, rc graphics.RenderContext) {
	cmds.MatrixMode(gfx.Texture)
	cmds.PushMatrix()
	cmds.Enable(gfx.Texture2D)
	cmds.TexEnv(gfx.EnvAdd)
	cmds.BindTexture(rc.Textures.Handle(s.slot))

	cmds.Color(s.colors[0][0], s.colors[0][1], s.colors[0][2])
	cmds.Begin(gfx.Quads)
	for qi, q := range s.quads {
		if c := s.colors[qi]; qi > 0 && c != s.colors[qi-1] {
			cmds.Color(c[0], c[1], c[2])
		}
		for i, p := range q {
			cmds.Normal(0, 1, 0)
			cmds.TexCoord(quadUV[i][0], quadUV[i][1])
			cmds.Vertex(p[0], p[1], p[2])
		}
	}
	cmds.End()

	cmds.PopMatrix()
	cmds.MatrixMode(gfx.ModelView)
	cmds.Disable(gfx.Texture2D)
}

func (s *Surface) Dispose(gfx.Context) {}
