// Package igloo draws the snow dome and its entrance tunnel.
package igloo

import (
	"igloo/internal/graphics"
	"igloo/internal/graphics/gfx"
	"igloo/internal/graphics/primitives"
)

const (
	slices = 20
	stacks = 20

	tunnelBase = 1.0
	tunnelTop  = 0.6
)

// Igloo is a sphere dome plus a tapered cylinder entrance.
type Igloo struct {
	dome   *gfx.Mesh
	tunnel *gfx.Mesh
}

func New() *Igloo {
	return &Igloo{}
}

// Init tessellates the meshes once.
func (g *Igloo) Init(gfx.Context) error {
	g.dome = primitives.Sphere(1, slices, stacks)
	g.tunnel = primitives.Cylinder(tunnelBase, tunnelTop, 1, slices, 1)
	return nil
}

func (g *Igloo) Name() string { return "igloo" }

// Record draws both solids snow-textured with generated texture coordinates.
func (g *Igloo) Record(cmds gfx.Commands, rc graphics.RenderContext) {
	cmds.MatrixMode(gfx.ModelView)
	cmds.PushMatrix()
	cmds.Color(1, 1, 1)
	cmds.Translate(20, -2, -20)
	cmds.Enable(gfx.Texture2D)
	cmds.Enable(gfx.TextureGenS)
	cmds.Enable(gfx.TextureGenT)
	cmds.TexEnv(gfx.EnvModulate)
	cmds.BindTexture(rc.Textures.Handle(graphics.Snow))

	cmds.Scale(12, 12, 12)
	gfx.DrawMesh(cmds, g.dome)

	cmds.Translate(-1.3, -0.2, 0)
	cmds.Scale(2, 0.6, 0.5)
	cmds.Rotate(90, 0, 1, 0)
	gfx.DrawMesh(cmds, g.tunnel)
	cmds.PopMatrix()

	cmds.Disable(gfx.Texture2D)
	cmds.Disable(gfx.TextureGenS)
	cmds.Disable(gfx.TextureGenT)
}

func (g *Igloo) Dispose(gfx.Context) {
	g.dome = nil
	g.tunnel = nil
}
