package gfx

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// Command is one recorded graphics call.
type Command interface {
	Exec(c Commands)
}

type (
	ClearColorCmd struct{ R, G, B, A float32 }
	ClearCmd      struct{ Mask ClearMask }
	ColorCmd      struct{ R, G, B float32 }
	Color4Cmd     struct{ R, G, B, A float32 }
	EnableCmd     struct{ Cap Capability }
	DisableCmd    struct{ Cap Capability }
	ColorMatCmd   struct{}
	TexEnvCmd     struct{ Mode TexEnvMode }
	LightCmd      struct {
		Index int
		Light Light
	}
	MatrixModeCmd   struct{ Mode MatrixMode }
	LoadIdentityCmd struct{}
	PushMatrixCmd   struct{}
	PopMatrixCmd    struct{}
	TranslateCmd    struct{ X, Y, Z float32 }
	RotateCmd       struct{ Angle, X, Y, Z float32 }
	ScaleCmd        struct{ X, Y, Z float32 }
	PerspectiveCmd  struct{ FovY, Aspect, Near, Far float32 }
	OrthoCmd        struct{ Left, Right, Bottom, Top, Near, Far float32 }
	LookAtCmd       struct{ Eye, Center, Up mgl32.Vec3 }
	ViewportCmd     struct{ X, Y, Width, Height int32 }
	BindTextureCmd  struct{ Tex uint32 }
	TexParamCmd     struct {
		Param TexParam
		Value TexValue
	}
	BeginCmd     struct{ Prim Primitive }
	EndCmd       struct{}
	NormalCmd    struct{ X, Y, Z float32 }
	TexCoordCmd  struct{ S, T float32 }
	VertexCmd    struct{ X, Y, Z float32 }
	RasterPosCmd struct{ X, Y float32 }
	PixelsCmd    struct{ Image *image.RGBA }
	FlushCmd     struct{}
	// MeshCmd submits a whole mesh in one Begin/End block.
	MeshCmd struct{ Mesh *Mesh }
	// InvokeCmd hands control to a collaborator that draws on its own.
	InvokeCmd struct {
		Name string
		Fn   func()
	}
)

func (x ClearColorCmd) Exec(c Commands)   { c.ClearColor(x.R, x.G, x.B, x.A) }
func (x ClearCmd) Exec(c Commands)        { c.Clear(x.Mask) }
func (x ColorCmd) Exec(c Commands)        { c.Color(x.R, x.G, x.B) }
func (x Color4Cmd) Exec(c Commands)       { c.Color4(x.R, x.G, x.B, x.A) }
func (x EnableCmd) Exec(c Commands)       { c.Enable(x.Cap) }
func (x DisableCmd) Exec(c Commands)      { c.Disable(x.Cap) }
func (x ColorMatCmd) Exec(c Commands)     { c.ColorMaterialAmbientDiffuse() }
func (x TexEnvCmd) Exec(c Commands)       { c.TexEnv(x.Mode) }
func (x LightCmd) Exec(c Commands)        { c.Light(x.Index, x.Light) }
func (x MatrixModeCmd) Exec(c Commands)   { c.MatrixMode(x.Mode) }
func (x LoadIdentityCmd) Exec(c Commands) { c.LoadIdentity() }
func (x PushMatrixCmd) Exec(c Commands)   { c.PushMatrix() }
func (x PopMatrixCmd) Exec(c Commands)    { c.PopMatrix() }
func (x TranslateCmd) Exec(c Commands)    { c.Translate(x.X, x.Y, x.Z) }
func (x RotateCmd) Exec(c Commands)       { c.Rotate(x.Angle, x.X, x.Y, x.Z) }
func (x ScaleCmd) Exec(c Commands)        { c.Scale(x.X, x.Y, x.Z) }
func (x PerspectiveCmd) Exec(c Commands)  { c.Perspective(x.FovY, x.Aspect, x.Near, x.Far) }
func (x OrthoCmd) Exec(c Commands) {
	c.Ortho(x.Left, x.Right, x.Bottom, x.Top, x.Near, x.Far)
}
func (x LookAtCmd) Exec(c Commands)      { c.LookAt(x.Eye, x.Center, x.Up) }
func (x ViewportCmd) Exec(c Commands)    { c.Viewport(x.X, x.Y, x.Width, x.Height) }
func (x BindTextureCmd) Exec(c Commands) { c.BindTexture(x.Tex) }
func (x TexParamCmd) Exec(c Commands)    { c.TexParameter(x.Param, x.Value) }
func (x BeginCmd) Exec(c Commands)       { c.Begin(x.Prim) }
func (x EndCmd) Exec(c Commands)         { c.End() }
func (x NormalCmd) Exec(c Commands)      { c.Normal(x.X, x.Y, x.Z) }
func (x TexCoordCmd) Exec(c Commands)    { c.TexCoord(x.S, x.T) }
func (x VertexCmd) Exec(c Commands)      { c.Vertex(x.X, x.Y, x.Z) }
func (x RasterPosCmd) Exec(c Commands)   { c.RasterPos(x.X, x.Y) }
func (x PixelsCmd) Exec(c Commands)      { c.DrawPixels(x.Image) }
func (x FlushCmd) Exec(c Commands)       { c.Flush() }
func (x MeshCmd) Exec(c Commands)        { DrawMesh(c, x.Mesh) }
func (x InvokeCmd) Exec(Commands)        { x.Fn() }

// List records commands in submission order. It satisfies Commands, so any
// code that draws into a live context can draw into a List instead.
type List struct {
	cmds []Command
}

// NewList returns an empty list with room for n commands.
func NewList(n int) *List {
	return &List{cmds: make([]Command, 0, n)}
}

// Commands returns the recorded commands. The slice must not be modified.
func (l *List) Commands() []Command { return l.cmds }

// Len reports how many commands have been recorded.
func (l *List) Len() int { return len(l.cmds) }

// Reset drops all recorded commands and keeps the backing storage.
func (l *List) Reset() { l.cmds = l.cmds[:0] }

// Execute replays the list against c in recording order.
func (l *List) Execute(c Commands) {
	for _, cmd := range l.cmds {
		cmd.Exec(c)
	}
}

func (l *List) add(c Command) { l.cmds = append(l.cmds, c) }

func (l *List) ClearColor(r, g, b, a float32) { l.add(ClearColorCmd{r, g, b, a}) }
func (l *List) Clear(mask ClearMask)          { l.add(ClearCmd{mask}) }
func (l *List) Color(r, g, b float32)         { l.add(ColorCmd{r, g, b}) }
func (l *List) Color4(r, g, b, a float32)     { l.add(Color4Cmd{r, g, b, a}) }
func (l *List) Enable(c Capability)           { l.add(EnableCmd{c}) }
func (l *List) Disable(c Capability)          { l.add(DisableCmd{c}) }
func (l *List) ColorMaterialAmbientDiffuse()  { l.add(ColorMatCmd{}) }
func (l *List) TexEnv(mode TexEnvMode)        { l.add(TexEnvCmd{mode}) }
func (l *List) Light(index int, lt Light)     { l.add(LightCmd{index, lt}) }
func (l *List) MatrixMode(m MatrixMode)       { l.add(MatrixModeCmd{m}) }
func (l *List) LoadIdentity()                 { l.add(LoadIdentityCmd{}) }
func (l *List) PushMatrix()                   { l.add(PushMatrixCmd{}) }
func (l *List) PopMatrix()                    { l.add(PopMatrixCmd{}) }
func (l *List) Translate(x, y, z float32)     { l.add(TranslateCmd{x, y, z}) }
func (l *List) Rotate(angle, x, y, z float32) { l.add(RotateCmd{angle, x, y, z}) }
func (l *List) Scale(x, y, z float32)         { l.add(ScaleCmd{x, y, z}) }
func (l *List) Perspective(fovy, aspect, near, far float32) {
	l.add(PerspectiveCmd{fovy, aspect, near, far})
}
func (l *List) Ortho(left, right, bottom, top, near, far float32) {
	l.add(OrthoCmd{left, right, bottom, top, near, far})
}
func (l *List) LookAt(eye, center, up mgl32.Vec3) { l.add(LookAtCmd{eye, center, up}) }
func (l *List) Viewport(x, y, width, height int32) {
	l.add(ViewportCmd{x, y, width, height})
}
func (l *List) BindTexture(tex uint32)              { l.add(BindTextureCmd{tex}) }
func (l *List) TexParameter(p TexParam, v TexValue) { l.add(TexParamCmd{p, v}) }
func (l *List) Begin(p Primitive)                   { l.add(BeginCmd{p}) }
func (l *List) End()                                { l.add(EndCmd{}) }
func (l *List) Normal(x, y, z float32)              { l.add(NormalCmd{x, y, z}) }
func (l *List) TexCoord(s, t float32)               { l.add(TexCoordCmd{s, t}) }
func (l *List) Vertex(x, y, z float32)              { l.add(VertexCmd{x, y, z}) }
func (l *List) RasterPos(x, y float32)              { l.add(RasterPosCmd{x, y}) }
func (l *List) DrawPixels(img *image.RGBA)          { l.add(PixelsCmd{img}) }
func (l *List) Flush()                              { l.add(FlushCmd{}) }

// Mesh records a whole mesh as a single command.
func (l *List) Mesh(m *Mesh) { l.add(MeshCmd{m}) }

// Invoke records a hand-off to fn, run when the list is executed.
func (l *List) Invoke(name string, fn func()) { l.add(InvokeCmd{name, fn}) }
