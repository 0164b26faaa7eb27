package renderer

import (
	"errors"
	"fmt"

	"igloo/internal/graphics"
	"igloo/internal/graphics/gfx"
	"igloo/internal/graphics/renderables/igloo"
	"igloo/internal/graphics/renderables/overlay"
	"igloo/internal/graphics/renderables/surface"
	"igloo/internal/log"
	"igloo/internal/profiling"
	"igloo/internal/scene"
)

// ErrInvalidViewport is returned for non-positive window sizes.
var ErrInvalidViewport = errors.New("invalid viewport")

const (
	sceneScale   = 10
	sceneOffsetY = -0.5
)

// Options configures a Renderer.
type Options struct {
	Textures graphics.TexturePaths
	Scene    scene.Provider
	Viewport graphics.Viewport
	// Lights defaults to graphics.DefaultLights when nil.
	Lights []graphics.Light
	// Overlay defaults to overlay.DefaultLines when nil.
	Overlay []overlay.Line
}

// Renderer draws the scene, the decorations and the text overlay.
// Initialize, Draw, Resize and Dispose must be called from the thread that
// owns ctx and never concurrently.
type Renderer struct {
	ctx    gfx.Context
	camera *graphics.Camera
	logger log.Logger

	viewport    graphics.Viewport
	lights      []graphics.Light
	texPaths    graphics.TexturePaths
	textures    *graphics.TextureSet
	scene       scene.Provider
	renderables []Renderable
	list        *gfx.List

	initialized bool
	disposed    bool
}

// New validates opts and returns an uninitialized renderer that owns
// opts.Scene from now on.
func New(ctx gfx.Context, opts Options) (*Renderer, error) {
	if opts.Scene == nil {
		return nil, errors.New("renderer: nil scene provider")
	}
	if !opts.Viewport.Valid() {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidViewport, opts.Viewport.Width, opts.Viewport.Height)
	}
	lights := opts.Lights
	if lights == nil {
		lights = graphics.DefaultLights()
	}
	for _, l := range lights {
		if err := l.Validate(); err != nil {
			return nil, err
		}
	}
	lines := opts.Overlay
	if lines == nil {
		lines = overlay.DefaultLines()
	}

	return &Renderer{
		ctx:      ctx,
		camera:   graphics.NewCamera(),
		logger:   log.New("renderer"),
		viewport: opts.Viewport,
		lights:   lights,
		texPaths: opts.Textures,
		scene:    opts.Scene,
		// Draw order of the decorations.
		renderables: []Renderable{
			surface.NewIce(),
			surface.NewWater(),
			igloo.New(),
			overlay.New(lines),
		},
		list: gfx.NewList(256),
	}, nil
}

// Camera returns the view camera.
func (r *Renderer) Camera() *graphics.Camera { return r.camera }

// Viewport returns the size last set by New or Resize.
func (r *Renderer) Viewport() graphics.Viewport { return r.viewport }

// Textures returns the loaded texture set, nil before Initialize.
func (r *Renderer) Textures() *graphics.TextureSet { return r.textures }

// Initialize sets up GL state, loads textures and lights, prepares the
// decorations and finally loads the scene. Any failure is fatal: resources
// acquired so far are released and the error is returned.
func (r *Renderer) Initialize() error {
	if r.disposed {
		return errors.New("renderer: initialize after dispose")
	}
	if r.initialized {
		return nil
	}
	ctx := r.ctx

	ctx.ClearColor(0, 0, 0, 1)
	ctx.Color(1, 0, 0)
	r.camera.Project(ctx, r.viewport.Aspect())

	ctx.Enable(gfx.DepthTest)
	ctx.Enable(gfx.CullFace)
	ctx.Enable(gfx.ColorMaterial)
	ctx.ColorMaterialAmbientDiffuse()

	ctx.Enable(gfx.Texture2D)
	ctx.TexEnv(gfx.EnvAdd)

	textures, err := graphics.LoadTextureSet(ctx, r.texPaths)
	if err != nil {
		return err
	}
	r.textures = textures

	if err := graphics.SetupLighting(ctx, r.lights); err != nil {
		r.releaseLocal()
		return err
	}

	for _, d := range r.renderables {
		if err := d.Init(ctx); err != nil {
			r.releaseLocal()
			return fmt.Errorf("init %s: %w", d.Name(), err)
		}
	}

	if err := r.scene.Load(); err != nil {
		r.releaseLocal()
		return err
	}
	if err := r.scene.Initialize(); err != nil {
		r.releaseLocal()
		return fmt.Errorf("initialize scene: %w", err)
	}

	r.initialized = true
	r.logger.Infof("initialized %dx%d, %d lights", r.viewport.Width, r.viewport.Height, len(r.lights))
	return nil
}

// Draw renders one frame. It does nothing before Initialize or after Dispose.
func (r *Renderer) Draw(p FrameParams) {
	if !r.initialized {
		return
	}
	defer profiling.Track("renderer.Draw")()
	r.BuildFrame(p).Execute(r.ctx)
}

// BuildFrame records the frame for p. Each step depends on state left by
// the previous one. The returned list is reused by the next call.
func (r *Renderer) BuildFrame(p FrameParams) *gfx.List {
	l := r.list
	l.Reset()
	vp := r.viewport
	aspect := vp.Aspect()

	l.MatrixMode(gfx.Projection)
	l.LoadIdentity()
	l.Perspective(graphics.FOV, aspect, graphics.NearPlane, graphics.FarPlane)
	l.Viewport(0, 0, int32(vp.Width), int32(vp.Height))
	l.Clear(gfx.ColorBuffer | gfx.DepthBuffer)

	r.camera.Project(l, aspect)

	l.MatrixMode(gfx.ModelView)
	l.PushMatrix()
	l.Translate(0, 0, -p.SceneDistance)
	l.Rotate(p.RotationX, 1, 0, 0)
	l.Rotate(p.RotationY, 0, 1, 0)

	l.PushMatrix()
	l.Scale(sceneScale, sceneScale, sceneScale)
	l.Translate(0, sceneOffsetY, 0)
	l.Invoke("scene", r.drawScene)
	l.PopMatrix()

	rc := graphics.RenderContext{Textures: r.textures, Viewport: vp}
	for _, d := range r.renderables {
		d.Record(l, rc)
	}

	l.PopMatrix()
	l.Flush()
	return l
}

func (r *Renderer) drawScene() {
	defer profiling.Track("scene.Draw")()
	r.scene.Draw()
}

// Resize stores the new size and resets viewport, projection and
// model-view. Calling it twice with the same size has no further effect.
func (r *Renderer) Resize(width, height int) error {
	vp := graphics.Viewport{Width: width, Height: height}
	if !vp.Valid() {
		return fmt.Errorf("%w: %dx%d", ErrInvalidViewport, width, height)
	}
	r.viewport = vp

	ctx := r.ctx
	ctx.Viewport(0, 0, int32(width), int32(height))
	ctx.MatrixMode(gfx.Projection)
	ctx.LoadIdentity()
	ctx.Perspective(graphics.FOV, vp.Aspect(), graphics.NearPlane, graphics.FarPlane)
	ctx.MatrixMode(gfx.ModelView)
	ctx.LoadIdentity()
	return nil
}

// Dispose releases textures, decorations and the scene. The scene is
// released exactly once; later calls do nothing.
func (r *Renderer) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	r.releaseLocal()

	if sc := r.scene; sc != nil {
		r.scene = nil
		sc.Dispose()
	}
	r.logger.Debug("disposed")
}

// releaseLocal frees what Initialize acquired, in reverse order.
func (r *Renderer) releaseLocal() {
	r.initialized = false
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose(r.ctx)
	}
	r.textures.Release(r.ctx)
	r.textures = nil
}
