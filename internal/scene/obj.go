package scene

import (
	"fmt"
	"path/filepath"
	"time"

	"igloo/internal/graphics/gfx"
	"igloo/internal/log"

	"github.com/go-gl/mathgl/mgl32"
)

// OBJ is a Provider backed by a Wavefront OBJ file and its MTL libraries.
type OBJ struct {
	cmds   gfx.Commands
	dir    string
	file   string
	logger log.Logger

	meshes      []*Mesh
	loaded      bool
	initialized bool
}

var _ Provider = (*OBJ)(nil)

// NewOBJ returns a provider for dir/file that draws into cmds.
func NewOBJ(cmds gfx.Commands, dir, file string) *OBJ {
	return &OBJ{
		cmds:   cmds,
		dir:    dir,
		file:   file,
		logger: log.New("scene"),
	}
}

// Path returns the model file location.
func (o *OBJ) Path() string { return filepath.Join(o.dir, o.file) }

// Load parses the model. Errors report the file and line at fault.
func (o *OBJ) Load() error {
	start := time.Now()
	r := newWavefrontReader()
	if err := r.parseFile(o.Path()); err != nil {
		return fmt.Errorf("load scene %s: %w", o.Path(), err)
	}
	o.meshes = r.meshes
	o.loaded = true
	o.initialized = false

	meshes, tris := o.Stats()
	o.logger.Infof("parsed %s: %d meshes, %d triangles in %d ms", o.file, meshes, tris, time.Since(start).Milliseconds())
	return nil
}

// Initialize fills in missing normals and fits the model into a unit box
// that rests on y=0 and is centred on the other two axes.
func (o *OBJ) Initialize() error {
	if !o.loaded {
		return ErrNotLoaded
	}
	if o.initialized {
		return nil
	}
	for _, m := range o.meshes {
		flatNormals(&m.Geometry)
	}
	o.normalize()
	o.initialized = true
	return nil
}

// Draw submits every mesh in its material color. Models are untextured.
// Opaque meshes go first; translucent ones follow with blending enabled.
func (o *OBJ) Draw() {
	if !o.initialized {
		return
	}
	o.cmds.Disable(gfx.Texture2D)
	var translucent []*Mesh
	for _, m := range o.meshes {
		if m.Material.Alpha < 1 {
			translucent = append(translucent, m)
			continue
		}
		kd := m.Material.Kd
		o.cmds.Color(kd[0], kd[1], kd[2])
		gfx.DrawMesh(o.cmds, &m.Geometry)
	}
	if len(translucent) == 0 {
		return
	}

	o.cmds.Enable(gfx.Blend)
	for _, m := range translucent {
		kd := m.Material.Kd
		o.cmds.Color4(kd[0], kd[1], kd[2], max(m.Material.Alpha, 0))
		gfx.DrawMesh(o.cmds, &m.Geometry)
	}
	o.cmds.Disable(gfx.Blend)
}

// Dispose drops the parsed geometry.
func (o *OBJ) Dispose() {
	if !o.loaded {
		return
	}
	o.meshes = nil
	o.loaded = false
	o.initialized = false
	o.logger.Debugf("disposed %s", o.file)
}

// Meshes returns the parsed meshes.
func (o *OBJ) Meshes() []*Mesh { return o.meshes }

// Stats returns the mesh and triangle counts.
func (o *OBJ) Stats() (meshes, triangles int) {
	for _, m := range o.meshes {
		triangles += len(m.Geometry.Vertices) / 3
	}
	return len(o.meshes), triangles
}

// Bounds returns the box enclosing all meshes.
func (o *OBJ) Bounds() (lo, hi mgl32.Vec3, ok bool) {
	for _, m := range o.meshes {
		mn, mx, has := m.Geometry.Bounds()
		if !has {
			continue
		}
		if !ok {
			lo, hi, ok = mn, mx, true
			continue
		}
		for i := 0; i < 3; i++ {
			lo[i] = min(lo[i], mn[i])
			hi[i] = max(hi[i], mx[i])
		}
	}
	return lo, hi, ok
}

func (o *OBJ) normalize() {
	lo, hi, ok := o.Bounds()
	if !ok {
		return
	}
	size := hi.Sub(lo)
	extent := max(size[0], size[1], size[2])
	if extent == 0 {
		return
	}
	scale := 1 / extent
	offset := mgl32.Vec3{-(lo[0] + hi[0]) / 2, -lo[1], -(lo[2] + hi[2]) / 2}
	for _, m := range o.meshes {
		for i := range m.Geometry.Vertices {
			p := &m.Geometry.Vertices[i].Position
			*p = p.Add(offset).Mul(scale)
		}
	}
}

// flatNormals gives every triangle lacking a normal its face normal.
func flatNormals(m *gfx.Mesh) {
	v := m.Vertices
	for i := 0; i+2 < len(v); i += 3 {
		if v[i].Normal.Len() > 0 && v[i+1].Normal.Len() > 0 && v[i+2].Normal.Len() > 0 {
			continue
		}
		n := v[i+1].Position.Sub(v[i].Position).Cross(v[i+2].Position.Sub(v[i].Position))
		if n.Len() > 0 {
			n = n.Normalize()
		}
		v[i].Normal, v[i+1].Normal, v[i+2].Normal = n, n, n
	}
}
