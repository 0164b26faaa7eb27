package gfx

import "github.com/go-gl/mathgl/mgl32"

// Vertex is one immediate-mode vertex.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// Mesh is a flat vertex list submitted with a single topology.
type Mesh struct {
	Mode     Primitive
	Vertices []Vertex
}

// DrawMesh submits m between one Begin/End pair. Empty meshes are skipped.
// A List records the mesh as a single MeshCmd.
func DrawMesh(c Commands, m *Mesh) {
	if m == nil || len(m.Vertices) == 0 {
		return
	}
	if l, ok := c.(*List); ok {
		l.Mesh(m)
		return
	}
	c.Begin(m.Mode)
	for _, v := range m.Vertices {
		c.Normal(v.Normal[0], v.Normal[1], v.Normal[2])
		c.TexCoord(v.UV[0], v.UV[1])
		c.Vertex(v.Position[0], v.Position[1], v.Position[2])
	}
	c.End()
}

// Bounds returns the axis-aligned box enclosing every vertex. ok is false
// for an empty mesh.
func (m *Mesh) Bounds() (lo, hi mgl32.Vec3, ok bool) {
	if len(m.Vertices) == 0 {
		return lo, hi, false
	}
	lo = m.Vertices[0].Position
	hi = lo
	for _, v := range m.Vertices[1:] {
		for i := 0; i < 3; i++ {
			lo[i] = min(lo[i], v.Position[i])
			hi[i] = max(hi[i], v.Position[i])
		}
	}
	return lo, hi, true
}
