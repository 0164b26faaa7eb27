// Package primitives tessellates the quadric solids used by the scene. The
// layouts follow the GLU quadrics: spheres around the origin with +Z as the
// polar axis, cylinders from z=0 to z=height. All triangles wind
// counter-clockwise when seen from outside.
package primitives

import (
	"math"

	"igloo/internal/graphics/gfx"

	"github.com/go-gl/mathgl/mgl32"
)

// Sphere returns a UV sphere. slices >= 3, stacks >= 2.
func Sphere(radius float32, slices, stacks int) *gfx.Mesh {
	if slices < 3 {
		slices = 3
	}
	if stacks < 2 {
		stacks = 2
	}

	point := func(i, j int) gfx.Vertex {
		phi := math.Pi * float64(i) / float64(stacks)
		theta := 2 * math.Pi * float64(j) / float64(slices)
		n := mgl32.Vec3{
			float32(math.Sin(phi) * math.Sin(theta)),
			float32(math.Sin(phi) * math.Cos(theta)),
			float32(math.Cos(phi)),
		}
		return gfx.Vertex{
			Position: n.Mul(radius),
			Normal:   n,
			UV:       mgl32.Vec2{float32(j) / float32(slices), 1 - float32(i)/float32(stacks)},
		}
	}

	m := &gfx.Mesh{Mode: gfx.Triangles}
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			v00, v01 := point(i, j), point(i, j+1)
			v10, v11 := point(i+1, j), point(i+1, j+1)
			// The first and last rings collapse to a pole: one triangle per quad.
			if i != 0 {
				m.Vertices = append(m.Vertices, v00, v01, v11)
			}
			if i != stacks-1 {
				m.Vertices = append(m.Vertices, v00, v11, v10)
			}
		}
	}
	return m
}

// Cylinder returns an open (uncapped) cylinder that tapers linearly from
// base to top radius along +Z.
func Cylinder(base, top, height float32, slices, stacks int) *gfx.Mesh {
	if slices < 3 {
		slices = 3
	}
	if stacks < 1 {
		stacks = 1
	}

	// Side slope: normals tilt toward +Z when the cylinder narrows upwards.
	nz := (base - top) / height
	norm := float32(math.Sqrt(float64(1 + nz*nz)))

	point := func(i, j int) gfx.Vertex {
		t := float32(i) / float32(stacks)
		r := base + (top-base)*t
		theta := 2 * math.Pi * float64(j) / float64(slices)
		s, c := float32(math.Sin(theta)), float32(math.Cos(theta))
		return gfx.Vertex{
			Position: mgl32.Vec3{r * s, r * c, height * t},
			Normal:   mgl32.Vec3{s / norm, c / norm, nz / norm},
			UV:       mgl32.Vec2{float32(j) / float32(slices), t},
		}
	}

	m := &gfx.Mesh{Mode: gfx.Triangles}
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			v00, v01 := point(i, j), point(i, j+1)
			v10, v11 := point(i+1, j), point(i+1, j+1)
			m.Vertices = append(m.Vertices, v00, v10, v11, v00, v11, v01)
		}
	}
	return m
}
