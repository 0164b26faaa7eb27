package gfx_test

import (
	"testing"

	"igloo/internal/graphics/gfx"
	"igloo/internal/graphics/gfx/gfxtest"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangle() *gfx.Mesh {
	n := mgl32.Vec3{0, 0, 1}
	return &gfx.Mesh{Mode: gfx.Triangles, Vertices: []gfx.Vertex{
		{Position: mgl32.Vec3{0, 0, 0}, Normal: n, UV: mgl32.Vec2{0, 0}},
		{Position: mgl32.Vec3{1, 0, 0}, Normal: n, UV: mgl32.Vec2{1, 0}},
		{Position: mgl32.Vec3{0, 1, 0}, Normal: n, UV: mgl32.Vec2{0, 1}},
	}}
}

func TestListReplaysInOrder(t *testing.T) {
	l := gfx.NewList(8)
	invoked := 0

	l.MatrixMode(gfx.ModelView)
	l.PushMatrix()
	l.Translate(1, 2, 3)
	l.Invoke("probe", func() { invoked++ })
	l.PopMatrix()
	l.Flush()
	require.Equal(t, 6, l.Len())

	rec := gfxtest.New()
	l.Execute(rec)

	assert.Equal(t, []string{"MatrixMode", "PushMatrix", "Translate", "PopMatrix", "Flush"}, rec.Names())
	assert.Equal(t, 1, invoked)
	assert.Equal(t, mgl32.Translate3D(1, 2, 3), rec.Named("Translate")[0].Matrix)
	assert.Equal(t, 1, rec.Depth(gfx.ModelView))
	assert.Empty(t, rec.Errs())

	l.Reset()
	assert.Zero(t, l.Len())
	rec.Reset()
	l.Execute(rec)
	assert.Empty(t, rec.Calls)
}

func TestDrawMeshImmediate(t *testing.T) {
	rec := gfxtest.New()
	gfx.DrawMesh(rec, triangle())

	assert.Equal(t, []string{
		"Begin",
		"Normal", "TexCoord", "Vertex",
		"Normal", "TexCoord", "Vertex",
		"Normal", "TexCoord", "Vertex",
		"End",
	}, rec.Names())
	assert.Equal(t, []any{gfx.Triangles}, rec.Calls[0].Args)
	assert.Equal(t, []any{float32(1), float32(0), float32(0)}, rec.Named("Vertex")[1].Args)
}

func TestDrawMeshIntoListRecordsOneCommand(t *testing.T) {
	l := gfx.NewList(1)
	m := triangle()
	gfx.DrawMesh(l, m)
	require.Equal(t, 1, l.Len())
	assert.Equal(t, gfx.MeshCmd{Mesh: m}, l.Commands()[0])

	rec := gfxtest.New()
	l.Execute(rec)
	assert.Equal(t, 3, rec.Count("Vertex"))
}

func TestDrawMeshSkipsEmpty(t *testing.T) {
	rec := gfxtest.New()
	gfx.DrawMesh(rec, nil)
	gfx.DrawMesh(rec, &gfx.Mesh{Mode: gfx.Triangles})
	assert.Empty(t, rec.Calls)
}

func TestMeshBounds(t *testing.T) {
	lo, hi, ok := triangle().Bounds()
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, lo)
	assert.Equal(t, mgl32.Vec3{1, 1, 0}, hi)

	_, _, ok = (&gfx.Mesh{}).Bounds()
	assert.False(t, ok)
}

func TestRecorderFlagsMisuse(t *testing.T) {
	rec := gfxtest.New()
	rec.PopMatrix()
	rec.End()
	rec.BindTexture(42)
	rec.Begin(gfx.Quads)
	rec.Begin(gfx.Quads)
	assert.Len(t, rec.Errs(), 4)
}
