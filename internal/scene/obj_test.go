package scene_test

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"igloo/internal/graphics/gfx"
	"igloo/internal/graphics/gfx/gfxtest"
	"igloo/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cubeMTL = `
newmtl red
Kd 1 0 0
d 0.5
newmtl blue
Kd 0 0 1
`

// Two quads on a 4x2x2 box; the second uses negative indices and no normals.
const boxOBJ = `# test box
mtllib box.mtl
o box
v -2 1 -1
v 2 1 -1
v 2 3 -1
v -2 3 -1
v -2 1 1
v 2 1 1
vn 0 0 -1
vt 0 0
vt 1 0
vt 1 1
vt 0 1
usemtl red
f 1/1/1 2/2/1 3/3/1 4/4/1
usemtl blue
f -6 -1 -5
`

func writeScene(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func TestLoadParsesMeshesAndMaterials(t *testing.T) {
	dir := writeScene(t, map[string]string{"box.obj": boxOBJ, "box.mtl": cubeMTL})
	obj := scene.NewOBJ(gfxtest.New(), dir, "box.obj")
	require.NoError(t, obj.Load())

	meshes := obj.Meshes()
	require.Len(t, meshes, 2)
	assert.Equal(t, "red", meshes[0].Material.Name)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, meshes[0].Material.Kd)
	assert.InDelta(t, 0.5, meshes[0].Material.Alpha, 1e-6)
	assert.Equal(t, "blue", meshes[1].Material.Name)

	n, tris := obj.Stats()
	assert.Equal(t, 2, n)
	// The quad is fanned into two triangles.
	assert.Equal(t, 3, tris)
	assert.Equal(t, mgl32.Vec2{1, 1}, meshes[0].Geometry.Vertices[2].UV)
}

func TestInitializeNormalizesIntoUnitBox(t *testing.T) {
	dir := writeScene(t, map[string]string{"box.obj": boxOBJ, "box.mtl": cubeMTL})
	obj := scene.NewOBJ(gfxtest.New(), dir, "box.obj")
	require.NoError(t, obj.Load())
	require.NoError(t, obj.Initialize())

	lo, hi, ok := obj.Bounds()
	require.True(t, ok)
	assert.InDelta(t, 0, lo.Y(), 1e-6)
	assert.InDelta(t, -0.5, lo.X(), 1e-6)
	assert.InDelta(t, 0.5, hi.X(), 1e-6)
	assert.InDelta(t, 0, lo.Z()+hi.Z(), 1e-6)

	// Faces without normals get a unit face normal.
	for _, v := range obj.Meshes()[1].Geometry.Vertices {
		assert.InDelta(t, 1, v.Normal.Len(), 1e-5)
	}
}

func TestDrawSubmitsTrianglesInMaterialColor(t *testing.T) {
	dir := writeScene(t, map[string]string{"box.obj": boxOBJ, "box.mtl": cubeMTL})
	rec := gfxtest.New()
	obj := scene.NewOBJ(rec, dir, "box.obj")

	obj.Draw()
	assert.Empty(t, rec.Calls, "draw before initialize must be a no-op")

	require.NoError(t, obj.Load())
	require.NoError(t, obj.Initialize())
	obj.Draw()

	assert.Equal(t, 2, rec.Count("Begin"))
	assert.Equal(t, 9, rec.Count("Vertex"))
	colors := rec.Named("Color")
	require.Len(t, colors, 1)
	assert.Equal(t, []any{float32(0), float32(0), float32(1)}, colors[0].Args)

	// Red has d 0.5, so it is drawn last and blended.
	names := rec.Names()
	translucent := rec.Named("Color4")
	require.Len(t, translucent, 1)
	assert.Equal(t, []any{float32(1), float32(0), float32(0), float32(0.5)}, translucent[0].Args)
	assert.Less(t, slices.Index(names, "Color"), slices.Index(names, "Enable"))
	assert.Less(t, slices.Index(names, "Enable"), slices.Index(names, "Color4"))
	assert.Equal(t, "Disable", names[len(names)-1])
	assert.False(t, rec.Enabled(gfx.Blend))
	assert.Equal(t, []any{gfx.Triangles}, rec.Named("Begin")[0].Args)
	assert.Empty(t, rec.Errs())
}

func TestInitializeBeforeLoad(t *testing.T) {
	obj := scene.NewOBJ(gfxtest.New(), t.TempDir(), "missing.obj")
	assert.ErrorIs(t, obj.Initialize(), scene.ErrNotLoaded)
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]struct {
		obj  string
		want string
	}{
		"index out of range": {obj: "v 0 0 0\nf 1 2 3\n", want: "box.obj: 2"},
		"undefined material": {obj: "usemtl nope\n", want: "undefined material 'nope'"},
		"short vertex":       {obj: "v 0 0\n", want: "expected 3 arguments"},
		"two-vertex face":    {obj: "v 0 0 0\nf 1 1\n", want: "at least 3 vertices"},
		"missing mtllib":     {obj: "v 0 0 0\nmtllib gone.mtl\n", want: "box.obj: 2] open material library 'gone.mtl'"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			dir := writeScene(t, map[string]string{"box.obj": tc.obj})
			err := scene.NewOBJ(gfxtest.New(), dir, "box.obj").Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoadMissingMaterialLibrary(t *testing.T) {
	dir := writeScene(t, map[string]string{"box.obj": "mtllib gone.mtl\n"})
	err := scene.NewOBJ(gfxtest.New(), dir, "box.obj").Load()
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "box.obj: 1]")
}

func TestDrawOpaqueSkipsBlending(t *testing.T) {
	mtl := "newmtl blue\nKd 0 0 1\n"
	obj := strings.Replace(strings.Replace(boxOBJ, "usemtl red", "usemtl blue", 1), "\nusemtl blue\nf -6", "\nf -6", 1)
	dir := writeScene(t, map[string]string{"box.obj": obj, "box.mtl": mtl})
	rec := gfxtest.New()
	o := scene.NewOBJ(rec, dir, "box.obj")
	require.NoError(t, o.Load())
	require.NoError(t, o.Initialize())
	o.Draw()

	assert.Zero(t, rec.Count("Color4"))
	assert.Zero(t, rec.Count("Enable"))
	assert.Equal(t, 1, rec.Count("Color"))
}

func TestLoadMissingFile(t *testing.T) {
	err := scene.NewOBJ(gfxtest.New(), t.TempDir(), "none.obj").Load()
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDisposeIsIdempotent(t *testing.T) {
	dir := writeScene(t, map[string]string{"box.obj": boxOBJ, "box.mtl": cubeMTL})
	obj := scene.NewOBJ(gfxtest.New(), dir, "box.obj")
	require.NoError(t, obj.Load())
	obj.Dispose()
	obj.Dispose()
	assert.Empty(t, obj.Meshes())
	assert.ErrorIs(t, obj.Initialize(), scene.ErrNotLoaded)
}

func TestShippedIceberg(t *testing.T) {
	obj := scene.NewOBJ(gfxtest.New(), filepath.Join("..", "..", "assets", "models"), "iceberg.obj")
	require.NoError(t, obj.Load())
	require.NoError(t, obj.Initialize())

	meshes, triangles := obj.Stats()
	assert.Equal(t, 2, meshes)
	assert.Equal(t, 30, triangles)

	lo, hi, ok := obj.Bounds()
	require.True(t, ok)
	assert.InDelta(t, 0, lo.Y(), 1e-5)
	size := hi.Sub(lo)
	assert.InDelta(t, 1, max(size[0], size[1], size[2]), 1e-5)

	center := lo.Add(hi).Mul(0.5)
	for _, m := range obj.Meshes() {
		v := m.Geometry.Vertices
		for i := 0; i+2 < len(v); i += 3 {
			centroid := v[i].Position.Add(v[i+1].Position).Add(v[i+2].Position).Mul(1.0 / 3)
			assert.Positive(t, centroid.Sub(center).Dot(v[i].Normal), "%s triangle %d faces inward", m.Name, i/3)
		}
	}
}
