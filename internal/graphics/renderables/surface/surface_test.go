package surface

import (
	"slices"
	"testing"

	"igloo/internal/graphics"
	"igloo/internal/graphics/gfx"
	"igloo/internal/graphics/gfx/gfxtest"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurfaceRecord(t *testing.T) {
	for _, s := range []*Surface{NewIce(), NewWater()} {
		t.Run(s.Name(), func(t *testing.T) {
			rec := gfxtest.New()
			require.NoError(t, s.Init(rec))
			s.Record(rec, graphics.RenderContext{})

			assert.Empty(t, rec.Errs())
			assert.Equal(t, 1, rec.Depth(gfx.Texture))
			assert.Equal(t, gfx.ModelView, rec.Mode())
			assert.False(t, rec.Enabled(gfx.Texture2D))
			assert.Equal(t, []any{gfx.EnvAdd}, rec.Named("TexEnv")[0].Args)
			assert.Equal(t, 1, rec.Count("Begin"))
			assert.Equal(t, 4*len(s.Quads()), rec.Count("Vertex"))

			push := rec.Named("PushMatrix")
			require.Len(t, push, 1)
			assert.Equal(t, gfx.Texture, push[0].Mode)

			for _, n := range rec.Named("Normal") {
				assert.Equal(t, []any{float32(0), float32(1), float32(0)}, n.Args)
			}
		})
	}
}

// vertexColors returns the colour in effect for each recorded vertex.
func vertexColors(t *testing.T, rec *gfxtest.Recorder) []mgl32.Vec3 {
	t.Helper()
	var (
		cur mgl32.Vec3
		set bool
		out []mgl32.Vec3
	)
	for _, c := range rec.Calls {
		switch c.Name {
		case "Color":
			cur = mgl32.Vec3{c.Args[0].(float32), c.Args[1].(float32), c.Args[2].(float32)}
			set = true
		case "Vertex":
			require.True(t, set, "vertex before any Color")
			out = append(out, cur)
		}
	}
	return out
}

func TestSurfaceSetsBaseColor(t *testing.T) {
	tests := []struct {
		surface *Surface
		want    []mgl32.Vec3
	}{
		{NewIce(), []mgl32.Vec3{IceTopColor, EdgeColor}},
		{NewWater(), []mgl32.Vec3{WaterColor}},
	}
	for _, tt := range tests {
		t.Run(tt.surface.Name(), func(t *testing.T) {
			rec := gfxtest.New()
			tt.surface.Record(rec, graphics.RenderContext{})

			names := rec.Names()
			begin := slices.Index(names, "Begin")
			require.Positive(t, begin)
			assert.Contains(t, names[:begin], "Color")

			got := vertexColors(t, rec)
			require.Len(t, got, 4*len(tt.want))
			for i, c := range got {
				assert.Equal(t, tt.want[i/4], c, "vertex %d", i)
			}
		})
	}
	assert.Equal(t, mgl32.Vec3{}, NewWater().Color(0))
}

func TestSurfaceGeometry(t *testing.T) {
	ice := NewIce().Quads()
	require.Len(t, ice, 2)
	for _, p := range ice[0] {
		assert.Equal(t, float32(-5), p.Y())
	}
	// The front edge joins the ice top to the water line.
	assert.Equal(t, float32(20), ice[1][0].Z())
	assert.Equal(t, float32(-6.5), ice[1][2].Y())

	water := NewWater().Quads()
	require.Len(t, water, 1)
	for _, p := range water[0] {
		assert.Equal(t, float32(-6.5), p.Y())
		assert.GreaterOrEqual(t, p.Z(), float32(20))
	}
}
