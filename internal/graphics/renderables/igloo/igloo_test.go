package igloo

import (
	"testing"

	"igloo/internal/graphics"
	"igloo/internal/graphics/gfx"
	"igloo/internal/graphics/gfx/gfxtest"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIglooRecord(t *testing.T) {
	g := New()
	rec := gfxtest.New()
	require.NoError(t, g.Init(rec))
	g.Record(rec, graphics.RenderContext{})

	assert.Empty(t, rec.Errs())
	assert.Equal(t, 1, rec.Depth(gfx.ModelView))
	assert.Equal(t, gfx.ModelView, rec.Mode())
	for _, c := range []gfx.Capability{gfx.Texture2D, gfx.TextureGenS, gfx.TextureGenT} {
		assert.False(t, rec.Enabled(c))
	}
	assert.Equal(t, []any{gfx.EnvModulate}, rec.Named("TexEnv")[0].Args)
	assert.Equal(t, 2, rec.Count("Begin"))

	// The dome is drawn at the igloo origin scaled by 12.
	begins := rec.Named("Begin")
	want := mgl32.Translate3D(20, -2, -20).Mul4(mgl32.Scale3D(12, 12, 12))
	assert.True(t, begins[0].Matrix.ApproxEqualThreshold(want, 1e-5))

	tunnel := want.
		Mul4(mgl32.Translate3D(-1.3, -0.2, 0)).
		Mul4(mgl32.Scale3D(2, 0.6, 0.5)).
		Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0}))
	assert.True(t, begins[1].Matrix.ApproxEqualThreshold(tunnel, 1e-4))
}

func TestIglooDisposeDropsMeshes(t *testing.T) {
	g := New()
	rec := gfxtest.New()
	require.NoError(t, g.Init(rec))
	g.Dispose(rec)
	g.Dispose(rec)

	g.Record(rec, graphics.RenderContext{})
	assert.Zero(t, rec.Count("Begin"))
	assert.Equal(t, 1, rec.Depth(gfx.ModelView))
}
