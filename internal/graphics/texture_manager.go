package graphics

import (
	"fmt"

	"igloo/internal/graphics/gfx"
	"igloo/internal/log"
)

var logger = log.New("graphics")

// TextureSlot indexes the fixed texture set.
type TextureSlot int

const (
	Ice TextureSlot = iota
	Water
	Snow

	TextureCount = 3
)

func (s TextureSlot) String() string {
	switch s {
	case Ice:
		return "ice"
	case Water:
		return "water"
	case Snow:
		return "snow"
	}
	return fmt.Sprintf("slot(%d)", int(s))
}

// TexturePaths holds one image file per slot.
type TexturePaths [TextureCount]string

// TextureSet owns the GL handles of the three scene textures.
type TextureSet struct {
	handles [TextureCount]uint32
	count   int
}

// LoadTextureSet creates the textures in slot order. Each image is decoded
// before its handle is generated; on the first failure the handles already
// created are deleted and the remaining slots are left untouched.
func LoadTextureSet(ctx gfx.Context, paths TexturePaths) (*TextureSet, error) {
	ts := &TextureSet{}
	for i, path := range paths {
		slot := TextureSlot(i)
		img, err := LoadImage(path)
		if err != nil {
			ts.Release(ctx)
			return nil, fmt.Errorf("load %s texture: %w", slot, err)
		}

		tex := ctx.GenTexture()
		ts.handles[i] = tex
		ts.count++

		ctx.BindTexture(tex)
		ctx.Build2DMipmaps(img)
		ctx.TexParameter(gfx.MinFilter, gfx.Linear)
		ctx.TexParameter(gfx.WrapS, gfx.Repeat)
		ctx.TexParameter(gfx.WrapT, gfx.Repeat)

		logger.Debugf("texture %s: %s (%dx%d) -> %d", slot, path, img.Rect.Dx(), img.Rect.Dy(), tex)
	}
	return ts, nil
}

// Handle returns the GL texture bound to slot, or 0 once released.
func (ts *TextureSet) Handle(slot TextureSlot) uint32 {
	if ts == nil || slot < 0 || int(slot) >= TextureCount {
		return 0
	}
	return ts.handles[slot]
}

// Release deletes the textures. Calling it again is a no-op.
func (ts *TextureSet) Release(ctx gfx.Context) {
	if ts == nil || ts.count == 0 {
		return
	}
	ctx.DeleteTextures(ts.handles[:ts.count]...)
	ts.handles = [TextureCount]uint32{}
	ts.count = 0
}
