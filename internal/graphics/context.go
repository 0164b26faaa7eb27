package graphics

// RenderContext is what a decorative element needs to record its draw calls.
type RenderContext struct {
	Textures *TextureSet
	Viewport Viewport
}
