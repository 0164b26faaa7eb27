// Package overlay draws screen-aligned text in the bottom-right corner of
// the window, independent of the 3D camera.
package overlay

import (
	"fmt"
	"image"
	"image/color"

	"igloo/internal/graphics"
	"igloo/internal/graphics/gfx"

	"golang.org/x/image/font"
)

// Line is one label positioned in pixels from the bottom-left of the
// overlay viewport.
type Line struct {
	X, Y  int
	Style graphics.FontStyle
	Text  string
}

// DefaultLines is the course information block.
func DefaultLines() []Line {
	return []Line{
		{X: 5, Y: 75, Style: graphics.Mono, Text: " "},
		{X: 0, Y: 100, Style: graphics.Italic, Text: "Predmet: Racunarska grafika"},
		{X: 0, Y: 80, Style: graphics.Italic, Text: "Sk.god: 2021/22."},
		{X: 0, Y: 60, Style: graphics.Italic, Text: "Ime: Natalija"},
		{X: 0, Y: 40, Style: graphics.Italic, Text: "Prezime: Simin"},
		{X: 0, Y: 20, Style: graphics.Italic, Text: "Sifra zad: 14.2"},
	}
}

const (
	// rightInset is the distance of the overlay viewport from the right edge.
	rightInset = 255
	fontPoints = 10
)

var textColor = color.RGBA{R: 255, A: 255}

type label struct {
	line  Line
	image *image.RGBA
}

// Overlay rasterizes its lines once and blits them every frame.
type Overlay struct {
	lines  []Line
	labels []label
}

func New(lines []Line) *Overlay {
	return &Overlay{lines: lines}
}

func (o *Overlay) Name() string { return "overlay" }

// Init renders every line into an image with its font style.
func (o *Overlay) Init(gfx.Context) error {
	faces := make(map[graphics.FontStyle]font.Face)
	defer func() {
		for _, f := range faces {
			_ = f.Close()
		}
	}()

	o.labels = o.labels[:0]
	for _, ln := range o.lines {
		face, ok := faces[ln.Style]
		if !ok {
			var err error
			face, err = graphics.NewFace(ln.Style, fontPoints)
			if err != nil {
				return fmt.Errorf("overlay font: %w", err)
			}
			faces[ln.Style] = face
		}
		o.labels = append(o.labels, label{
			line:  ln,
			image: graphics.RasterizeLabel(face, ln.Text, textColor),
		})
	}
	return nil
}

// Region returns the overlay viewport for a window of the given size.
func Region(vp graphics.Viewport) (x, y, w, h int32) {
	return int32(vp.Width - rightInset), 0, int32(vp.Width / 2), int32(vp.Height / 2)
}

// Record draws the labels with both matrices reset so positions are in
// overlay pixels. Lighting, depth test and texturing are suspended.
func (o *Overlay) Record(cmds gfx.Commands, rc graphics.RenderContext) {
	x, y, w, h := Region(rc.Viewport)
	if w <= 0 || h <= 0 {
		return
	}

	cmds.MatrixMode(gfx.ModelView)
	cmds.PushMatrix()
	cmds.Viewport(x, y, w, h)
	cmds.LoadIdentity()
	cmds.MatrixMode(gfx.Projection)
	cmds.PushMatrix()
	cmds.LoadIdentity()

	cmds.Disable(gfx.Lighting)
	cmds.Disable(gfx.DepthTest)
	cmds.Disable(gfx.Texture2D)
	cmds.Enable(gfx.Blend)

	for _, l := range o.labels {
		cmds.RasterPos(toNDC(l.line.X, w), toNDC(l.line.Y, h))
		cmds.DrawPixels(l.image)
	}

	cmds.Disable(gfx.Blend)
	cmds.Enable(gfx.DepthTest)
	cmds.Enable(gfx.Lighting)

	cmds.PopMatrix()
	cmds.MatrixMode(gfx.ModelView)
	cmds.PopMatrix()
}

func (o *Overlay) Dispose(gfx.Context) {
	o.labels = nil
}

func toNDC(px int, size int32) float32 {
	return 2*float32(px)/float32(size) - 1
}
