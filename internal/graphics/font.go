package graphics

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontStyle selects one of the embedded typefaces.
type FontStyle int

const (
	// Mono is a fixed-pitch face.
	Mono FontStyle = iota
	// Italic is a proportional italic face.
	Italic
)

func (s FontStyle) ttf() ([]byte, error) {
	switch s {
	case Mono:
		return gomono.TTF, nil
	case Italic:
		return goitalic.TTF, nil
	}
	return nil, fmt.Errorf("unknown font style %d", s)
}

// NewFace parses the embedded font for style at the given point size.
func NewFace(style FontStyle, points float64) (font.Face, error) {
	data, err := style.ttf()
	if err != nil {
		return nil, err
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: points, DPI: 96, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	return face, nil
}

// RasterizeLabel draws text in col on a transparent canvas sized to the
// string. The result is flipped bottom-up for DrawPixels.
func RasterizeLabel(face font.Face, text string, col color.Color) *image.RGBA {
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	height := ascent + m.Descent.Ceil()
	width := font.MeasureString(face, text).Ceil()
	if width <= 0 || height <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(text)
	return FlipVertical(canvas)
}
