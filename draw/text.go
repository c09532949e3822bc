package draw

import (
	"image"
	"image/color"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// LoadFont parses TrueType font data and returns a face sized in pixels.
// Sizes around 12-16px work well on a 16 pixel tall matrix.
func LoadFont(ttf []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// Text draws s in color c with the baseline starting at p. Glyphs falling
// outside dst are clipped by the destination image.
func Text(dst Image, p image.Point, face font.Face, c color.Color, s string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(p.X, p.Y),
	}
	d.DrawString(s)
}

// TextWidth returns the advance width of s in pixels, useful for scrolling
// text across a matrix.
func TextWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}
