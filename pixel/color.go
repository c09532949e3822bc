package pixel

import "image/color"

// RGBModel is the color model for the 24-bit RGB colors used by the display.
var RGBModel color.Model = color.ModelFunc(rgbModel)

// Common colors.
var (
	Black = RGB{}
	White = RGB{R: 0xff, G: 0xff, B: 0xff}
)

// RGB represents a 24-bit 8-8-8 RGB color, one byte per channel, no alpha.
// This is the native color of the Unicorn HAT HD pixels and also the exact
// layout of a pixel on the wire.
type RGB struct {
	R, G, B uint8
}

func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

func rgbModel(c color.Color) color.Color {
	if _, ok := c.(RGB); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}
