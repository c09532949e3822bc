package pixel

import (
	"image"
	"image/color"
	"image/draw"
)

// Image is a mutable image that can also be cleared or filled at once.
type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the raw pixel values backing an image.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

// RGBImage is a 24-bits per pixel 8-8-8-bit RGB image, stored row-major with
// 3 bytes per pixel in R, G, B order.
type RGBImage struct {
	Buffer
}

func NewRGBImage(w, h int) *RGBImage {
	return &RGBImage{
		Buffer: Buffer{
			Rect:   image.Rect(0, 0, w, h),
			Pix:    make([]byte, w*3*h),
			Stride: w * 3,
		},
	}
}

func (p *RGBImage) ColorModel() color.Model {
	return RGBModel
}

// PixOffset returns the index into Pix of the first (red) byte of the pixel
// at (x, y).
func (p *RGBImage) PixOffset(x, y int) int {
	return y*p.Stride + x*3
}

func (p *RGBImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	i := p.PixOffset(x, y)
	return RGB{R: p.Pix[i], G: p.Pix[i+1], B: p.Pix[i+2]}
}

// RGBAt is like At, without boxing the pixel in a [color.Color] interface.
func (p *RGBImage) RGBAt(x, y int) RGB {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return RGB{}
	}

	i := p.PixOffset(x, y)
	return RGB{R: p.Pix[i], G: p.Pix[i+1], B: p.Pix[i+2]}
}

func (p *RGBImage) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	v := rgbModel(c).(RGB)
	i := p.PixOffset(x, y)
	p.Pix[i] = v.R
	p.Pix[i+1] = v.G
	p.Pix[i+2] = v.B
}

func (p *RGBImage) Fill(c color.Color) {
	v := rgbModel(c).(RGB)
	for i, l := 0, len(p.Pix); i < l; i += 3 {
		p.Pix[i] = v.R
		p.Pix[i+1] = v.G
		p.Pix[i+2] = v.B
	}
}

// Interface checks.
var _ Image = (*RGBImage)(nil)
