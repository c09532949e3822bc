package unicornhd

import (
	"image"

	"github.com/BeatGlow/unicornhd/pixel"
)

// FrameBuffer holds the pixel state for one Unicorn HAT HD panel.
//
// Storage is always in the unrotated logical layout; the configured rotation
// is an index transform applied when the buffer is serialized for the wire.
// Changing the rotation therefore redraws correctly on the next refresh
// without touching stored pixels.
type FrameBuffer struct {
	img        *pixel.RGBImage
	rotation   Rotation
	brightness float64
}

// NewFrameBuffer returns an all-black frame buffer with no rotation and full
// brightness.
func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{
		img:        pixel.NewRGBImage(Width, Height),
		brightness: 1.0,
	}
}

func inBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// SetPixel sets the pixel at logical coordinate (x, y). The origin is the
// top-left of the panel with x increasing to the right and y increasing
// down. Coordinates outside [0, 16) fail with [ErrBounds].
func (f *FrameBuffer) SetPixel(x, y int, c pixel.RGB) error {
	if !inBounds(x, y) {
		return ErrBounds
	}
	f.img.Set(x, y, c)
	return nil
}

// Pixel returns the pixel at logical coordinate (x, y), with the same bounds
// contract as [FrameBuffer.SetPixel].
//
// This reflects the buffer contents, not what the physical panel currently
// shows.
func (f *FrameBuffer) Pixel(x, y int) (pixel.RGB, error) {
	if !inBounds(x, y) {
		return pixel.RGB{}, ErrBounds
	}
	return f.img.RGBAt(x, y), nil
}

// SetRotation sets the rotation applied when the buffer is serialized.
// Values other than the four right angles fail with [ErrRotation].
func (f *FrameBuffer) SetRotation(rotation Rotation) error {
	if !rotation.valid() {
		return ErrRotation
	}
	f.rotation = rotation
	return nil
}

// Rotation returns the current rotation.
func (f *FrameBuffer) Rotation() Rotation {
	return f.rotation
}

// SetBrightness sets the global output scale in [0, 1], applied to every
// channel when the buffer is serialized. Values outside that range fail
// with [ErrBrightness].
func (f *FrameBuffer) SetBrightness(brightness float64) error {
	if brightness < 0 || brightness > 1 {
		return ErrBrightness
	}
	f.brightness = brightness
	return nil
}

// Brightness returns the current output scale.
func (f *FrameBuffer) Brightness() float64 {
	return f.brightness
}

// Clear resets every pixel to black.
func (f *FrameBuffer) Clear() {
	f.img.Clear()
}

// Fill sets every pixel to c.
func (f *FrameBuffer) Fill(c pixel.RGB) {
	f.img.Fill(c)
}

// Image returns the backing image, so [image/draw] and the draw helpers in
// this module can paint into the buffer directly.
func (f *FrameBuffer) Image() *pixel.RGBImage {
	return f.img
}

// Bounds is the panel bounding box.
func (f *FrameBuffer) Bounds() image.Rectangle {
	return f.img.Bounds()
}

// serialize fills dst with the 768 payload bytes in physical scan order,
// applying the current rotation and brightness. It does not modify the
// stored pixels. dst must hold Width*Height*3 bytes.
func (f *FrameBuffer) serialize(dst []byte) {
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			px, py := f.rotation.transform(x, y)
			c := f.img.RGBAt(x, y)
			i := (py*Width + px) * 3
			dst[i] = scale(c.R, f.brightness)
			dst[i+1] = scale(c.G, f.brightness)
			dst[i+2] = scale(c.B, f.brightness)
		}
	}
}

func scale(v uint8, brightness float64) uint8 {
	if brightness >= 1 {
		return v
	}
	return uint8(float64(v)*brightness + 0.5)
}
