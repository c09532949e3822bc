// Package unicornhd is a driver for the Pimoroni Unicorn HAT HD, a 16×16
// RGB LED matrix attached over SPI.
//
// The driver keeps an in-memory frame buffer that is pushed to the panel on
// [Device.Display]. Next to the real SPI transport there are emulated,
// terminal, serial bridge and websocket sinks, so the same client code runs
// on machines without the panel attached.
package unicornhd

import (
	"errors"
	"fmt"

	"github.com/BeatGlow/unicornhd/conn"
	"github.com/BeatGlow/unicornhd/pixel"
)

// Panel geometry. The Unicorn HAT HD is a fixed 16×16 matrix.
const (
	Width  = 16
	Height = 16
)

// Wire format: one start-of-frame command byte followed by Width×Height RGB
// triples in physical scan order. The scan order is row-major, the pixel at
// physical (x, y) occupies payload offset (y*Width + x) * 3.
const (
	cmdSOF    byte = 0x72
	frameSize      = 1 + Width*Height*3
)

// Errors.
var (
	ErrBounds     = errors.New("unicornhd: out of display bounds")
	ErrRotation   = errors.New("unicornhd: invalid rotation")
	ErrBrightness = errors.New("unicornhd: brightness out of range")
)

// Device provides high-level access to one Unicorn HAT HD panel.
//
// A Device exclusively owns its frame buffer and its transport sink; the
// sink is chosen at construction time and fixed for the Device's lifetime.
// Devices are not safe for concurrent use: Display blocks until the
// transport write completes and must not be called again concurrently while
// one is in flight.
type Device struct {
	fb    *FrameBuffer
	c     conn.Sink
	frame [frameSize]byte
}

// New returns a Device with an all-black frame buffer bound to the given
// sink.
func New(c conn.Sink) *Device {
	d := &Device{
		fb: NewFrameBuffer(),
		c:  c,
	}
	d.frame[0] = cmdSOF
	return d
}

func (d *Device) String() string {
	return fmt.Sprintf("Unicorn HAT HD %dx%d on %s", Width, Height, d.c)
}

// SetPixel sets the pixel at logical coordinate (x, y).
func (d *Device) SetPixel(x, y int, c pixel.RGB) error {
	return d.fb.SetPixel(x, y, c)
}

// Pixel returns the buffered pixel at logical coordinate (x, y).
func (d *Device) Pixel(x, y int) (pixel.RGB, error) {
	return d.fb.Pixel(x, y)
}

// SetRotation sets the rotation applied on the next Display.
func (d *Device) SetRotation(rotation Rotation) error {
	return d.fb.SetRotation(rotation)
}

// Rotation returns the current rotation.
func (d *Device) Rotation() Rotation {
	return d.fb.Rotation()
}

// SetBrightness sets the global output scale in [0, 1].
func (d *Device) SetBrightness(brightness float64) error {
	return d.fb.SetBrightness(brightness)
}

// Clear resets the buffer to all-black. The panel itself keeps showing the
// previous frame until the next Display.
func (d *Device) Clear() {
	d.fb.Clear()
}

// Fill sets every buffered pixel to c.
func (d *Device) Fill(c pixel.RGB) {
	d.fb.Fill(c)
}

// FrameBuffer returns the device's frame buffer.
func (d *Device) FrameBuffer() *FrameBuffer {
	return d.fb
}

// Display pushes the frame buffer to the panel as a single 769 byte frame.
// The buffer itself is left untouched, a failed refresh can simply be
// retried by the caller. Transport failures are returned with the
// underlying cause wrapped.
func (d *Device) Display() error {
	d.fb.serialize(d.frame[1:])
	if err := d.c.Write(d.frame[:]); err != nil {
		return fmt.Errorf("unicornhd: display refresh failed: %w", err)
	}
	return nil
}

// Close closes the transport sink.
func (d *Device) Close() error {
	return d.c.Close()
}
