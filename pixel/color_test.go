package pixel

import (
	"image/color"
	"testing"
)

func TestRGB(t *testing.T) {
	for _, test := range []RGB{
		{},
		{R: 0xff},
		{G: 0xff},
		{B: 0xff},
		{R: 0x12, G: 0x34, B: 0x56},
		{R: 0xff, G: 0xff, B: 0xff},
	} {
		t.Run("", func(it *testing.T) {
			r, g, b, a := test.RGBA()
			if want := uint32(test.R) * 0x101; r != want {
				it.Errorf("expected red to be %#04x, got %#04x", want, r)
			}
			if want := uint32(test.G) * 0x101; g != want {
				it.Errorf("expected green to be %#04x, got %#04x", want, g)
			}
			if want := uint32(test.B) * 0x101; b != want {
				it.Errorf("expected blue to be %#04x, got %#04x", want, b)
			}
			if a != 0xffff {
				it.Errorf("expected alpha to be 0xffff, got %#04x", a)
			}
		})
	}
}

func TestRGBModel(t *testing.T) {
	c := color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff}
	v := RGBModel.Convert(c)
	if want := (RGB{R: 0x12, G: 0x34, B: 0x56}); v != want {
		t.Errorf("expected %#+v, got %#+v", want, v)
	}

	// Converting an RGB value must be the identity.
	if v := RGBModel.Convert(RGB{R: 1, G: 2, B: 3}); v != (RGB{R: 1, G: 2, B: 3}) {
		t.Errorf("expected identity conversion, got %#+v", v)
	}
}
