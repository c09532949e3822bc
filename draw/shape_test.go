package draw

import (
	"image"
	"testing"

	"github.com/BeatGlow/unicornhd/pixel"
)

func TestLine(t *testing.T) {
	i := pixel.NewRGBImage(16, 16)
	Line(i, image.Pt(0, 0), image.Pt(15, 15), pixel.White)

	for n := 0; n < 16; n++ {
		if v := i.RGBAt(n, n); v != pixel.White {
			t.Errorf("expected pixel (%d,%d) to be white, got %#+v", n, n, v)
		}
	}
	if v := i.RGBAt(0, 15); v != pixel.Black {
		t.Errorf("expected pixel (0,15) to be black, got %#+v", v)
	}
}

func TestHorizontalLine(t *testing.T) {
	i := pixel.NewRGBImage(16, 16)
	HorizontalLine(i, 2, 5, 10, pixel.White)
	for x := 2; x < 12; x++ {
		if v := i.RGBAt(x, 5); v != pixel.White {
			t.Errorf("expected pixel (%d,5) to be white, got %#+v", x, v)
		}
	}
	if v := i.RGBAt(12, 5); v != pixel.Black {
		t.Errorf("expected pixel (12,5) to be black, got %#+v", v)
	}
}

func TestRectangle(t *testing.T) {
	i := pixel.NewRGBImage(16, 16)
	Rectangle(i, image.Rect(1, 1, 15, 15), pixel.White)

	for _, p := range []image.Point{{1, 1}, {14, 1}, {1, 14}, {14, 14}, {7, 1}, {1, 7}} {
		if v := i.RGBAt(p.X, p.Y); v != pixel.White {
			t.Errorf("expected pixel %s to be white, got %#+v", p, v)
		}
	}
	if v := i.RGBAt(7, 7); v != pixel.Black {
		t.Errorf("expected interior pixel (7,7) to be black, got %#+v", v)
	}
}

func TestBox(t *testing.T) {
	i := pixel.NewRGBImage(16, 16)
	Box(i, image.Rect(4, 4, 12, 12), pixel.White)

	for y := 4; y < 12; y++ {
		for x := 4; x < 12; x++ {
			if v := i.RGBAt(x, y); v != pixel.White {
				t.Fatalf("expected pixel (%d,%d) to be white, got %#+v", x, y, v)
			}
		}
	}
	if v := i.RGBAt(3, 3); v != pixel.Black {
		t.Errorf("expected pixel (3,3) to be black, got %#+v", v)
	}
}
