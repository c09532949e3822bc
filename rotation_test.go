package unicornhd

import "testing"

func TestRotationString(t *testing.T) {
	for r, want := range map[Rotation]string{
		NoRotation: "0°",
		Rotate90:   "90°",
		Rotate180:  "180°",
		Rotate270:  "270°",
	} {
		if v := r.String(); v != want {
			t.Errorf("expected %q, got %q", want, v)
		}
	}
}

func TestRotationDegrees(t *testing.T) {
	for angle, want := range map[int]Rotation{
		0:   NoRotation,
		90:  Rotate90,
		180: Rotate180,
		270: Rotate270,
	} {
		r, err := RotationDegrees(angle)
		if err != nil {
			t.Errorf("expected no error for %d°, got %v", angle, err)
		}
		if r != want {
			t.Errorf("expected %s for %d°, got %s", want, angle, r)
		}
	}

	for _, angle := range []int{-90, 45, 91, 360} {
		if _, err := RotationDegrees(angle); err != ErrRotation {
			t.Errorf("expected ErrRotation for %d°, got %v", angle, err)
		}
	}
}

// Every rotation must address every physical cell from exactly one logical
// coordinate.
func TestRotationBijection(t *testing.T) {
	for _, r := range []Rotation{NoRotation, Rotate90, Rotate180, Rotate270} {
		t.Run(r.String(), func(it *testing.T) {
			var seen [Width * Height]bool
			for y := 0; y < Height; y++ {
				for x := 0; x < Width; x++ {
					px, py := r.transform(x, y)
					if px < 0 || px >= Width || py < 0 || py >= Height {
						it.Fatalf("(%d,%d) maps out of bounds to (%d,%d)", x, y, px, py)
					}
					i := py*Width + px
					if seen[i] {
						it.Fatalf("physical cell (%d,%d) is addressed twice", px, py)
					}
					seen[i] = true
				}
			}
		})
	}
}

// Rotating a quarter turn four times must return every coordinate to its
// original position.
func TestRotationComposition(t *testing.T) {
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			px, py := x, y
			for i := 0; i < 4; i++ {
				px, py = Rotate90.transform(px, py)
			}
			if px != x || py != y {
				t.Fatalf("(%d,%d) does not return to itself, ended at (%d,%d)", x, y, px, py)
			}

			// 90° followed by 270° is the identity as well.
			px, py = Rotate270.transform(Rotate90.transform(x, y))
			if px != x || py != y {
				t.Fatalf("270° does not invert 90° for (%d,%d), got (%d,%d)", x, y, px, py)
			}

			px, py = Rotate180.transform(Rotate180.transform(x, y))
			if px != x || py != y {
				t.Fatalf("180° is not self-inverse for (%d,%d), got (%d,%d)", x, y, px, py)
			}
		}
	}
}
