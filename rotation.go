package unicornhd

// Rotation defines pixel rotation.
type Rotation uint8

// Supported rotations.
const (
	NoRotation Rotation = iota
	Rotate90            // Rotate 90° clock wise
	Rotate180           // Rotate 180°
	Rotate270           // Rotate 270° clock wise
)

func (r Rotation) String() string {
	switch r {
	case Rotate90:
		return "90°"
	case Rotate180:
		return "180°"
	case Rotate270:
		return "270°"
	default:
		return "0°"
	}
}

func (r Rotation) valid() bool {
	return r <= Rotate270
}

// RotationDegrees converts an angle in degrees to a Rotation. Only the four
// right angles are recognized, anything else fails with [ErrRotation].
func RotationDegrees(angle int) (Rotation, error) {
	switch angle {
	case 0:
		return NoRotation, nil
	case 90:
		return Rotate90, nil
	case 180:
		return Rotate180, nil
	case 270:
		return Rotate270, nil
	default:
		return NoRotation, ErrRotation
	}
}

// transform maps a logical coordinate to the physical coordinate it lands on
// under rotation r. The inverse of each transform is the transform of the
// opposite angle.
func (r Rotation) transform(x, y int) (int, int) {
	switch r {
	case Rotate90:
		return Height - 1 - y, x
	case Rotate180:
		return Width - 1 - x, Height - 1 - y
	case Rotate270:
		return y, Width - 1 - x
	default:
		return x, y
	}
}
