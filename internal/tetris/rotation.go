package tetris

// Rotation is one of the four discrete piece orientations.
type Rotation int8

const (
	Deg0 Rotation = iota
	Deg90
	Deg180
	Deg270
)

const rotationCount = 4

// SpinCW advances the orientation clockwise.
func (r Rotation) SpinCW() Rotation {
	return (r + 1) % rotationCount
}

// SpinCCW advances the orientation counter-clockwise.
func (r Rotation) SpinCCW() Rotation {
	return (r + rotationCount - 1) % rotationCount
}

func (r Rotation) String() string {
	switch r {
	case Deg0:
		return "0°"
	case Deg90:
		return "90°"
	case Deg180:
		return "180°"
	case Deg270:
		return "270°"
	default:
		return "invalid"
	}
}
