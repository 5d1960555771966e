package colour

// Hue offsets, in degrees, used by the colour-wheel helpers.
const (
	// DefaultAdjacentOffset is the hue offset used for adjacent colours
	// when no explicit offset is given.
	DefaultAdjacentOffset = 30.0

	// AnalogousOffset is the fixed hue offset used for analogous colours.
	AnalogousOffset = 30.0
)

// RotateHue rotates the hue of a colour by deg degrees around the colour
// wheel, preserving saturation and value.
func RotateHue(c RGB, deg float64) RGB {
	hsv := ToHSV(c)
	hsv.H += deg
	return hsv.RGB()
}

// Complementary returns the colour opposite c on the colour wheel:
// hue rotated by 180 degrees with saturation and value unchanged.
func Complementary(c RGB) RGB {
	return RotateHue(c, 180)
}

// Adjacent returns the two colours offsetDeg degrees either side of c on
// the colour wheel. The counter-clockwise colour (hue - offset) is first
// and the clockwise colour (hue + offset) second; the order is stable
// across calls.
func Adjacent(c RGB, offsetDeg float64) [2]RGB {
	return [2]RGB{
		RotateHue(c, -offsetDeg),
		RotateHue(c, offsetDeg),
	}
}

// Analogous returns the two analogous colours of c, AnalogousOffset
// degrees either side on the colour wheel, in the same order as Adjacent.
func Analogous(c RGB) [2]RGB {
	return Adjacent(c, AnalogousOffset)
}
