package colour

import "math"

// HSV represents a colour in hue/saturation/value space.
// Hue is in degrees [0, 360); saturation and value are in [0, 1].
type HSV struct {
	H float64
	S float64
	V float64
}

// ToHSV converts an RGB colour to HSV using the standard piecewise formula.
func ToHSV(c RGB) HSV {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	hsv := HSV{V: maxVal}

	// Saturation is 0 for black; hue is 0 for achromatic colours.
	if maxVal > 0 {
		hsv.S = delta / maxVal
	}
	if delta == 0 {
		return hsv
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}
	hsv.H = h * 60

	return hsv
}

// RGB converts the HSV colour back to RGB, rounding each channel to the
// nearest integer and clamping to [0, 255]. Hue values outside [0, 360)
// are normalized first.
func (h HSV) RGB() RGB {
	hue := math.Mod(h.H, 360)
	if hue < 0 {
		hue += 360
	}

	c := h.V * h.S
	x := c * (1 - math.Abs(math.Mod(hue/60, 2)-1))
	m := h.V - c

	var r, g, b float64
	switch {
	case hue < 60:
		r, g, b = c, x, 0
	case hue < 120:
		r, g, b = x, c, 0
	case hue < 180:
		r, g, b = 0, c, x
	case hue < 240:
		r, g, b = 0, x, c
	case hue < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB{
		R: clampChannel((r + m) * 255),
		G: clampChannel((g + m) * 255),
		B: clampChannel((b + m) * 255),
	}
}

// clampChannel rounds a channel value to the nearest integer and clamps
// it to [0, 255].
func clampChannel(v float64) uint8 {
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}
