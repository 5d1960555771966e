// Package colour provides colour-wheel arithmetic, palette quantization,
// and dominant-colour extraction.
//
// The core type is RGB, an immutable triple of 8-bit channels. Colour
// relationships (complementary, adjacent, analogous) are computed by
// rotating hue in HSV space while preserving saturation and value.
// Dominant colours are extracted from images by pluggable quantizers.
package colour

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Sentinel errors for colour input and image decoding.
var (
	// ErrInvalidChannel indicates a channel value outside [0, 255].
	ErrInvalidChannel = errors.New("colour channel out of range")

	// ErrInvalidColour indicates a colour string that could not be parsed.
	ErrInvalidColour = errors.New("invalid colour")

	// ErrDecode indicates bytes that could not be decoded as an image.
	ErrDecode = errors.New("undecodable image")
)

// RGB represents a colour as three 8-bit channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// New creates an RGB colour, validating that each channel is within [0, 255].
// Out-of-range channels return an error wrapping ErrInvalidChannel.
func New(r, g, b int) (RGB, error) {
	for _, v := range [...]int{r, g, b} {
		if v < 0 || v > 255 {
			return RGB{}, fmt.Errorf("%w: %d (want 0-255)", ErrInvalidChannel, v)
		}
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// String returns the colour as a string in the format "rgb(r, g, b)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex returns the colour as a lowercase hex string (e.g. "#1a2b3c").
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Color returns the colour as a color.RGBA with full opacity.
func (c RGB) Color() color.Color {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// FromColor converts a color.Color to RGB, discarding alpha.
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255].
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// Parse parses a colour from "#rrggbb", "rrggbb", or "r,g,b" decimal form.
// Malformed input returns an error wrapping ErrInvalidColour; decimal
// channels outside [0, 255] wrap ErrInvalidChannel.
func Parse(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RGB{}, fmt.Errorf("%w: empty string", ErrInvalidColour)
	}
	if strings.Contains(s, ",") {
		return parseDecimal(s)
	}
	return parseHex(s)
}

// parseHex parses "#rrggbb" or "rrggbb".
func parseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("%w: %q (want #rrggbb)", ErrInvalidColour, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q: %v", ErrInvalidColour, s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// parseDecimal parses "r,g,b" with decimal channels.
func parseDecimal(s string) (RGB, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("%w: %q (want r,g,b)", ErrInvalidColour, s)
	}
	var ch [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q: %v", ErrInvalidColour, s, err)
		}
		ch[i] = v
	}
	return New(ch[0], ch[1], ch[2])
}
