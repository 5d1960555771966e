package colour

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"

	// DefaultSwatchWidth is the width of colour preview blocks.
	DefaultSwatchWidth = 8
)

// DisableColourOutput suppresses ANSI output globally when set.
var DisableColourOutput = false

// SupportsANSI reports whether stdout is a terminal and colour output is
// enabled.
func SupportsANSI() bool {
	if DisableColourOutput {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Swatch returns an ANSI-coloured solid block for c, width characters
// wide. Uses a background colour with spaces.
func Swatch(c RGB, width int) string {
	if width <= 0 {
		width = DefaultSwatchWidth
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// SwatchWithHex returns a swatch followed by the colour's hex code.
func SwatchWithHex(c RGB, width int) string {
	return fmt.Sprintf("%s %s", Swatch(c, width), c.Hex())
}

// SwatchWithLabel returns a swatch with a label and the colour's hex code.
func SwatchWithLabel(c RGB, label string, width int) string {
	return fmt.Sprintf("%s  %-20s %s", Swatch(c, width), label, c.Hex())
}

// Colourise returns text in the given foreground colour when ANSI output
// is enabled, plain text otherwise.
func Colourise(c RGB, text string) string {
	if !SupportsANSI() {
		return text
	}
	fg := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, c.R, c.G, c.B, ansiSuffix)
	return fg + text + ansiReset
}
