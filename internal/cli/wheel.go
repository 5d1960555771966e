package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Anish177/lescolors/pkg/colour"
)

var adjacentOffset float64

// complementCmd represents the complement command
var complementCmd = &cobra.Command{
	Use:   "complement <colour>",
	Short: "Compute the complementary colour",
	Long: `Compute the colour opposite the given colour on the colour wheel.

The hue is rotated by 180 degrees in HSV space; saturation and value
are preserved.

Examples:
  # Complement of pure red
  lescolors complement "255,0,0"

  # Complement of a hex colour, as JSON
  lescolors complement --format json "#1a2b3c"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := colour.Parse(args[0])
		if err != nil {
			return err
		}
		return writeColours(cmd, nil, colour.Complementary(c))
	},
}

// adjacentCmd represents the adjacent command
var adjacentCmd = &cobra.Command{
	Use:   "adjacent <colour>",
	Short: "Compute the two adjacent colours on the colour wheel",
	Long: `Compute the two colours adjacent to the given colour on the colour
wheel, a fixed hue offset either side (30 degrees by default).

The counter-clockwise colour (hue - offset) is printed first, then the
clockwise colour (hue + offset).

Examples:
  # Adjacent colours of pure red
  lescolors adjacent "255,0,0"

  # Use a 45 degree offset with terminal previews
  lescolors adjacent --offset 45 --preview "#00ff00"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := colour.Parse(args[0])
		if err != nil {
			return err
		}

		offset := adjacentOffset
		if !cmd.Flags().Changed("offset") {
			offset = cfg.Wheel.AdjacentOffset
		}
		if offset <= 0 || offset >= 180 {
			return fmt.Errorf("offset must be in (0, 180), got %g", offset)
		}

		pair := colour.Adjacent(c, offset)
		return writeColours(cmd, []string{"counter-clockwise", "clockwise"}, pair[:]...)
	},
}

// analogousCmd represents the analogous command
var analogousCmd = &cobra.Command{
	Use:   "analogous <colour>",
	Short: "Compute the two analogous colours",
	Long: `Compute the two analogous colours of the given colour: the colours
30 degrees either side on the colour wheel, printed counter-clockwise
first.

Examples:
  # Analogous colours of pure red
  lescolors analogous "255,0,0"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := colour.Parse(args[0])
		if err != nil {
			return err
		}
		pair := colour.Analogous(c)
		return writeColours(cmd, []string{"counter-clockwise", "clockwise"}, pair[:]...)
	},
}

func init() {
	adjacentCmd.Flags().Float64Var(&adjacentOffset, "offset", colour.DefaultAdjacentOffset, "hue offset in degrees")
}
