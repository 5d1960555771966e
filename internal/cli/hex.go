package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Anish177/lescolors/pkg/colour"
)

// hexCmd represents the hex command
var hexCmd = &cobra.Command{
	Use:   "hex <colour>",
	Short: "Convert a colour to its hex representation",
	Long: `Convert a colour to its hexadecimal "#rrggbb" representation.

Examples:
  # Hex form of pure red
  lescolors hex "255,0,0"

  # Round-trips hex input unchanged
  lescolors hex "#FF8800"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := colour.Parse(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if flagPreview && colour.SupportsANSI() {
			fmt.Fprintln(out, colour.SwatchWithHex(c, colour.DefaultSwatchWidth))
			return nil
		}
		fmt.Fprintln(out, c.Hex())
		return nil
	},
}
