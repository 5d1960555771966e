package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Anish177/lescolors/pkg/colour"
)

// writeColours writes one or more colours to the command's output in the
// globally selected format. Labels, when provided, annotate each colour
// in the text formats and must match the colour count.
func writeColours(cmd *cobra.Command, labels []string, colours ...colour.RGB) error {
	out := cmd.OutOrStdout()

	switch flagFormat {
	case "hex":
		for i, c := range colours {
			writeTextLine(out, c, label(labels, i), c.Hex())
		}
	case "rgb":
		for i, c := range colours {
			writeTextLine(out, c, label(labels, i), c.String())
		}
	case "json":
		return writeJSON(out, labels, colours)
	default:
		return fmt.Errorf("unsupported format: %s (supported: hex, rgb, json)", flagFormat)
	}
	return nil
}

// writeTextLine prints a single colour line, with an optional swatch and
// label.
func writeTextLine(out io.Writer, c colour.RGB, label, value string) {
	if flagPreview && colour.SupportsANSI() {
		if label != "" {
			fmt.Fprintln(out, colour.SwatchWithLabel(c, label, colour.DefaultSwatchWidth))
			return
		}
		fmt.Fprintf(out, "%s %s\n", colour.Swatch(c, colour.DefaultSwatchWidth), value)
		return
	}
	fmt.Fprintln(out, value)
}

// label returns the i-th label, or "" when labels are absent.
func label(labels []string, i int) string {
	if i < len(labels) {
		return labels[i]
	}
	return ""
}

// colourEntry is the JSON shape for a single output colour.
type colourEntry struct {
	Label string     `json:"label,omitempty"`
	Hex   string     `json:"hex"`
	RGB   colour.RGB `json:"rgb"`
}

// writeJSON marshals colours as an indented JSON array, or a single
// object when there is exactly one unlabelled colour.
func writeJSON(out io.Writer, labels []string, colours []colour.RGB) error {
	if len(colours) == 1 && len(labels) == 0 {
		return encodeJSON(out, colourEntry{Hex: colours[0].Hex(), RGB: colours[0]})
	}

	entries := make([]colourEntry, len(colours))
	for i, c := range colours {
		entries[i] = colourEntry{Label: label(labels, i), Hex: c.Hex(), RGB: c}
	}
	return encodeJSON(out, entries)
}

func encodeJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}

// writePalette writes an extracted palette in the selected format.
func writePalette(cmd *cobra.Command, palette *colour.Palette) error {
	out := cmd.OutOrStdout()

	switch flagFormat {
	case "hex":
		for _, c := range palette.Colors {
			writeTextLine(out, c, "", c.Hex())
		}
	case "rgb":
		for _, c := range palette.Colors {
			writeTextLine(out, c, "", c.String())
		}
	case "json":
		data, err := palette.ToJSON()
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
	default:
		return fmt.Errorf("unsupported format: %s (supported: hex, rgb, json)", flagFormat)
	}
	return nil
}
