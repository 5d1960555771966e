package colour

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Palette represents a collection of colours extracted from an image.
// Weights, when present, hold each colour's share of the sampled pixels
// and sum to 1.0.
type Palette struct {
	Colors  []RGB
	Weights []float64
}

// NewPalette creates a Palette with the given colours and no weights.
func NewPalette(colors []RGB) *Palette {
	return &Palette{Colors: colors}
}

// NewPaletteWithWeights creates a Palette with per-colour weights,
// sorted by descending weight so the dominant colour comes first.
func NewPaletteWithWeights(colors []RGB, weights []float64) *Palette {
	p := &Palette{Colors: colors, Weights: weights}
	p.sortByWeight()
	return p
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Colors)
}

// Dominant returns the most populous colour in the palette.
// Returns an error if the palette is empty.
func (p *Palette) Dominant() (RGB, error) {
	if len(p.Colors) == 0 {
		return RGB{}, fmt.Errorf("empty palette")
	}
	if len(p.Weights) != len(p.Colors) {
		return p.Colors[0], nil
	}
	best := 0
	for i, w := range p.Weights {
		if w > p.Weights[best] {
			best = i
		}
	}
	return p.Colors[best], nil
}

// sortByWeight sorts colours by descending weight, keeping the weight
// slice aligned. The sort is stable so equal-weight colours keep their
// extraction order.
func (p *Palette) sortByWeight() {
	if len(p.Weights) != len(p.Colors) {
		return
	}
	idx := make([]int, len(p.Colors))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return p.Weights[idx[a]] > p.Weights[idx[b]]
	})

	colors := make([]RGB, len(p.Colors))
	weights := make([]float64, len(p.Weights))
	for i, j := range idx {
		colors[i] = p.Colors[j]
		weights[i] = p.Weights[j]
	}
	p.Colors = colors
	p.Weights = weights
}

// ToHex converts the palette colours to hex strings.
func (p *Palette) ToHex() []string {
	hexColors := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		hexColors[i] = c.Hex()
	}
	return hexColors
}

// ColourJSON represents a single colour in JSON output format.
type ColourJSON struct {
	Hex    string   `json:"hex"`
	RGB    RGB      `json:"rgb"`
	Weight *float64 `json:"weight,omitempty"`
}

// PaletteJSON represents the palette in JSON format.
type PaletteJSON struct {
	Count   int          `json:"count"`
	Colours []ColourJSON `json:"colours"`
}

// ToJSON converts the palette to indented JSON.
func (p *Palette) ToJSON() ([]byte, error) {
	colours := make([]ColourJSON, len(p.Colors))
	for i, c := range p.Colors {
		colours[i] = ColourJSON{Hex: c.Hex(), RGB: c}
		if len(p.Weights) == len(p.Colors) {
			w := p.Weights[i]
			colours[i].Weight = &w
		}
	}
	return json.MarshalIndent(PaletteJSON{Count: len(p.Colors), Colours: colours}, "", "  ")
}

// String returns a human-readable string representation of the palette.
func (p *Palette) String() string {
	if len(p.Colors) == 0 {
		return "Empty palette"
	}

	result := fmt.Sprintf("Palette with %d colours:\n", len(p.Colors))
	for i, c := range p.Colors {
		if len(p.Weights) == len(p.Colors) {
			result += fmt.Sprintf("  %2d: %s (%s) %.1f%%\n", i+1, c.Hex(), c.String(), p.Weights[i]*100)
		} else {
			result += fmt.Sprintf("  %2d: %s (%s)\n", i+1, c.Hex(), c.String())
		}
	}
	return result
}
