package colour

import (
	"fmt"
	"image"
)

// Quantizer defines the interface for colour quantization algorithms.
type Quantizer interface {
	// Quantize reduces an image to a palette of at most count colours.
	// The quality parameter is the pixel sampling stride: 1 samples
	// every pixel (slowest, most accurate), larger values sample
	// coarser and run faster.
	Quantize(img image.Image, count, quality int) (*Palette, error)
}

// Algorithm represents the colour quantization algorithm type.
type Algorithm string

const (
	// AlgorithmMedianCut splits colour space boxes at the median of the
	// widest channel. This is the default and mirrors the behaviour of
	// classic dominant-colour extractors.
	AlgorithmMedianCut Algorithm = "mediancut"

	// AlgorithmKMeans uses k-means clustering for colour extraction.
	AlgorithmKMeans Algorithm = "kmeans"

	// AlgorithmHistogram counts colour frequency over a 5-bit-per-channel
	// reduction of the colour space.
	AlgorithmHistogram Algorithm = "histogram"
)

// DefaultAlgorithm is the quantization algorithm used when none is specified.
const DefaultAlgorithm = AlgorithmMedianCut

// DefaultPaletteSize is the palette size used when finding a single
// dominant colour.
const DefaultPaletteSize = 5

// ValidAlgorithms returns a list of valid algorithm names.
func ValidAlgorithms() []Algorithm {
	return []Algorithm{
		AlgorithmMedianCut,
		AlgorithmKMeans,
		AlgorithmHistogram,
	}
}

// IsValidAlgorithm checks if the given algorithm name is valid.
func IsValidAlgorithm(alg Algorithm) bool {
	for _, valid := range ValidAlgorithms() {
		if alg == valid {
			return true
		}
	}
	return false
}

// NewQuantizer creates a Quantizer for the specified algorithm.
// Returns an error if the algorithm is not recognized.
func NewQuantizer(alg Algorithm) (Quantizer, error) {
	switch alg {
	case AlgorithmMedianCut:
		return NewMedianCutQuantizer(), nil
	case AlgorithmKMeans:
		return NewKMeansQuantizer(), nil
	case AlgorithmHistogram:
		return NewHistogramQuantizer(), nil
	default:
		return nil, fmt.Errorf("unknown algorithm: %s (valid algorithms: %v)", alg, ValidAlgorithms())
	}
}

// DominantColor quantizes an image to a small palette and returns its
// most populous colour.
func DominantColor(q Quantizer, img image.Image, quality int) (RGB, error) {
	palette, err := q.Quantize(img, DefaultPaletteSize, quality)
	if err != nil {
		return RGB{}, err
	}
	return palette.Dominant()
}

// validateQuantizeArgs checks the common argument contract shared by
// all quantizers.
func validateQuantizeArgs(img image.Image, count, quality int) error {
	if img == nil {
		return fmt.Errorf("image cannot be nil")
	}
	if count < 1 {
		return fmt.Errorf("colour count must be at least 1, got %d", count)
	}
	if count > 256 {
		return fmt.Errorf("colour count too large: %d (maximum: 256)", count)
	}
	if quality < 1 {
		return fmt.Errorf("quality must be at least 1, got %d", quality)
	}
	return nil
}

// samplePixels samples every quality-th pixel from the image, skipping
// mostly-transparent pixels and near-white pixels (all channels > 250).
// If filtering removes everything, a second pass keeps the near-white
// pixels so plain images still quantize.
func samplePixels(img image.Image, quality int) []RGB {
	pixels := collectPixels(img, quality, true)
	if len(pixels) == 0 {
		pixels = collectPixels(img, quality, false)
	}
	return pixels
}

func collectPixels(img image.Image, quality int, skipWhite bool) []RGB {
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	pixels := make([]RGB, 0, total/quality+1)

	idx := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			i := idx
			idx++
			if i%quality != 0 {
				continue
			}
			r, g, b, a := img.At(x, y).RGBA()
			if a>>8 < 125 {
				continue
			}
			rgb := RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
			if skipWhite && rgb.R > 250 && rgb.G > 250 && rgb.B > 250 {
				continue
			}
			pixels = append(pixels, rgb)
		}
	}
	return pixels
}
