package colour

import (
	"fmt"
	"image"
	"sort"
)

// histogramBits is the per-channel precision of the histogram reduction.
// 5 significant bits per channel gives 32768 buckets.
const histogramBits = 5

// HistogramQuantizer implements colour quantization by frequency count:
// sampled pixels are reduced to 5 bits per channel, bucketed, and the
// most frequent buckets become the palette. Each bucket contributes the
// mean of its member pixels rather than the bucket centre, so pure
// colours survive the reduction exactly.
type HistogramQuantizer struct{}

// NewHistogramQuantizer creates a new HistogramQuantizer.
func NewHistogramQuantizer() *HistogramQuantizer {
	return &HistogramQuantizer{}
}

// bucket accumulates the pixels that reduce to one histogram cell.
type bucket struct {
	count            int
	rSum, gSum, bSum uint64
}

// Quantize reduces the image to at most count colours.
func (q *HistogramQuantizer) Quantize(img image.Image, count, quality int) (*Palette, error) {
	if err := validateQuantizeArgs(img, count, quality); err != nil {
		return nil, err
	}

	pixels := samplePixels(img, quality)
	if len(pixels) == 0 {
		return nil, fmt.Errorf("no pixels found in image")
	}

	shift := 8 - histogramBits
	buckets := make(map[uint32]*bucket)
	for _, p := range pixels {
		key := uint32(p.R>>shift)<<(2*histogramBits) |
			uint32(p.G>>shift)<<histogramBits |
			uint32(p.B>>shift)
		b := buckets[key]
		if b == nil {
			b = &bucket{}
			buckets[key] = b
		}
		b.count++
		b.rSum += uint64(p.R)
		b.gSum += uint64(p.G)
		b.bSum += uint64(p.B)
	}

	keys := make([]uint32, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	// Most frequent first; ties break on the bucket key so output is
	// deterministic across runs.
	sort.Slice(keys, func(i, j int) bool {
		bi, bj := buckets[keys[i]], buckets[keys[j]]
		if bi.count != bj.count {
			return bi.count > bj.count
		}
		return keys[i] < keys[j]
	})

	if count < len(keys) {
		keys = keys[:count]
	}

	total := float64(len(pixels))
	colors := make([]RGB, len(keys))
	weights := make([]float64, len(keys))
	for i, key := range keys {
		b := buckets[key]
		n := uint64(b.count)
		colors[i] = RGB{
			R: uint8(b.rSum / n),
			G: uint8(b.gSum / n),
			B: uint8(b.bSum / n),
		}
		weights[i] = float64(b.count) / total
	}

	return NewPaletteWithWeights(colors, weights), nil
}
