package colour

import (
	"fmt"
	"image"
	"sort"
)

// MedianCutQuantizer implements colour quantization by recursive median
// cut: the sampled pixels start in one box in RGB space, and the most
// populous box is repeatedly split at the median of its widest channel
// until the requested number of boxes is reached. Each box contributes
// its mean colour, weighted by its pixel share.
type MedianCutQuantizer struct{}

// NewMedianCutQuantizer creates a new MedianCutQuantizer.
func NewMedianCutQuantizer() *MedianCutQuantizer {
	return &MedianCutQuantizer{}
}

// Quantize reduces the image to at most count colours.
func (q *MedianCutQuantizer) Quantize(img image.Image, count, quality int) (*Palette, error) {
	if err := validateQuantizeArgs(img, count, quality); err != nil {
		return nil, err
	}

	pixels := samplePixels(img, quality)
	if len(pixels) == 0 {
		return nil, fmt.Errorf("no pixels found in image")
	}

	boxes := medianCut(pixels, count)

	total := float64(len(pixels))
	colors := make([]RGB, len(boxes))
	weights := make([]float64, len(boxes))
	for i, b := range boxes {
		colors[i] = b.average()
		weights[i] = float64(len(b.pixels)) / total
	}

	return NewPaletteWithWeights(colors, weights), nil
}

// colourBox is a box in RGB space holding a set of pixels.
type colourBox struct {
	pixels []RGB
}

// channelRanges returns the (min, max) range of each channel over the box.
func (b *colourBox) channelRanges() (rMin, rMax, gMin, gMax, bMin, bMax uint8) {
	rMin, gMin, bMin = 255, 255, 255
	for _, p := range b.pixels {
		rMin, rMax = min(rMin, p.R), max(rMax, p.R)
		gMin, gMax = min(gMin, p.G), max(gMax, p.G)
		bMin, bMax = min(bMin, p.B), max(bMax, p.B)
	}
	return
}

// widestChannel returns 0, 1, or 2 for whichever of R, G, B spans the
// largest range within the box.
func (b *colourBox) widestChannel() int {
	rMin, rMax, gMin, gMax, bMin, bMax := b.channelRanges()
	rRange := int(rMax) - int(rMin)
	gRange := int(gMax) - int(gMin)
	bRange := int(bMax) - int(bMin)

	switch {
	case rRange >= gRange && rRange >= bRange:
		return 0
	case gRange >= bRange:
		return 1
	default:
		return 2
	}
}

// splittable reports whether the box holds more than one distinct colour.
func (b *colourBox) splittable() bool {
	rMin, rMax, gMin, gMax, bMin, bMax := b.channelRanges()
	return len(b.pixels) > 1 && (rMin != rMax || gMin != gMax || bMin != bMax)
}

// split sorts the box's pixels on its widest channel and divides them at
// the median.
func (b *colourBox) split() (*colourBox, *colourBox) {
	channel := b.widestChannel()
	sort.Slice(b.pixels, func(i, j int) bool {
		return channelValue(b.pixels[i], channel) < channelValue(b.pixels[j], channel)
	})

	mid := len(b.pixels) / 2
	return &colourBox{pixels: b.pixels[:mid]}, &colourBox{pixels: b.pixels[mid:]}
}

// average returns the mean colour of the box.
func (b *colourBox) average() RGB {
	var rSum, gSum, bSum uint64
	for _, p := range b.pixels {
		rSum += uint64(p.R)
		gSum += uint64(p.G)
		bSum += uint64(p.B)
	}
	n := uint64(len(b.pixels))
	return RGB{
		R: uint8(rSum / n),
		G: uint8(gSum / n),
		B: uint8(bSum / n),
	}
}

// channelValue returns the value of the given channel index for a pixel.
func channelValue(p RGB, channel int) uint8 {
	switch channel {
	case 0:
		return p.R
	case 1:
		return p.G
	default:
		return p.B
	}
}

// medianCut splits the pixel set into at most count boxes.
func medianCut(pixels []RGB, count int) []*colourBox {
	boxes := []*colourBox{{pixels: pixels}}

	for len(boxes) < count {
		// Split the most populous splittable box next.
		target := -1
		for i, b := range boxes {
			if !b.splittable() {
				continue
			}
			if target == -1 || len(b.pixels) > len(boxes[target].pixels) {
				target = i
			}
		}
		if target == -1 {
			break
		}

		left, right := boxes[target].split()
		boxes[target] = left
		boxes = append(boxes, right)
	}

	return boxes
}
