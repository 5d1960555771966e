package colour

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"time"

	_ "golang.org/x/image/webp" // Register WebP format

	"github.com/Anish177/lescolors/internal/security"
	httputil "github.com/Anish177/lescolors/internal/util/http"
)

// FinderOptions configures dominant-colour extraction.
type FinderOptions struct {
	// Quality is the pixel sampling stride: 1 samples every pixel
	// (slowest, most accurate), larger values sample coarser.
	// Zero means 1.
	Quality int

	// Algorithm selects the quantizer. Empty uses DefaultAlgorithm.
	Algorithm Algorithm

	// Timeout overrides the HTTP request timeout for URL fetches.
	// Zero uses the fetcher's default.
	Timeout time.Duration
}

// withDefaults fills zero-valued options.
func (o FinderOptions) withDefaults() FinderOptions {
	if o.Quality == 0 {
		o.Quality = 1
	}
	if o.Algorithm == "" {
		o.Algorithm = DefaultAlgorithm
	}
	return o
}

// DominantFromImage returns the dominant colour of a decoded image.
func DominantFromImage(img image.Image, opts FinderOptions) (RGB, error) {
	opts = opts.withDefaults()

	q, err := NewQuantizer(opts.Algorithm)
	if err != nil {
		return RGB{}, err
	}
	return DominantColor(q, img, opts.Quality)
}

// DominantFromURL fetches an image over HTTP GET and returns its dominant
// colour. Network failures, timeouts, and non-2xx statuses surface as
// errors wrapping the httputil sentinels; bytes that do not decode as an
// image wrap ErrDecode.
func DominantFromURL(ctx context.Context, imageURL string, opts FinderOptions) (RGB, error) {
	opts = opts.withDefaults()

	if err := security.ValidateImageURL(imageURL); err != nil {
		return RGB{}, err
	}

	data, err := httputil.Fetch(ctx, imageURL, httputil.FetchOptions{Timeout: opts.Timeout})
	if err != nil {
		return RGB{}, fmt.Errorf("fetch image: %w", err)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return RGB{}, fmt.Errorf("%w (format: %s): %v", ErrDecode, format, err)
	}

	return DominantFromImage(img, opts)
}
