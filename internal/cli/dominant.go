package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	img "github.com/Anish177/lescolors/internal/image"
	"github.com/Anish177/lescolors/internal/security"
	"github.com/Anish177/lescolors/internal/util/imagecache"
	"github.com/Anish177/lescolors/pkg/colour"
)

var (
	// Dominant command flags
	dominantQuality   int
	dominantAlgorithm string
	dominantColours   int
	dominantPalette   bool
	dominantNoCache   bool
)

// dominantCmd represents the dominant command
var dominantCmd = &cobra.Command{
	Use:   "dominant <image>",
	Short: "Extract the dominant colour from an image",
	Long: `Extract the dominant colour from an image.

The image can be a local file, a directory (a random image inside it is
picked), or an HTTP(S) URL. Downloaded images are cached on disk unless
--no-cache is given.

Quality is the pixel sampling stride: 1 samples every pixel (slowest,
most accurate), larger values sample coarser and run faster.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Dominant colour of a wallpaper
  lescolors dominant wallpaper.jpg

  # Dominant colour of a remote image, sampling every 10th pixel
  lescolors dominant --quality 10 https://example.com/image.png

  # Full palette with weights, as JSON
  lescolors dominant --palette --format json wallpaper.jpg

  # Use k-means instead of median cut
  lescolors dominant --algorithm kmeans wallpaper.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runDominant,
}

func init() {
	dominantCmd.Flags().IntVarP(&dominantQuality, "quality", "q", 0, "pixel sampling stride, >= 1 (default from config)")
	dominantCmd.Flags().StringVarP(&dominantAlgorithm, "algorithm", "a", "", "quantization algorithm (mediancut, kmeans, histogram)")
	dominantCmd.Flags().IntVarP(&dominantColours, "colours", "c", 0, "palette size for --palette (1-256)")
	dominantCmd.Flags().BoolVar(&dominantPalette, "palette", false, "print the whole palette instead of one colour")
	dominantCmd.Flags().BoolVar(&dominantNoCache, "no-cache", false, "do not cache downloaded images")
}

// runDominant executes the dominant command.
func runDominant(cmd *cobra.Command, args []string) error {
	imagePath := args[0]

	if err := img.ValidateImagePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	quality := dominantQuality
	if quality == 0 {
		quality = cfg.Extract.Quality
	}
	algorithm := colour.Algorithm(dominantAlgorithm)
	if algorithm == "" {
		algorithm = colour.Algorithm(cfg.Extract.Algorithm)
	}
	colours := dominantColours
	if colours == 0 {
		colours = cfg.Extract.Colours
	}

	quantizer, err := colour.NewQuantizer(algorithm)
	if err != nil {
		return err
	}

	resolved, err := resolveDominantSource(cmd.Context(), imagePath)
	if err != nil {
		return err
	}
	logger.Debug("loading image", "path", resolved)

	loader := img.NewSmartLoader()
	loader.Timeout = cfg.Timeout()
	loader.Logger = logger

	decoded, err := loader.Load(resolved)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	bounds := decoded.Bounds()
	logger.Debug("image loaded",
		"width", bounds.Dx(),
		"height", bounds.Dy(),
		"algorithm", algorithm,
		"quality", quality)

	if dominantPalette {
		palette, err := quantizer.Quantize(decoded, colours, quality)
		if err != nil {
			return fmt.Errorf("failed to quantize image: %w", err)
		}
		return writePalette(cmd, palette)
	}

	dominant, err := colour.DominantColor(quantizer, decoded, quality)
	if err != nil {
		return fmt.Errorf("failed to extract dominant colour: %w", err)
	}
	return writeColours(cmd, nil, dominant)
}

// resolveDominantSource turns the user-supplied path into a loadable
// source: directories resolve to a random image inside them, and URLs
// are downloaded into the image cache when caching is enabled.
func resolveDominantSource(ctx context.Context, path string) (string, error) {
	if security.IsURL(path) {
		if !cfg.Cache.Enabled || dominantNoCache {
			return path, nil
		}
		cached, err := imagecache.DownloadAndCache(ctx, path, imagecache.CacheOptions{
			CacheDir: cfg.Cache.Dir,
			Timeout:  cfg.Timeout(),
		})
		if err != nil {
			return "", fmt.Errorf("failed to download image: %w", err)
		}
		logger.Debug("using cached image", "url", path, "file", cached)
		return cached, nil
	}

	return img.ResolveImagePath(path)
}
