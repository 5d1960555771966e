// Package imagecache provides utilities for downloading and caching remote images.
package imagecache

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Anish177/lescolors/internal/security"
	httputil "github.com/Anish177/lescolors/internal/util/http"
)

// CacheOptions configures image caching behavior.
type CacheOptions struct {
	// CacheDir is the directory where images will be cached.
	// If empty, defaults to the user cache dir under lescolors/images.
	CacheDir string

	// Filename is the filename to use for the cached image.
	// If empty, uses a hash of the URL + original extension.
	Filename string

	// AllowOverwrite determines if existing cached files can be
	// overwritten. Default: false (reuse existing cached files).
	AllowOverwrite bool

	// Timeout overrides the download timeout. Zero uses the fetcher's
	// default.
	Timeout time.Duration
}

// DefaultCacheDir returns the default cache directory path.
func DefaultCacheDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		// Fallback to home directory if cache dir not available.
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to determine cache directory: %w", err)
		}
		return filepath.Join(home, ".cache", "lescolors", "images"), nil
	}
	return filepath.Join(cacheDir, "lescolors", "images"), nil
}

// generateFilename creates a deterministic filename from a URL.
// Uses SHA256 hash of URL + original file extension.
func generateFilename(url string) string {
	hash := sha256.Sum256([]byte(url))
	hashStr := fmt.Sprintf("%x", hash[:16])

	// Extract extension from URL, dropping query parameters.
	ext := filepath.Ext(url)
	if idx := strings.IndexByte(ext, '?'); idx != -1 {
		ext = ext[:idx]
	}
	if ext == "" || len(ext) > 5 {
		ext = ".jpg"
	}

	return hashStr + ext
}

// DownloadAndCache downloads a remote image and saves it to the cache
// directory. Returns the local file path where the image was saved.
// An already-cached URL is returned without refetching unless
// AllowOverwrite is set.
func DownloadAndCache(ctx context.Context, url string, opts CacheOptions) (string, error) {
	if err := security.ValidateImageURL(url); err != nil {
		return "", err
	}

	cacheDir := opts.CacheDir
	if cacheDir == "" {
		defaultDir, err := DefaultCacheDir()
		if err != nil {
			return "", err
		}
		cacheDir = defaultDir
	}

	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}

	filename := opts.Filename
	if filename == "" {
		filename = generateFilename(url)
	}

	cachedPath := filepath.Join(cacheDir, filename)

	if !opts.AllowOverwrite {
		if _, err := os.Stat(cachedPath); err == nil {
			return cachedPath, nil
		}
	}

	data, err := httputil.Fetch(ctx, url, httputil.FetchOptions{Timeout: opts.Timeout})
	if err != nil {
		return "", fmt.Errorf("failed to download image: %w", err)
	}

	if err := os.WriteFile(cachedPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write cached image: %w", err)
	}

	return cachedPath, nil
}
