// Package security provides input validation utilities for lescolors.
package security

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateImageURL validates a URL used for remote image fetches.
// Only http:// and https:// schemes with a hostname are accepted.
func ValidateImageURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("empty image URL")
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid image URL: %w", err)
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return fmt.Errorf("invalid image URL scheme (only http:// and https:// allowed): %q", parsed.Scheme)
	}

	if parsed.Host == "" {
		return fmt.Errorf("image URL must have a hostname")
	}

	return nil
}

// IsURL reports whether the path looks like an HTTP(S) URL rather than a
// local file path.
func IsURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}
