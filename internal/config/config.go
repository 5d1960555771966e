// Package config provides configuration loading and defaults for lescolors.
//
// Configuration is loaded from a TOML file in the user's config
// directory. Missing files fall back to defaults; present files are
// validated after parsing.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/Anish177/lescolors/pkg/colour"
)

// ConfigFile is the configuration filename inside the config directory.
const ConfigFile = "config.toml"

// Config represents the top-level application configuration.
type Config struct {
	// Fetch holds remote image fetch settings.
	Fetch FetchConfig `toml:"fetch"`
	// Extract holds dominant-colour extraction settings.
	Extract ExtractConfig `toml:"extract"`
	// Wheel holds colour-wheel arithmetic settings.
	Wheel WheelConfig `toml:"wheel"`
	// Cache holds downloaded-image cache settings.
	Cache CacheConfig `toml:"cache"`
}

// FetchConfig holds remote image fetch settings.
type FetchConfig struct {
	// TimeoutSeconds is the HTTP request timeout for remote images.
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// ExtractConfig holds dominant-colour extraction settings.
type ExtractConfig struct {
	// Quality is the default pixel sampling stride (1 = every pixel).
	Quality int `toml:"quality"`
	// Algorithm is the default quantization algorithm
	// (mediancut, kmeans, histogram).
	Algorithm string `toml:"algorithm"`
	// Colours is the palette size used by the dominant command when
	// printing a full palette.
	Colours int `toml:"colours"`
}

// WheelConfig holds colour-wheel arithmetic settings.
type WheelConfig struct {
	// AdjacentOffset is the default hue offset, in degrees, used by the
	// adjacent command.
	AdjacentOffset float64 `toml:"adjacent_offset"`
}

// CacheConfig holds downloaded-image cache settings.
type CacheConfig struct {
	// Enabled caches downloaded images on disk for reuse.
	Enabled bool `toml:"enabled"`
	// Dir overrides the cache directory.
	Dir string `toml:"dir,omitempty"`
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Fetch: FetchConfig{
			TimeoutSeconds: 10,
		},
		Extract: ExtractConfig{
			Quality:   1,
			Algorithm: string(colour.DefaultAlgorithm),
			Colours:   colour.DefaultPaletteSize,
		},
		Wheel: WheelConfig{
			AdjacentOffset: colour.DefaultAdjacentOffset,
		},
		Cache: CacheConfig{
			Enabled: true,
		},
	}
}

// DefaultDir returns the default configuration directory.
func DefaultDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine config directory: %w", err)
	}
	return filepath.Join(dir, "lescolors"), nil
}

// Load reads and parses the configuration file from dir/config.toml.
// An empty dir uses the default config directory. A missing file
// returns DefaultConfig.
func Load(dir string) (*Config, error) {
	if dir == "" {
		defaultDir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = defaultDir
	}

	path := filepath.Join(dir, ConfigFile)
	data, err := os.ReadFile(path) // #nosec G304 - User-specified config path, intended to be read
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Validate checks that all configuration values are within acceptable ranges.
func (c *Config) Validate() error {
	if c.Fetch.TimeoutSeconds <= 0 {
		return fmt.Errorf("fetch.timeout_seconds must be > 0, got %d", c.Fetch.TimeoutSeconds)
	}

	if c.Extract.Quality < 1 {
		return fmt.Errorf("extract.quality must be >= 1, got %d", c.Extract.Quality)
	}

	if !colour.IsValidAlgorithm(colour.Algorithm(c.Extract.Algorithm)) {
		return fmt.Errorf("invalid extract.algorithm %q (valid: %v)", c.Extract.Algorithm, colour.ValidAlgorithms())
	}

	if c.Extract.Colours < 1 || c.Extract.Colours > 256 {
		return fmt.Errorf("extract.colours must be in 1-256, got %d", c.Extract.Colours)
	}

	if c.Wheel.AdjacentOffset <= 0 || c.Wheel.AdjacentOffset >= 180 {
		return fmt.Errorf("wheel.adjacent_offset must be in (0, 180), got %g", c.Wheel.AdjacentOffset)
	}

	return nil
}

// Timeout returns the fetch timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Fetch.TimeoutSeconds) * time.Second
}
