// Package cli provides the command-line interface for lescolors.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Anish177/lescolors/internal/config"
	"github.com/Anish177/lescolors/internal/version"
	"github.com/Anish177/lescolors/pkg/colour"
)

var (
	// Global flags
	flagFormat   string
	flagPreview  bool
	flagNoColour bool
	flagVerbose  bool

	// Shared state initialised before any command runs.
	cfg    *config.Config
	logger hclog.Logger

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "lescolors",
		Short: "Colour manipulation and analysis utilities",
		Long: `Lescolors explores colour relationships and analyses colours in images.

Compute complementary, adjacent, and analogous colours on the colour
wheel, convert RGB values to hex, and extract the dominant colour from
local or remote images.

Colour arguments accept "#rrggbb", "rrggbb", or "r,g,b" decimal form.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}
)

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup initialises the logger and loads configuration before any
// command body runs.
func setup(cmd *cobra.Command, args []string) error {
	level := hclog.Warn
	if flagVerbose {
		level = hclog.Debug
	}
	logger = hclog.New(&hclog.LoggerOptions{
		Name:   "lescolors",
		Level:  level,
		Output: os.Stderr,
	})

	if flagNoColour {
		colour.DisableColourOutput = true
	}

	var err error
	cfg, err = config.Load("")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Debug("configuration loaded",
		"algorithm", cfg.Extract.Algorithm,
		"quality", cfg.Extract.Quality,
		"timeout", cfg.Timeout())

	return nil
}

// normalizeFlags accepts US spellings of flag names alongside the
// canonical ones.
func normalizeFlags(f *pflag.FlagSet, name string) pflag.NormalizedName {
	switch name {
	case "no-color":
		name = "no-colour"
	case "colors":
		name = "colours"
	}
	return pflag.NormalizedName(name)
}

func init() {
	rootCmd.SetGlobalNormalizationFunc(normalizeFlags)
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "hex", "output format (hex, rgb, json)")
	rootCmd.PersistentFlags().BoolVar(&flagPreview, "preview", false, "show colour previews in terminal")
	rootCmd.PersistentFlags().BoolVar(&flagNoColour, "no-colour", false, "disable ANSI colour output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(complementCmd)
	rootCmd.AddCommand(adjacentCmd)
	rootCmd.AddCommand(analogousCmd)
	rootCmd.AddCommand(hexCmd)
	rootCmd.AddCommand(dominantCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
	},
}
