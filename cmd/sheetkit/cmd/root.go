package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stickerlab/sheetkit/internal/catalog"
	"github.com/stickerlab/sheetkit/internal/project"
)

var (
	// Global flags
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "sheetkit",
	Short: "Sticker sheet layout and export tool",
	Long: `sheetkit arranges sticker designs on fixed-size print sheets and
exports the result for proofing, printing, and contour cutting.

Examples:
  sheetkit catalog stickers.csv                                 # Inspect a catalog
  sheetkit layout -c stickers.csv -a logo:3 -a badge -o sheet.json
  sheetkit export pdf sheet.json -o proof.pdf                   # True-size proof
  sheetkit export dxf sheet.json --profile Summa                # Cut contours
  sheetkit render sheet.json --url https://render.example.com/jobs`,
	Version: "0.2.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"app config file (default ~/.sheetkit/config.json)")
}

// appConfigPath resolves the --config flag against the default location.
func appConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return project.DefaultConfigPath()
}

// loadAppConfig reads the app config, honoring the --config flag.
func loadAppConfig() (project.AppConfig, error) {
	return project.LoadAppConfig(appConfigPath())
}

// saveAppConfig persists the app config, honoring the --config flag.
func saveAppConfig(cfg project.AppConfig) error {
	return project.SaveAppConfig(appConfigPath(), cfg)
}

// loadCatalog imports a catalog file, printing warnings and failing when
// any row was rejected.
func loadCatalog(path string) (*catalog.Catalog, error) {
	result := catalog.LoadFile(path)
	for _, w := range result.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
	if len(result.Errors) > 0 {
		return nil, fmt.Errorf("catalog import failed: %s", strings.Join(result.Errors, "; "))
	}
	return catalog.FromStickers(result.Stickers), nil
}
