package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/stickerlab/sheetkit/internal/layout"
)

// AppConfig holds per-user preferences and default sheet settings.
type AppConfig struct {
	// Defaults applied to new sheets
	DefaultPaper     string  `json:"default_paper"`
	DefaultMarginMm  float64 `json:"default_margin_mm"`
	DefaultGapMm     float64 `json:"default_gap_mm"`
	DefaultViewScale float64 `json:"default_view_scale"` // px per mm for edit resolution

	// Export and render preferences
	RenderServiceURL string `json:"render_service_url"`
	CutterProfile    string `json:"cutter_profile"`

	RecentLayouts []string `json:"recent_layouts"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from layout.DefaultConfig().
func DefaultAppConfig() AppConfig {
	defaults := layout.DefaultConfig()
	return AppConfig{
		DefaultPaper:     string(defaults.Paper),
		DefaultMarginMm:  defaults.MarginMm,
		DefaultGapMm:     defaults.GapMm,
		DefaultViewScale: layout.DefaultViewScale,
		CutterProfile:    "Generic",
		RecentLayouts:    []string{},
	}
}

// SheetConfig builds a sheet configuration from the stored defaults.
func (c AppConfig) SheetConfig() (layout.SheetConfig, error) {
	paper, err := layout.ParsePaperSize(c.DefaultPaper)
	if err != nil {
		return layout.SheetConfig{}, err
	}
	cfg := layout.SheetConfig{
		Paper:    paper,
		MarginMm: c.DefaultMarginMm,
		GapMm:    c.DefaultGapMm,
	}
	if err := cfg.Validate(); err != nil {
		return layout.SheetConfig{}, err
	}
	return cfg, nil
}

// AddRecentLayout pushes path to the front of the recent list, dropping
// duplicates and keeping at most ten entries.
func (c *AppConfig) AddRecentLayout(path string) {
	recents := []string{path}
	for _, p := range c.RecentLayouts {
		if p != path {
			recents = append(recents, p)
		}
	}
	if len(recents) > 10 {
		recents = recents[:10]
	}
	c.RecentLayouts = recents
}

// DefaultConfigDir returns the default directory for application configuration.
// On all platforms this is ~/.sheetkit/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".sheetkit")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// DefaultProfilesPath returns the default path for custom cutter profiles.
func DefaultProfilesPath() string {
	return filepath.Join(DefaultConfigDir(), "profiles.yaml")
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads an AppConfig from the given path.
// If the file does not exist, it returns DefaultAppConfig with no error.
func LoadAppConfig(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultAppConfig(), nil
		}
		return AppConfig{}, err
	}
	var config AppConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return AppConfig{}, err
	}
	// Ensure RecentLayouts is never nil
	if config.RecentLayouts == nil {
		config.RecentLayouts = []string{}
	}
	return config, nil
}
