package project

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stickerlab/sheetkit/internal/layout"
)

func TestDefaultAppConfig(t *testing.T) {
	config := DefaultAppConfig()

	if config.DefaultPaper != "A4" {
		t.Errorf("expected default paper A4, got '%s'", config.DefaultPaper)
	}
	if config.DefaultMarginMm != 7 || config.DefaultGapMm != 2 {
		t.Errorf("unexpected default margins: %+v", config)
	}
	if config.DefaultViewScale != layout.DefaultViewScale {
		t.Errorf("unexpected default view scale: %g", config.DefaultViewScale)
	}
	if config.CutterProfile != "Generic" {
		t.Errorf("expected Generic cutter profile, got '%s'", config.CutterProfile)
	}
	if config.RecentLayouts == nil {
		t.Error("RecentLayouts should never be nil")
	}
}

func TestAppConfigSheetConfig(t *testing.T) {
	cfg, err := DefaultAppConfig().SheetConfig()
	if err != nil {
		t.Fatalf("SheetConfig returned error: %v", err)
	}
	if cfg != layout.DefaultConfig() {
		t.Errorf("expected the layout defaults, got %+v", cfg)
	}

	// Paper names parse the same way the CLI parses them.
	config := DefaultAppConfig()
	config.DefaultPaper = "letter"
	cfg, err = config.SheetConfig()
	if err != nil {
		t.Fatalf("SheetConfig returned error: %v", err)
	}
	if cfg.Paper != layout.PaperLetter {
		t.Errorf("expected LETTER, got '%s'", cfg.Paper)
	}

	config.DefaultPaper = "B5"
	if _, err := config.SheetConfig(); err == nil {
		t.Error("expected error for unknown paper size, got nil")
	}

	config = DefaultAppConfig()
	config.DefaultMarginMm = -1
	if _, err := config.SheetConfig(); err == nil {
		t.Error("expected error for negative margin, got nil")
	}
}

func TestSaveAndLoadAppConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	config := DefaultAppConfig()
	config.RenderServiceURL = "https://render.example.com"
	config.CutterProfile = "Zund"
	config.AddRecentLayout("/layouts/run.json")

	if err := SaveAppConfig(path, config); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if loaded.RenderServiceURL != "https://render.example.com" {
		t.Errorf("render URL mismatch: '%s'", loaded.RenderServiceURL)
	}
	if loaded.CutterProfile != "Zund" {
		t.Errorf("cutter profile mismatch: '%s'", loaded.CutterProfile)
	}
	if len(loaded.RecentLayouts) != 1 || loaded.RecentLayouts[0] != "/layouts/run.json" {
		t.Errorf("recent layouts mismatch: %v", loaded.RecentLayouts)
	}
}

func TestSaveAppConfigCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "dir", "config.json")

	if err := SaveAppConfig(path, DefaultAppConfig()); err != nil {
		t.Fatalf("SaveAppConfig should create parent dirs: %v", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("config file was not created")
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	config, err := LoadAppConfig(filepath.Join(t.TempDir(), "nonexistent", "config.json"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if config.DefaultPaper != "A4" || config.CutterProfile != "Generic" {
		t.Errorf("expected defaults, got %+v", config)
	}
}

func TestLoadAppConfigInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte("not valid json{{{"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadAppConfig(path); err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestLoadAppConfigNilRecentLayouts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	data := []byte(`{"default_paper":"A4","recent_layouts":null}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if config.RecentLayouts == nil {
		t.Error("RecentLayouts should not be nil after loading")
	}
}

func TestAddRecentLayout(t *testing.T) {
	config := DefaultAppConfig()

	config.AddRecentLayout("/a.json")
	config.AddRecentLayout("/b.json")
	if len(config.RecentLayouts) != 2 || config.RecentLayouts[0] != "/b.json" {
		t.Errorf("expected newest first, got %v", config.RecentLayouts)
	}

	// Re-opening a layout moves it to the front without duplicating it.
	config.AddRecentLayout("/a.json")
	if len(config.RecentLayouts) != 2 || config.RecentLayouts[0] != "/a.json" {
		t.Errorf("expected dedupe to front, got %v", config.RecentLayouts)
	}

	for i := 0; i < 12; i++ {
		config.AddRecentLayout(fmt.Sprintf("/l%d.json", i))
	}
	if len(config.RecentLayouts) != 10 {
		t.Errorf("expected the list capped at 10, got %d", len(config.RecentLayouts))
	}
	if config.RecentLayouts[0] != "/l11.json" {
		t.Errorf("expected /l11.json first, got '%s'", config.RecentLayouts[0])
	}
}

func TestDefaultPaths(t *testing.T) {
	if filepath.Base(DefaultConfigPath()) != "config.json" {
		t.Errorf("unexpected config path: %s", DefaultConfigPath())
	}
	if filepath.Base(DefaultProfilesPath()) != "profiles.yaml" {
		t.Errorf("unexpected profiles path: %s", DefaultProfilesPath())
	}
	if filepath.Base(DefaultConfigDir()) != ".sheetkit" {
		t.Errorf("unexpected config dir: %s", DefaultConfigDir())
	}
}
