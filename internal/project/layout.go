// Package project persists sheetkit data between sessions: layout files
// holding one sheet's configuration and placements, and the per-user
// application config.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/stickerlab/sheetkit/internal/catalog"
	"github.com/stickerlab/sheetkit/internal/layout"
)

// layoutFileVersion marks the current layout file format.
const layoutFileVersion = "1.0.0"

// Layout is the on-disk form of one sheet: the configuration plus every
// committed placement, exactly as the engine left them.
type Layout struct {
	Version    string             `json:"version"`
	Name       string             `json:"name,omitempty"`
	CreatedAt  string             `json:"created_at"`
	Config     layout.SheetConfig `json:"config"`
	Placements []layout.Placement `json:"placements"`
}

// NewLayout snapshots a sheet for saving.
func NewLayout(name string, sheet *layout.Sheet) Layout {
	return Layout{
		Version:    layoutFileVersion,
		Name:       name,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
		Config:     sheet.Config(),
		Placements: sheet.Placements(),
	}
}

// SaveLayout writes a layout file as JSON, creating any missing parent
// directories.
func SaveLayout(path string, l Layout) error {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal layout: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create layout directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write layout file: %w", err)
	}
	return nil
}

// LoadLayout reads a layout file.
func LoadLayout(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("failed to read layout file: %w", err)
	}

	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("failed to parse layout file: %w", err)
	}
	if l.Version == "" {
		return Layout{}, fmt.Errorf("invalid layout file: missing version field")
	}
	// Ensure Placements is never nil
	if l.Placements == nil {
		l.Placements = []layout.Placement{}
	}
	return l, nil
}

// Sheet rebuilds the live sheet from the stored layout. The provider may be
// nil when no catalog is at hand; the sheet then supports everything except
// adding new stickers.
func (l Layout) Sheet(stickers catalog.Provider) (*layout.Sheet, error) {
	return layout.Restore(l.Config, l.Placements, stickers)
}
