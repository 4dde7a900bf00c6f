package layout

import (
	"fmt"
	"strings"

	"github.com/stickerlab/sheetkit/internal/geom"
)

// PaperSize identifies a supported print sheet format.
type PaperSize string

const (
	PaperA4     PaperSize = "A4"     // 210 x 297 mm
	PaperLetter PaperSize = "LETTER" // 215.9 x 279.4 mm
)

// ParsePaperSize maps user input to a PaperSize, case-insensitively.
func ParsePaperSize(s string) (PaperSize, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A4":
		return PaperA4, nil
	case "LETTER", "US-LETTER", "USLETTER":
		return PaperLetter, nil
	default:
		return "", fmt.Errorf("%w: unknown paper size %q", ErrInvalidConfig, s)
	}
}

// Dimensions returns the paper width and height in mm. Unknown sizes return
// zero; Validate screens them out before any layout runs.
func (p PaperSize) Dimensions() (w, h float64) {
	switch p {
	case PaperA4:
		return 210, 297
	case PaperLetter:
		return 215.9, 279.4
	default:
		return 0, 0
	}
}

// SheetConfig holds the sheet parameters that constrain every placement.
type SheetConfig struct {
	Paper    PaperSize `json:"paper"`
	MarginMm float64   `json:"margin_mm"` // printable area inset from each paper edge
	GapMm    float64   `json:"gap_mm"`    // minimum clearance between placements
}

// DefaultConfig returns an A4 sheet with a 7 mm margin and 2 mm gap.
func DefaultConfig() SheetConfig {
	return SheetConfig{
		Paper:    PaperA4,
		MarginMm: 7,
		GapMm:    2,
	}
}

// Validate reports whether the configuration describes a usable sheet.
func (c SheetConfig) Validate() error {
	w, h := c.Paper.Dimensions()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: unknown paper size %q", ErrInvalidConfig, c.Paper)
	}
	if c.MarginMm < 0 {
		return fmt.Errorf("%w: margin %.2f mm is negative", ErrInvalidConfig, c.MarginMm)
	}
	if c.GapMm < 0 {
		return fmt.Errorf("%w: gap %.2f mm is negative", ErrInvalidConfig, c.GapMm)
	}
	if 2*c.MarginMm >= w || 2*c.MarginMm >= h {
		return fmt.Errorf("%w: margin %.2f mm leaves no printable area", ErrInvalidConfig, c.MarginMm)
	}
	return nil
}

// PrintableRect returns the paper rectangle inset by the margin on all
// sides. Every placement's rotated bounding box must stay inside it.
func (c SheetConfig) PrintableRect() geom.Rect {
	w, h := c.Paper.Dimensions()
	return geom.Rect{
		X: c.MarginMm,
		Y: c.MarginMm,
		W: w - 2*c.MarginMm,
		H: h - 2*c.MarginMm,
	}
}
