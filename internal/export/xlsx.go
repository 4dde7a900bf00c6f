package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/stickerlab/sheetkit/internal/catalog"
	"github.com/stickerlab/sheetkit/internal/layout"
)

// WritePlacementsXLSX writes the committed placements as a spreadsheet for
// production tracking: a Placements sheet with one row per placement and a
// Summary sheet with the configuration and utilization.
func WritePlacementsXLSX(path string, cfg layout.SheetConfig, placements []layout.Placement, stickers catalog.Provider) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if len(placements) == 0 {
		return fmt.Errorf("no placements to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	const placementsSheet = "Placements"
	if err := f.SetSheetName(f.GetSheetName(0), placementsSheet); err != nil {
		return err
	}

	headers := []string{"#", "Placement ID", "Sticker ID", "Sticker", "X (mm)", "Y (mm)", "Rotation (deg)", "Width (mm)", "Height (mm)"}
	for j, h := range headers {
		cellRef, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(placementsSheet, cellRef, h); err != nil {
			return err
		}
	}

	for i, p := range placements {
		row := []interface{}{
			i + 1,
			p.ID,
			p.StickerID,
			stickerName(stickers, p.StickerID),
			p.XMm,
			p.YMm,
			p.RotationDeg,
			p.WidthMm,
			p.HeightMm,
		}
		for j, v := range row {
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(placementsSheet, cellRef, v); err != nil {
				return err
			}
		}
	}

	if err := f.SetColWidth(placementsSheet, "B", "D", 18); err != nil {
		return err
	}

	const summarySheet = "Summary"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}

	paperW, paperH := cfg.Paper.Dimensions()
	summary := [][]interface{}{
		{"Paper", fmt.Sprintf("%s (%.1f x %.1f mm)", cfg.Paper, paperW, paperH)},
		{"Margin (mm)", cfg.MarginMm},
		{"Gap (mm)", cfg.GapMm},
		{"Stickers placed", len(placements)},
		{"Area used (%)", layout.Utilization(cfg, placements)},
	}
	for i, row := range summary {
		for j, v := range row {
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(summarySheet, cellRef, v); err != nil {
				return err
			}
		}
	}
	if err := f.SetColWidth(summarySheet, "A", "A", 18); err != nil {
		return err
	}

	return f.SaveAs(path)
}
