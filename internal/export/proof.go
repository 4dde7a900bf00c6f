// Package export writes finished sheet layouts to printer- and
// cutter-facing file formats.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/stickerlab/sheetkit/internal/catalog"
	"github.com/stickerlab/sheetkit/internal/layout"
	"github.com/stickerlab/sheetkit/internal/render"
)

// stickerColor represents an RGB fill color for a placed sticker.
type stickerColor struct {
	R, G, B int
}

// stickerColors cycle across placements so neighboring stickers stay
// distinguishable on the proof.
var stickerColors = []stickerColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Summary page layout constants (mm).
const (
	summaryMargin = 15.0
	qrSizeMm      = 30.0
)

// WriteProofPDF generates the layout proof for a sheet: page one is the
// paper at true size with every placement drawn in position and rotation,
// page two a summary with per-placement details and a QR code holding the
// render job payload, so a print shop can reconcile proof and job.
//
// The sticker provider supplies display names; unknown IDs fall back to the
// ID itself.
func WriteProofPDF(path string, cfg layout.SheetConfig, placements []layout.Placement, stickers catalog.Provider) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if len(placements) == 0 {
		return fmt.Errorf("no placements to export")
	}

	paperW, paperH := cfg.Paper.Dimensions()
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: paperW, Ht: paperH},
	})
	pdf.SetAutoPageBreak(false, 0)

	pdf.AddPage()
	drawSheetPage(pdf, cfg, placements, stickers)

	pdf.AddPage()
	if err := drawSummaryPage(pdf, cfg, placements, stickers); err != nil {
		return err
	}

	return pdf.OutputFileAndClose(path)
}

// drawSheetPage renders the true-size sheet: page coordinates equal sheet
// coordinates, so placements draw 1:1.
func drawSheetPage(pdf *fpdf.Fpdf, cfg layout.SheetConfig, placements []layout.Placement, stickers catalog.Provider) {
	paperW, paperH := cfg.Paper.Dimensions()
	printable := cfg.PrintableRect()

	// Printable area outline, a trim guide outside every sticker
	pdf.SetDrawColor(180, 180, 180)
	pdf.SetLineWidth(0.2)
	pdf.Rect(printable.X, printable.Y, printable.W, printable.H, "D")

	for i, p := range placements {
		col := stickerColors[i%len(stickerColors)]
		drawPlacement(pdf, p, col, stickerName(stickers, p.StickerID))
	}

	// Config line in the bottom margin, outside the printable area
	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(150, 150, 150)
	caption := fmt.Sprintf("%s | margin %.1f mm | gap %.1f mm | %d stickers | %.1f%% used",
		cfg.Paper, cfg.MarginMm, cfg.GapMm, len(placements), layout.Utilization(cfg, placements))
	pdf.SetXY(printable.X, paperH-5)
	pdf.CellFormat(paperW-2*printable.X, 3, caption, "", 0, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// drawPlacement draws one sticker rectangle rotated about its center, with
// its name and dimensions when they fit.
func drawPlacement(pdf *fpdf.Fpdf, p layout.Placement, col stickerColor, name string) {
	c := p.Center()

	pdf.TransformBegin()
	// fpdf rotates counter-clockwise; placement rotation is clockwise on
	// screen, matching the editor.
	pdf.TransformRotate(-p.RotationDeg, c.X, c.Y)

	pdf.SetFillColor(col.R, col.G, col.B)
	pdf.SetDrawColor(30, 30, 30)
	pdf.SetLineWidth(0.3)
	pdf.Rect(p.XMm, p.YMm, p.WidthMm, p.HeightMm, "FD")

	// Label (only if the rectangle is large enough)
	if p.WidthMm > 15 && p.HeightMm > 8 {
		pdf.SetFont("Helvetica", "", labelFontSize(p.WidthMm, p.HeightMm))
		pdf.SetTextColor(0, 0, 0)

		dims := fmt.Sprintf("%.0fx%.0f", p.WidthMm, p.HeightMm)
		nameW := pdf.GetStringWidth(name)
		dimsW := pdf.GetStringWidth(dims)

		// First line: sticker name
		if nameW < p.WidthMm-2 {
			pdf.SetXY(p.XMm+(p.WidthMm-nameW)/2, c.Y-4)
			pdf.CellFormat(nameW, 4, name, "", 0, "C", false, 0, "")
		}

		// Second line: dimensions
		if p.HeightMm > 14 && dimsW < p.WidthMm-2 {
			pdf.SetXY(p.XMm+(p.WidthMm-dimsW)/2, c.Y)
			pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
		}
	}

	pdf.TransformEnd()
}

// drawSummaryPage renders the statistics page with the render job QR code.
func drawSummaryPage(pdf *fpdf.Fpdf, cfg layout.SheetConfig, placements []layout.Placement, stickers catalog.Provider) error {
	paperW, paperH := cfg.Paper.Dimensions()
	contentW := paperW - 2*summaryMargin

	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(summaryMargin, summaryMargin)
	pdf.CellFormat(contentW, 10, "Sticker Sheet Summary", "", 0, "L", false, 0, "")

	// Separator line
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(summaryMargin, summaryMargin+12, paperW-summaryMargin, summaryMargin+12)

	y := summaryMargin + 18

	summaryItems := []struct {
		label string
		value string
	}{
		{"Paper", fmt.Sprintf("%s (%.1f x %.1f mm)", cfg.Paper, paperW, paperH)},
		{"Margin", fmt.Sprintf("%.1f mm", cfg.MarginMm)},
		{"Sticker Gap", fmt.Sprintf("%.1f mm", cfg.GapMm)},
		{"Stickers Placed", fmt.Sprintf("%d", len(placements))},
		{"Area Used", fmt.Sprintf("%.1f%%", layout.Utilization(cfg, placements))},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(summaryMargin+5, y)
		pdf.CellFormat(45, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(60, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	// Placement breakdown table
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(summaryMargin, y)
	pdf.CellFormat(100, 7, "Placements", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{10, 60, 40, 25, 40}
	headers := []string{"#", "Sticker", "Position", "Rotation", "Size"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := summaryMargin
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, p := range placements {
		// Leave room for the QR section below
		if y > paperH-summaryMargin-qrSizeMm-25 {
			pdf.SetXY(summaryMargin, y)
			pdf.CellFormat(contentW, 6, fmt.Sprintf("... and %d more", len(placements)-i), "", 0, "L", false, 0, "")
			y += 6
			break
		}

		xPos = summaryMargin
		rowData := []string{
			fmt.Sprintf("%d", i+1),
			truncateToWidth(pdf, stickerName(stickers, p.StickerID), colWidths[1]-2),
			fmt.Sprintf("(%.1f, %.1f)", p.XMm, p.YMm),
			fmt.Sprintf("%.0f\xb0", p.RotationDeg),
			fmt.Sprintf("%.1f x %.1f mm", p.WidthMm, p.HeightMm),
		}

		// Alternate row background
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	y += 10

	// Render job QR: the exact payload a render submission would carry
	req := render.NewRequest(cfg, placements)
	jobData, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal render job: %w", err)
	}
	qrPNG, err := qrcode.Encode(string(jobData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}
	pdf.RegisterImageOptionsReader("render_job_qr", fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions("render_job_qr", summaryMargin, y, qrSizeMm, qrSizeMm, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(summaryMargin+qrSizeMm+5, y+qrSizeMm/2-2)
	pdf.CellFormat(contentW-qrSizeMm-5, 4, "Render job payload - scan to reconcile proof and print job", "", 0, "L", false, 0, "")

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(summaryMargin, paperH-summaryMargin)
	pdf.CellFormat(contentW, 4, "Generated by sheetkit - Sticker Sheet Layout", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	return nil
}

// stickerName resolves a display name, falling back to the raw ID.
func stickerName(stickers catalog.Provider, id string) string {
	if stickers != nil {
		if st, ok := stickers.Sticker(id); ok && st.Name != "" {
			return st.Name
		}
	}
	return id
}

// truncateToWidth shortens s until it fits the given width in the current
// font, appending an ellipsis when it had to cut.
func truncateToWidth(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > width {
		s = s[:len(s)-1]
	}
	return s + "..."
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
