package export

import (
	"fmt"
	"math"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/table"

	"github.com/stickerlab/sheetkit/internal/geom"
	"github.com/stickerlab/sheetkit/internal/layout"
)

// sheetLayerName carries the paper outline when a profile wants it.
const sheetLayerName = "SHEET"

// WriteCutDXF writes the cut contours of a sheet layout as a DXF drawing
// for a contour cutter. Every placement contributes its true rotated
// rectangle on the profile's cut layer; the sheet outline goes on its own
// layer as a registration reference when the profile asks for one.
//
// DXF world coordinates grow upward, so sheet y-coordinates flip against
// the paper height. Profiles for cut-from-back media mirror x as well.
func WriteCutDXF(path string, cfg layout.SheetConfig, placements []layout.Placement, profile CutterProfile) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if len(placements) == 0 {
		return fmt.Errorf("no placements to export")
	}

	paperW, paperH := cfg.Paper.Dimensions()
	mapX := func(x float64) float64 {
		if profile.MirrorX {
			return paperW - x
		}
		return x
	}
	mapY := func(y float64) float64 {
		return paperH - y
	}

	d := dxf.NewDrawing()

	if profile.SheetOutline {
		if _, err := d.AddLayer(sheetLayerName, color.Cyan, table.LT_CONTINUOUS, true); err != nil {
			return fmt.Errorf("failed to add sheet layer: %w", err)
		}
		_, err := d.LwPolyline(true,
			[]float64{mapX(0), mapY(0)},
			[]float64{mapX(paperW), mapY(0)},
			[]float64{mapX(paperW), mapY(paperH)},
			[]float64{mapX(0), mapY(paperH)},
		)
		if err != nil {
			return fmt.Errorf("failed to draw sheet outline: %w", err)
		}
	}

	cutLayer := profile.Layer
	if cutLayer == "" {
		cutLayer = "CUT"
	}
	if _, err := d.AddLayer(cutLayer, color.Red, table.LT_CONTINUOUS, true); err != nil {
		return fmt.Errorf("failed to add cut layer: %w", err)
	}

	for _, p := range placements {
		corners := p.Corners()
		verts := make([][]float64, 0, 6)
		for _, c := range corners {
			verts = append(verts, []float64{mapX(c.X), mapY(c.Y)})
		}

		if profile.OvercutMm > 0 {
			// Re-trace the first corner and push past it along the first
			// edge, so a drag knife's trailing blade still closes the shape.
			verts = append(verts, verts[0])
			over := overcutPoint(corners[0], corners[1], profile.OvercutMm)
			verts = append(verts, []float64{mapX(over.X), mapY(over.Y)})
			if _, err := d.LwPolyline(false, verts...); err != nil {
				return fmt.Errorf("failed to draw contour for %s: %w", p.ID, err)
			}
		} else {
			if _, err := d.LwPolyline(true, verts...); err != nil {
				return fmt.Errorf("failed to draw contour for %s: %w", p.ID, err)
			}
		}
	}

	return d.SaveAs(path)
}

// overcutPoint returns the point overcut mm past from, in the direction of to.
func overcutPoint(from, to geom.Point, overcut float64) geom.Point {
	dx := to.X - from.X
	dy := to.Y - from.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return from
	}
	return geom.Point{
		X: from.X + dx/length*overcut,
		Y: from.Y + dy/length*overcut,
	}
}
