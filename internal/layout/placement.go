package layout

import (
	"math"

	"github.com/google/uuid"

	"github.com/stickerlab/sheetkit/internal/geom"
)

// Placement is one sticker committed to a position on the sheet. XMm and
// YMm locate the top-left corner of the un-rotated WidthMm x HeightMm
// rectangle in sheet coordinates (origin at the paper's top-left corner,
// y growing downward). RotationDeg rotates the rectangle about its own
// center; positive angles turn clockwise on screen.
//
// Width and height are copied from the sticker record at placement time, so
// a placement stays self-contained even when the catalog changes under it.
type Placement struct {
	ID          string  `json:"id"`
	StickerID   string  `json:"sticker_id"`
	XMm         float64 `json:"x_mm"`
	YMm         float64 `json:"y_mm"`
	RotationDeg float64 `json:"rotation_deg"`
	WidthMm     float64 `json:"width_mm"`
	HeightMm    float64 `json:"height_mm"`
}

// NewPlacement creates a placement for the given sticker dimensions with a
// generated ID. Position and rotation start at zero.
func NewPlacement(stickerID string, widthMm, heightMm float64) Placement {
	return Placement{
		ID:        uuid.New().String()[:8],
		StickerID: stickerID,
		WidthMm:   widthMm,
		HeightMm:  heightMm,
	}
}

// Center returns the point the placement rotates around.
func (p Placement) Center() geom.Point {
	return geom.Point{X: p.XMm + p.WidthMm/2, Y: p.YMm + p.HeightMm/2}
}

// BBox returns the axis-aligned bounding box of the placement's rectangle
// after rotation about its center.
func (p Placement) BBox() geom.Rect {
	bw, bh := geom.RotatedBounds(p.WidthMm, p.HeightMm, p.RotationDeg)
	c := p.Center()
	return geom.Rect{X: c.X - bw/2, Y: c.Y - bh/2, W: bw, H: bh}
}

// ExpandedBBox returns BBox grown by the gap on all four sides, the box
// every overlap check between placements uses.
func (p Placement) ExpandedBBox(gapMm float64) geom.Rect {
	return p.BBox().Expand(gapMm)
}

// Corners returns the placement's four corners after rotation, in sheet
// coordinates, ordered from the un-rotated rectangle's top-left corner
// going clockwise. Exports that cut the true outline consume these.
func (p Placement) Corners() [4]geom.Point {
	theta := p.RotationDeg * math.Pi / 180
	sin, cos := math.Sin(theta), math.Cos(theta)
	c := p.Center()
	hw, hh := p.WidthMm/2, p.HeightMm/2

	offsets := [4][2]float64{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	var out [4]geom.Point
	for i, o := range offsets {
		out[i] = geom.Point{
			X: c.X + o[0]*cos - o[1]*sin,
			Y: c.Y + o[0]*sin + o[1]*cos,
		}
	}
	return out
}

// at returns a copy of the placement with its top-left corner moved to pt.
func (p Placement) at(pt geom.Point) Placement {
	p.XMm = pt.X
	p.YMm = pt.Y
	return p
}

// AreaMm2 returns the sticker's own area, which rotation does not change.
func (p Placement) AreaMm2() float64 {
	return p.WidthMm * p.HeightMm
}
