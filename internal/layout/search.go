package layout

import (
	"math"

	"github.com/stickerlab/sheetkit/internal/geom"
)

// Search bounds. A scan costs at most maxRings*samples validity checks,
// each linear in the number of placements, so every interactive operation
// has a fixed worst case.
const (
	// Fresh placements (add, duplicate) scan in sheet millimeters.
	placeMinStepMm = 2.0
	placeSamples   = 24
	placeMaxRings  = 140

	// Drag and rotate resolution scans at screen resolution: the minimum
	// step is 8 px at the current view scale, converted to mm.
	dragMinStepPx = 8.0
	dragSamples   = 20
	dragMaxRings  = 120
)

// DefaultViewScale is the screen density assumed until the editor reports
// its zoom: CSS reference pixels at 96 dpi, in px per mm.
const DefaultViewScale = 96.0 / 25.4

// searchParams bounds one nearest-valid-point scan.
type searchParams struct {
	step     float64 // ring spacing and nudge distance, mm
	samples  int     // points tested per ring
	maxRings int
}

// placeParams returns the scan bounds for fresh placements. The step never
// drops below the gap, so neighboring rings cannot both land inside the
// same cleared strip.
func placeParams(gapMm float64) searchParams {
	return searchParams{
		step:     math.Max(placeMinStepMm, gapMm),
		samples:  placeSamples,
		maxRings: placeMaxRings,
	}
}

// dragParams returns the scan bounds for drag and rotate resolution.
// pxPerMm converts the 8 px minimum step into sheet units.
func dragParams(gapMm, pxPerMm float64) searchParams {
	minStep := dragMinStepPx
	if pxPerMm > 0 {
		minStep = dragMinStepPx / pxPerMm
	}
	return searchParams{
		step:     math.Max(minStep, gapMm),
		samples:  dragSamples,
		maxRings: dragMaxRings,
	}
}

// findNearestValid looks for the closest point to start at which valid
// reports true. Stages, in order:
//
//  1. start itself
//  2. four axis nudges one step away, in +x, -x, +y, -y order
//  3. concentric rings of radius r*step for r = 1..maxRings, each sampled
//     at params.samples evenly spaced angles starting at 0 (+x axis),
//     counted the same way y grows
//
// Rings run inside out, so a nearer ring always beats a farther one; within
// a ring the angle order breaks ties. Returns false once every stage is
// exhausted.
func findNearestValid(start geom.Point, valid func(geom.Point) bool, params searchParams) (geom.Point, bool) {
	if valid(start) {
		return start, true
	}

	step := params.step
	nudges := [4]geom.Point{
		{X: start.X + step, Y: start.Y},
		{X: start.X - step, Y: start.Y},
		{X: start.X, Y: start.Y + step},
		{X: start.X, Y: start.Y - step},
	}
	for _, pt := range nudges {
		if valid(pt) {
			return pt, true
		}
	}

	for r := 1; r <= params.maxRings; r++ {
		radius := float64(r) * step
		for i := 0; i < params.samples; i++ {
			angle := 2 * math.Pi * float64(i) / float64(params.samples)
			pt := geom.Point{
				X: start.X + radius*math.Cos(angle),
				Y: start.Y + radius*math.Sin(angle),
			}
			if valid(pt) {
				return pt, true
			}
		}
	}

	return geom.Point{}, false
}
