package catalog

import (
	"fmt"
	"math"
	"sort"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/stickerlab/sheetkit/internal/geom"
)

// Interpolation densities for curved entities. The contours only feed
// bounding-box measurement, so moderate counts are plenty.
const (
	circleSegments = 64
	arcSegments    = 32
	bulgeSegments  = 32
)

// chainTolerance is the maximum endpoint distance, in drawing units, at
// which two loose segments count as connected.
const chainTolerance = 0.01

// segment is a straight edge between two points, used to chain loose LINE
// and ARC entities into closed contours.
type segment struct {
	start geom.Point
	end   geom.Point
}

// ImportDXF imports stickers from a DXF cut file. Each closed shape
// (LWPOLYLINE, CIRCLE, or a chain of connected LINEs/ARCs) becomes one
// sticker sized by the shape's bounding box. Cut files carry no artwork,
// so ImageRef stays empty.
func ImportDXF(path string) ImportResult {
	result := ImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var contours [][]geom.Point
	var loose []segment

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			contour := polylineContour(e)
			if len(contour) >= 3 {
				contours = append(contours, contour)
			} else {
				result.Warnings = append(result.Warnings,
					"Skipped LWPOLYLINE with fewer than 3 vertices")
			}

		case *entity.Circle:
			contours = append(contours, circleContour(e))

		case *entity.Arc:
			pts := arcPoints(e)
			for i := 0; i < len(pts)-1; i++ {
				loose = append(loose, segment{start: pts[i], end: pts[i+1]})
			}

		case *entity.Line:
			loose = append(loose, segment{
				start: geom.Point{X: e.Start[0], Y: e.Start[1]},
				end:   geom.Point{X: e.End[0], Y: e.End[1]},
			})

		default:
			// Unsupported entity types are silently skipped
		}
	}

	contours = append(contours, chainContours(loose)...)

	if len(contours) == 0 {
		result.Errors = append(result.Errors, "No closed shapes found in DXF file")
		return result
	}

	num := 0
	for _, contour := range contours {
		num++
		w, h := contourSize(contour)
		if w < 0.01 || h < 0.01 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Skipped degenerate contour (%.2f x %.2f mm)", w, h))
			continue
		}
		result.Stickers = append(result.Stickers, NewSticker(fmt.Sprintf("Contour %d", num), w, h))
	}

	return result
}

// polylineContour converts an LWPOLYLINE to a point contour. Bulge values
// on vertices interpolate an arc toward the next vertex.
func polylineContour(lw *entity.LwPolyline) []geom.Point {
	var contour []geom.Point

	for i := 0; i < len(lw.Vertices); i++ {
		v := lw.Vertices[i]
		current := geom.Point{X: v[0], Y: v[1]}

		bulge := 0.0
		if i < len(lw.Bulges) {
			bulge = lw.Bulges[i]
		}

		if math.Abs(bulge) > 1e-9 {
			next := lw.Vertices[(i+1)%len(lw.Vertices)]
			arc := bulgePoints(current, geom.Point{X: next[0], Y: next[1]}, bulge)
			// The next vertex adds itself; keep everything before it.
			contour = append(contour, arc[:len(arc)-1]...)
		} else {
			contour = append(contour, current)
		}
	}

	return contour
}

// bulgePoints interpolates the arc a DXF bulge factor describes between two
// endpoints. The bulge is the tangent of a quarter of the included angle;
// its sign picks the side of the chord.
func bulgePoints(p1, p2 geom.Point, bulge float64) []geom.Point {
	mx := (p1.X + p2.X) / 2
	my := (p1.Y + p2.Y) / 2
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	chord := math.Sqrt(dx*dx + dy*dy)
	if chord < 1e-9 {
		return []geom.Point{p1, p2}
	}

	sagitta := math.Abs(bulge) * chord / 2
	radius := (chord*chord/(4*sagitta) + sagitta) / 2

	// Arc center sits on the chord's perpendicular, radius-sagitta from the
	// midpoint, opposite the sagitta side. The distance turns negative for
	// arcs past a semicircle, which moves the center across the chord.
	perpX := -dy / chord
	perpY := dx / chord
	if bulge < 0 {
		perpX, perpY = -perpX, -perpY
	}
	cx := mx + perpX*(radius-sagitta)
	cy := my + perpY*(radius-sagitta)

	startAngle := math.Atan2(p1.Y-cy, p1.X-cx)
	endAngle := math.Atan2(p2.Y-cy, p2.X-cx)
	if bulge < 0 && endAngle > startAngle {
		endAngle -= 2 * math.Pi
	}
	if bulge > 0 && endAngle < startAngle {
		endAngle += 2 * math.Pi
	}

	pts := make([]geom.Point, 0, bulgeSegments+1)
	for i := 0; i <= bulgeSegments; i++ {
		t := float64(i) / float64(bulgeSegments)
		angle := startAngle + t*(endAngle-startAngle)
		pts = append(pts, geom.Point{
			X: cx + radius*math.Cos(angle),
			Y: cy + radius*math.Sin(angle),
		})
	}
	return pts
}

// circleContour approximates a circle as a regular polygon.
func circleContour(c *entity.Circle) []geom.Point {
	contour := make([]geom.Point, circleSegments)
	cx, cy, r := c.Center[0], c.Center[1], c.Radius
	for i := range contour {
		angle := 2 * math.Pi * float64(i) / float64(circleSegments)
		contour[i] = geom.Point{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}
	return contour
}

// arcPoints converts an ARC entity to a point run along its sweep.
func arcPoints(a *entity.Arc) []geom.Point {
	cx, cy := a.Circle.Center[0], a.Circle.Center[1]
	r := a.Circle.Radius

	startRad := a.Angle[0] * math.Pi / 180
	endRad := a.Angle[1] * math.Pi / 180
	if endRad <= startRad {
		endRad += 2 * math.Pi
	}

	pts := make([]geom.Point, arcSegments+1)
	for i := range pts {
		t := float64(i) / float64(arcSegments)
		angle := startRad + t*(endRad-startRad)
		pts[i] = geom.Point{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}
	return pts
}

// chainContours connects loose segments end to end and returns the closed
// contours among them, largest first.
func chainContours(segs []segment) [][]geom.Point {
	if len(segs) == 0 {
		return nil
	}

	used := make([]bool, len(segs))
	var contours [][]geom.Point

	for {
		startIdx := -1
		for i, u := range used {
			if !u {
				startIdx = i
				break
			}
		}
		if startIdx == -1 {
			break
		}

		chain := []geom.Point{segs[startIdx].start, segs[startIdx].end}
		used[startIdx] = true

		// Grow the chain while any unused segment touches its tail.
		changed := true
		for changed {
			changed = false
			tail := chain[len(chain)-1]

			for i, seg := range segs {
				if used[i] {
					continue
				}
				if near(tail, seg.start) {
					chain = append(chain, seg.end)
					used[i] = true
					changed = true
					break
				}
				if near(tail, seg.end) {
					chain = append(chain, seg.start)
					used[i] = true
					changed = true
					break
				}
			}
		}

		// Only closed chains become contours; drop the duplicate closing
		// point first.
		if len(chain) >= 3 && near(chain[0], chain[len(chain)-1]) {
			contours = append(contours, chain[:len(chain)-1])
		}
	}

	sort.Slice(contours, func(i, j int) bool {
		return contourArea(contours[i]) > contourArea(contours[j])
	})

	return contours
}

func near(a, b geom.Point) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx+dy*dy) <= chainTolerance
}

// contourArea computes the absolute polygon area via the shoelace formula.
func contourArea(contour []geom.Point) float64 {
	n := len(contour)
	if n < 3 {
		return 0
	}
	var area float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += contour[i].X * contour[j].Y
		area -= contour[j].X * contour[i].Y
	}
	return math.Abs(area) / 2
}

// contourSize measures the bounding box of a contour.
func contourSize(contour []geom.Point) (w, h float64) {
	if len(contour) == 0 {
		return 0, 0
	}
	minX, minY := contour[0].X, contour[0].Y
	maxX, maxY := minX, minY
	for _, p := range contour[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return maxX - minX, maxY - minY
}
