package layout

import "github.com/stickerlab/sheetkit/internal/geom"

// isValid reports whether the candidate placement may be committed next to
// the given placements. Two checks, both on axis-aligned boxes:
//
//   - containment: the candidate's rotated bounding box must lie inside the
//     printable rect (edge contact allowed; the margin already keeps it off
//     the paper edge, so no gap applies against the boundary)
//   - clearance: the candidate's gap-expanded box must not intersect any
//     other placement's gap-expanded box, where touching edges count as an
//     intersection
//
// A placement in others with the candidate's own ID is skipped, so a move
// or rotate never collides with the spot it is leaving. The decision
// depends only on the arguments.
func isValid(candidate Placement, others []Placement, printable geom.Rect, gapMm float64) bool {
	box := candidate.BBox()
	if !printable.Contains(box) {
		return false
	}

	expanded := box.Expand(gapMm)
	for _, o := range others {
		if o.ID == candidate.ID {
			continue
		}
		if expanded.Intersects(o.ExpandedBBox(gapMm)) {
			return false
		}
	}
	return true
}
