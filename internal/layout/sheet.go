package layout

import (
	"fmt"

	"github.com/stickerlab/sheetkit/internal/catalog"
	"github.com/stickerlab/sheetkit/internal/geom"
)

// Sheet is the authoritative model of one print sheet: a configuration plus
// the committed placements in insertion order. Every operation is
// synchronous and keeps the committed set satisfying the layout rules
// (rotated bounding boxes inside the printable area, gap-expanded boxes
// pairwise disjoint); an operation that fails leaves the set untouched.
//
// The one sanctioned exception is Reconfigure with a changed margin or gap:
// existing placements are kept as they are and may go stale against the new
// values until an interactive edit touches them.
//
// A Sheet is not safe for concurrent use. It belongs to a single editing
// session; put a lock or a single goroutine in front of it to share it.
type Sheet struct {
	cfg      SheetConfig
	stickers catalog.Provider

	byID  map[string]Placement
	order []string

	selected string
	pxPerMm  float64
}

// NewSheet creates an empty sheet with the given configuration. The
// provider supplies sticker dimensions for Add; it may be nil for a sheet
// that only restores or rearranges existing placements.
func NewSheet(cfg SheetConfig, stickers catalog.Provider) (*Sheet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Sheet{
		cfg:      cfg,
		stickers: stickers,
		byID:     make(map[string]Placement),
		pxPerMm:  DefaultViewScale,
	}, nil
}

// Restore builds a sheet from previously committed placements, as loaded
// from a layout file. They are trusted as committed and not re-validated,
// matching the stale-until-touched contract for margin and gap edits, but
// IDs must be unique.
func Restore(cfg SheetConfig, placements []Placement, stickers catalog.Provider) (*Sheet, error) {
	s, err := NewSheet(cfg, stickers)
	if err != nil {
		return nil, err
	}
	for _, p := range placements {
		if _, exists := s.byID[p.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePlacement, p.ID)
		}
		s.byID[p.ID] = p
		s.order = append(s.order, p.ID)
	}
	return s, nil
}

// Add places a new copy of the sticker on the sheet. The search anchors at
// the printable area's top-left corner and commits the nearest valid
// position. The new placement becomes the selection.
func (s *Sheet) Add(stickerID string) (Placement, error) {
	if s.stickers == nil {
		return Placement{}, fmt.Errorf("%w: no catalog attached", ErrStickerNotFound)
	}
	st, ok := s.stickers.Sticker(stickerID)
	if !ok {
		return Placement{}, fmt.Errorf("%w: %s", ErrStickerNotFound, stickerID)
	}
	if !st.HasPrintableSize() {
		return Placement{}, fmt.Errorf("%w: %s (%q)", ErrInvalidStickerMetadata, st.ID, st.Name)
	}

	cand := NewPlacement(st.ID, st.WidthMm, st.HeightMm)
	printable := s.cfg.PrintableRect()
	return s.place(cand, geom.Point{X: printable.X, Y: printable.Y})
}

// Duplicate places a copy of an existing placement, same sticker and same
// rotation, anchored one sticker width plus one gap to the right of the
// source. The copy becomes the selection.
func (s *Sheet) Duplicate(placementID string) (Placement, error) {
	src, ok := s.byID[placementID]
	if !ok {
		return Placement{}, fmt.Errorf("%w: %s", ErrPlacementNotFound, placementID)
	}

	cand := NewPlacement(src.StickerID, src.WidthMm, src.HeightMm)
	cand.RotationDeg = src.RotationDeg
	start := geom.Point{X: src.XMm + src.WidthMm + s.cfg.GapMm, Y: src.YMm}
	return s.place(cand, start)
}

// place runs the fresh-placement search from start and commits the result.
func (s *Sheet) place(cand Placement, start geom.Point) (Placement, error) {
	others := s.Placements()
	printable := s.cfg.PrintableRect()
	gap := s.cfg.GapMm

	pt, ok := findNearestValid(start, func(pt geom.Point) bool {
		return isValid(cand.at(pt), others, printable, gap)
	}, placeParams(gap))
	if !ok {
		return Placement{}, fmt.Errorf("%w: no position for %.1f x %.1f mm sticker",
			ErrNoSpaceAvailable, cand.WidthMm, cand.HeightMm)
	}

	cand = cand.at(pt)
	s.byID[cand.ID] = cand
	s.order = append(s.order, cand.ID)
	s.selected = cand.ID
	return cand, nil
}

// Move requests a new top-left position for a committed placement. A valid
// request commits as asked; an invalid one resolves to the nearest valid
// point around the request; an unresolvable one falls back to the pre-edit
// position, the snap-back a dropped drag shows. Only when even that fails,
// which takes a stale placement, does the sheet keep the committed value
// and report ErrResolutionFailed.
func (s *Sheet) Move(placementID string, xMm, yMm float64) (Placement, error) {
	cur, ok := s.byID[placementID]
	if !ok {
		return Placement{}, fmt.Errorf("%w: %s", ErrPlacementNotFound, placementID)
	}

	cand := cur
	cand.XMm = xMm
	cand.YMm = yMm
	return s.resolve(cur, cand, geom.Point{X: xMm, Y: yMm})
}

// Rotate requests a new rotation for a committed placement, keeping its
// position as the anchor. When the rotated box no longer fits there, the
// search moves the placement to the nearest position where it does. An
// unresolvable rotation is discarded: the placement keeps its committed
// rotation and position, and ErrResolutionFailed reports the snap-back.
func (s *Sheet) Rotate(placementID string, rotationDeg float64) (Placement, error) {
	cur, ok := s.byID[placementID]
	if !ok {
		return Placement{}, fmt.Errorf("%w: %s", ErrPlacementNotFound, placementID)
	}

	cand := cur
	cand.RotationDeg = rotationDeg
	return s.resolve(cur, cand, geom.Point{X: cur.XMm, Y: cur.YMm})
}

// resolve commits cand at or near start if the drag search finds a valid
// point, then falls back to the pre-edit position before giving up. On
// ErrResolutionFailed the committed value is unchanged.
func (s *Sheet) resolve(cur, cand Placement, start geom.Point) (Placement, error) {
	others := s.Placements()
	printable := s.cfg.PrintableRect()
	gap := s.cfg.GapMm

	valid := func(pt geom.Point) bool {
		return isValid(cand.at(pt), others, printable, gap)
	}

	if pt, ok := findNearestValid(start, valid, dragParams(gap, s.pxPerMm)); ok {
		return s.commit(cand.at(pt)), nil
	}

	home := geom.Point{X: cur.XMm, Y: cur.YMm}
	if home != start && valid(home) {
		return s.commit(cand.at(home)), nil
	}
	return cur, fmt.Errorf("%w: placement %s", ErrResolutionFailed, cur.ID)
}

// commit stores p as the committed value for its ID.
func (s *Sheet) commit(p Placement) Placement {
	s.byID[p.ID] = p
	return p
}

// Remove deletes a placement. The remaining placements keep their
// positions; nothing re-flows.
func (s *Sheet) Remove(placementID string) error {
	if _, ok := s.byID[placementID]; !ok {
		return fmt.Errorf("%w: %s", ErrPlacementNotFound, placementID)
	}
	delete(s.byID, placementID)
	for i, id := range s.order {
		if id == placementID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	if s.selected == placementID {
		s.selected = ""
	}
	return nil
}

// Reconfigure applies a new sheet configuration. A changed paper size
// clears every placement, since positions on one format mean nothing on
// another. Margin and gap changes keep the committed placements without
// re-validating them; stale ones surface when the next edit touches them.
func (s *Sheet) Reconfigure(cfg SheetConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Paper != s.cfg.Paper {
		s.byID = make(map[string]Placement)
		s.order = nil
		s.selected = ""
	}
	s.cfg = cfg
	return nil
}

// Select marks a placement as the current selection.
func (s *Sheet) Select(placementID string) error {
	if _, ok := s.byID[placementID]; !ok {
		return fmt.Errorf("%w: %s", ErrPlacementNotFound, placementID)
	}
	s.selected = placementID
	return nil
}

// ClearSelection drops the current selection.
func (s *Sheet) ClearSelection() {
	s.selected = ""
}

// SelectedID returns the ID of the selected placement, or "" when nothing
// is selected.
func (s *Sheet) SelectedID() string {
	return s.selected
}

// SetViewScale reports the editor's zoom in px per mm, which sets the
// resolution of drag and rotate searches. Non-positive values are ignored.
func (s *Sheet) SetViewScale(pxPerMm float64) {
	if pxPerMm > 0 {
		s.pxPerMm = pxPerMm
	}
}

// ViewScale returns the current view scale in px per mm.
func (s *Sheet) ViewScale() float64 {
	return s.pxPerMm
}

// Config returns the current sheet configuration.
func (s *Sheet) Config() SheetConfig {
	return s.cfg
}

// Len returns the number of committed placements.
func (s *Sheet) Len() int {
	return len(s.order)
}

// Placement returns the committed placement with the given ID.
func (s *Sheet) Placement(placementID string) (Placement, bool) {
	p, ok := s.byID[placementID]
	return p, ok
}

// Placements returns the committed placements in insertion order. The
// slice is a snapshot; mutating it does not touch the sheet.
func (s *Sheet) Placements() []Placement {
	out := make([]Placement, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Utilization returns the share of the printable area covered by the given
// placements, in percent. Rotation does not change a sticker's area.
func Utilization(cfg SheetConfig, placements []Placement) float64 {
	printable := cfg.PrintableRect()
	if printable.W <= 0 || printable.H <= 0 {
		return 0
	}
	var used float64
	for _, p := range placements {
		used += p.AreaMm2()
	}
	return used / (printable.W * printable.H) * 100
}
