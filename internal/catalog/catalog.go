// Package catalog holds the sticker records a sheet can place: physical
// print dimensions plus display metadata. Only the dimensions take part in
// layout; name and image reference ride along for exports and the UI.
package catalog

import (
	"math"

	"github.com/google/uuid"
)

// Sticker describes one printable sticker design. WidthMm and HeightMm are
// the physical print dimensions; a record without both usable stays in the
// catalog but cannot be placed on a sheet.
type Sticker struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	WidthMm  float64 `json:"width_mm"`
	HeightMm float64 `json:"height_mm"`
	ImageRef string  `json:"image_ref,omitempty"`
}

// NewSticker creates a sticker record with a generated ID.
func NewSticker(name string, widthMm, heightMm float64) Sticker {
	return Sticker{
		ID:       uuid.New().String()[:8],
		Name:     name,
		WidthMm:  widthMm,
		HeightMm: heightMm,
	}
}

// HasPrintableSize reports whether both physical dimensions are usable.
// Records imported with missing sizes decode to zero and fail here; NaN and
// infinities fail too.
func (s Sticker) HasPrintableSize() bool {
	return s.WidthMm > 0 && s.HeightMm > 0 &&
		!math.IsInf(s.WidthMm, 1) && !math.IsInf(s.HeightMm, 1)
}

// Provider supplies sticker records by ID. The sheet engine accepts any
// implementation.
type Provider interface {
	Sticker(id string) (Sticker, bool)
}

// Catalog is the in-memory Provider, keeping stickers in insertion order.
type Catalog struct {
	stickers []Sticker
	byID     map[string]int
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{byID: make(map[string]int)}
}

// FromStickers builds a catalog from existing records, for example an
// import result. Records without an ID get one; a record reusing an ID
// replaces the earlier one.
func FromStickers(stickers []Sticker) *Catalog {
	c := New()
	for _, s := range stickers {
		c.Add(s)
	}
	return c
}

// Add inserts or replaces a sticker record. An empty ID gets a generated
// one. Returns the stored record.
func (c *Catalog) Add(s Sticker) Sticker {
	if s.ID == "" {
		s.ID = uuid.New().String()[:8]
	}
	if i, ok := c.byID[s.ID]; ok {
		c.stickers[i] = s
		return s
	}
	c.byID[s.ID] = len(c.stickers)
	c.stickers = append(c.stickers, s)
	return s
}

// Remove deletes a sticker record. Placements already on a sheet keep
// their copied dimensions and are not affected.
func (c *Catalog) Remove(id string) bool {
	i, ok := c.byID[id]
	if !ok {
		return false
	}
	c.stickers = append(c.stickers[:i], c.stickers[i+1:]...)
	delete(c.byID, id)
	for j := i; j < len(c.stickers); j++ {
		c.byID[c.stickers[j].ID] = j
	}
	return true
}

// Sticker returns the record with the given ID.
func (c *Catalog) Sticker(id string) (Sticker, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Sticker{}, false
	}
	return c.stickers[i], true
}

// FindByName returns the first sticker with the given name, or nil.
func (c *Catalog) FindByName(name string) *Sticker {
	for i := range c.stickers {
		if c.stickers[i].Name == name {
			s := c.stickers[i]
			return &s
		}
	}
	return nil
}

// Stickers returns all records in insertion order. The slice is a
// snapshot; mutating it does not touch the catalog.
func (c *Catalog) Stickers() []Sticker {
	out := make([]Sticker, len(c.stickers))
	copy(out, c.stickers)
	return out
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.stickers)
}
