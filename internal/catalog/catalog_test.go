package catalog

import (
	"math"
	"testing"
)

func TestNewSticker(t *testing.T) {
	s := NewSticker("Flower", 50, 30)

	if len(s.ID) != 8 {
		t.Errorf("expected 8-character ID, got %q", s.ID)
	}
	if s.Name != "Flower" {
		t.Errorf("expected name 'Flower', got %q", s.Name)
	}
	if s.WidthMm != 50 || s.HeightMm != 30 {
		t.Errorf("expected 50x30, got %gx%g", s.WidthMm, s.HeightMm)
	}
}

func TestHasPrintableSize(t *testing.T) {
	tests := []struct {
		name   string
		w, h   float64
		usable bool
	}{
		{"both positive", 50, 30, true},
		{"zero width", 0, 30, false},
		{"zero height", 50, 0, false},
		{"negative width", -5, 30, false},
		{"infinite width", math.Inf(1), 30, false},
		{"infinite height", 50, math.Inf(1), false},
		{"nan width", math.NaN(), 30, false},
	}
	for _, tt := range tests {
		s := Sticker{WidthMm: tt.w, HeightMm: tt.h}
		if got := s.HasPrintableSize(); got != tt.usable {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.usable, got)
		}
	}
}

func TestCatalogAdd(t *testing.T) {
	c := New()

	s := c.Add(Sticker{ID: "a", Name: "First", WidthMm: 10, HeightMm: 10})
	if s.ID != "a" {
		t.Errorf("expected ID 'a', got %q", s.ID)
	}
	if c.Len() != 1 {
		t.Fatalf("expected 1 sticker, got %d", c.Len())
	}

	// Adding without an ID generates one.
	s = c.Add(Sticker{Name: "Second", WidthMm: 20, HeightMm: 20})
	if len(s.ID) != 8 {
		t.Errorf("expected generated 8-character ID, got %q", s.ID)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 stickers, got %d", c.Len())
	}

	// Re-adding an existing ID replaces the record in place.
	c.Add(Sticker{ID: "a", Name: "Replaced", WidthMm: 15, HeightMm: 15})
	if c.Len() != 2 {
		t.Fatalf("expected 2 stickers after replace, got %d", c.Len())
	}
	got, ok := c.Sticker("a")
	if !ok || got.Name != "Replaced" {
		t.Errorf("expected replaced record, got %+v (ok=%v)", got, ok)
	}
	if c.Stickers()[0].Name != "Replaced" {
		t.Error("replace should keep the record's position")
	}
}

func TestCatalogRemove(t *testing.T) {
	c := FromStickers([]Sticker{
		{ID: "a", Name: "A", WidthMm: 10, HeightMm: 10},
		{ID: "b", Name: "B", WidthMm: 20, HeightMm: 20},
		{ID: "c", Name: "C", WidthMm: 30, HeightMm: 30},
	})

	if !c.Remove("b") {
		t.Fatal("expected Remove to report true for an existing ID")
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 stickers, got %d", c.Len())
	}

	// Later records must stay reachable after the splice.
	got, ok := c.Sticker("c")
	if !ok || got.Name != "C" {
		t.Errorf("expected 'c' to survive removal, got %+v (ok=%v)", got, ok)
	}
	if _, ok := c.Sticker("b"); ok {
		t.Error("expected 'b' to be gone")
	}

	if c.Remove("b") {
		t.Error("expected Remove to report false for a missing ID")
	}
}

func TestCatalogFindByName(t *testing.T) {
	c := FromStickers([]Sticker{
		{ID: "a", Name: "Flower", WidthMm: 10, HeightMm: 10},
		{ID: "b", Name: "Flower", WidthMm: 20, HeightMm: 20},
	})

	s := c.FindByName("Flower")
	if s == nil {
		t.Fatal("expected a match")
	}
	if s.ID != "a" {
		t.Errorf("expected the first match, got %q", s.ID)
	}

	if c.FindByName("Ghost") != nil {
		t.Error("expected nil for an unknown name")
	}
}

func TestCatalogStickers_Snapshot(t *testing.T) {
	c := FromStickers([]Sticker{{ID: "a", Name: "A", WidthMm: 10, HeightMm: 10}})

	snap := c.Stickers()
	snap[0].Name = "mutated"

	got, _ := c.Sticker("a")
	if got.Name != "A" {
		t.Error("mutating the snapshot must not touch the catalog")
	}
}
