package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ─── Intersection Tests ───

func TestIntersects_Overlapping(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 5, Y: 5, W: 10, H: 10}

	assert.True(t, a.Intersects(b))
	assert.True(t, b.Intersects(a), "intersection should be symmetric")
}

func TestIntersects_Disjoint(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	assert.False(t, a.Intersects(Rect{X: 10.5, Y: 0, W: 5, H: 5}), "strictly right")
	assert.False(t, a.Intersects(Rect{X: -6, Y: 0, W: 5, H: 5}), "strictly left")
	assert.False(t, a.Intersects(Rect{X: 0, Y: 10.5, W: 5, H: 5}), "strictly below")
	assert.False(t, a.Intersects(Rect{X: 0, Y: -6, W: 5, H: 5}), "strictly above")
}

func TestIntersects_TouchingCountsAsIntersecting(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	// Shared edge.
	assert.True(t, a.Intersects(Rect{X: 10, Y: 0, W: 5, H: 10}), "edge contact is a collision")
	assert.True(t, a.Intersects(Rect{X: 0, Y: 10, W: 10, H: 5}), "edge contact is a collision")
	// Shared corner only.
	assert.True(t, a.Intersects(Rect{X: 10, Y: 10, W: 5, H: 5}), "corner contact is a collision")
}

func TestIntersects_Containment(t *testing.T) {
	outer := Rect{X: 0, Y: 0, W: 100, H: 100}
	inner := Rect{X: 40, Y: 40, W: 10, H: 10}

	assert.True(t, outer.Intersects(inner))
	assert.True(t, inner.Intersects(outer))
}

// ─── Expansion Tests ───

func TestExpand(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	e := r.Expand(2)

	assert.Equal(t, Rect{X: 8, Y: 18, W: 34, H: 44}, e)
}

func TestExpand_Zero(t *testing.T) {
	r := Rect{X: 1, Y: 2, W: 3, H: 4}

	assert.Equal(t, r, r.Expand(0))
}

// ─── Containment Tests ───

func TestContains_Inside(t *testing.T) {
	outer := Rect{X: 0, Y: 0, W: 100, H: 100}

	assert.True(t, outer.Contains(Rect{X: 10, Y: 10, W: 20, H: 20}))
}

func TestContains_EdgeContactAllowed(t *testing.T) {
	outer := Rect{X: 7, Y: 7, W: 196, H: 283}

	// Flush against the top-left corner.
	assert.True(t, outer.Contains(Rect{X: 7, Y: 7, W: 50, H: 50}))
	// Flush against the bottom-right corner.
	assert.True(t, outer.Contains(Rect{X: 153, Y: 240, W: 50, H: 50}))
	// Exactly filling the outer rect.
	assert.True(t, outer.Contains(outer))
}

func TestContains_Outside(t *testing.T) {
	outer := Rect{X: 0, Y: 0, W: 100, H: 100}

	assert.False(t, outer.Contains(Rect{X: -0.1, Y: 0, W: 10, H: 10}), "past left edge")
	assert.False(t, outer.Contains(Rect{X: 0, Y: -0.1, W: 10, H: 10}), "past top edge")
	assert.False(t, outer.Contains(Rect{X: 95, Y: 0, W: 10, H: 10}), "past right edge")
	assert.False(t, outer.Contains(Rect{X: 0, Y: 95, W: 10, H: 10}), "past bottom edge")
	assert.False(t, outer.Contains(Rect{X: 200, Y: 200, W: 10, H: 10}), "fully outside")
}

// ─── Edge Accessor Tests ───

func TestRectAccessors(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}

	assert.Equal(t, 40.0, r.Right())
	assert.Equal(t, 60.0, r.Bottom())
	assert.Equal(t, Point{X: 25, Y: 40}, r.Center())
}

// ─── Rotated Bounds Tests ───

func TestRotatedBounds_NoRotation(t *testing.T) {
	w, h := RotatedBounds(50, 30, 0)

	assert.InDelta(t, 50, w, 1e-9)
	assert.InDelta(t, 30, h, 1e-9)
}

func TestRotatedBounds_QuarterTurn(t *testing.T) {
	w, h := RotatedBounds(50, 30, 90)

	assert.InDelta(t, 30, w, 1e-9)
	assert.InDelta(t, 50, h, 1e-9)
}

func TestRotatedBounds_HalfTurn(t *testing.T) {
	w, h := RotatedBounds(50, 30, 180)

	assert.InDelta(t, 50, w, 1e-9)
	assert.InDelta(t, 30, h, 1e-9)
}

func TestRotatedBounds_Square45(t *testing.T) {
	w, h := RotatedBounds(50, 50, 45)

	want := 50 * math.Sqrt2
	assert.InDelta(t, want, w, 1e-9)
	assert.InDelta(t, want, h, 1e-9)
}

func TestRotatedBounds_Arbitrary(t *testing.T) {
	// 30 degrees: w' = 40·cos30 + 20·sin30, h' = 40·sin30 + 20·cos30.
	w, h := RotatedBounds(40, 20, 30)

	assert.InDelta(t, 40*math.Cos(math.Pi/6)+20*0.5, w, 1e-9)
	assert.InDelta(t, 40*0.5+20*math.Cos(math.Pi/6), h, 1e-9)
}

func TestRotatedBounds_NegativeAngle(t *testing.T) {
	w1, h1 := RotatedBounds(40, 20, -30)
	w2, h2 := RotatedBounds(40, 20, 30)

	assert.InDelta(t, w2, w1, 1e-9, "bounding box is symmetric in rotation direction")
	assert.InDelta(t, h2, h1, 1e-9)
}
