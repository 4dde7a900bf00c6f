// Package geom provides the axis-aligned rectangle math used by sheet
// placement: intersection, expansion by a padding amount, containment,
// and rotated bounding boxes. All functions are pure and all values are
// in the caller's unit (millimeters throughout this module).
package geom

import "math"

// Point is a 2D position in sheet coordinates.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned rectangle. X and Y locate the top-left corner.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Right returns the x coordinate of the rectangle's right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y coordinate of the rectangle's bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the rectangle's midpoint.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Intersects reports whether r and o overlap. Rectangles that merely
// touch along an edge or corner count as intersecting; separation
// requires one rectangle to lie strictly beyond the other on some axis.
func (r Rect) Intersects(o Rect) bool {
	if r.Right() < o.X || o.Right() < r.X {
		return false
	}
	if r.Bottom() < o.Y || o.Bottom() < r.Y {
		return false
	}
	return true
}

// Expand grows the rectangle by pad on all four sides. Callers only pass
// non-negative padding.
func (r Rect) Expand(pad float64) Rect {
	return Rect{
		X: r.X - pad,
		Y: r.Y - pad,
		W: r.W + 2*pad,
		H: r.H + 2*pad,
	}
}

// Contains reports whether inner lies entirely within r. Exact edge
// contact counts as contained.
func (r Rect) Contains(inner Rect) bool {
	if inner.X < r.X || inner.Y < r.Y {
		return false
	}
	if inner.Right() > r.Right() || inner.Bottom() > r.Bottom() {
		return false
	}
	return true
}

// RotatedBounds returns the width and height of the axis-aligned bounding
// box of a w by h rectangle rotated by deg degrees about its center:
// |w·cosθ| + |h·sinθ| across, |w·sinθ| + |h·cosθ| down.
func RotatedBounds(w, h, deg float64) (float64, float64) {
	theta := deg * math.Pi / 180
	sin := math.Abs(math.Sin(theta))
	cos := math.Abs(math.Cos(theta))
	return w*cos + h*sin, w*sin + h*cos
}
