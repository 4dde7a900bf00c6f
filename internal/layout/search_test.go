package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stickerlab/sheetkit/internal/geom"
)

func TestFindNearestValid_StartWins(t *testing.T) {
	start := geom.Point{X: 10, Y: 10}
	pt, ok := findNearestValid(start, func(geom.Point) bool { return true }, searchParams{step: 5, samples: 8, maxRings: 3})

	require.True(t, ok)
	assert.Equal(t, start, pt)
}

func TestFindNearestValid_NudgeOrder(t *testing.T) {
	// Both the +x and +y nudges are valid; +x is tried first.
	start := geom.Point{X: 10, Y: 10}
	valid := func(pt geom.Point) bool {
		return pt == geom.Point{X: 15, Y: 10} || pt == geom.Point{X: 10, Y: 15}
	}

	pt, ok := findNearestValid(start, valid, searchParams{step: 5, samples: 8, maxRings: 3})
	require.True(t, ok)
	assert.Equal(t, geom.Point{X: 15, Y: 10}, pt)
}

func TestFindNearestValid_NearestRingWins(t *testing.T) {
	// Valid territory starts just under two steps to the right, so the
	// first ring misses and the second ring's 0-degree sample hits.
	start := geom.Point{X: 0, Y: 0}
	valid := func(pt geom.Point) bool { return pt.X >= 9.9 }

	pt, ok := findNearestValid(start, valid, searchParams{step: 5, samples: 4, maxRings: 10})
	require.True(t, ok)
	assert.InDelta(t, 10.0, pt.X, 1e-9)
	assert.InDelta(t, 0.0, pt.Y, 1e-9)
}

func TestFindNearestValid_AngleOrderBreaksTies(t *testing.T) {
	// Two points on the same ring are valid; the smaller angle wins.
	start := geom.Point{X: 0, Y: 0}
	valid := func(pt geom.Point) bool {
		onAxis := math.Abs(pt.X-10) < 1e-9 && math.Abs(pt.Y) < 1e-9
		below := math.Abs(pt.X) < 1e-9 && math.Abs(pt.Y-10) < 1e-9
		return onAxis || below
	}

	pt, ok := findNearestValid(start, valid, searchParams{step: 5, samples: 4, maxRings: 10})
	require.True(t, ok)
	assert.InDelta(t, 10.0, pt.X, 1e-9)
	assert.InDelta(t, 0.0, pt.Y, 1e-9)
}

func TestFindNearestValid_ExhaustsInBoundedCalls(t *testing.T) {
	calls := 0
	_, ok := findNearestValid(geom.Point{}, func(geom.Point) bool {
		calls++
		return false
	}, searchParams{step: 1, samples: 4, maxRings: 2})

	assert.False(t, ok)
	// Start, four nudges, then maxRings*samples ring points.
	assert.Equal(t, 1+4+2*4, calls)
}

func TestPlaceParams_StepNeverBelowMinimum(t *testing.T) {
	p := placeParams(0)
	assert.InDelta(t, 2.0, p.step, 1e-9)
	assert.Equal(t, placeSamples, p.samples)
	assert.Equal(t, placeMaxRings, p.maxRings)

	// A wide gap stretches the step so rings skip cleared strips.
	p = placeParams(5)
	assert.InDelta(t, 5.0, p.step, 1e-9)
}

func TestDragParams_StepFollowsViewScale(t *testing.T) {
	// 8 px at 4 px/mm is a 2 mm step.
	p := dragParams(0, 4)
	assert.InDelta(t, 2.0, p.step, 1e-9)
	assert.Equal(t, dragSamples, p.samples)
	assert.Equal(t, dragMaxRings, p.maxRings)

	// The gap wins when it is coarser than the pixel step.
	p = dragParams(3, 4)
	assert.InDelta(t, 3.0, p.step, 1e-9)

	// Zoomed in: finer pixels, finer step, but never below the gap.
	p = dragParams(0.5, 16)
	assert.InDelta(t, 0.5, p.step, 1e-9)
}
